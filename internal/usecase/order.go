package usecase

import (
	"context"
	"errors"

	"github.com/orderdesk/orderdesk/internal/authz"
	domainErrors "github.com/orderdesk/orderdesk/internal/domain/errors"
	"github.com/orderdesk/orderdesk/internal/domain/model"
	"github.com/orderdesk/orderdesk/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic. Every operation asks
// the authorization engine before touching storage.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	engine   *authz.Engine
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, products repository.ProductRepository, engine *authz.Engine) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, engine: engine}
}

// loadOrder fetches the target order, mapping a missing row to a nil
// order so the engine can decide how to report it.
func (u *OrderUseCase) loadOrder(ctx context.Context, id int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return order, nil
}

// Create places a new PENDING order owned by the caller.
func (u *OrderUseCase) Create(ctx context.Context, caller authz.Caller, productID, quantity int64) (*model.OrderDetail, error) {
	product, err := u.products.GetByID(ctx, productID)
	if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	if err := u.engine.Create(caller, product, quantity).Err(); err != nil {
		return nil, err
	}

	order, err := u.orders.Create(ctx, caller.ID, product.ID, quantity)
	if err != nil {
		return nil, err
	}
	return u.orders.GetDetail(ctx, order.ID)
}

// ListAll returns every order in the system, staff only.
func (u *OrderUseCase) ListAll(ctx context.Context, caller authz.Caller) ([]model.Order, error) {
	if err := u.engine.ListAny(caller).Err(); err != nil {
		return nil, err
	}
	return u.orders.List(ctx)
}

// Get returns the full order detail, owner included, staff only.
func (u *OrderUseCase) Get(ctx context.Context, caller authz.Caller, id int64) (*model.OrderDetail, error) {
	order, err := u.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.engine.ViewAny(caller, order).Err(); err != nil {
		return nil, err
	}
	return u.orders.GetDetail(ctx, id)
}

// GetOwn returns the caller's own order detail.
func (u *OrderUseCase) GetOwn(ctx context.Context, caller authz.Caller, id int64) (*model.OrderDetail, error) {
	order, err := u.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.engine.ViewOwn(caller, order).Err(); err != nil {
		return nil, err
	}
	return u.orders.GetDetail(ctx, id)
}

// Update applies a partial patch to the caller's own order. Supplied
// fields overwrite unconditionally; a new product reference must
// resolve, and a supplied status must be one of the declared values.
func (u *OrderUseCase) Update(ctx context.Context, caller authz.Caller, id int64, patch model.OrderPatch) (*model.OrderDetail, error) {
	order, err := u.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.engine.UpdateDetails(caller, order).Err(); err != nil {
		return nil, err
	}

	if patch.Status != nil && !model.ValidOrderStatus(*patch.Status) {
		return nil, domainErrors.ErrInvalidInput
	}
	if patch.ProductID != nil {
		if _, err := u.products.GetByID(ctx, *patch.ProductID); err != nil {
			return nil, err
		}
	}

	if !patch.Empty() {
		if _, err := u.orders.Update(ctx, id, patch); err != nil {
			return nil, err
		}
	}
	return u.orders.GetDetail(ctx, id)
}

// UpdateStatus sets the order status, staff only. Any declared status is
// accepted regardless of the current one.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, caller authz.Caller, id int64, status model.OrderStatus) (*model.OrderDetail, error) {
	order, err := u.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.engine.UpdateStatus(caller, order).Err(); err != nil {
		return nil, err
	}

	if !model.ValidOrderStatus(status) {
		return nil, domainErrors.ErrInvalidInput
	}

	if _, err := u.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return u.orders.GetDetail(ctx, id)
}

// Delete removes an order when the engine's delete predicate holds.
func (u *OrderUseCase) Delete(ctx context.Context, caller authz.Caller, id int64) error {
	order, err := u.loadOrder(ctx, id)
	if err != nil {
		return err
	}
	if err := u.engine.Delete(caller, order).Err(); err != nil {
		return err
	}
	return u.orders.Delete(ctx, id)
}
