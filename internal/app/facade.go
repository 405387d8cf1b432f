package app

import (
	"context"

	"go.uber.org/fx"

	"github.com/orderdesk/orderdesk/internal/authz"
	"github.com/orderdesk/orderdesk/internal/domain/model"
	"github.com/orderdesk/orderdesk/internal/usecase"
)

// OrderDeskFacade is the single entry point the transport layer talks
// to. It delegates to the use cases and owns no logic of its own.
type OrderDeskFacade struct {
	auth    *usecase.AuthUseCase
	catalog *usecase.CatalogUseCase
	orders  *usecase.OrderUseCase
}

// FacadeParams collects facade dependencies for fx.
type FacadeParams struct {
	fx.In

	Auth    *usecase.AuthUseCase
	Catalog *usecase.CatalogUseCase
	Orders  *usecase.OrderUseCase
}

// NewOrderDeskFacade constructs the facade.
func NewOrderDeskFacade(p FacadeParams) *OrderDeskFacade {
	return &OrderDeskFacade{auth: p.Auth, catalog: p.Catalog, orders: p.Orders}
}

// SignUp registers a new client account.
func (f *OrderDeskFacade) SignUp(ctx context.Context, username, email, password string, isStaff, isActive bool) (*model.Client, error) {
	return f.auth.SignUp(ctx, username, email, password, isStaff, isActive)
}

// Login authenticates by username or email and issues tokens.
func (f *OrderDeskFacade) Login(ctx context.Context, identifier, password string) (*model.Client, *usecase.TokenPair, error) {
	return f.auth.Login(ctx, identifier, password)
}

// Refresh exchanges a refresh token for a new access token.
func (f *OrderDeskFacade) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return f.auth.Refresh(ctx, refreshToken)
}

// ResolveCaller validates an access token into a caller identity.
func (f *OrderDeskFacade) ResolveCaller(ctx context.Context, accessToken string) (authz.Caller, error) {
	return f.auth.ResolveCaller(ctx, accessToken)
}

// CreateOrder places a new order owned by the caller.
func (f *OrderDeskFacade) CreateOrder(ctx context.Context, caller authz.Caller, productID, quantity int64) (*model.OrderDetail, error) {
	return f.orders.Create(ctx, caller, productID, quantity)
}

// Orders lists every order in the system.
func (f *OrderDeskFacade) Orders(ctx context.Context, caller authz.Caller) ([]model.Order, error) {
	return f.orders.ListAll(ctx, caller)
}

// Order returns any order's detail for staff.
func (f *OrderDeskFacade) Order(ctx context.Context, caller authz.Caller, id int64) (*model.OrderDetail, error) {
	return f.orders.Get(ctx, caller, id)
}

// OwnOrder returns the caller's own order detail.
func (f *OrderDeskFacade) OwnOrder(ctx context.Context, caller authz.Caller, id int64) (*model.OrderDetail, error) {
	return f.orders.GetOwn(ctx, caller, id)
}

// UpdateOrder applies a partial patch to the caller's own order.
func (f *OrderDeskFacade) UpdateOrder(ctx context.Context, caller authz.Caller, id int64, patch model.OrderPatch) (*model.OrderDetail, error) {
	return f.orders.Update(ctx, caller, id, patch)
}

// UpdateOrderStatus sets an order's status for staff.
func (f *OrderDeskFacade) UpdateOrderStatus(ctx context.Context, caller authz.Caller, id int64, status model.OrderStatus) (*model.OrderDetail, error) {
	return f.orders.UpdateStatus(ctx, caller, id, status)
}

// DeleteOrder removes an order subject to the delete rules.
func (f *OrderDeskFacade) DeleteOrder(ctx context.Context, caller authz.Caller, id int64) error {
	return f.orders.Delete(ctx, caller, id)
}

// CreateProduct registers a catalog product for staff.
func (f *OrderDeskFacade) CreateProduct(ctx context.Context, caller authz.Caller, name string, price int64) (*model.Product, error) {
	return f.catalog.Create(ctx, caller, name, price)
}

// Products lists the catalog for staff.
func (f *OrderDeskFacade) Products(ctx context.Context, caller authz.Caller) ([]model.Product, error) {
	return f.catalog.List(ctx, caller)
}

// Product fetches a single catalog product for staff.
func (f *OrderDeskFacade) Product(ctx context.Context, caller authz.Caller, id int64) (*model.Product, error) {
	return f.catalog.Get(ctx, caller, id)
}

// UpdateProduct applies a partial patch to a product for staff.
func (f *OrderDeskFacade) UpdateProduct(ctx context.Context, caller authz.Caller, id int64, patch model.ProductPatch) (*model.Product, error) {
	return f.catalog.Update(ctx, caller, id, patch)
}

// DeleteProduct removes a product from the catalog for staff.
func (f *OrderDeskFacade) DeleteProduct(ctx context.Context, caller authz.Caller, id int64) error {
	return f.catalog.Delete(ctx, caller, id)
}
