package usecase

import (
	"context"
	"strings"

	"github.com/orderdesk/orderdesk/internal/authz"
	domainErrors "github.com/orderdesk/orderdesk/internal/domain/errors"
	"github.com/orderdesk/orderdesk/internal/domain/model"
	"github.com/orderdesk/orderdesk/internal/domain/repository"
)

// CatalogUseCase encapsulates staff-gated product management.
type CatalogUseCase struct {
	products repository.ProductRepository
	engine   *authz.Engine
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, engine *authz.Engine) *CatalogUseCase {
	return &CatalogUseCase{products: products, engine: engine}
}

// Create registers a new product.
func (u *CatalogUseCase) Create(ctx context.Context, caller authz.Caller, name string, price int64) (*model.Product, error) {
	if err := u.engine.ManageProducts(caller).Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.products.Create(ctx, name, price)
}

// List returns the full catalog.
func (u *CatalogUseCase) List(ctx context.Context, caller authz.Caller) ([]model.Product, error) {
	if err := u.engine.ViewProducts(caller).Err(); err != nil {
		return nil, err
	}
	return u.products.List(ctx)
}

// Get fetches a single product by id.
func (u *CatalogUseCase) Get(ctx context.Context, caller authz.Caller, id int64) (*model.Product, error) {
	if err := u.engine.ViewProducts(caller).Err(); err != nil {
		return nil, err
	}
	return u.products.GetByID(ctx, id)
}

// Update applies a partial product patch.
func (u *CatalogUseCase) Update(ctx context.Context, caller authz.Caller, id int64, patch model.ProductPatch) (*model.Product, error) {
	if err := u.engine.ManageProducts(caller).Err(); err != nil {
		return nil, err
	}
	return u.products.Update(ctx, id, patch)
}

// Delete removes a product from the catalog.
func (u *CatalogUseCase) Delete(ctx context.Context, caller authz.Caller, id int64) error {
	if err := u.engine.ManageProducts(caller).Err(); err != nil {
		return err
	}
	return u.products.Delete(ctx, id)
}
