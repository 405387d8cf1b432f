// Package handlers implements the HTTP endpoints. Each handler binds
// the request, asks the facade, and maps domain errors onto the public
// status codes.
package handlers

import (
	"context"

	"github.com/orderdesk/orderdesk/internal/authz"
	"github.com/orderdesk/orderdesk/internal/domain/model"
	"github.com/orderdesk/orderdesk/internal/usecase"
)

// AuthFacade is the account and token surface the auth handlers need.
type AuthFacade interface {
	SignUp(ctx context.Context, username, email, password string, isStaff, isActive bool) (*model.Client, error)
	Login(ctx context.Context, identifier, password string) (*model.Client, *usecase.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	ResolveCaller(ctx context.Context, accessToken string) (authz.Caller, error)
}

// OrderFacade is the order surface the order handlers need.
type OrderFacade interface {
	CreateOrder(ctx context.Context, caller authz.Caller, productID, quantity int64) (*model.OrderDetail, error)
	Orders(ctx context.Context, caller authz.Caller) ([]model.Order, error)
	Order(ctx context.Context, caller authz.Caller, id int64) (*model.OrderDetail, error)
	OwnOrder(ctx context.Context, caller authz.Caller, id int64) (*model.OrderDetail, error)
	UpdateOrder(ctx context.Context, caller authz.Caller, id int64, patch model.OrderPatch) (*model.OrderDetail, error)
	UpdateOrderStatus(ctx context.Context, caller authz.Caller, id int64, status model.OrderStatus) (*model.OrderDetail, error)
	DeleteOrder(ctx context.Context, caller authz.Caller, id int64) error
}

// CatalogFacade is the product surface the product handlers need.
type CatalogFacade interface {
	CreateProduct(ctx context.Context, caller authz.Caller, name string, price int64) (*model.Product, error)
	Products(ctx context.Context, caller authz.Caller) ([]model.Product, error)
	Product(ctx context.Context, caller authz.Caller, id int64) (*model.Product, error)
	UpdateProduct(ctx context.Context, caller authz.Caller, id int64, patch model.ProductPatch) (*model.Product, error)
	DeleteProduct(ctx context.Context, caller authz.Caller, id int64) error
}

// OrderDeskFacade is the full application surface behind the router.
type OrderDeskFacade interface {
	AuthFacade
	OrderFacade
	CatalogFacade
}
