package repository

import (
	"context"

	"github.com/orderdesk/orderdesk/internal/domain/model"
)

// OrderRepository describes persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, clientID, productID, quantity int64) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	// GetDetail loads the order joined with its product and owning client.
	GetDetail(ctx context.Context, id int64) (*model.OrderDetail, error)
	List(ctx context.Context) ([]model.Order, error)
	Update(ctx context.Context, id int64, patch model.OrderPatch) (*model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
	Delete(ctx context.Context, id int64) error
}
