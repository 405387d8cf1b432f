package model

import "time"

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusInTransit OrderStatus = "IN_TRANSIT"
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

// ValidOrderStatus reports whether s is one of the recognized statuses.
// Transitions between valid statuses are not constrained.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusInTransit, OrderStatusDelivered:
		return true
	}
	return false
}

// Order is a purchase placed by a client against a catalog product.
type Order struct {
	ID        int64
	ClientID  int64
	ProductID int64
	Quantity  int64
	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderPatch carries optional fields for a partial order update.
// Nil fields are left untouched; supplied fields overwrite
// unconditionally, status included.
type OrderPatch struct {
	Quantity  *int64
	ProductID *int64
	Status    *OrderStatus
}

// Empty reports whether the patch changes nothing.
func (p OrderPatch) Empty() bool {
	return p.Quantity == nil && p.ProductID == nil && p.Status == nil
}

// OrderDetail joins an order with its product and owning client for
// projection. Total price is computed here rather than stored.
type OrderDetail struct {
	Order   Order
	Product Product
	Client  Client
}

// TotalPrice is quantity times the product unit price, recomputed on
// every read.
func (d *OrderDetail) TotalPrice() int64 {
	return d.Order.Quantity * d.Product.Price
}
