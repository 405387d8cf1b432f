package dto

import (
	"time"

	"github.com/orderdesk/orderdesk/internal/domain/model"
)

// CreateOrderRequest places a new order for the authenticated caller.
type CreateOrderRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int64 `json:"quantity" binding:"required"`
}

// UpdateOrderRequest carries a partial order patch; absent fields stay
// untouched.
type UpdateOrderRequest struct {
	Quantity  *int64  `json:"quantity"`
	ProductID *int64  `json:"product_id"`
	Status    *string `json:"status"`
}

// Patch converts the request into a domain patch.
func (r UpdateOrderRequest) Patch() model.OrderPatch {
	patch := model.OrderPatch{Quantity: r.Quantity, ProductID: r.ProductID}
	if r.Status != nil {
		status := model.OrderStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

// UpdateOrderStatusRequest sets an order's status.
type UpdateOrderStatusRequest struct {
	OrderID int64  `json:"order_id" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// OrderResponse is the flat projection used in listings.
type OrderResponse struct {
	ID        int64     `json:"id"`
	ClientID  int64     `json:"client_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewOrderResponse projects an order onto the wire shape.
func NewOrderResponse(order model.Order) OrderResponse {
	return OrderResponse{
		ID:        order.ID,
		ClientID:  order.ClientID,
		ProductID: order.ProductID,
		Quantity:  order.Quantity,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

// OrderProductResponse embeds the ordered product inside a detail view.
type OrderProductResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// OrderClientResponse embeds the owner inside a detail view.
type OrderClientResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// OrderDetailResponse is the expanded projection with the joined
// product, owner and derived total price.
type OrderDetailResponse struct {
	ID         int64                `json:"id"`
	Quantity   int64                `json:"quantity"`
	Status     string               `json:"status"`
	TotalPrice int64                `json:"total_price"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
	Product    OrderProductResponse `json:"product"`
	Client     OrderClientResponse  `json:"user"`
}

// OwnOrderDetailResponse is the detail view for the order's owner; the
// owner block is omitted since the caller already knows who they are.
type OwnOrderDetailResponse struct {
	ID         int64                `json:"id"`
	Quantity   int64                `json:"quantity"`
	Status     string               `json:"status"`
	TotalPrice int64                `json:"total_price"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
	Product    OrderProductResponse `json:"product"`
}

// NewOwnOrderDetailResponse projects an order detail without the owner.
func NewOwnOrderDetailResponse(detail *model.OrderDetail) OwnOrderDetailResponse {
	return OwnOrderDetailResponse{
		ID:         detail.Order.ID,
		Quantity:   detail.Order.Quantity,
		Status:     string(detail.Order.Status),
		TotalPrice: detail.TotalPrice(),
		CreatedAt:  detail.Order.CreatedAt,
		UpdatedAt:  detail.Order.UpdatedAt,
		Product: OrderProductResponse{
			ID:    detail.Product.ID,
			Name:  detail.Product.Name,
			Price: detail.Product.Price,
		},
	}
}

// NewOrderDetailResponse projects an order detail onto the wire shape.
func NewOrderDetailResponse(detail *model.OrderDetail) OrderDetailResponse {
	return OrderDetailResponse{
		ID:         detail.Order.ID,
		Quantity:   detail.Order.Quantity,
		Status:     string(detail.Order.Status),
		TotalPrice: detail.TotalPrice(),
		CreatedAt:  detail.Order.CreatedAt,
		UpdatedAt:  detail.Order.UpdatedAt,
		Product: OrderProductResponse{
			ID:    detail.Product.ID,
			Name:  detail.Product.Name,
			Price: detail.Product.Price,
		},
		Client: OrderClientResponse{
			ID:       detail.Client.ID,
			Username: detail.Client.Username,
			Email:    detail.Client.Email,
		},
	}
}
