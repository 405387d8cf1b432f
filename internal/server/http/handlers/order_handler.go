package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	domainErrors "github.com/orderdesk/orderdesk/internal/domain/errors"
	"github.com/orderdesk/orderdesk/internal/domain/model"
	"github.com/orderdesk/orderdesk/internal/server/http/dto"
)

// OrderHandler serves the order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
	logger *slog.Logger
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{facade: facade, logger: logger}
}

func (h *OrderHandler) internalError(c *gin.Context, op string, err error) {
	h.logger.Error(op+" failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// Create places a new order owned by the caller.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	detail, err := h.facade.CreateOrder(c.Request.Context(), CurrentCaller(c), req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		default:
			h.internalError(c, "create order", err)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.NewOwnOrderDetailResponse(detail))
}

// List returns every order in the system, staff only.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentCaller(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "staff only"})
			return
		}
		h.internalError(c, "list orders", err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(orders, func(order model.Order, _ int) dto.OrderResponse {
		return dto.NewOrderResponse(order)
	}))
}

// Get returns any order's detail, staff only. A missing order is an
// empty 204 rather than 404.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	detail, err := h.facade.Order(c.Request.Context(), CurrentCaller(c), id)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "staff only"})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNoContent)
		default:
			h.internalError(c, "get order", err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderDetailResponse(detail))
}

// GetOwn returns the caller's own order. A missing or foreign order is
// an empty 204.
func (h *OrderHandler) GetOwn(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	detail, err := h.facade.OwnOrder(c.Request.Context(), CurrentCaller(c), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNoContent)
			return
		}
		h.internalError(c, "get own order", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOwnOrderDetailResponse(detail))
}

// Update applies a partial patch to the caller's own order.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	detail, err := h.facade.UpdateOrder(c.Request.Context(), CurrentCaller(c), id, req.Patch())
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, domainErrors.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order fields"})
		default:
			h.internalError(c, "update order", err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewOwnOrderDetailResponse(detail))
}

// UpdateStatus sets an order status, staff only.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	detail, err := h.facade.UpdateOrderStatus(c.Request.Context(), CurrentCaller(c), req.OrderID, model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "staff only"})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNoContent)
		case errors.Is(err, domainErrors.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		default:
			h.internalError(c, "update order status", err)
		}
		return
	}

	c.JSON(http.StatusAccepted, dto.NewOrderDetailResponse(detail))
}

// Delete removes an order subject to the delete rules.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	if err := h.facade.DeleteOrder(c.Request.Context(), CurrentCaller(c), id); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		default:
			h.internalError(c, "delete order", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}
