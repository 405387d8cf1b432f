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

// ProductHandler serves the staff-only catalog endpoints.
type ProductHandler struct {
	facade CatalogFacade
	logger *slog.Logger
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade CatalogFacade, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{facade: facade, logger: logger}
}

func (h *ProductHandler) internalError(c *gin.Context, op string, err error) {
	h.logger.Error(op+" failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// Create registers a new catalog product.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), CurrentCaller(c), req.Name, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "staff only"})
		case errors.Is(err, domainErrors.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "product name is required"})
		default:
			h.internalError(c, "create product", err)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.NewProductResponse(product))
}

// List returns the whole catalog. An empty catalog is a 404 rather than
// an empty array.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context(), CurrentCaller(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "staff only"})
			return
		}
		h.internalError(c, "list products", err)
		return
	}

	if len(products) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no products found"})
		return
	}

	c.JSON(http.StatusOK, lo.Map(products, func(product model.Product, _ int) dto.ProductResponse {
		return dto.NewProductResponse(&product)
	}))
}

// Get fetches a single product by id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	product, err := h.facade.Product(c.Request.Context(), CurrentCaller(c), id)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "staff only"})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		default:
			h.internalError(c, "get product", err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// Update applies a partial patch to a product.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), CurrentCaller(c), id, req.Patch())
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "staff only"})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		default:
			h.internalError(c, "update product", err)
		}
		return
	}

	c.JSON(http.StatusAccepted, dto.NewProductResponse(product))
}

// Delete removes a product from the catalog.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := h.facade.DeleteProduct(c.Request.Context(), CurrentCaller(c), id); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "staff only"})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		default:
			h.internalError(c, "delete product", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}
