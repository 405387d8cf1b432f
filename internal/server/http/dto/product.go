package dto

import "github.com/orderdesk/orderdesk/internal/domain/model"

// CreateProductRequest registers a catalog product. Price is in the
// smallest currency unit.
type CreateProductRequest struct {
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price"`
}

// UpdateProductRequest carries a partial product patch; absent fields
// stay untouched.
type UpdateProductRequest struct {
	Name  *string `json:"name"`
	Price *int64  `json:"price"`
}

// Patch converts the request into a domain patch.
func (r UpdateProductRequest) Patch() model.ProductPatch {
	return model.ProductPatch{Name: r.Name, Price: r.Price}
}

// ProductResponse is the public projection of a product.
type ProductResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// NewProductResponse projects a product onto the wire shape.
func NewProductResponse(product *model.Product) ProductResponse {
	return ProductResponse{ID: product.ID, Name: product.Name, Price: product.Price}
}
