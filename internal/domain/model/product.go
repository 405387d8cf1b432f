package model

import "time"

// Product is a catalog item managed by staff.
type Product struct {
	ID        int64
	Name      string
	Price     int64
	CreatedAt time.Time
}

// ProductPatch carries optional fields for a partial product update.
// Nil fields are left untouched.
type ProductPatch struct {
	Name  *string
	Price *int64
}
