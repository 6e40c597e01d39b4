package models

import "time"

type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product carries the catalog record with its references denormalized in
// place: Brand (and, on the full-listing path, ProductType) are filled from
// the referenced rows.
type Product struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Price         float64      `json:"price"`
	BrandID       int64        `json:"-"`
	ProductTypeID int64        `json:"-"`
	Brand         *Brand       `json:"brand,omitempty"`
	ProductType   *ProductType `json:"productType,omitempty"`
	Shipping      bool         `json:"shipping"`
	Available     bool         `json:"available"`
	Sold          int          `json:"sold"`
	Publish       bool         `json:"publish"`
	Images        []string     `json:"images"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
