package models

import "github.com/shopspring/decimal"

// Product is a stock item. Its stock status is derived and never persisted.
type Product struct {
	Base

	Name         string          `gorm:"size:100;not null" json:"name"`
	Category     string          `gorm:"size:50" json:"category"`
	Quantity     int             `gorm:"not null;default:0" json:"quantity"`
	MinimumStock int             `gorm:"not null;default:0" json:"minimum_stock"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Description  string          `gorm:"size:255" json:"description"`
}

type ProductPatch struct {
	Name         *string          `json:"name,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Quantity     *int             `json:"quantity,omitempty"`
	MinimumStock *int             `json:"minimum_stock,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	Description  *string          `json:"description,omitempty"`
}

func (p ProductPatch) Apply(pr *Product) {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Category != nil {
		pr.Category = *p.Category
	}
	if p.Quantity != nil {
		pr.Quantity = *p.Quantity
	}
	if p.MinimumStock != nil {
		pr.MinimumStock = *p.MinimumStock
	}
	if p.Price != nil {
		pr.Price = *p.Price
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
}
