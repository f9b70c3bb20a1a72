package models

import "github.com/shopspring/decimal"

type Service struct {
	Base

	Name            string          `gorm:"size:100;not null" json:"name"`
	Category        string          `gorm:"size:50" json:"category"`
	DurationMinutes int             `json:"duration_minutes"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Description     string          `gorm:"size:255" json:"description"`
	Active          bool            `gorm:"not null" json:"active"`
}

type ServicePatch struct {
	Name            *string          `json:"name,omitempty"`
	Category        *string          `json:"category,omitempty"`
	DurationMinutes *int             `json:"duration_minutes,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Active          *bool            `json:"active,omitempty"`
}

func (p ServicePatch) Apply(s *Service) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.DurationMinutes != nil {
		s.DurationMinutes = *p.DurationMinutes
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Active != nil {
		s.Active = *p.Active
	}
}
