package models

import "time"

// Base carries the identity every stored record gets at creation.
type Base struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

func (b *Base) Identity() *Base {
	return b
}

// Identified is implemented by pointers to every model embedding Base.
type Identified interface {
	Identity() *Base
}
