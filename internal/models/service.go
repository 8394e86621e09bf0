package models

import "time"

// Service is a bookable treatment with its daily slot catalog.
// Seeded out of band; this API never mutates it.
type Service struct {
	ID uint `gorm:"primaryKey" json:"_id"`

	Name  string   `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Slots []string `gorm:"serializer:json" json:"slots"`

	Price *float64 `json:"price,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
