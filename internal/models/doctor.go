package models

import "time"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"_id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Specialty string `gorm:"size:100" json:"specialty"`

	ImageURL string `gorm:"size:255" json:"img"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
