package models

import "time"

const RoleAdmin = "admin"

type User struct {
	ID uint `gorm:"primaryKey" json:"_id"`

	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Name  string `gorm:"size:100" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`

	Education string `gorm:"size:100" json:"education"`
	District  string `gorm:"size:100" json:"district"`

	Role string `gorm:"size:20;default:''" json:"role,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
