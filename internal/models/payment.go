package models

import "time"

// Payment records a settled booking charge. Amount is in minor units.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"_id"`

	BookingID     uint   `gorm:"not null" json:"booking_id"`
	TransactionID string `gorm:"size:100;not null" json:"transactionId"`
	Amount        int64  `json:"amount"`

	CreatedAt time.Time `json:"created_at"`
}
