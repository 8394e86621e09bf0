package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"_id"`

	Treatment string `gorm:"size:100;not null;uniqueIndex:idx_treatment_date_slot" json:"treatment"`
	Date      string `gorm:"size:30;not null;uniqueIndex:idx_treatment_date_slot" json:"date"`
	Slot      string `gorm:"size:30;not null;uniqueIndex:idx_treatment_date_slot" json:"slot"`

	PatientName  string `gorm:"size:100" json:"patientName"`
	PatientEmail string `gorm:"size:100;not null" json:"patientEmail"`
	Phone        string `gorm:"size:20" json:"phone"`

	Paid          bool   `gorm:"default:false" json:"paid"`
	TransactionID string `gorm:"size:100" json:"transactionId,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
