package models

import "time"

type Service struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	NameEN string `gorm:"size:100;not null" json:"name_en"`
	NameES string `gorm:"size:100" json:"name_es"`
	DescEN string `gorm:"size:255" json:"desc_en"`
	DescES string `gorm:"size:255" json:"desc_es"`

	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`

	// Inactive services are hidden from new bookings but stay referenced
	// by historical appointments.
	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
