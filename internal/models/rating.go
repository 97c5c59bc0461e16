package models

import "time"

type Rating struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	AppointmentID string `gorm:"size:64;uniqueIndex" json:"appointment_id"`
	BarberID      string `gorm:"size:64;index" json:"barber_id"`
	UserID        string `gorm:"size:64" json:"user_id"`

	BarberRating int    `json:"barber_rating"` // 1-5
	AppRating    int    `json:"app_rating"`    // 1-5
	Comment      string `gorm:"size:100" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
