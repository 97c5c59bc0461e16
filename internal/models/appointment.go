package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	ClientID  string `gorm:"size:64;index" json:"client_id"`
	BarberID  string `gorm:"size:64;index:idx_barber_date" json:"barber_id"`
	ServiceID string `gorm:"size:64" json:"service_id"`

	Date string `gorm:"size:10;index:idx_barber_date" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5" json:"time"`                        // HH:MM, slot-aligned

	// Snapshotted from the service at booking time. Later catalog edits
	// must not touch existing appointments.
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	RescheduledFrom *string `gorm:"size:64" json:"rescheduled_from,omitempty"`
	Rated           bool    `gorm:"default:false" json:"rated"`
	Deleted         bool    `gorm:"default:false" json:"deleted"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CanceledAt  *time.Time `json:"canceled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
