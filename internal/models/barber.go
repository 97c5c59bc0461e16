package models

import "time"

type Barber struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	NameEN string `gorm:"size:100;not null" json:"name_en"`
	NameES string `gorm:"size:100" json:"name_es"`

	// Weekday indices 1=Monday..7=Sunday, either a range "1-5" or a
	// list "1,3,5".
	WorkingDays string `gorm:"size:20" json:"working_days"`

	// "HH:MM-HH:MM" interval, intersected with the shop hours.
	WorkingHours string `gorm:"size:11" json:"working_hours"`

	Active bool `gorm:"default:true" json:"active"`

	// Derived: mean of submitted barber ratings, 1 decimal.
	Rating float64 `json:"rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
