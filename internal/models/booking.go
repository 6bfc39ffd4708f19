package models

import "time"

type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Date and time are kept as plain strings (YYYY-MM-DD / HH:MM) so no
	// timezone conversion can shift a booking across a day boundary.
	Date string `gorm:"size:10;not null;index:idx_bookings_slot" json:"date"`
	Time string `gorm:"size:8;not null;index:idx_bookings_slot" json:"time"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;not null" json:"email"`
	Notes string `gorm:"size:500" json:"notes"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
