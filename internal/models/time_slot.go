package models

import "time"

// TimeSlot is one bookable time of day. Which times exist at all is
// configuration; whether a given date/time is free is booking state.
type TimeSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Time     string `gorm:"size:5;uniqueIndex;not null" json:"time"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
