package models

import (
	"time"
)

// Guest stay status values. Transitions only go forward
// (checked_in -> checked_out); checkout never reverses.
const (
	GuestStatusCheckedIn  = "checked_in"
	GuestStatusCheckedOut = "checked_out"
)

// GuestStay is one occupancy episode. Dates and times are kept as text
// exactly as the front desk enters them ("2026-03-01", "14:00").
type GuestStay struct {
	ID string `gorm:"primaryKey;type:varchar(64)" json:"id"`

	FirstName string `gorm:"size:255" json:"first_name"`
	LastName  string `gorm:"size:255" json:"last_name"`
	FullName  string `gorm:"size:255" json:"full_name"`
	Phone     string `gorm:"size:50" json:"phone"`
	Email     string `gorm:"size:150" json:"email"`
	Passport  string `gorm:"size:100" json:"passport"`
	Address   string `gorm:"type:text" json:"address"`

	// RoomID is a soft reference, no FK constraint. RoomName is a
	// snapshot taken at check-in and is not updated when the room
	// is renamed later.
	RoomID   string `gorm:"size:64;index" json:"room_id"`
	RoomName string `gorm:"size:255" json:"room_name"`

	CheckInDate  string `gorm:"size:20" json:"check_in_date"`
	CheckInTime  string `gorm:"size:20" json:"check_in_time"`
	CheckOutDate string `gorm:"size:20" json:"check_out_date"`
	CheckOutTime string `gorm:"size:20" json:"check_out_time"`

	GuestsCount int    `gorm:"default:1" json:"guests_count"`
	Status      string `gorm:"size:20;default:'checked_in';index" json:"status"`
	Notes       string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (GuestStay) TableName() string { return "guests" }

// OccupancySummary is computed on demand from the full stay collection.
type OccupancySummary struct {
	Total           int `json:"total"`
	CurrentlyHoused int `json:"currently_housed"`
	CheckedOut      int `json:"checked_out"`
	TodayCheckins   int `json:"today_checkins"`
}
