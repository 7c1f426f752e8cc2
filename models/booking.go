package models

import "time"

// BookingRequest is a public enquiry from the site form, not a confirmed
// reservation. Admins review them in the back-office.
type BookingRequest struct {
	ID    string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name  string `gorm:"size:255" json:"name"`
	Phone string `gorm:"size:50" json:"phone"`
	Email string `gorm:"size:150" json:"email"`

	RoomType string `gorm:"size:255" json:"room_type"`
	TourType string `gorm:"size:255" json:"tour_type"`
	CheckIn  string `gorm:"size:20" json:"check_in"`
	CheckOut string `gorm:"size:20" json:"check_out"`

	GuestsCount int    `gorm:"default:1" json:"guests_count"`
	Notes       string `gorm:"type:text" json:"notes"`
	Status      string `gorm:"size:20;default:'new'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

func (BookingRequest) TableName() string { return "bookings" }
