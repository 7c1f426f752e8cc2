package models

import "time"

// HotelProfile is a single-row table (id = "halachi") with the public
// profile plus the admin password hash used by the admin gate.
type HotelProfile struct {
	ID          string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name        string `gorm:"size:255" json:"name"`
	Phone       string `gorm:"size:50" json:"phone"`
	Email       string `gorm:"size:150" json:"email"`
	Address     string `gorm:"type:text" json:"address"`
	Description string `gorm:"type:text" json:"description"`
	About       string `gorm:"type:text" json:"about"`
	HeroImage   string `gorm:"size:255" json:"hero_image"`

	VisitorCount int `gorm:"default:0" json:"visitor_count"`

	// Bcrypt hash, never serialized.
	AdminPasswordHash string `gorm:"size:255" json:"-"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (HotelProfile) TableName() string { return "hotel" }
