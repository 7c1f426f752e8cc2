package models

import (
	"gorm.io/datatypes"
)

type Room struct {
	ID          string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name        string `gorm:"size:255" json:"name"`
	ShortName   string `gorm:"size:100" json:"short_name"`
	Description string `gorm:"type:text" json:"description"`

	PriceFrom int    `gorm:"default:0" json:"price_from"`
	Currency  string `gorm:"size:10;default:'₽'" json:"currency"`
	Size      string `gorm:"size:50" json:"size"`
	Beds      string `gorm:"size:100" json:"beds"`
	MaxGuests int    `gorm:"default:2" json:"max_guests"`

	Features datatypes.JSON `json:"features"`
	Images   datatypes.JSON `json:"images"`

	Popular   bool `gorm:"default:false" json:"popular"`
	SortOrder int  `gorm:"default:0" json:"sort_order"`
}

func (Room) TableName() string { return "rooms" }
