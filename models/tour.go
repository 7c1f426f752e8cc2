package models

import (
	"gorm.io/datatypes"
)

type Tour struct {
	ID          string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title       string `gorm:"size:255" json:"title"`
	ShortDesc   string `gorm:"size:500" json:"short_desc"`
	Description string `gorm:"type:text" json:"description"`

	Price    int    `gorm:"default:0" json:"price"`
	Currency string `gorm:"size:10;default:'₽'" json:"currency"`
	Duration string `gorm:"size:100" json:"duration"`
	Location string `gorm:"size:255" json:"location"`
	Category string `gorm:"size:64;index" json:"category"`
	Featured bool   `gorm:"default:false" json:"featured"`

	Schedule datatypes.JSON `json:"schedule"`
	Images   datatypes.JSON `json:"images"`

	SortOrder int `gorm:"default:0" json:"sort_order"`
}

func (Tour) TableName() string { return "tours" }
