package models

import "time"

type Note struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title     string    `gorm:"size:255" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Category  string    `gorm:"size:64;default:'general'" json:"category"`
	Priority  string    `gorm:"size:20;default:'normal'" json:"priority"`
	Completed bool      `gorm:"default:false" json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

func (Note) TableName() string { return "notes" }
