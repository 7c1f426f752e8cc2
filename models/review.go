package models

import "time"

// Review moderation states. Public submissions start as pending and
// only approved reviews are served on public routes.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

type Review struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Rating    int       `gorm:"default:5" json:"rating"`
	Text      string    `gorm:"type:text" json:"text"`
	Status    string    `gorm:"size:20;default:'pending';index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (Review) TableName() string { return "reviews" }
