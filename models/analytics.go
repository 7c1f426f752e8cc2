package models

// DailyStat holds per-day counters, one row per calendar date ("2006-01-02").
type DailyStat struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Date           string `gorm:"size:20;uniqueIndex" json:"date"`
	Bookings       int    `gorm:"default:0" json:"bookings"`
	PageViews      int    `gorm:"default:0" json:"page_views"`
	UniqueVisitors int    `gorm:"default:0" json:"unique_visitors"`
}

func (DailyStat) TableName() string { return "analytics" }
