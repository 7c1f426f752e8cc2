package models

type Category struct {
	ID        string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name      string `gorm:"size:255" json:"name"`
	Icon      string `gorm:"size:100" json:"icon"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
}

func (Category) TableName() string { return "categories" }
