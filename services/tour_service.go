package services

import (
	"halachi-backend/models"
	"halachi-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TourService struct {
	DB *gorm.DB
}

func NewTourService(db *gorm.DB) *TourService {
	return &TourService{DB: db}
}

func (s *TourService) List() ([]models.Tour, error) {
	var tours []models.Tour
	err := s.DB.Order("sort_order").Find(&tours).Error
	return tours, err
}

func (s *TourService) Upsert(tour *models.Tour) error {
	if tour.ID == "" {
		tour.ID = utils.NewID("tour")
	}
	return s.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(tour).Error
}

func (s *TourService) Delete(id string) error {
	return s.DB.Where("id = ?", id).Delete(&models.Tour{}).Error
}

// Categories share the tour service; they exist only to group tours.

func (s *TourService) ListCategories() ([]models.Category, error) {
	var cats []models.Category
	err := s.DB.Order("sort_order").Find(&cats).Error
	return cats, err
}

func (s *TourService) UpsertCategory(cat *models.Category) error {
	if cat.ID == "" {
		cat.ID = utils.NewID("cat")
	}
	return s.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(cat).Error
}
