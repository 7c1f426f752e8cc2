package services

import (
	"log"

	"halachi-backend/models"
	"halachi-backend/utils"

	"gorm.io/gorm"
)

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// Create stores a public booking enquiry and bumps the hotel visitor
// counter in the same transaction.
func (s *BookingService) Create(req *models.BookingRequest) error {
	req.ID = utils.NewID("")
	req.Status = "new"
	if req.GuestsCount < 1 {
		req.GuestsCount = 1
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(req).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.HotelProfile{}).
			Where("id = ?", HotelID).
			UpdateColumn("visitor_count", gorm.Expr("visitor_count + 1")).Error; err != nil {
			// The enquiry itself matters more than the counter.
			log.Printf("⚠️ BookingService.Create: visitor count bump failed: %v", err)
		}
		return nil
	})
}

func (s *BookingService) List() ([]models.BookingRequest, error) {
	var bookings []models.BookingRequest
	err := s.DB.Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}
