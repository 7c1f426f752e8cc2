package services

import (
	"errors"
	"time"

	"halachi-backend/models"

	"gorm.io/gorm"
)

// HotelID is the fixed primary key of the single profile row.
const HotelID = "halachi"

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

func (s *HotelService) Get() (*models.HotelProfile, error) {
	var hotel models.HotelProfile
	if err := s.DB.First(&hotel, "id = ?", HotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &hotel, nil
}

// HotelProfileUpdate carries the admin-editable profile fields. The
// password hash is deliberately not part of it.
type HotelProfileUpdate struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Description  string `json:"description"`
	About        string `json:"about"`
	HeroImage    string `json:"hero_image"`
	VisitorCount int    `json:"visitor_count"`
}

func (s *HotelService) Update(payload HotelProfileUpdate) error {
	return s.DB.Model(&models.HotelProfile{}).
		Where("id = ?", HotelID).
		Updates(map[string]interface{}{
			"name":          payload.Name,
			"phone":         payload.Phone,
			"email":         payload.Email,
			"address":       payload.Address,
			"description":   payload.Description,
			"about":         payload.About,
			"hero_image":    payload.HeroImage,
			"visitor_count": payload.VisitorCount,
			"updated_at":    time.Now(),
		}).Error
}

// IncrementVisitorCount bumps the profile counter in a single statement.
func (s *HotelService) IncrementVisitorCount() error {
	return s.DB.Model(&models.HotelProfile{}).
		Where("id = ?", HotelID).
		UpdateColumn("visitor_count", gorm.Expr("visitor_count + 1")).Error
}

func (s *HotelService) SetVisitorCount(count int) error {
	return s.DB.Model(&models.HotelProfile{}).
		Where("id = ?", HotelID).
		UpdateColumn("visitor_count", count).Error
}

// AdminPasswordHash returns the stored bcrypt hash for the admin gate.
func (s *HotelService) AdminPasswordHash() (string, error) {
	hotel, err := s.Get()
	if err != nil {
		return "", err
	}
	return hotel.AdminPasswordHash, nil
}
