package services

import (
	"errors"
	"time"

	"halachi-backend/models"

	"gorm.io/gorm"
)

type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// Today returns the current day's counters, creating the row when the
// day has no activity yet.
func (s *AnalyticsService) Today() (*models.DailyStat, error) {
	date := today()

	var stat models.DailyStat
	err := s.DB.First(&stat, "date = ?", date).Error
	if err == nil {
		return &stat, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	stat = models.DailyStat{Date: date}
	if err := s.DB.Create(&stat).Error; err != nil {
		return nil, err
	}
	return &stat, nil
}

// RecordPageView increments today's page view counter, creating the row
// first when needed.
func (s *AnalyticsService) RecordPageView() error {
	if _, err := s.Today(); err != nil {
		return err
	}
	return s.DB.Model(&models.DailyStat{}).
		Where("date = ?", today()).
		UpdateColumn("page_views", gorm.Expr("page_views + 1")).Error
}

// RecordBooking increments today's booking counter.
func (s *AnalyticsService) RecordBooking() error {
	if _, err := s.Today(); err != nil {
		return err
	}
	return s.DB.Model(&models.DailyStat{}).
		Where("date = ?", today()).
		UpdateColumn("bookings", gorm.Expr("bookings + 1")).Error
}
