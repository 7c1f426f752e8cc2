package services

import (
	"halachi-backend/models"
	"halachi-backend/utils"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// ListApproved returns only moderated reviews for the public site,
// newest first.
func (s *ReviewService) ListApproved() ([]models.Review, error) {
	var reviews []models.Review
	err := s.DB.
		Where("status = ?", models.ReviewStatusApproved).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// Submit stores a visitor review as pending until an admin moderates it.
func (s *ReviewService) Submit(review *models.Review) error {
	review.ID = utils.NewID("review")
	review.Status = models.ReviewStatusPending
	if review.Rating == 0 {
		review.Rating = 5
	}
	return s.DB.Create(review).Error
}

// SetStatus moves a review to approved or rejected.
func (s *ReviewService) SetStatus(id, status string) error {
	res := s.DB.Model(&models.Review{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
