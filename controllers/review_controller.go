package controllers

import (
	"errors"
	"log"
	"net/http"

	"halachi-backend/models"
	"halachi-backend/services"
	"halachi-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	ReviewSvc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{ReviewSvc: svc}
}

// GET /api/reviews — approved only
func (ctrl *ReviewController) GetReviews(c *gin.Context) {
	reviews, err := ctrl.ReviewSvc.ListApproved()
	if err != nil {
		log.Printf("❌ GetReviews: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// POST /api/reviews — public submission, lands as pending
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := ctrl.ReviewSvc.Submit(&review); err != nil {
		log.Printf("❌ CreateReview: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}

	utils.JSONCreated(c, http.StatusOK, review.ID)
}

func (ctrl *ReviewController) setStatus(c *gin.Context, status string) {
	id := c.Param("id")
	if err := ctrl.ReviewSvc.SetStatus(id, status); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "review not found")
			return
		}
		log.Printf("❌ review SetStatus %s -> %s: %v", id, status, err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PUT /api/admin/reviews/:id/approve
func (ctrl *ReviewController) ApproveReview(c *gin.Context) {
	ctrl.setStatus(c, models.ReviewStatusApproved)
}

// PUT /api/admin/reviews/:id/reject
func (ctrl *ReviewController) RejectReview(c *gin.Context) {
	ctrl.setStatus(c, models.ReviewStatusRejected)
}
