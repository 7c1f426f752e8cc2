package controllers

import (
	"log"
	"net/http"

	"halachi-backend/models"
	"halachi-backend/services"
	"halachi-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingSvc   *services.BookingService
	AnalyticsSvc *services.AnalyticsService
}

func NewBookingController(svc *services.BookingService, analytics *services.AnalyticsService) *BookingController {
	return &BookingController{BookingSvc: svc, AnalyticsSvc: analytics}
}

// POST /api/booking — public enquiry form
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := ctrl.BookingSvc.Create(&req); err != nil {
		log.Printf("❌ CreateBooking: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}

	// Daily counter is best-effort; the stored enquiry is the source of truth.
	if err := ctrl.AnalyticsSvc.RecordBooking(); err != nil {
		log.Printf("⚠️ CreateBooking: daily counter failed: %v", err)
	}

	utils.JSONCreated(c, http.StatusOK, req.ID)
}

// GET /api/admin/bookings
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.List()
	if err != nil {
		log.Printf("❌ GetBookings: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}
	c.JSON(http.StatusOK, bookings)
}
