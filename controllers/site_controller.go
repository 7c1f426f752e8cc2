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

// SiteController serves the one-shot bootstrap payload the public site
// loads on first render.
type SiteController struct {
	HotelSvc  *services.HotelService
	RoomSvc   *services.RoomService
	TourSvc   *services.TourService
	ReviewSvc *services.ReviewService
}

func NewSiteController(
	hotel *services.HotelService,
	rooms *services.RoomService,
	tours *services.TourService,
	reviews *services.ReviewService,
) *SiteController {
	return &SiteController{
		HotelSvc:  hotel,
		RoomSvc:   rooms,
		TourSvc:   tours,
		ReviewSvc: reviews,
	}
}

// GET /api/data
func (ctrl *SiteController) GetData(c *gin.Context) {
	hotel, err := ctrl.HotelSvc.Get()
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		log.Printf("❌ GetData hotel: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}
	if hotel == nil {
		hotel = &models.HotelProfile{}
	}

	rooms, err := ctrl.RoomSvc.List()
	if err != nil {
		log.Printf("❌ GetData rooms: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}

	tours, err := ctrl.TourSvc.List()
	if err != nil {
		log.Printf("❌ GetData tours: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}

	cats, err := ctrl.TourSvc.ListCategories()
	if err != nil {
		log.Printf("❌ GetData categories: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}

	reviews, err := ctrl.ReviewSvc.ListApproved()
	if err != nil {
		log.Printf("❌ GetData reviews: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hotel":        hotel,
		"rooms":        rooms,
		"tours":        tours,
		"categories":   cats,
		"testimonials": reviews,
	})
}
