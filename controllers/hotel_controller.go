package controllers

import (
	"errors"
	"log"
	"net/http"

	"halachi-backend/services"
	"halachi-backend/utils"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	HotelSvc *services.HotelService
}

func NewHotelController(svc *services.HotelService) *HotelController {
	return &HotelController{HotelSvc: svc}
}

// GET /api/hotel
func (ctrl *HotelController) GetHotel(c *gin.Context) {
	hotel, err := ctrl.HotelSvc.Get()
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "hotel profile not found")
			return
		}
		log.Printf("❌ GetHotel: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// POST /api/admin/hotel
func (ctrl *HotelController) UpdateHotel(c *gin.Context) {
	var payload services.HotelProfileUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := ctrl.HotelSvc.Update(payload); err != nil {
		log.Printf("❌ UpdateHotel: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "hotel profile updated"})
}

type visitorCountPayload struct {
	Count int `json:"count"`
}

// POST /api/admin/visitor-count
func (ctrl *HotelController) SetVisitorCount(c *gin.Context) {
	var payload visitorCountPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := ctrl.HotelSvc.SetVisitorCount(payload.Count); err != nil {
		log.Printf("❌ SetVisitorCount: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
