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

type GuestController struct {
	GuestSvc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{GuestSvc: svc}
}

// ----------------------------------------------------
// POST /api/admin/guests — check a guest in (or upsert by id)
// ----------------------------------------------------
func (ctrl *GuestController) CreateGuest(c *gin.Context) {
	var stay models.GuestStay
	if err := c.ShouldBindJSON(&stay); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := ctrl.GuestSvc.CheckIn(&stay); err != nil {
		log.Printf("❌ CreateGuest: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}

	utils.JSONCreated(c, http.StatusOK, stay.ID)
}

// ----------------------------------------------------
// GET /api/admin/guests — all stays, newest first
// ----------------------------------------------------
func (ctrl *GuestController) GetGuests(c *gin.Context) {
	stays, err := ctrl.GuestSvc.List()
	if err != nil {
		log.Printf("❌ GetGuests: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}
	c.JSON(http.StatusOK, stays)
}

// ----------------------------------------------------
// PUT /api/admin/guests/:id — partial edit
// ----------------------------------------------------
func (ctrl *GuestController) UpdateGuest(c *gin.Context) {
	id := c.Param("id")

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := ctrl.GuestSvc.Edit(id, fields); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "guest not found")
			return
		}
		log.Printf("❌ UpdateGuest %s: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type checkoutPayload struct {
	CheckOutDate string `json:"check_out_date"`
	CheckOutTime string `json:"check_out_time"`
}

// ----------------------------------------------------
// PUT /api/admin/guests/:id/checkout
// ----------------------------------------------------
func (ctrl *GuestController) CheckoutGuest(c *gin.Context) {
	id := c.Param("id")

	// Body is optional; date/time default to the current clock.
	var payload checkoutPayload
	_ = c.ShouldBindJSON(&payload)

	if err := ctrl.GuestSvc.CheckOut(id, payload.CheckOutDate, payload.CheckOutTime); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "guest not found")
			return
		}
		log.Printf("❌ CheckoutGuest %s: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ----------------------------------------------------
// DELETE /api/admin/guests/:id — hard delete, no-op when absent
// ----------------------------------------------------
func (ctrl *GuestController) DeleteGuest(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.GuestSvc.Delete(id); err != nil {
		log.Printf("❌ DeleteGuest %s: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ----------------------------------------------------
// GET /api/admin/guests/stats/summary
// ----------------------------------------------------
func (ctrl *GuestController) GetGuestStats(c *gin.Context) {
	summary, err := ctrl.GuestSvc.Summary()
	if err != nil {
		log.Printf("❌ GetGuestStats: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}
	c.JSON(http.StatusOK, summary)
}
