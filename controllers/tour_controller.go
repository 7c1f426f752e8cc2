package controllers

import (
	"log"
	"net/http"

	"halachi-backend/models"
	"halachi-backend/services"
	"halachi-backend/utils"

	"github.com/gin-gonic/gin"
)

type TourController struct {
	TourSvc *services.TourService
}

func NewTourController(svc *services.TourService) *TourController {
	return &TourController{TourSvc: svc}
}

// GET /api/tours
func (ctrl *TourController) GetTours(c *gin.Context) {
	tours, err := ctrl.TourSvc.List()
	if err != nil {
		log.Printf("❌ GetTours: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}
	c.JSON(http.StatusOK, tours)
}

// POST /api/admin/tours
func (ctrl *TourController) UpsertTour(c *gin.Context) {
	var tour models.Tour
	if err := c.ShouldBindJSON(&tour); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := ctrl.TourSvc.Upsert(&tour); err != nil {
		log.Printf("❌ UpsertTour: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}

	utils.JSONCreated(c, http.StatusOK, tour.ID)
}

// DELETE /api/admin/tours/:id
func (ctrl *TourController) DeleteTour(c *gin.Context) {
	if err := ctrl.TourSvc.Delete(c.Param("id")); err != nil {
		log.Printf("❌ DeleteTour %s: %v", c.Param("id"), err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /api/categories
func (ctrl *TourController) GetCategories(c *gin.Context) {
	cats, err := ctrl.TourSvc.ListCategories()
	if err != nil {
		log.Printf("❌ GetCategories: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}
	c.JSON(http.StatusOK, cats)
}

// POST /api/admin/categories
func (ctrl *TourController) UpsertCategory(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := ctrl.TourSvc.UpsertCategory(&cat); err != nil {
		log.Printf("❌ UpsertCategory: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}

	utils.JSONCreated(c, http.StatusOK, cat.ID)
}
