package controllers

import (
	"log"
	"net/http"

	"halachi-backend/services"
	"halachi-backend/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsSvc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsSvc: svc}
}

// GET /api/admin/analytics — today's counters, row created on first read
func (ctrl *AnalyticsController) GetAnalytics(c *gin.Context) {
	stat, err := ctrl.AnalyticsSvc.Today()
	if err != nil {
		log.Printf("❌ GetAnalytics: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}
	c.JSON(http.StatusOK, stat)
}

// POST /api/analytics/pageview — fired by the public site
func (ctrl *AnalyticsController) RecordPageView(c *gin.Context) {
	if err := ctrl.AnalyticsSvc.RecordPageView(); err != nil {
		log.Printf("❌ RecordPageView: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
