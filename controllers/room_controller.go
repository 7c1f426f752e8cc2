package controllers

import (
	"log"
	"net/http"

	"halachi-backend/models"
	"halachi-backend/services"
	"halachi-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// GET /api/rooms
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.List()
	if err != nil {
		log.Printf("❌ GetRooms: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// POST /api/admin/rooms — create or replace by id
func (ctrl *RoomController) UpsertRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := ctrl.RoomSvc.Upsert(&room); err != nil {
		log.Printf("❌ UpsertRoom: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}

	utils.JSONCreated(c, http.StatusOK, room.ID)
}

// DELETE /api/admin/rooms/:id
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	if err := ctrl.RoomSvc.Delete(c.Param("id")); err != nil {
		log.Printf("❌ DeleteRoom %s: %v", c.Param("id"), err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
