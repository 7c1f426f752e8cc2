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

type NoteController struct {
	NoteSvc *services.NoteService
}

func NewNoteController(svc *services.NoteService) *NoteController {
	return &NoteController{NoteSvc: svc}
}

// GET /api/admin/notes — open tasks only
func (ctrl *NoteController) GetNotes(c *gin.Context) {
	notes, err := ctrl.NoteSvc.ListOpen()
	if err != nil {
		log.Printf("❌ GetNotes: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}
	c.JSON(http.StatusOK, notes)
}

// POST /api/admin/notes
func (ctrl *NoteController) CreateNote(c *gin.Context) {
	var note models.Note
	if err := c.ShouldBindJSON(&note); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := ctrl.NoteSvc.Create(&note); err != nil {
		log.Printf("❌ CreateNote: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}

	utils.JSONCreated(c, http.StatusOK, note.ID)
}

// PUT /api/admin/notes/:id
func (ctrl *NoteController) UpdateNote(c *gin.Context) {
	id := c.Param("id")

	var note models.Note
	if err := c.ShouldBindJSON(&note); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := ctrl.NoteSvc.Update(id, note); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "note not found")
			return
		}
		log.Printf("❌ UpdateNote %s: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DELETE /api/admin/notes/:id
func (ctrl *NoteController) DeleteNote(c *gin.Context) {
	if err := ctrl.NoteSvc.Delete(c.Param("id")); err != nil {
		log.Printf("❌ DeleteNote %s: %v", c.Param("id"), err)
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
