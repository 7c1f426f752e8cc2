package services

import (
	"errors"

	"halachi-backend/models"
	"halachi-backend/utils"

	"gorm.io/gorm"
)

type NoteService struct {
	DB *gorm.DB
}

func NewNoteService(db *gorm.DB) *NoteService {
	return &NoteService{DB: db}
}

// ListOpen returns uncompleted notes, urgent ones first.
func (s *NoteService) ListOpen() ([]models.Note, error) {
	var notes []models.Note
	err := s.DB.
		Where("completed = ?", false).
		Order("priority DESC, created_at DESC").
		Find(&notes).Error
	return notes, err
}

func (s *NoteService) Create(note *models.Note) error {
	note.ID = utils.NewID("note")
	if note.Category == "" {
		note.Category = "general"
	}
	if note.Priority == "" {
		note.Priority = "normal"
	}
	return s.DB.Create(note).Error
}

func (s *NoteService) Update(id string, note models.Note) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Note
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Model(&models.Note{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"title":     note.Title,
				"content":   note.Content,
				"category":  note.Category,
				"priority":  note.Priority,
				"completed": note.Completed,
			}).Error
	})
}

func (s *NoteService) Delete(id string) error {
	return s.DB.Where("id = ?", id).Delete(&models.Note{}).Error
}
