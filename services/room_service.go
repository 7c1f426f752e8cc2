package services

import (
	"halachi-backend/models"
	"halachi-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) List() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Order("sort_order").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) Get(id string) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// Upsert inserts or replaces a room by id, generating one when absent.
func (s *RoomService) Upsert(room *models.Room) error {
	if room.ID == "" {
		room.ID = utils.NewID("room")
	}
	if room.MaxGuests < 1 {
		room.MaxGuests = 2
	}
	return s.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(room).Error
}

// Delete removes a room; existing stays keep their room_name snapshot.
func (s *RoomService) Delete(id string) error {
	return s.DB.Where("id = ?", id).Delete(&models.Room{}).Error
}
