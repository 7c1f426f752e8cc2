package services

import (
	"errors"
	"log"
	"time"

	"halachi-backend/models"
	"halachi-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GuestService is the occupancy tracker: check-in/check-out lifecycle over
// guest stay records plus the on-demand occupancy summary.
type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// editableGuestColumns is the set of columns a partial edit may touch.
// id and the bookkeeping timestamps are never client-writable.
var editableGuestColumns = map[string]bool{
	"first_name":     true,
	"last_name":      true,
	"full_name":      true,
	"phone":          true,
	"email":          true,
	"passport":       true,
	"address":        true,
	"room_id":        true,
	"room_name":      true,
	"check_in_date":  true,
	"check_in_time":  true,
	"check_out_date": true,
	"check_out_time": true,
	"guests_count":   true,
	"status":         true,
	"notes":          true,
}

// ----------------------------------------------------
// CHECK-IN (create or upsert by id)
// ----------------------------------------------------

// CheckIn persists a stay with status=checked_in. An id is generated when
// absent; re-posting an existing id replaces the stay (a new episode
// sharing the id). No room-availability conflict check is performed.
func (s *GuestService) CheckIn(stay *models.GuestStay) error {
	if stay.ID == "" {
		stay.ID = utils.NewID("guest")
	}
	if stay.Status == "" {
		stay.Status = models.GuestStatusCheckedIn
	}
	if stay.GuestsCount < 1 {
		stay.GuestsCount = 1
	}

	// Snapshot the room name at check-in time; renames later do not
	// cascade back into stays.
	if stay.RoomName == "" && stay.RoomID != "" {
		var room models.Room
		if err := s.DB.First(&room, "id = ?", stay.RoomID).Error; err == nil {
			stay.RoomName = room.Name
		}
	}

	now := time.Now()
	stay.CreatedAt = now
	stay.UpdatedAt = now

	err := s.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(stay).Error
	if err != nil {
		log.Printf("⬅️ GuestService.CheckIn id=%s err=%v", stay.ID, err)
	}
	return err
}

// ----------------------------------------------------
// EDIT (partial update, empty values clear nothing)
// ----------------------------------------------------

// Edit applies a partial update to an existing stay. Empty or zero incoming
// values are ignored rather than blanking the stored field; that mirrors the
// admin form, which posts every field and expects untouched ones to survive.
func (s *GuestService) Edit(id string, fields map[string]interface{}) error {
	updates := map[string]interface{}{}
	for k, v := range fields {
		if !editableGuestColumns[k] {
			continue
		}
		switch val := v.(type) {
		case nil:
			continue
		case string:
			if val == "" {
				continue
			}
			updates[k] = val
		case float64:
			// JSON numbers arrive as float64; zero counts as unset.
			if val == 0 {
				continue
			}
			if k == "guests_count" {
				updates[k] = int(val)
			} else {
				updates[k] = val
			}
		default:
			updates[k] = v
		}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var stay models.GuestStay
		if err := tx.First(&stay, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		updates["updated_at"] = time.Now()
		return tx.Model(&models.GuestStay{}).
			Where("id = ?", id).
			Updates(updates).Error
	})
}

// ----------------------------------------------------
// CHECK-OUT
// ----------------------------------------------------

// CheckOut forces status=checked_out regardless of prior status, so a
// repeated call just rewrites the same state. Date and time fall back to
// the server-local clock when not supplied.
func (s *GuestService) CheckOut(id, checkOutDate, checkOutTime string) error {
	now := time.Now()
	if checkOutDate == "" {
		checkOutDate = now.Format("2006-01-02")
	}
	if checkOutTime == "" {
		checkOutTime = now.Format("15:04")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var stay models.GuestStay
		if err := tx.First(&stay, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		return tx.Model(&models.GuestStay{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":         models.GuestStatusCheckedOut,
				"check_out_date": checkOutDate,
				"check_out_time": checkOutTime,
				"updated_at":     now,
			}).Error
	})
}

// ----------------------------------------------------
// DELETE (hard delete, silent when absent)
// ----------------------------------------------------

func (s *GuestService) Delete(id string) error {
	return s.DB.Where("id = ?", id).Delete(&models.GuestStay{}).Error
}

// ----------------------------------------------------
// LIST / SUMMARY
// ----------------------------------------------------

// List returns all stays, newest-created first.
func (s *GuestService) List() ([]models.GuestStay, error) {
	var stays []models.GuestStay
	err := s.DB.Order("created_at DESC").Find(&stays).Error
	if err != nil {
		log.Printf("⬅️ GuestService.List error: %v", err)
		return nil, err
	}
	return stays, nil
}

// Summary scans the full stay collection and folds the aggregate counters.
// "Today" is the server-local calendar date.
func (s *GuestService) Summary() (models.OccupancySummary, error) {
	var stays []models.GuestStay
	if err := s.DB.Find(&stays).Error; err != nil {
		log.Printf("⬅️ GuestService.Summary error: %v", err)
		return models.OccupancySummary{}, err
	}

	today := time.Now().Format("2006-01-02")
	summary := models.OccupancySummary{Total: len(stays)}
	for _, g := range stays {
		switch g.Status {
		case models.GuestStatusCheckedIn:
			count := g.GuestsCount
			if count < 1 {
				count = 1
			}
			summary.CurrentlyHoused += count
		case models.GuestStatusCheckedOut:
			summary.CheckedOut++
		}
		if g.CheckInDate == today {
			summary.TodayCheckins++
		}
	}
	return summary, nil
}
