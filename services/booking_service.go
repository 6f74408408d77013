package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/SamiMK0/smart-room-management-system/models"
)

// BookingService wraps *gorm.DB with the booking rules: the interval conflict
// check and the transactional check-then-write around it.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// HasConflict reports whether any other booking on the room overlaps the
// proposed interval. The rule is boundary-inclusive on both ends, so a
// booking ending exactly when another starts still conflicts, and status is
// ignored, so cancelled bookings still block their slot.
func (s *BookingService) HasConflict(tx *gorm.DB, roomID uint, start, end time.Time, excludeID uint) (bool, error) {
	q := tx.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where(
			"(start_time BETWEEN ? AND ?) OR (end_time BETWEEN ? AND ?) OR (start_time <= ? AND end_time >= ?)",
			start, end, start, end, start, end,
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("count conflicting bookings: %w", err)
	}
	return count > 0, nil
}

type CreateBookingInput struct {
	UserID    uint
	RoomID    uint
	StartTime time.Time
	EndTime   time.Time
	Status    string
}

// Create inserts a booking after running the conflict check. Check and insert
// share one transaction so concurrent requests for the same slot serialize at
// the database instead of both passing the check.
func (s *BookingService) Create(in CreateBookingInput) (models.Booking, error) {
	if !in.StartTime.Before(in.EndTime) {
		return models.Booking{}, validationErr("end_time", "must be after start_time")
	}

	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return validationErr("room_id", "room does not exist")
			}
			return err
		}

		conflict, err := s.HasConflict(tx, in.RoomID, in.StartTime, in.EndTime, 0)
		if err != nil {
			return err
		}
		if conflict {
			return ErrConflict
		}

		booking = models.Booking{
			UserID:        in.UserID,
			RoomID:        in.RoomID,
			StartTime:     in.StartTime,
			EndTime:       in.EndTime,
			BookingStatus: in.Status,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return models.Booking{}, err
	}

	if err := s.DB.Preload("User").Preload("Room").First(&booking, booking.ID).Error; err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

type UpdateBookingInput struct {
	UserID    *uint
	RoomID    *uint
	StartTime *time.Time
	EndTime   *time.Time
	Status    *string
}

// Update applies a partial update. The conflict check runs against the merged
// interval and room, excluding the booking itself, inside the same
// transaction as the write.
func (s *BookingService) Update(booking *models.Booking, in UpdateBookingInput) (models.Booking, error) {
	newRoomID := booking.RoomID
	if in.RoomID != nil {
		newRoomID = *in.RoomID
	}
	newStart := booking.StartTime
	if in.StartTime != nil {
		newStart = *in.StartTime
	}
	newEnd := booking.EndTime
	if in.EndTime != nil {
		newEnd = *in.EndTime
	}
	if !newStart.Before(newEnd) {
		return models.Booking{}, validationErr("end_time", "must be after start_time")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if in.RoomID != nil {
			var room models.Room
			if err := tx.First(&room, *in.RoomID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return validationErr("room_id", "room does not exist")
				}
				return err
			}
		}

		conflict, err := s.HasConflict(tx, newRoomID, newStart, newEnd, booking.ID)
		if err != nil {
			return err
		}
		if conflict {
			return ErrConflict
		}

		updates := map[string]any{
			"room_id":    newRoomID,
			"start_time": newStart,
			"end_time":   newEnd,
		}
		if in.UserID != nil {
			updates["user_id"] = *in.UserID
		}
		if in.Status != nil {
			updates["booking_status"] = *in.Status
		}
		return tx.Model(booking).Updates(updates).Error
	})
	if err != nil {
		return models.Booking{}, err
	}

	var updated models.Booking
	if err := s.DB.Preload("User").Preload("Room").First(&updated, booking.ID).Error; err != nil {
		return models.Booking{}, err
	}
	return updated, nil
}

// Get loads a booking with its relations for display and policy checks.
func (s *BookingService) Get(id uint) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.
		Preload("User").
		Preload("Room").
		Preload("Meeting.Attendees.User").
		First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrNotFound
		}
		return models.Booking{}, err
	}
	return booking, nil
}

// List returns all bookings for admins, only the actor's own otherwise.
func (s *BookingService) List(actor *models.User) ([]models.Booking, error) {
	q := s.DB.
		Preload("Room").
		Preload("Meeting.Attendees.User").
		Preload("Meeting.MoM.Items")
	if actor.IsAdmin() {
		q = q.Preload("User")
	} else {
		q = q.Where("user_id = ?", actor.ID)
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) Delete(booking *models.Booking) error {
	return s.DB.Delete(&models.Booking{}, booking.ID).Error
}

type BookingStats struct {
	TodayBookings   int64 `json:"todayBookings"`
	TodayConfirmed  int64 `json:"todayConfirmed"`
	TodayPending    int64 `json:"todayPending"`
	MonthlyBookings int64 `json:"monthlyBookings"`
	AvailableRooms  int64 `json:"availableRooms"`
	TotalRooms      int64 `json:"totalRooms"`
}

// Stats aggregates today's and this month's booking counts, scoped to the
// actor unless they are an admin.
func (s *BookingService) Stats(actor *models.User, now time.Time) (BookingStats, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	scoped := func() *gorm.DB {
		q := s.DB.Model(&models.Booking{})
		if !actor.IsAdmin() {
			q = q.Where("user_id = ?", actor.ID)
		}
		return q
	}

	var stats BookingStats
	today := func() *gorm.DB {
		return scoped().Where("start_time >= ? AND start_time < ?", dayStart, dayEnd)
	}
	if err := today().Count(&stats.TodayBookings).Error; err != nil {
		return BookingStats{}, err
	}
	if err := today().Where("booking_status = ?", models.BookingStatusConfirmed).Count(&stats.TodayConfirmed).Error; err != nil {
		return BookingStats{}, err
	}
	if err := today().Where("booking_status = ?", models.BookingStatusPending).Count(&stats.TodayPending).Error; err != nil {
		return BookingStats{}, err
	}
	if err := scoped().Where("start_time >= ? AND start_time < ?", monthStart, monthEnd).Count(&stats.MonthlyBookings).Error; err != nil {
		return BookingStats{}, err
	}

	if err := s.DB.Model(&models.Room{}).Count(&stats.TotalRooms).Error; err != nil {
		return BookingStats{}, err
	}
	var upcoming int64
	if err := s.DB.Model(&models.Booking{}).Where("start_time > ?", now).Count(&upcoming).Error; err != nil {
		return BookingStats{}, err
	}
	stats.AvailableRooms = stats.TotalRooms - upcoming

	return stats, nil
}
