package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/SamiMK0/smart-room-management-system/models"
)

type MeetingService struct {
	DB *gorm.DB
}

func NewMeetingService(db *gorm.DB) *MeetingService {
	return &MeetingService{DB: db}
}

type CreateMeetingInput struct {
	BookingID uint
	Title     string
	Agenda    string
	Attendees []uint
}

// appendOrganizer makes sure the booking owner is always on the attendee
// list, whatever the caller sent.
func appendOrganizer(attendees []uint, organizerID uint) []uint {
	for _, id := range attendees {
		if id == organizerID {
			return attendees
		}
	}
	return append(attendees, organizerID)
}

// Create turns a not-yet-linked booking into a meeting. The organizer is
// appended to the attendee list if absent.
func (s *MeetingService) Create(in CreateMeetingInput) (models.Meeting, error) {
	var meeting models.Meeting
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, in.BookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return validationErr("booking_id", "booking does not exist")
			}
			return err
		}

		var linked int64
		if err := tx.Model(&models.Meeting{}).Where("booking_id = ?", in.BookingID).Count(&linked).Error; err != nil {
			return err
		}
		if linked > 0 {
			return validationErr("booking_id", "booking already has a meeting")
		}

		if err := validateUserIDs(tx, in.Attendees); err != nil {
			return err
		}

		meeting = models.Meeting{
			BookingID: in.BookingID,
			Title:     in.Title,
			Agenda:    in.Agenda,
		}
		if err := tx.Create(&meeting).Error; err != nil {
			return err
		}

		attendees := appendOrganizer(in.Attendees, booking.UserID)
		rows := make([]models.MeetingAttendee, 0, len(attendees))
		for _, userID := range attendees {
			rows = append(rows, models.MeetingAttendee{MeetingID: meeting.ID, UserID: userID})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return models.Meeting{}, err
	}
	return s.Get(meeting.ID)
}

// Get loads a meeting with everything its handlers and policies need.
func (s *MeetingService) Get(id uint) (models.Meeting, error) {
	var meeting models.Meeting
	err := s.DB.
		Preload("Booking").
		Preload("Attendees.User").
		Preload("MoM.Items.Assignee").
		First(&meeting, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Meeting{}, ErrNotFound
		}
		return models.Meeting{}, err
	}
	meeting.FillTimes()
	return meeting, nil
}

// List returns every meeting for admins; otherwise the ones the actor
// organizes or attends.
func (s *MeetingService) List(actor *models.User) ([]models.Meeting, error) {
	q := s.DB.
		Preload("Booking").
		Preload("Attendees.User").
		Preload("MoM")
	if !actor.IsAdmin() {
		q = q.Where(
			"booking_id IN (SELECT id FROM bookings WHERE user_id = ?) OR id IN (SELECT meeting_id FROM meeting_attendees WHERE user_id = ?)",
			actor.ID, actor.ID,
		)
	}

	var meetings []models.Meeting
	if err := q.Find(&meetings).Error; err != nil {
		return nil, err
	}
	for i := range meetings {
		meetings[i].FillTimes()
	}
	return meetings, nil
}

// ListForUser returns the meetings a given user organizes or attends.
func (s *MeetingService) ListForUser(userID uint) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := s.DB.
		Preload("Booking").
		Preload("Attendees.User").
		Where(
			"booking_id IN (SELECT id FROM bookings WHERE user_id = ?) OR id IN (SELECT meeting_id FROM meeting_attendees WHERE user_id = ?)",
			userID, userID,
		).
		Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	for i := range meetings {
		meetings[i].FillTimes()
	}
	return meetings, nil
}

type UpdateMeetingInput struct {
	BookingID *uint
	Title     *string
	Agenda    *string
	// Attendees, when present, replaces the whole list (organizer re-added).
	Attendees *[]uint
}

func (s *MeetingService) Update(meeting *models.Meeting, in UpdateMeetingInput) (models.Meeting, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		bookingID := meeting.BookingID
		if in.BookingID != nil && *in.BookingID != meeting.BookingID {
			var booking models.Booking
			if err := tx.First(&booking, *in.BookingID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return validationErr("booking_id", "booking does not exist")
				}
				return err
			}
			var linked int64
			if err := tx.Model(&models.Meeting{}).
				Where("booking_id = ? AND id <> ?", *in.BookingID, meeting.ID).
				Count(&linked).Error; err != nil {
				return err
			}
			if linked > 0 {
				return validationErr("booking_id", "booking already has a meeting")
			}
			bookingID = *in.BookingID
		}

		updates := map[string]any{"booking_id": bookingID}
		if in.Title != nil {
			updates["title"] = *in.Title
		}
		if in.Agenda != nil {
			updates["agenda"] = *in.Agenda
		}
		if err := tx.Model(meeting).Updates(updates).Error; err != nil {
			return err
		}

		if in.Attendees != nil {
			if err := validateUserIDs(tx, *in.Attendees); err != nil {
				return err
			}
			if err := tx.Where("meeting_id = ?", meeting.ID).Delete(&models.MeetingAttendee{}).Error; err != nil {
				return err
			}

			var booking models.Booking
			if err := tx.First(&booking, bookingID).Error; err != nil {
				return err
			}
			attendees := appendOrganizer(*in.Attendees, booking.UserID)
			rows := make([]models.MeetingAttendee, 0, len(attendees))
			for _, userID := range attendees {
				rows = append(rows, models.MeetingAttendee{MeetingID: meeting.ID, UserID: userID})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Meeting{}, err
	}
	return s.Get(meeting.ID)
}

func (s *MeetingService) Delete(meeting *models.Meeting) error {
	return s.DB.Delete(&models.Meeting{}, meeting.ID).Error
}

// Attendees lists a meeting's attendee records with their users.
func (s *MeetingService) Attendees(meetingID uint) ([]models.MeetingAttendee, error) {
	var attendees []models.MeetingAttendee
	err := s.DB.Preload("User").Where("meeting_id = ?", meetingID).Find(&attendees).Error
	return attendees, err
}

// AddAttendee joins a user to the meeting; duplicates are a conflict.
func (s *MeetingService) AddAttendee(meetingID, userID uint) (models.MeetingAttendee, error) {
	var attendee models.MeetingAttendee
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := validateUserIDs(tx, []uint{userID}); err != nil {
			return err
		}
		var existing int64
		if err := tx.Model(&models.MeetingAttendee{}).
			Where("meeting_id = ? AND user_id = ?", meetingID, userID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrConflict
		}
		attendee = models.MeetingAttendee{MeetingID: meetingID, UserID: userID}
		return tx.Create(&attendee).Error
	})
	if err != nil {
		return models.MeetingAttendee{}, err
	}
	if err := s.DB.Preload("User").First(&attendee, attendee.ID).Error; err != nil {
		return models.MeetingAttendee{}, err
	}
	return attendee, nil
}

// GetAttendee loads one attendee record with its meeting and booking, enough
// for the policy checks.
func (s *MeetingService) GetAttendee(id uint) (models.MeetingAttendee, error) {
	var attendee models.MeetingAttendee
	err := s.DB.
		Preload("User").
		Preload("Meeting.Booking").
		First(&attendee, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MeetingAttendee{}, ErrNotFound
		}
		return models.MeetingAttendee{}, err
	}
	return attendee, nil
}

type UpdateAttendeeInput struct {
	UserID    *uint
	MeetingID *uint
}

func (s *MeetingService) UpdateAttendee(attendee *models.MeetingAttendee, in UpdateAttendeeInput) (models.MeetingAttendee, error) {
	updates := map[string]any{}
	if in.UserID != nil {
		if err := validateUserIDs(s.DB, []uint{*in.UserID}); err != nil {
			return models.MeetingAttendee{}, err
		}
		updates["user_id"] = *in.UserID
	}
	if in.MeetingID != nil {
		var exists int64
		if err := s.DB.Model(&models.Meeting{}).Where("id = ?", *in.MeetingID).Count(&exists).Error; err != nil {
			return models.MeetingAttendee{}, err
		}
		if exists == 0 {
			return models.MeetingAttendee{}, validationErr("meeting_id", "meeting does not exist")
		}
		updates["meeting_id"] = *in.MeetingID
	}
	if len(updates) > 0 {
		if err := s.DB.Model(attendee).Updates(updates).Error; err != nil {
			return models.MeetingAttendee{}, err
		}
	}
	return s.GetAttendee(attendee.ID)
}

func (s *MeetingService) RemoveAttendee(attendee *models.MeetingAttendee) error {
	return s.DB.Delete(&models.MeetingAttendee{}, attendee.ID).Error
}

// validateUserIDs rejects references to users that do not exist.
func validateUserIDs(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	var count int64
	if err := tx.Model(&models.User{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(uniqueIDs(ids))) {
		return validationErr("attendees", "one or more users do not exist")
	}
	return nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
