package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamiMK0/smart-room-management-system/models"
)

func attendeeIDs(attendees []models.MeetingAttendee) []uint {
	ids := make([]uint, 0, len(attendees))
	for _, a := range attendees {
		ids = append(ids, a.UserID)
	}
	return ids
}

func TestCreateMeetingAppendsOrganizer(t *testing.T) {
	db := newTestDB(t)
	svc := NewMeetingService(db)
	organizer := seedUser(t, db, models.RoleUser)
	guest := seedUser(t, db, models.RoleUser)
	room := seedRoom(t, db, "Boardroom")
	booking := seedBooking(t, db, organizer.ID, room.ID, at(9, 0), at(10, 0), models.BookingStatusConfirmed)

	meeting, err := svc.Create(CreateMeetingInput{
		BookingID: booking.ID,
		Title:     "Planning",
		Agenda:    "Q2 roadmap",
		Attendees: []uint{guest.ID},
	})
	require.NoError(t, err)

	ids := attendeeIDs(meeting.Attendees)
	assert.ElementsMatch(t, []uint{guest.ID, organizer.ID}, ids)

	// The booking is now linked; a second meeting on it is rejected.
	_, err = svc.Create(CreateMeetingInput{BookingID: booking.ID, Title: "Dup"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestCreateMeetingOrganizerNotDuplicated(t *testing.T) {
	db := newTestDB(t)
	svc := NewMeetingService(db)
	organizer := seedUser(t, db, models.RoleUser)
	room := seedRoom(t, db, "Boardroom")
	booking := seedBooking(t, db, organizer.ID, room.ID, at(9, 0), at(10, 0), models.BookingStatusConfirmed)

	meeting, err := svc.Create(CreateMeetingInput{
		BookingID: booking.ID,
		Title:     "Planning",
		Attendees: []uint{organizer.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{organizer.ID}, attendeeIDs(meeting.Attendees))
}

func TestCreateMeetingValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewMeetingService(db)
	organizer := seedUser(t, db, models.RoleUser)
	room := seedRoom(t, db, "Boardroom")
	booking := seedBooking(t, db, organizer.ID, room.ID, at(9, 0), at(10, 0), models.BookingStatusConfirmed)

	t.Run("unknown booking", func(t *testing.T) {
		_, err := svc.Create(CreateMeetingInput{BookingID: booking.ID + 99, Title: "X"})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown attendee", func(t *testing.T) {
		_, err := svc.Create(CreateMeetingInput{
			BookingID: booking.ID,
			Title:     "X",
			Attendees: []uint{organizer.ID + 99},
		})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestMeetingCarriesBookingTimes(t *testing.T) {
	db := newTestDB(t)
	svc := NewMeetingService(db)
	organizer := seedUser(t, db, models.RoleUser)
	room := seedRoom(t, db, "Boardroom")
	booking := seedBooking(t, db, organizer.ID, room.ID, at(9, 0), at(10, 0), models.BookingStatusConfirmed)
	seeded := seedMeeting(t, db, booking.ID, organizer.ID)

	meeting, err := svc.Get(seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, meeting.StartTime)
	require.NotNil(t, meeting.EndTime)
	assert.True(t, meeting.StartTime.Equal(at(9, 0)))
	assert.True(t, meeting.EndTime.Equal(at(10, 0)))
}

func TestUpdateMeetingReplacesAttendees(t *testing.T) {
	db := newTestDB(t)
	svc := NewMeetingService(db)
	organizer := seedUser(t, db, models.RoleUser)
	old := seedUser(t, db, models.RoleUser)
	fresh := seedUser(t, db, models.RoleUser)
	room := seedRoom(t, db, "Boardroom")
	booking := seedBooking(t, db, organizer.ID, room.ID, at(9, 0), at(10, 0), models.BookingStatusConfirmed)

	meeting, err := svc.Create(CreateMeetingInput{
		BookingID: booking.ID,
		Title:     "Planning",
		Attendees: []uint{old.ID},
	})
	require.NoError(t, err)

	newList := []uint{fresh.ID}
	updated, err := svc.Update(&meeting, UpdateMeetingInput{Attendees: &newList})
	require.NoError(t, err)

	// Old attendee gone, organizer re-appended.
	assert.ElementsMatch(t, []uint{fresh.ID, organizer.ID}, attendeeIDs(updated.Attendees))
}

func TestListMeetingsScoping(t *testing.T) {
	db := newTestDB(t)
	svc := NewMeetingService(db)
	admin := seedUser(t, db, models.RoleAdmin)
	organizer := seedUser(t, db, models.RoleUser)
	attendee := seedUser(t, db, models.RoleUser)
	stranger := seedUser(t, db, models.RoleUser)
	room := seedRoom(t, db, "Boardroom")

	b1 := seedBooking(t, db, organizer.ID, room.ID, at(9, 0), at(10, 0), models.BookingStatusConfirmed)
	seedMeeting(t, db, b1.ID, organizer.ID, attendee.ID)
	b2 := seedBooking(t, db, admin.ID, room.ID, at(11, 0), at(12, 0), models.BookingStatusConfirmed)
	seedMeeting(t, db, b2.ID, admin.ID)

	adminList, err := svc.List(&admin)
	require.NoError(t, err)
	assert.Len(t, adminList, 2)

	organized, err := svc.List(&organizer)
	require.NoError(t, err)
	assert.Len(t, organized, 1)

	attending, err := svc.List(&attendee)
	require.NoError(t, err)
	assert.Len(t, attending, 1)

	none, err := svc.List(&stranger)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAddAttendee(t *testing.T) {
	db := newTestDB(t)
	svc := NewMeetingService(db)
	organizer := seedUser(t, db, models.RoleUser)
	guest := seedUser(t, db, models.RoleUser)
	room := seedRoom(t, db, "Boardroom")
	booking := seedBooking(t, db, organizer.ID, room.ID, at(9, 0), at(10, 0), models.BookingStatusConfirmed)
	meeting := seedMeeting(t, db, booking.ID, organizer.ID)

	attendee, err := svc.AddAttendee(meeting.ID, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, guest.ID, attendee.UserID)

	t.Run("duplicate is a conflict", func(t *testing.T) {
		_, err := svc.AddAttendee(meeting.ID, guest.ID)
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("unknown user is a validation error", func(t *testing.T) {
		_, err := svc.AddAttendee(meeting.ID, guest.ID+99)
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestRemoveAttendee(t *testing.T) {
	db := newTestDB(t)
	svc := NewMeetingService(db)
	organizer := seedUser(t, db, models.RoleUser)
	guest := seedUser(t, db, models.RoleUser)
	room := seedRoom(t, db, "Boardroom")
	booking := seedBooking(t, db, organizer.ID, room.ID, at(9, 0), at(10, 0), models.BookingStatusConfirmed)
	meeting := seedMeeting(t, db, booking.ID, organizer.ID, guest.ID)

	attendees, err := svc.Attendees(meeting.ID)
	require.NoError(t, err)
	require.Len(t, attendees, 2)

	var target models.MeetingAttendee
	for _, a := range attendees {
		if a.UserID == guest.ID {
			target = a
		}
	}
	require.NoError(t, svc.RemoveAttendee(&target))

	left, err := svc.Attendees(meeting.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, organizer.ID, left[0].UserID)
}
