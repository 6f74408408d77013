package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamiMK0/smart-room-management-system/models"
)

func TestHasConflictOverlapMatrix(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	user := seedUser(t, db, models.RoleUser)
	room := seedRoom(t, db, "Boardroom")
	other := seedRoom(t, db, "Annex")

	// Existing booking 09:00-10:00.
	seedBooking(t, db, user.ID, room.ID, at(9, 0), at(10, 0), models.BookingStatusConfirmed)

	tests := []struct {
		name     string
		roomID   uint
		start    time.Time
		end      time.Time
		conflict bool
	}{
		{"well before", room.ID, at(7, 0), at(8, 0), false},
		{"well after", room.ID, at(11, 0), at(12, 0), false},
		{"identical interval", room.ID, at(9, 0), at(10, 0), true},
		{"contained inside", room.ID, at(9, 15), at(9, 45), true},
		{"covering", room.ID, at(8, 0), at(11, 0), true},
		{"overlaps the start", room.ID, at(8, 30), at(9, 30), true},
		{"overlaps the end", room.ID, at(9, 30), at(10, 30), true},
		{"touching at existing end", room.ID, at(10, 0), at(11, 0), true},
		{"touching at existing start", room.ID, at(8, 0), at(9, 0), true},
		{"same slot, other room", other.ID, at(9, 0), at(10, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.HasConflict(db, tt.roomID, tt.start, tt.end, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.conflict, got)
		})
	}
}

func TestHasConflictIgnoresStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	user := seedUser(t, db, models.RoleUser)
	room := seedRoom(t, db, "Boardroom")

	// A cancelled booking keeps blocking its slot.
	seedBooking(t, db, user.ID, room.ID, at(9, 0), at(10, 0), models.BookingStatusCancelled)

	got, err := svc.HasConflict(db, room.ID, at(9, 30), at(10, 30), 0)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestCreateBooking(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	user := seedUser(t, db, models.RoleUser)
	room := seedRoom(t, db, "Boardroom")

	booking, err := svc.Create(CreateBookingInput{
		UserID:    user.ID,
		RoomID:    room.ID,
		StartTime: at(9, 0),
		EndTime:   at(10, 0),
		Status:    models.BookingStatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, booking.UserID)
	assert.Equal(t, models.BookingStatusPending, booking.BookingStatus)
	require.NotNil(t, booking.Room)
	assert.Equal(t, "Boardroom", booking.Room.Name)
}

func TestCreateBookingConflictLeavesNoRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	user := seedUser(t, db, models.RoleUser)
	room := seedRoom(t, db, "Boardroom")
	seedBooking(t, db, user.ID, room.ID, at(9, 0), at(10, 0), models.BookingStatusConfirmed)

	_, err := svc.Create(CreateBookingInput{
		UserID:    user.ID,
		RoomID:    room.ID,
		StartTime: at(9, 30),
		EndTime:   at(10, 30),
		Status:    models.BookingStatusPending,
	})
	require.ErrorIs(t, err, ErrConflict)

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateBookingValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	user := seedUser(t, db, models.RoleUser)
	room := seedRoom(t, db, "Boardroom")

	t.Run("end before start", func(t *testing.T) {
		_, err := svc.Create(CreateBookingInput{
			UserID: user.ID, RoomID: room.ID,
			StartTime: at(10, 0), EndTime: at(9, 0),
			Status: models.BookingStatusPending,
		})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown room", func(t *testing.T) {
		_, err := svc.Create(CreateBookingInput{
			UserID: user.ID, RoomID: room.ID + 99,
			StartTime: at(9, 0), EndTime: at(10, 0),
			Status: models.BookingStatusPending,
		})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestUpdateBookingExcludesItself(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	user := seedUser(t, db, models.RoleUser)
	room := seedRoom(t, db, "Boardroom")
	booking := seedBooking(t, db, user.ID, room.ID, at(9, 0), at(10, 0), models.BookingStatusConfirmed)

	// Shifting within (and overlapping) its own slot must not self-conflict.
	newEnd := at(10, 30)
	updated, err := svc.Update(&booking, UpdateBookingInput{EndTime: &newEnd})
	require.NoError(t, err)
	assert.True(t, updated.EndTime.Equal(newEnd))
}

func TestUpdateBookingMergedIntervalConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	user := seedUser(t, db, models.RoleUser)
	room := seedRoom(t, db, "Boardroom")
	booking := seedBooking(t, db, user.ID, room.ID, at(9, 0), at(10, 0), models.BookingStatusConfirmed)
	seedBooking(t, db, user.ID, room.ID, at(11, 0), at(12, 0), models.BookingStatusConfirmed)

	// Only end_time changes; the merged interval 09:00-11:30 hits the later
	// booking, so nothing may be written.
	newEnd := at(11, 30)
	_, err := svc.Update(&booking, UpdateBookingInput{EndTime: &newEnd})
	require.ErrorIs(t, err, ErrConflict)

	var stored models.Booking
	require.NoError(t, db.First(&stored, booking.ID).Error)
	assert.True(t, stored.EndTime.Equal(at(10, 0)))
}

func TestListBookingsScoping(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	admin := seedUser(t, db, models.RoleAdmin)
	alice := seedUser(t, db, models.RoleUser)
	bob := seedUser(t, db, models.RoleUser)
	room := seedRoom(t, db, "Boardroom")
	seedBooking(t, db, alice.ID, room.ID, at(9, 0), at(10, 0), models.BookingStatusConfirmed)
	seedBooking(t, db, bob.ID, room.ID, at(11, 0), at(12, 0), models.BookingStatusConfirmed)

	all, err := svc.List(&admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.List(&alice)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, alice.ID, own[0].UserID)
}

func TestBookingStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	admin := seedUser(t, db, models.RoleAdmin)
	alice := seedUser(t, db, models.RoleUser)
	room := seedRoom(t, db, "Boardroom")
	seedRoom(t, db, "Annex")

	now := at(8, 0)
	// Two bookings today (one confirmed, one pending), one later this month,
	// one in a different month.
	seedBooking(t, db, alice.ID, room.ID, at(9, 0), at(10, 0), models.BookingStatusConfirmed)
	seedBooking(t, db, admin.ID, room.ID, at(11, 0), at(12, 0), models.BookingStatusPending)
	seedBooking(t, db, alice.ID, room.ID, at(9, 0).AddDate(0, 0, 5), at(10, 0).AddDate(0, 0, 5), models.BookingStatusConfirmed)
	seedBooking(t, db, alice.ID, room.ID, at(9, 0).AddDate(0, 1, 0), at(10, 0).AddDate(0, 1, 0), models.BookingStatusConfirmed)

	t.Run("admin sees everything", func(t *testing.T) {
		stats, err := svc.Stats(&admin, now)
		require.NoError(t, err)
		assert.EqualValues(t, 2, stats.TodayBookings)
		assert.EqualValues(t, 1, stats.TodayConfirmed)
		assert.EqualValues(t, 1, stats.TodayPending)
		assert.EqualValues(t, 3, stats.MonthlyBookings)
		assert.EqualValues(t, 2, stats.TotalRooms)
	})

	t.Run("user sees own rows only", func(t *testing.T) {
		stats, err := svc.Stats(&alice, now)
		require.NoError(t, err)
		assert.EqualValues(t, 1, stats.TodayBookings)
		assert.EqualValues(t, 1, stats.TodayConfirmed)
		assert.EqualValues(t, 0, stats.TodayPending)
		assert.EqualValues(t, 2, stats.MonthlyBookings)
	})
}

func TestGetBookingNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	_, err := svc.Get(12345)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteBooking(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	user := seedUser(t, db, models.RoleUser)
	room := seedRoom(t, db, "Boardroom")
	booking := seedBooking(t, db, user.ID, room.ID, at(9, 0), at(10, 0), models.BookingStatusConfirmed)

	require.NoError(t, svc.Delete(&booking))
	_, err := svc.Get(booking.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
