package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SamiMK0/smart-room-management-system/config"
	"github.com/SamiMK0/smart-room-management-system/models"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// A single connection keeps the in-memory database alive for the whole test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

var testUserSeq int

func seedUser(t *testing.T, db *gorm.DB, role string) models.User {
	t.Helper()

	testUserSeq++
	user := models.User{
		Name:     fmt.Sprintf("User %d", testUserSeq),
		Email:    fmt.Sprintf("user%d@example.com", testUserSeq),
		Password: "not-a-real-hash",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedRoom(t *testing.T, db *gorm.DB, name string) models.Room {
	t.Helper()

	room := models.Room{Name: name, Location: "Floor 1", Capacity: 8}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func seedBooking(t *testing.T, db *gorm.DB, userID, roomID uint, start, end time.Time, status string) models.Booking {
	t.Helper()

	booking := models.Booking{
		UserID:        userID,
		RoomID:        roomID,
		StartTime:     start,
		EndTime:       end,
		BookingStatus: status,
	}
	require.NoError(t, db.Create(&booking).Error)
	return booking
}

func seedMeeting(t *testing.T, db *gorm.DB, bookingID uint, attendeeIDs ...uint) models.Meeting {
	t.Helper()

	meeting := models.Meeting{BookingID: bookingID, Title: "Weekly sync", Agenda: "Status"}
	require.NoError(t, db.Create(&meeting).Error)
	for _, id := range attendeeIDs {
		require.NoError(t, db.Create(&models.MeetingAttendee{MeetingID: meeting.ID, UserID: id}).Error)
	}
	return meeting
}

// at builds a fixed timestamp on 2026-03-10; tests only care about relative
// positions of intervals.
func at(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}
