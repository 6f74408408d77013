package models

import (
	"time"
)

type Meeting struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	BookingID uint   `gorm:"uniqueIndex;column:booking_id" json:"booking_id"`
	Title     string `gorm:"size:255" json:"title"`
	Agenda    string `gorm:"type:text" json:"agenda"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Mirrors of the underlying booking window, filled before serialization.
	StartTime *time.Time `gorm:"-" json:"start_time,omitempty"`
	EndTime   *time.Time `gorm:"-" json:"end_time,omitempty"`

	Booking   *Booking          `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	Attendees []MeetingAttendee `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"attendees,omitempty"`
	MoM       *MoM              `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"mom,omitempty"`
}

// FillTimes copies the booking window into the transient start/end fields.
// A meeting has no schedule of its own, it inherits the booking's.
func (m *Meeting) FillTimes() {
	if m.Booking != nil {
		m.StartTime = &m.Booking.StartTime
		m.EndTime = &m.Booking.EndTime
	}
}

type MeetingAttendee struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	MeetingID uint `gorm:"index;column:meeting_id" json:"meeting_id"`
	UserID    uint `gorm:"index;column:user_id" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Meeting *Meeting `gorm:"foreignKey:MeetingID" json:"meeting,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
