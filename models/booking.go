package models

import (
	"time"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking holds a [StartTime, EndTime] slot on a room. Overlap on the same
// room is rejected at write time, boundaries included; cancelled bookings
// still block their slot.
type Booking struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;column:user_id" json:"user_id"`
	RoomID        uint      `gorm:"index;column:room_id" json:"room_id"`
	StartTime     time.Time `gorm:"column:start_time;index" json:"start_time"`
	EndTime       time.Time `gorm:"column:end_time" json:"end_time"`
	BookingStatus string    `gorm:"column:booking_status;size:32" json:"booking_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Room    *Room    `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Meeting *Meeting `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"meeting,omitempty"`
}
