package models

import (
	"time"
)

type Room struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255" json:"name"`
	Capacity int    `json:"capacity"`
	Location string `gorm:"size:255" json:"location"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Features []FeatureName `gorm:"many2many:room_features" json:"features,omitempty"`
	Bookings []Booking     `gorm:"foreignKey:RoomID" json:"-"`
}
