package models

import (
	"time"
)

const (
	NotificationInvitation          = "invitation"
	NotificationBookingConfirmation = "booking_confirmation"
	NotificationActionItemAssigned  = "action_item_assigned"
)

type Notification struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"index;column:user_id" json:"user_id"`
	Message string `gorm:"type:text" json:"message"`
	Type    string `gorm:"size:64" json:"type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
