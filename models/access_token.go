package models

import (
	"time"
)

// AccessToken records an issued bearer token by its JWT id. Logout deletes
// the row, which invalidates the token even before its expiry.
type AccessToken struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID uint   `gorm:"index;column:user_id" json:"user_id"`
	Name   string `gorm:"size:64" json:"name"`

	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
