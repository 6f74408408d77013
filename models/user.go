package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"size:255" json:"name"`
	Email    string  `gorm:"uniqueIndex;size:255" json:"email"`
	Password string  `gorm:"size:255" json:"-"` // store hashed password, never return in JSON
	Role     string  `gorm:"size:32;default:user" json:"role"`
	Picture  *string `gorm:"size:255" json:"picture"`
	Phone    string  `gorm:"size:20" json:"phone"`
	Position string  `gorm:"size:255" json:"position"`
	Location string  `gorm:"size:255" json:"location"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Bookings      []Booking      `gorm:"foreignKey:UserID" json:"-"`
	Notifications []Notification `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
