// File: /models/profile.go
package models

import (
	"time"
)

// Profile extends a User with picture and club membership state. It is
// created lazily the first time anything touches it.
type Profile struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         string    `json:"user_id" gorm:"uniqueIndex;not null;size:191"`
	ProfilePicture *string   `json:"profile_picture" gorm:"size:500"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	User  User   `json:"-" gorm:"foreignKey:UserID"`
	Clubs []Club `json:"clubs" gorm:"many2many:profile_clubs"`
}
