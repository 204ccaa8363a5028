// File: /models/club.go
package models

import (
	"time"
)

type Club struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null;size:100"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`

	Posts   []Post    `json:"-" gorm:"foreignKey:ClubID"`
	Members []Profile `json:"-" gorm:"many2many:profile_clubs"`
}

// ClubSummary is the compact shape returned by club search
type ClubSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
