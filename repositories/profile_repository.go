// File: /repositories/profile_repository.go
package repositories

import (
	"errors"

	"gorm.io/gorm"

	"bloom-api/models"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetOrCreate returns the user's profile, creating an empty one on first
// access. A duplicate-key violation on create means another request won
// the race, so the existing row is fetched instead.
func (r *ProfileRepository) GetOrCreate(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Preload("Clubs").Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile = models.Profile{UserID: userID}
	if err := r.db.Create(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			err = r.db.Preload("Clubs").Where("user_id = ?", userID).First(&profile).Error
			if err != nil {
				return nil, err
			}
			return &profile, nil
		}
		return nil, err
	}

	return &profile, nil
}

// SetPicture points the profile at a new stored picture path and returns
// the previous one so the caller can clean up the old file afterwards.
func (r *ProfileRepository) SetPicture(profile *models.Profile, path *string) (*string, error) {
	old := profile.ProfilePicture
	if err := r.db.Model(profile).Update("profile_picture", path).Error; err != nil {
		return nil, err
	}
	profile.ProfilePicture = path
	return old, nil
}
