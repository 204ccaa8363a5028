// File: /repositories/club_repository.go
package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"bloom-api/models"
)

// ErrNameTaken reports a club name that already exists, compared
// case-insensitively.
var ErrNameTaken = errors.New("name already taken")

type ClubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

// Create inserts a new club. The case-insensitive existence check is the
// fast path; a duplicate-key violation on insert (lost race) is reported
// as the same ErrNameTaken.
func (r *ClubRepository) Create(name, description string) (*models.Club, error) {
	var existing models.Club
	if err := r.db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&existing).Error; err == nil {
		return nil, ErrNameTaken
	}

	club := models.Club{Name: name, Description: description}
	if err := r.db.Create(&club).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	return &club, nil
}

func (r *ClubRepository) GetByID(id uint) (*models.Club, error) {
	var club models.Club
	if err := r.db.First(&club, id).Error; err != nil {
		return nil, err
	}
	return &club, nil
}

// Search returns up to limit clubs whose names contain q, matched
// case-insensitively, in storage (insertion) order. An empty query returns
// the first clubs unfiltered.
func (r *ClubRepository) Search(q string, limit int) ([]models.ClubSummary, error) {
	query := r.db.Model(&models.Club{})
	if q != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var clubs []models.ClubSummary
	err := query.Order("id ASC").Limit(limit).Select("id", "name").Find(&clubs).Error
	return clubs, err
}

// IsMember reports whether the profile belongs to the club.
func (r *ClubRepository) IsMember(profileID, clubID uint) (bool, error) {
	var count int64
	err := r.db.Table("profile_clubs").
		Where("profile_id = ? AND club_id = ?", profileID, clubID).
		Count(&count).Error
	return count > 0, err
}

// ToggleMembership adds the club to the profile's membership set or
// removes it, reporting true when the profile ends up a member. Membership
// is a set at the storage level, so no retry logic is needed here.
func (r *ClubRepository) ToggleMembership(profile *models.Profile, club *models.Club) (bool, error) {
	member, err := r.IsMember(profile.ID, club.ID)
	if err != nil {
		return false, err
	}

	if member {
		if err := r.db.Model(profile).Association("Clubs").Delete(club); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := r.db.Model(profile).Association("Clubs").Append(club); err != nil {
		return false, err
	}
	return true, nil
}
