// File: /controllers/club_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bloom-api/repositories"
	"bloom-api/utils"
)

// clubSearchLimit caps how many clubs a search returns.
const clubSearchLimit = 10

type ClubController struct {
	clubs    *repositories.ClubRepository
	profiles *repositories.ProfileRepository
}

func NewClubController(clubs *repositories.ClubRepository, profiles *repositories.ProfileRepository) *ClubController {
	return &ClubController{
		clubs:    clubs,
		profiles: profiles,
	}
}

type CreateClubRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type JoinClubRequest struct {
	ClubID uint `json:"club_id"`
}

// SearchClubs returns up to 10 clubs matching q case-insensitively, or the
// first 10 clubs when q is empty.
func (cc *ClubController) SearchClubs(c *gin.Context) {
	clubs, err := cc.clubs.Search(c.Query("q"), clubSearchLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search clubs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clubs": clubs})
}

func (cc *ClubController) CreateClub(c *gin.Context) {
	var req CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	name, errMsg := utils.ValidateClubName(req.Name)
	if errMsg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": errMsg})
		return
	}

	club, err := cc.clubs.Create(name, req.Description)
	if err != nil {
		if errors.Is(err, repositories.ErrNameTaken) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Name already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create club"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "club": club})
}

// JoinClub toggles the current user's membership in the club named by the
// request body and reports which way it flipped.
func (cc *ClubController) JoinClub(c *gin.Context) {
	userID := c.GetString("user_id")

	var req JoinClubRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ClubID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Club id is required"})
		return
	}

	joined, err := cc.toggleMembership(userID, req.ClubID)
	if err != nil {
		cc.sendToggleError(c, err)
		return
	}

	action := "left"
	if joined {
		action = "joined"
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "action": action})
}

// FollowClub is the same membership toggle addressed by path id, reported
// as a following flag.
func (cc *ClubController) FollowClub(c *gin.Context) {
	userID := c.GetString("user_id")

	clubID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid club id"})
		return
	}

	following, err := cc.toggleMembership(userID, uint(clubID))
	if err != nil {
		cc.sendToggleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "is_following": following})
}

func (cc *ClubController) toggleMembership(userID string, clubID uint) (bool, error) {
	club, err := cc.clubs.GetByID(clubID)
	if err != nil {
		return false, err
	}

	profile, err := cc.profiles.GetOrCreate(userID)
	if err != nil {
		return false, err
	}

	return cc.clubs.ToggleMembership(profile, club)
}

func (cc *ClubController) sendToggleError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Club not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update membership"})
}
