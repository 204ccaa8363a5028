// File: /controllers/profile_controller.go
package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bloom-api/models"
	"bloom-api/repositories"
	"bloom-api/services"
)

type ProfileController struct {
	db       *gorm.DB
	profiles *repositories.ProfileRepository
	pictures *services.PictureStore
}

func NewProfileController(db *gorm.DB, profiles *repositories.ProfileRepository, pictures *services.PictureStore) *ProfileController {
	return &ProfileController{
		db:       db,
		profiles: profiles,
		pictures: pictures,
	}
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := pc.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	profile, err := pc.profiles.GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"profile": profile,
	})
}

// UpdateProfilePicture stores the uploaded image, points the profile at
// it, then removes the previous file. The old file is only deleted after
// the new one is durably associated; a failed delete never fails the
// request.
func (pc *ProfileController) UpdateProfilePicture(c *gin.Context) {
	userID := c.GetString("user_id")

	file, err := c.FormFile("picture")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Picture file is required"})
		return
	}

	if file.Size > services.MaxPictureSize {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Picture must be 5MB or smaller"})
		return
	}

	if !pc.pictures.ValidExtension(file.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unsupported image type"})
		return
	}

	profile, err := pc.profiles.GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load profile"})
		return
	}

	name := pc.pictures.NewName(file.Filename)
	if err := c.SaveUploadedFile(file, pc.pictures.Path(name)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to store picture"})
		return
	}

	old, err := pc.profiles.SetPicture(profile, &name)
	if err != nil {
		// The new file is orphaned; clean it up and report the failure
		if rmErr := pc.pictures.Remove(name); rmErr != nil {
			fmt.Printf("Failed to remove orphaned picture %s: %v\n", name, rmErr)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update profile"})
		return
	}

	if old != nil {
		if err := pc.pictures.Remove(*old); err != nil {
			fmt.Printf("Failed to remove old picture %s: %v\n", *old, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"profile_picture": name,
	})
}

func (pc *ProfileController) RemoveProfilePicture(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := pc.profiles.GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load profile"})
		return
	}

	old, err := pc.profiles.SetPicture(profile, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update profile"})
		return
	}

	if old != nil {
		if err := pc.pictures.Remove(*old); err != nil {
			fmt.Printf("Failed to remove picture %s: %v\n", *old, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
