// File: /controllers/post_controller.go
package controllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bloom-api/models"
	"bloom-api/repositories"
	"bloom-api/utils"
)

type PostController struct {
	posts    *repositories.PostRepository
	profiles *repositories.ProfileRepository
}

func NewPostController(posts *repositories.PostRepository, profiles *repositories.ProfileRepository) *PostController {
	return &PostController{
		posts:    posts,
		profiles: profiles,
	}
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	ClubID  *uint  `json:"club_id"`
}

type LikeResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

// GetFeed returns posts newest-first. ?club_id=N scopes to one club and
// ?feed=following scopes to clubs the current user is a member of.
func (pc *PostController) GetFeed(c *gin.Context) {
	userID := c.GetString("user_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	var clubID *uint
	if raw := c.Query("club_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club id"})
			return
		}
		v := uint(id)
		clubID = &v
	}

	var memberProfileID *uint
	if c.Query("feed") == "following" {
		profile, err := pc.profiles.GetOrCreate(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
			return
		}
		memberProfileID = &profile.ID
	}

	posts, total, err := pc.posts.Feed(clubID, memberProfileID, offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	for i := range posts {
		posts[i].User.Password = ""
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	c.JSON(http.StatusOK, models.FeedResponse{
		Posts:      posts,
		Page:       page,
		Limit:      limit,
		Total:      total,
		HasMore:    page < totalPages,
		TotalPages: totalPages,
	})
}

func (pc *PostController) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := utils.ValidatePostInput(req.Title, req.Content, models.MaxContentLength); len(errs) > 0 {
		utils.SendValidationErrors(c, errs)
		return
	}

	post := models.Post{
		ID:      uuid.New().String(),
		UserID:  userID,
		ClubID:  req.ClubID,
		Title:   req.Title,
		Content: req.Content,
	}

	if err := pc.posts.Create(&post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	created, err := pc.posts.GetBySlug(post.Slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load post"})
		return
	}
	created.User.Password = ""

	c.JSON(http.StatusCreated, created)
}

func (pc *PostController) GetPost(c *gin.Context) {
	slug := c.Param("slug")

	post, err := pc.posts.GetBySlug(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	post.User.Password = ""

	c.JSON(http.StatusOK, post)
}

// ToggleLike flips the current user's like on the post addressed by slug
// and reports the resulting state with the fresh like count.
func (pc *PostController) ToggleLike(c *gin.Context) {
	userID := c.GetString("user_id")
	slug := c.Param("slug")

	post, err := pc.posts.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load post"})
		return
	}

	liked, count, err := pc.posts.ToggleLike(userID, post)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		return
	}

	c.JSON(http.StatusOK, LikeResponse{
		Liked:     liked,
		LikeCount: count,
	})
}
