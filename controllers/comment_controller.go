package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bloom-api/models"
	"bloom-api/repositories"
	"bloom-api/utils"
)

// commentTimeFormat matches the human-readable timestamp shown under
// comments, e.g. "Jan 2, 2006 3:04 PM".
const commentTimeFormat = "Jan 2, 2006 3:04 PM"

type CommentController struct {
	posts *repositories.PostRepository
}

func NewCommentController(posts *repositories.PostRepository) *CommentController {
	return &CommentController{posts: posts}
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type CommentResponse struct {
	ID            string `json:"id"`
	Author        string `json:"author"`
	Content       string `json:"content"`
	DateCommented string `json:"date_commented"`
	CommentCount  int64  `json:"comment_count"`
}

func (cc *CommentController) CreateComment(c *gin.Context) {
	userID := c.GetString("user_id")
	slug := c.Param("slug")

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := utils.ValidateCommentInput(req.Content, models.MaxContentLength); len(errs) > 0 {
		utils.SendValidationErrors(c, errs)
		return
	}

	post, err := cc.posts.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load post"})
		return
	}

	comment := models.Comment{
		ID:      uuid.New().String(),
		PostID:  post.ID,
		UserID:  userID,
		Content: req.Content,
	}

	if err := cc.posts.CreateComment(&comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	count, err := cc.posts.CommentCount(post.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count comments"})
		return
	}

	c.JSON(http.StatusCreated, CommentResponse{
		ID:            comment.ID,
		Author:        comment.User.Username,
		Content:       comment.Content,
		DateCommented: comment.CreatedAt.Format(commentTimeFormat),
		CommentCount:  count,
	})
}

func (cc *CommentController) GetComments(c *gin.Context) {
	slug := c.Param("slug")

	post, err := cc.posts.GetBySlug(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	comments, err := cc.posts.ListComments(post.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	for i := range comments {
		comments[i].User.Password = ""
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}
