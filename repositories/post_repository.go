// File: /repositories/post_repository.go
package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bloom-api/models"
	"bloom-api/utils"
)

// slugRetryLimit bounds how many lost insert races the allocator absorbs
// before giving up. Each retry rescans, so hitting the limit means the
// database is rejecting inserts for some other reason.
const slugRetryLimit = 5

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// allocateSlug finds a slug not currently used by any post: the base slug
// itself, then base-1, base-2, ... This is a best-effort fast path; the
// unique index on posts.slug is the final authority.
func (r *PostRepository) allocateSlug(base string) string {
	slug := base
	counter := 1

	for {
		var count int64
		r.db.Model(&models.Post{}).Where("slug = ?", slug).Count(&count)
		if count == 0 {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
		counter++
	}
}

// Create allocates a unique slug from the post's content and inserts the
// post. A duplicate-slug insert (two requests racing for the same base)
// is retried with a fresh allocation rather than surfaced.
func (r *PostRepository) Create(post *models.Post) error {
	base := utils.Slugify(post.Content)
	if base == "" {
		// Content with no alphanumeric characters at all
		base = "post"
	}

	for attempt := 0; attempt < slugRetryLimit; attempt++ {
		post.Slug = r.allocateSlug(base)
		err := r.db.Create(post).Error
		if err == nil {
			return nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		return err
	}

	return fmt.Errorf("could not allocate a unique slug for base %q", base)
}

// GetBySlug returns the post with its author and club loaded.
func (r *PostRepository) GetBySlug(slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("User").Preload("Club").Where("slug = ?", slug).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ToggleLike flips the (user, post) like state and reports the resulting
// state plus the post's current like count. The existence check is not
// atomic; a duplicate-key violation from a concurrent double submit is
// treated as "already liked".
func (r *PostRepository) ToggleLike(userID string, post *models.Post) (bool, int64, error) {
	liked := false

	var existing models.Like
	err := r.db.Where("post_id = ? AND user_id = ?", post.ID, userID).First(&existing).Error
	switch {
	case err == nil:
		if err := r.db.Delete(&existing).Error; err != nil {
			return false, 0, err
		}
		r.db.Model(&models.Post{}).Where("id = ?", post.ID).
			UpdateColumn("likes_count", gorm.Expr("likes_count - ?", 1))

	case errors.Is(err, gorm.ErrRecordNotFound):
		like := models.Like{PostID: post.ID, UserID: userID}
		createErr := r.db.Create(&like).Error
		if createErr != nil && !errors.Is(createErr, gorm.ErrDuplicatedKey) {
			return false, 0, createErr
		}
		if createErr == nil {
			r.db.Model(&models.Post{}).Where("id = ?", post.ID).
				UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1))
		}
		liked = true

	default:
		return false, 0, err
	}

	count, err := r.LikeCount(post.ID)
	if err != nil {
		return false, 0, err
	}
	return liked, count, nil
}

// LikeCount reads the like count from the likes table rather than the
// denormalized counter column.
func (r *PostRepository) LikeCount(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// ListComments returns a post's comments oldest-first with authors loaded.
func (r *PostRepository) ListComments(postID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").Where("post_id = ?", postID).
		Order("created_at ASC").Find(&comments).Error
	return comments, err
}

// CreateComment inserts the comment, bumps the post's comment counter and
// reloads the comment with its author attached.
func (r *PostRepository) CreateComment(comment *models.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return err
	}
	r.db.Model(&models.Post{}).Where("id = ?", comment.PostID).
		UpdateColumn("comments_count", gorm.Expr("comments_count + ?", 1))
	return r.db.Preload("User").First(comment, "id = ?", comment.ID).Error
}

// CommentCount counts a post's comments from the comments table.
func (r *PostRepository) CommentCount(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// Feed returns a page of posts newest-first plus the total matching count.
// clubID restricts to one club; memberProfileID restricts to posts in clubs
// the profile belongs to. Both nil means the full feed.
func (r *PostRepository) Feed(clubID *uint, memberProfileID *uint, offset, limit int) ([]models.Post, int64, error) {
	var total int64
	if err := r.applyFeedFilters(r.db.Model(&models.Post{}), clubID, memberProfileID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := r.applyFeedFilters(r.db.Preload("User").Preload("Club"), clubID, memberProfileID).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *PostRepository) applyFeedFilters(tx *gorm.DB, clubID *uint, memberProfileID *uint) *gorm.DB {
	if clubID != nil {
		tx = tx.Where("club_id = ?", *clubID)
	}
	if memberProfileID != nil {
		memberClubs := r.db.Table("profile_clubs").Select("club_id").
			Where("profile_id = ?", *memberProfileID)
		tx = tx.Where("club_id IN (?)", memberClubs)
	}
	return tx
}
