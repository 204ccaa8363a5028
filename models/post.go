// File: /models/post.go
package models

import (
	"time"
)

// MaxContentLength caps post and comment bodies.
const MaxContentLength = 280

type Post struct {
	ID            string    `json:"id" gorm:"primaryKey;size:191"`
	UserID        string    `json:"user_id" gorm:"not null;size:191;index"`
	ClubID        *uint     `json:"club_id" gorm:"index"`
	Title         string    `json:"title" gorm:"size:255"`
	Content       string    `json:"content" gorm:"not null;size:280"`
	Slug          string    `json:"slug" gorm:"uniqueIndex;not null;size:100"`
	LikesCount    int       `json:"likes_count" gorm:"default:0"`
	CommentsCount int       `json:"comments_count" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	User     User      `json:"user" gorm:"foreignKey:UserID"`
	Club     *Club     `json:"club,omitempty" gorm:"foreignKey:ClubID"`
	Likes    []Like    `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"not null;size:191;uniqueIndex:uk_likes_post_user"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:uk_likes_post_user"`
	CreatedAt time.Time `json:"created_at"`

	Post Post `json:"-" gorm:"foreignKey:PostID"`
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// FeedResponse carries a page of the feed with pagination metadata
type FeedResponse struct {
	Posts      []Post `json:"posts"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Total      int64  `json:"total"`
	HasMore    bool   `json:"has_more"`
	TotalPages int    `json:"total_pages"`
}
