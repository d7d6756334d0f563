package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment belongs to exactly one post and is immutable once created;
// there is no edit or delete path.
type Comment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PostID     uuid.UUID `gorm:"type:uuid;not null;index" json:"post_id"`
	AuthorName string    `gorm:"type:varchar(100);not null" json:"author_name"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

// CreateCommentRequest defines the request body for commenting on a post
type CreateCommentRequest struct {
	AuthorName string `json:"author_name" validate:"required"`
	Content    string `json:"content" validate:"required"`
}
