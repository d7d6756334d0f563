package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a GOAT pick: a user's argument for why a player is the greatest
// of all time. Submit gates feed visibility; a post with Submit=false is a
// draft and never shows up in the public feed.
type Post struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Image     *string   `gorm:"type:text" json:"image"` // nil when no image, never empty string
	Likes     int       `gorm:"default:0;not null" json:"likes"`
	Submit    bool      `gorm:"default:true;not null" json:"submit"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Name    string `json:"name" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Image   string `json:"image,omitempty" validate:"omitempty,url"`
}

// PostPatch carries the columns an update may touch. Fields are pointers so
// callers can leave columns untouched; Image is doubly indirect because the
// column itself is nullable.
type PostPatch struct {
	Name    *string
	Title   *string
	Content *string
	Image   **string
	Likes   *int
	Submit  *bool
}
