package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Sajidcodez/basketballhub/backend/internal/models"
)

// CommentRepository defines the interface for comment data operations.
// Comments are append-only; there is no update or delete.
type CommentRepository interface {
	ListByPost(ctx context.Context, postID uuid.UUID) ([]models.Comment, error)
	CreateComment(ctx context.Context, comment *models.Comment) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// ListByPost retrieves all comments for a post, newest first
func (r *PostgresCommentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, transport("list comments", err)
	}
	return comments, nil
}

// CreateComment inserts a new comment, assigning its id and timestamp so
// the caller gets back the stored row
func (r *PostgresCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	comment.ID = uuid.New()
	comment.CreatedAt = time.Now()
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return transport("create comment", err)
	}
	return nil
}
