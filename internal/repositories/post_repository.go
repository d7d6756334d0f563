package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Sajidcodez/basketballhub/backend/internal/models"
)

// PostOrder selects the store-side ordering for the published feed.
type PostOrder string

const (
	OrderByRecency PostOrder = "created_at"
	OrderByLikes   PostOrder = "likes"
	OrderByName    PostOrder = "name"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	ListPublished(ctx context.Context, order PostOrder) ([]models.Post, error)
	GetPostByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	CreatePost(ctx context.Context, post *models.Post) error
	UpdatePost(ctx context.Context, id uuid.UUID, patch models.PostPatch) error
	DeletePost(ctx context.Context, id uuid.UUID) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// ListPublished retrieves every post with submit=true in the given order.
// Drafts never leave the store regardless of ordering.
func (r *PostgresPostRepository) ListPublished(ctx context.Context, order PostOrder) ([]models.Post, error) {
	var posts []models.Post
	query := r.db.WithContext(ctx).Where("submit = ?", true)

	switch order {
	case OrderByLikes:
		query = query.Order("likes DESC")
	case OrderByName:
		query = query.Order("name ASC")
	default:
		query = query.Order("created_at DESC")
	}

	if err := query.Find(&posts).Error; err != nil {
		return nil, transport("list posts", err)
	}
	return posts, nil
}

// GetPostByID retrieves exactly one post or reports ErrNotFound
func (r *PostgresPostRepository) GetPostByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, transport("get post", err)
	}
	return &post, nil
}

// CreatePost inserts a new post, assigning its id and creation timestamp
func (r *PostgresPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = uuid.New()
	post.CreatedAt = time.Now()
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return transport("create post", err)
	}
	return nil
}

// UpdatePost applies a patch to the row matched by id. Zero matched rows
// reports ErrNotFound rather than an empty success.
func (r *PostgresPostRepository) UpdatePost(ctx context.Context, id uuid.UUID, patch models.PostPatch) error {
	columns := map[string]interface{}{}
	if patch.Name != nil {
		columns["name"] = *patch.Name
	}
	if patch.Title != nil {
		columns["title"] = *patch.Title
	}
	if patch.Content != nil {
		columns["content"] = *patch.Content
	}
	if patch.Image != nil {
		columns["image"] = *patch.Image
	}
	if patch.Likes != nil {
		columns["likes"] = *patch.Likes
	}
	if patch.Submit != nil {
		columns["submit"] = *patch.Submit
	}
	if len(columns) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Updates(columns)
	if res.Error != nil {
		return transport("update post", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePost deletes the row matched by id, reporting ErrNotFound when
// nothing was there to delete
func (r *PostgresPostRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", id)
	if res.Error != nil {
		return transport("delete post", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
