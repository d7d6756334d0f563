package controllers

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Sajidcodez/basketballhub/backend/internal/models"
	"github.com/Sajidcodez/basketballhub/backend/internal/repositories"
)

// CommentThreadController owns a post's comment list. Loads replace the
// whole list; a successful add prepends the stored row instead of
// re-fetching, which is safe because the list is sorted newest-first and
// the new comment is by definition the newest.
type CommentThreadController struct {
	mu sync.Mutex

	repo repositories.CommentRepository
	log  *logrus.Entry

	postID     uuid.UUID
	comments   []models.Comment
	loading    bool
	submitting bool
}

// NewCommentThreadController creates an empty thread controller
func NewCommentThreadController(repo repositories.CommentRepository, log *logrus.Entry) *CommentThreadController {
	return &CommentThreadController{repo: repo, log: log}
}

// Load fetches the post's comments newest-first and replaces the local
// list. On failure the prior list stays untouched.
func (c *CommentThreadController) Load(ctx context.Context, postID uuid.UUID) error {
	c.mu.Lock()
	c.loading = true
	c.postID = postID
	c.mu.Unlock()

	comments, err := c.repo.ListByPost(ctx, postID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.log.WithError(err).WithField("post_id", postID).Error("failed to load comments")
		return err
	}
	c.comments = comments
	return nil
}

// Comments returns the current thread, newest first
func (c *CommentThreadController) Comments() []models.Comment {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Comment, len(c.comments))
	copy(out, c.comments)
	return out
}

// PostID returns the post this thread is attached to
func (c *CommentThreadController) PostID() uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.postID
}

// Loading reports whether a fetch is in flight
func (c *CommentThreadController) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Submitting reports whether an add is in flight; the form stays disabled
// while it is.
func (c *CommentThreadController) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// Add submits a new comment. Both fields are required after trimming or
// the add is rejected locally with zero gateway calls. A second attempt
// while one is in flight is suppressed, not queued. On success the stored
// row is prepended to the local list.
func (c *CommentThreadController) Add(ctx context.Context, authorName, content string) (*models.Comment, error) {
	authorName = strings.TrimSpace(authorName)
	content = strings.TrimSpace(content)
	if authorName == "" || content == "" {
		return nil, ErrMissingFields
	}

	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return nil, nil
	}
	c.submitting = true
	postID := c.postID
	c.mu.Unlock()

	comment := &models.Comment{
		PostID:     postID,
		AuthorName: authorName,
		Content:    content,
	}
	err := c.repo.CreateComment(ctx, comment)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false
	if err != nil {
		c.log.WithError(err).WithField("post_id", postID).Error("failed to post comment")
		return nil, err
	}
	c.comments = append([]models.Comment{*comment}, c.comments...)
	return comment, nil
}
