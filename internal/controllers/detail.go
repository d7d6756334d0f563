package controllers

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Sajidcodez/basketballhub/backend/internal/models"
	"github.com/Sajidcodez/basketballhub/backend/internal/navigation"
	"github.com/Sajidcodez/basketballhub/backend/internal/repositories"
)

const likeAnimationWindow = 600 * time.Millisecond

// Placeholder values saveDraft substitutes for blank fields; drafts are
// allowed to be incomplete.
const (
	draftName    = "Unnamed Player"
	draftTitle   = "Untitled Post"
	draftContent = "No content yet..."
)

const minContentLength = 10

// EditInput carries the raw edit-form values. Fields are trimmed before
// validation and persistence.
type EditInput struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
}

// DetailController owns a single post's lifecycle: load, like, edit, save
// draft, delete, plus the cosmetic like-animation window. A post that has
// vanished redirects home instead of error-paging the user.
type DetailController struct {
	mu sync.Mutex

	repo repositories.PostRepository
	nav  navigation.Navigator
	log  *logrus.Entry

	post          *models.Post
	loading       bool
	likeAnimating bool
	animTimer     *time.Timer
	animWindow    time.Duration
}

// NewDetailController creates a DetailController with no post loaded
func NewDetailController(repo repositories.PostRepository, nav navigation.Navigator, log *logrus.Entry) *DetailController {
	return &DetailController{
		repo:       repo,
		nav:        nav,
		log:        log,
		animWindow: likeAnimationWindow,
	}
}

// Load fetches the post by id. A missing row silently redirects to the
// feed; only transport failures surface as errors.
func (d *DetailController) Load(ctx context.Context, id uuid.UUID) error {
	d.mu.Lock()
	d.loading = true
	d.mu.Unlock()

	post, err := d.repo.GetPostByID(ctx, id)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.loading = false
	if err != nil {
		if repositories.IsNotFound(err) {
			d.post = nil
			d.nav.GoToFeed()
			return nil
		}
		d.log.WithError(err).WithField("post_id", id).Error("failed to load post")
		return err
	}
	d.post = post
	return nil
}

// Post returns the loaded post, nil when absent
func (d *DetailController) Post() *models.Post {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.post == nil {
		return nil
	}
	copied := *d.post
	return &copied
}

// Loading reports whether a fetch is in flight
func (d *DetailController) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}

// LikeAnimating reports whether the cosmetic window is open
func (d *DetailController) LikeAnimating() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.likeAnimating
}

// Like optimistically bumps the in-memory counter, persists likes+1, and
// opens the self-clearing animation window. Re-triggering before the window
// closes restarts it; animations never stack.
func (d *DetailController) Like(ctx context.Context) error {
	d.mu.Lock()
	if d.post == nil {
		d.mu.Unlock()
		return nil
	}
	d.post.Likes++
	likes := d.post.Likes
	id := d.post.ID

	d.likeAnimating = true
	if d.animTimer != nil {
		d.animTimer.Stop()
	}
	d.animTimer = time.AfterFunc(d.animWindow, func() {
		d.mu.Lock()
		d.likeAnimating = false
		d.mu.Unlock()
	})
	d.mu.Unlock()

	if err := d.repo.UpdatePost(ctx, id, models.PostPatch{Likes: &likes}); err != nil {
		d.mu.Lock()
		if d.post != nil && d.post.ID == id {
			d.post.Likes--
		}
		d.mu.Unlock()
		d.log.WithError(err).WithField("post_id", id).Error("failed to upvote post")
		return err
	}
	return nil
}

// Edit validates the input locally and persists the full patch with
// submit=true. Validation failures are field-scoped and make no gateway
// call.
func (d *DetailController) Edit(ctx context.Context, input EditInput) error {
	if errs := validateEdit(input); len(errs) > 0 {
		return errs
	}

	d.mu.Lock()
	if d.post == nil {
		d.mu.Unlock()
		return repositories.ErrNotFound
	}
	id := d.post.ID
	d.mu.Unlock()

	name := strings.TrimSpace(input.Name)
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	image := imageOrNil(input.Image)
	submit := true

	patch := models.PostPatch{
		Name:    &name,
		Title:   &title,
		Content: &content,
		Image:   &image,
		Submit:  &submit,
	}
	if err := d.applyPatch(ctx, id, patch); err != nil {
		return err
	}
	d.nav.GoToPost(id)
	return nil
}

// SaveDraft persists the form with placeholder values for anything blank
// and always sets submit=false. It deliberately skips the strict edit
// validation: drafts may be incomplete.
func (d *DetailController) SaveDraft(ctx context.Context, input EditInput) error {
	d.mu.Lock()
	if d.post == nil {
		d.mu.Unlock()
		return repositories.ErrNotFound
	}
	id := d.post.ID
	d.mu.Unlock()

	name := orDefault(input.Name, draftName)
	title := orDefault(input.Title, draftTitle)
	content := orDefault(input.Content, draftContent)
	image := imageOrNil(input.Image)
	submit := false

	patch := models.PostPatch{
		Name:    &name,
		Title:   &title,
		Content: &content,
		Image:   &image,
		Submit:  &submit,
	}
	if err := d.applyPatch(ctx, id, patch); err != nil {
		return err
	}
	d.nav.GoToFeed()
	return nil
}

// Remove deletes the post and navigates to the feed unconditionally. An
// already-deleted post is not an error; the destination is the same.
func (d *DetailController) Remove(ctx context.Context) error {
	d.mu.Lock()
	if d.post == nil {
		d.mu.Unlock()
		d.nav.GoToFeed()
		return nil
	}
	id := d.post.ID
	d.mu.Unlock()

	err := d.repo.DeletePost(ctx, id)

	d.mu.Lock()
	d.post = nil
	d.mu.Unlock()
	d.nav.GoToFeed()

	if err != nil && !repositories.IsNotFound(err) {
		d.log.WithError(err).WithField("post_id", id).Error("failed to delete post")
		return err
	}
	return nil
}

func (d *DetailController) applyPatch(ctx context.Context, id uuid.UUID, patch models.PostPatch) error {
	err := d.repo.UpdatePost(ctx, id, patch)
	if err != nil {
		if repositories.IsNotFound(err) {
			d.mu.Lock()
			d.post = nil
			d.mu.Unlock()
			d.nav.GoToFeed()
			return nil
		}
		d.log.WithError(err).WithField("post_id", id).Error("failed to update post")
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.post != nil && d.post.ID == id {
		if patch.Name != nil {
			d.post.Name = *patch.Name
		}
		if patch.Title != nil {
			d.post.Title = *patch.Title
		}
		if patch.Content != nil {
			d.post.Content = *patch.Content
		}
		if patch.Image != nil {
			d.post.Image = *patch.Image
		}
		if patch.Submit != nil {
			d.post.Submit = *patch.Submit
		}
	}
	return nil
}

func validateEdit(input EditInput) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(input.Name) == "" {
		errs["name"] = "Player name is required"
	}
	if strings.TrimSpace(input.Title) == "" {
		errs["title"] = "Post title is required"
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		errs["content"] = "Please explain why this player is the GOAT"
	} else if len(content) < minContentLength {
		errs["content"] = "Please provide a more detailed explanation (at least 10 characters)"
	}
	if image := strings.TrimSpace(input.Image); image != "" && !isValidURL(image) {
		errs["image"] = "Please enter a valid image URL"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func isValidURL(raw string) bool {
	parsed, err := url.ParseRequestURI(raw)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}

func imageOrNil(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func orDefault(raw, fallback string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
