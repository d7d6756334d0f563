package controllers

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Sajidcodez/basketballhub/backend/internal/models"
	"github.com/Sajidcodez/basketballhub/backend/internal/repositories"
	"github.com/Sajidcodez/basketballhub/backend/internal/timeutil"
)

const (
	previewLength    = 150
	popularThreshold = 5
)

// SortKey selects the feed ordering requested by the user.
type SortKey string

const (
	SortByRecency SortKey = "created_at"
	SortByLikes   SortKey = "likes"
	SortByName    SortKey = "name"
)

func (k SortKey) order() repositories.PostOrder {
	switch k {
	case SortByLikes:
		return repositories.OrderByLikes
	case SortByName:
		return repositories.OrderByName
	default:
		return repositories.OrderByRecency
	}
}

// PostCard is the feed's view of a single post: full content never leaves
// the controller, only the shortened preview does.
type PostCard struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Title   string    `json:"title"`
	Preview string    `json:"preview"`
	Image   *string   `json:"image,omitempty"`
	Likes   int       `json:"likes"`
	Liked   bool      `json:"liked"`
	Popular bool      `json:"popular"`
	TimeAgo string    `json:"time_ago"`
}

// FeedController owns the published-post list, its sort and search state,
// and the optimistic like mutation. One instance serves the session; the
// mutex only guards against the preemptive HTTP server, there is no
// cross-controller sharing.
type FeedController struct {
	mu sync.Mutex

	repo repositories.PostRepository
	log  *logrus.Entry

	posts      []models.Post
	sortKey    SortKey
	searchTerm string
	loading    bool
}

// NewFeedController creates a FeedController with an empty feed sorted by
// recency.
func NewFeedController(repo repositories.PostRepository, log *logrus.Entry) *FeedController {
	return &FeedController{
		repo:    repo,
		log:     log,
		sortKey: SortByRecency,
	}
}

// Load fetches the published posts in the requested order and replaces the
// in-memory sequence. On failure the prior sequence stays untouched and the
// error surfaces as a transient message.
func (f *FeedController) Load(ctx context.Context, key SortKey) error {
	f.mu.Lock()
	f.loading = true
	f.sortKey = key
	f.mu.Unlock()

	posts, err := f.repo.ListPublished(ctx, key.order())

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	if err != nil {
		f.log.WithError(err).Error("failed to load feed")
		return err
	}
	f.posts = posts
	return nil
}

// SetSearchTerm updates the local filter. No refetch happens; the visible
// view is recomputed against the already loaded posts.
func (f *FeedController) SetSearchTerm(term string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchTerm = term
}

// SearchTerm returns the active filter string
func (f *FeedController) SearchTerm() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.searchTerm
}

// SortKey returns the active sort key
func (f *FeedController) SortKey() SortKey {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sortKey
}

// Loading reports whether a fetch is in flight
func (f *FeedController) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Visible returns the loaded posts whose name or title contains the search
// term, case-insensitively. An empty term passes everything through.
func (f *FeedController) Visible() []models.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visibleLocked()
}

func (f *FeedController) visibleLocked() []models.Post {
	term := strings.ToLower(f.searchTerm)
	out := make([]models.Post, 0, len(f.posts))
	for _, post := range f.posts {
		if term == "" ||
			strings.Contains(strings.ToLower(post.Name), term) ||
			strings.Contains(strings.ToLower(post.Title), term) {
			out = append(out, post)
		}
	}
	return out
}

// Cards renders the visible posts for the feed view. Images are stripped
// when the user has them hidden.
func (f *FeedController) Cards(showImages bool) []PostCard {
	visible := f.Visible()
	cards := make([]PostCard, 0, len(visible))
	for _, post := range visible {
		card := PostCard{
			ID:      post.ID,
			Name:    post.Name,
			Title:   post.Title,
			Preview: preview(post.Content),
			Likes:   post.Likes,
			Liked:   post.Likes > 0,
			Popular: post.Likes >= popularThreshold,
			TimeAgo: timeutil.TimeAgo(post.CreatedAt),
		}
		if showImages {
			card.Image = post.Image
		}
		cards = append(cards, card)
	}
	return cards
}

// Like applies the uniform optimistic policy: bump the in-memory counter,
// persist likes+1, and roll the bump back if the write fails. Under a likes
// sort the view re-sorts locally so the feed order tracks the new count.
func (f *FeedController) Like(ctx context.Context, postID uuid.UUID) error {
	f.mu.Lock()
	idx := -1
	for i := range f.posts {
		if f.posts[i].ID == postID {
			idx = i
			break
		}
	}
	if idx < 0 {
		f.mu.Unlock()
		return repositories.ErrNotFound
	}
	f.posts[idx].Likes++
	likes := f.posts[idx].Likes
	f.mu.Unlock()

	err := f.repo.UpdatePost(ctx, postID, models.PostPatch{Likes: &likes})

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		// Roll back the optimistic bump; the record is unchanged store-side.
		for i := range f.posts {
			if f.posts[i].ID == postID {
				f.posts[i].Likes--
				break
			}
		}
		f.log.WithError(err).WithField("post_id", postID).Error("failed to upvote post")
		return err
	}
	if f.sortKey == SortByLikes {
		sort.SliceStable(f.posts, func(i, j int) bool {
			return f.posts[i].Likes > f.posts[j].Likes
		})
	}
	return nil
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength]) + "..."
}
