package controllers

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Sajidcodez/basketballhub/backend/internal/models"
	"github.com/Sajidcodez/basketballhub/backend/internal/repositories"
)

func testLog() *logrus.Entry {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log.WithField("service", "test")
}

// fakePostRepo is an in-memory PostRepository honoring the gateway
// contract: submit filter, order keys, ErrNotFound on zero matched rows.
type fakePostRepo struct {
	mu          sync.Mutex
	posts       map[uuid.UUID]models.Post
	listCalls   int
	updateCalls int
	failNext    error
}

func newFakePostRepo(posts ...models.Post) *fakePostRepo {
	repo := &fakePostRepo{posts: make(map[uuid.UUID]models.Post)}
	for _, post := range posts {
		repo.posts[post.ID] = post
	}
	return repo
}

func (r *fakePostRepo) takeFailure() error {
	err := r.failNext
	r.failNext = nil
	return err
}

func (r *fakePostRepo) ListPublished(ctx context.Context, order repositories.PostOrder) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	if err := r.takeFailure(); err != nil {
		return nil, err
	}

	var out []models.Post
	for _, post := range r.posts {
		if post.Submit {
			out = append(out, post)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		switch order {
		case repositories.OrderByLikes:
			return out[i].Likes > out[j].Likes
		case repositories.OrderByName:
			return out[i].Name < out[j].Name
		default:
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
	})
	return out, nil
}

func (r *fakePostRepo) GetPostByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.takeFailure(); err != nil {
		return nil, err
	}
	post, ok := r.posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &post, nil
}

func (r *fakePostRepo) CreatePost(ctx context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.takeFailure(); err != nil {
		return err
	}
	post.ID = uuid.New()
	post.CreatedAt = time.Now()
	r.posts[post.ID] = *post
	return nil
}

func (r *fakePostRepo) UpdatePost(ctx context.Context, id uuid.UUID, patch models.PostPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	if err := r.takeFailure(); err != nil {
		return err
	}
	post, ok := r.posts[id]
	if !ok {
		return repositories.ErrNotFound
	}
	if patch.Name != nil {
		post.Name = *patch.Name
	}
	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if patch.Image != nil {
		post.Image = *patch.Image
	}
	if patch.Likes != nil {
		post.Likes = *patch.Likes
	}
	if patch.Submit != nil {
		post.Submit = *patch.Submit
	}
	r.posts[id] = post
	return nil
}

func (r *fakePostRepo) DeletePost(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.takeFailure(); err != nil {
		return err
	}
	if _, ok := r.posts[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) get(id uuid.UUID) models.Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.posts[id]
}

// fakeCommentRepo is an in-memory CommentRepository returning threads
// newest first.
type fakeCommentRepo struct {
	mu          sync.Mutex
	comments    []models.Comment
	listCalls   int
	createCalls int
	failNext    error
}

func (r *fakeCommentRepo) ListByPost(ctx context.Context, postID uuid.UUID) ([]models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	if err := r.failNext; err != nil {
		r.failNext = nil
		return nil, err
	}

	var out []models.Comment
	for _, comment := range r.comments {
		if comment.PostID == postID {
			out = append(out, comment)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeCommentRepo) CreateComment(ctx context.Context, comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	if err := r.failNext; err != nil {
		r.failNext = nil
		return err
	}
	comment.ID = uuid.New()
	comment.CreatedAt = time.Now()
	r.comments = append(r.comments, *comment)
	return nil
}

func publishedPost(name, title, content string, likes int, createdAt time.Time) models.Post {
	return models.Post{
		ID:        uuid.New(),
		Name:      name,
		Title:     title,
		Content:   content,
		Likes:     likes,
		Submit:    true,
		CreatedAt: createdAt,
	}
}

func draftPost(name, title string) models.Post {
	return models.Post{
		ID:        uuid.New(),
		Name:      name,
		Title:     title,
		Content:   "draft content",
		Submit:    false,
		CreatedAt: time.Now(),
	}
}
