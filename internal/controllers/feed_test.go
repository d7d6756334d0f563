package controllers

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Sajidcodez/basketballhub/backend/internal/repositories"
)

func TestFeedLoadExcludesDrafts(t *testing.T) {
	now := time.Now()
	published := publishedPost("Kobe Bryant", "Mamba mentality", "content", 2, now)
	draft := draftPost("LeBron James", "Unfinished take")
	repo := newFakePostRepo(published, draft)
	feed := NewFeedController(repo, testLog())

	for _, key := range []SortKey{SortByRecency, SortByLikes, SortByName} {
		err := feed.Load(context.Background(), key)
		assert.Nil(t, err)
		visible := feed.Visible()
		assert.Len(t, visible, 1)
		assert.Equal(t, published.ID, visible[0].ID)
	}
}

func TestFeedLoadOrdering(t *testing.T) {
	now := time.Now()
	posts := []struct {
		name  string
		likes int
		age   time.Duration
	}{
		{"Michael Jordan", 9, 3 * time.Hour},
		{"Kobe Bryant", 4, time.Hour},
		{"LeBron James", 7, 2 * time.Hour},
	}
	repo := newFakePostRepo()
	for _, p := range posts {
		post := publishedPost(p.name, "title", "content", p.likes, now.Add(-p.age))
		repo.posts[post.ID] = post
	}
	feed := NewFeedController(repo, testLog())
	ctx := context.Background()

	assert.Nil(t, feed.Load(ctx, SortByLikes))
	likesView := feed.Visible()
	for i := 1; i < len(likesView); i++ {
		assert.GreaterOrEqual(t, likesView[i-1].Likes, likesView[i].Likes)
	}

	assert.Nil(t, feed.Load(ctx, SortByName))
	nameView := feed.Visible()
	for i := 1; i < len(nameView); i++ {
		assert.LessOrEqual(t, nameView[i-1].Name, nameView[i].Name)
	}

	assert.Nil(t, feed.Load(ctx, SortByRecency))
	recencyView := feed.Visible()
	for i := 1; i < len(recencyView); i++ {
		assert.False(t, recencyView[i-1].CreatedAt.Before(recencyView[i].CreatedAt))
	}
}

func TestFeedSearchFilter(t *testing.T) {
	now := time.Now()
	kobe := publishedPost("Kobe Bryant", "The Mamba", "content", 0, now)
	lebron := publishedPost("LeBron James", "The King", "content", 0, now)
	repo := newFakePostRepo(kobe, lebron)
	feed := NewFeedController(repo, testLog())
	assert.Nil(t, feed.Load(context.Background(), SortByRecency))

	feed.SetSearchTerm("kobe")
	visible := feed.Visible()
	assert.Len(t, visible, 1)
	assert.Equal(t, "Kobe Bryant", visible[0].Name)

	// Reapplying the same term changes nothing.
	feed.SetSearchTerm("kobe")
	assert.Equal(t, visible, feed.Visible())

	// Title matches count too.
	feed.SetSearchTerm("KING")
	visible = feed.Visible()
	assert.Len(t, visible, 1)
	assert.Equal(t, "LeBron James", visible[0].Name)

	feed.SetSearchTerm("")
	assert.Len(t, feed.Visible(), 2)
}

func TestFeedSearchDoesNotRefetch(t *testing.T) {
	repo := newFakePostRepo(publishedPost("Kobe Bryant", "title", "content", 0, time.Now()))
	feed := NewFeedController(repo, testLog())
	assert.Nil(t, feed.Load(context.Background(), SortByRecency))
	calls := repo.listCalls

	feed.SetSearchTerm("kobe")
	feed.Visible()
	feed.Cards(true)
	assert.Equal(t, calls, repo.listCalls)
}

func TestFeedLoadFailureKeepsPriorState(t *testing.T) {
	post := publishedPost("Kobe Bryant", "title", "content", 0, time.Now())
	repo := newFakePostRepo(post)
	feed := NewFeedController(repo, testLog())
	ctx := context.Background()
	assert.Nil(t, feed.Load(ctx, SortByRecency))

	repo.failNext = &repositories.TransportError{Op: "list posts", Err: assert.AnError}
	err := feed.Load(ctx, SortByRecency)
	assert.NotNil(t, err)
	assert.Len(t, feed.Visible(), 1)
	assert.False(t, feed.Loading())
}

func TestFeedLikePersists(t *testing.T) {
	post := publishedPost("Kobe Bryant", "title", "content", 3, time.Now())
	repo := newFakePostRepo(post)
	feed := NewFeedController(repo, testLog())
	ctx := context.Background()
	assert.Nil(t, feed.Load(ctx, SortByRecency))

	assert.Nil(t, feed.Like(ctx, post.ID))
	assert.Equal(t, 4, feed.Visible()[0].Likes)
	assert.Equal(t, 4, repo.get(post.ID).Likes)

	// A reload reflects the persisted value.
	assert.Nil(t, feed.Load(ctx, SortByRecency))
	assert.Equal(t, 4, feed.Visible()[0].Likes)
}

func TestFeedLikeReordersUnderLikesSort(t *testing.T) {
	now := time.Now()
	second := publishedPost("Kobe Bryant", "title", "content", 2, now)
	first := publishedPost("Michael Jordan", "title", "content", 3, now)
	repo := newFakePostRepo(first, second)
	feed := NewFeedController(repo, testLog())
	ctx := context.Background()
	assert.Nil(t, feed.Load(ctx, SortByLikes))

	// Two likes push the trailing post to the top.
	assert.Nil(t, feed.Like(ctx, second.ID))
	assert.Nil(t, feed.Like(ctx, second.ID))
	visible := feed.Visible()
	assert.Equal(t, second.ID, visible[0].ID)
	assert.Equal(t, 4, visible[0].Likes)
}

func TestFeedLikeRollsBackOnFailure(t *testing.T) {
	post := publishedPost("Kobe Bryant", "title", "content", 3, time.Now())
	repo := newFakePostRepo(post)
	feed := NewFeedController(repo, testLog())
	ctx := context.Background()
	assert.Nil(t, feed.Load(ctx, SortByRecency))

	repo.failNext = &repositories.TransportError{Op: "update post", Err: assert.AnError}
	err := feed.Like(ctx, post.ID)
	assert.NotNil(t, err)
	assert.Equal(t, 3, feed.Visible()[0].Likes)
	assert.Equal(t, 3, repo.get(post.ID).Likes)
}

func TestFeedCards(t *testing.T) {
	long := strings.Repeat("a", 200)
	image := "https://example.com/kobe.jpg"
	post := publishedPost("Kobe Bryant", "title", long, 5, time.Now())
	post.Image = &image
	short := publishedPost("Tim Duncan", "title", "short take", 0, time.Now())
	repo := newFakePostRepo(post, short)
	feed := NewFeedController(repo, testLog())
	assert.Nil(t, feed.Load(context.Background(), SortByLikes))

	cards := feed.Cards(true)
	assert.Len(t, cards, 2)
	assert.Equal(t, strings.Repeat("a", 150)+"...", cards[0].Preview)
	assert.True(t, cards[0].Liked)
	assert.True(t, cards[0].Popular)
	assert.Equal(t, &image, cards[0].Image)

	assert.Equal(t, "short take", cards[1].Preview)
	assert.False(t, cards[1].Liked)
	assert.False(t, cards[1].Popular)

	// Hidden images are stripped from the view only.
	hidden := feed.Cards(false)
	assert.Nil(t, hidden[0].Image)
}

func TestFeedLikeUnknownPost(t *testing.T) {
	repo := newFakePostRepo()
	feed := NewFeedController(repo, testLog())
	err := feed.Like(context.Background(), publishedPost("x", "y", "z", 0, time.Now()).ID)
	assert.True(t, repositories.IsNotFound(err))
}
