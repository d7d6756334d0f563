package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sajidcodez/basketballhub/backend/internal/controllers"
	"github.com/Sajidcodez/basketballhub/backend/internal/preferences"
)

// FeedHandler serves the published feed with its sort and search state
type FeedHandler struct {
	feed  *controllers.FeedController
	prefs *preferences.Store
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(feed *controllers.FeedController, prefs *preferences.Store) *FeedHandler {
	return &FeedHandler{feed: feed, prefs: prefs}
}

// RegisterFeedRoutes registers the feed route
func (h *FeedHandler) RegisterFeedRoutes(e *echo.Echo) {
	e.GET("/", h.GetFeed)
}

// FeedView is the feed response. Error carries the transient message when
// a reload failed; Posts then still holds the previously loaded state.
type FeedView struct {
	Posts  []controllers.PostCard `json:"posts"`
	Sort   controllers.SortKey    `json:"sort"`
	Search string                 `json:"search"`
	Layout string                 `json:"layout"`
	Error  string                 `json:"error,omitempty"`
}

// GetFeed reloads the published posts in the requested order and applies
// the local search filter
func (h *FeedHandler) GetFeed(c echo.Context) error {
	sortKey := controllers.SortByRecency
	switch c.QueryParam("sort") {
	case "likes":
		sortKey = controllers.SortByLikes
	case "name":
		sortKey = controllers.SortByName
	}
	h.feed.SetSearchTerm(c.QueryParam("search"))

	view := FeedView{
		Sort:   sortKey,
		Search: h.feed.SearchTerm(),
		Layout: h.prefs.Get().LayoutMode,
	}
	if err := h.feed.Load(c.Request().Context(), sortKey); err != nil {
		view.Error = "Failed to load posts. Please try again."
	}
	view.Posts = h.feed.Cards(h.prefs.Get().ShowPostImages)

	return c.JSON(http.StatusOK, view)
}
