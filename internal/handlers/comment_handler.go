package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Sajidcodez/basketballhub/backend/internal/controllers"
	"github.com/Sajidcodez/basketballhub/backend/internal/models"
	"github.com/Sajidcodez/basketballhub/backend/internal/timeutil"
)

// CommentHandler serves a post's comment thread
type CommentHandler struct {
	thread *controllers.CommentThreadController
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(thread *controllers.CommentThreadController) *CommentHandler {
	return &CommentHandler{thread: thread}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(e *echo.Echo) {
	e.GET("/posts/:post_id/comments", h.GetComments)
	e.POST("/posts/:post_id/comments", h.CreateComment)
}

// CommentView is a thread entry with its relative timestamp
type CommentView struct {
	models.Comment
	TimeAgo string `json:"time_ago"`
}

// GetComments loads the thread for a post, newest first
func (h *CommentHandler) GetComments(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("post_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	if err := h.thread.Load(c.Request().Context(), postID); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "Failed to load comments")
	}

	return c.JSON(http.StatusOK, h.threadView())
}

// CreateComment appends a comment to the thread. Blank fields are rejected
// before any store call; the stored row comes back at the front of the list.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("post_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	if h.thread.PostID() != postID {
		if err := h.thread.Load(c.Request().Context(), postID); err != nil {
			return echo.NewHTTPError(http.StatusBadGateway, "Failed to load comments")
		}
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	comment, err := h.thread.Add(c.Request().Context(), req.AuthorName, req.Content)
	if err != nil {
		if errors.Is(err, controllers.ErrMissingFields) {
			return echo.NewHTTPError(http.StatusBadRequest, "Please fill in all fields")
		}
		return echo.NewHTTPError(http.StatusBadGateway, "Failed to post comment")
	}
	if comment == nil {
		// A submission is already in flight; this one is suppressed.
		return echo.NewHTTPError(http.StatusConflict, "A comment is already being posted")
	}

	return c.JSON(http.StatusCreated, CommentView{Comment: *comment, TimeAgo: timeutil.TimeAgo(comment.CreatedAt)})
}

func (h *CommentHandler) threadView() []CommentView {
	comments := h.thread.Comments()
	views := make([]CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, CommentView{Comment: comment, TimeAgo: timeutil.TimeAgo(comment.CreatedAt)})
	}
	return views
}
