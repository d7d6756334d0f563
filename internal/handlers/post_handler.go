package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Sajidcodez/basketballhub/backend/internal/controllers"
	"github.com/Sajidcodez/basketballhub/backend/internal/models"
	"github.com/Sajidcodez/basketballhub/backend/internal/preferences"
	"github.com/Sajidcodez/basketballhub/backend/internal/repositories"
	"github.com/Sajidcodez/basketballhub/backend/internal/timeutil"
)

// PostHandler handles post creation and the single-post detail lifecycle
type PostHandler struct {
	postRepository repositories.PostRepository
	detail         *controllers.DetailController
	feed           *controllers.FeedController
	prefs          *preferences.Store
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	postRepo repositories.PostRepository,
	detail *controllers.DetailController,
	feed *controllers.FeedController,
	prefs *preferences.Store,
) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		detail:         detail,
		feed:           feed,
		prefs:          prefs,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(e *echo.Echo) {
	e.POST("/posts", h.CreatePost)
	e.GET("/posts/:id", h.GetPost)
	e.POST("/posts/:id/like", h.LikePost)
	e.PUT("/posts/:id", h.UpdatePost)
	e.PUT("/posts/:id/draft", h.SaveDraft)
	e.DELETE("/posts/:id", h.DeletePost)
}

// DetailView is the detail page response
type DetailView struct {
	Post          *models.Post `json:"post"`
	TimeAgo       string       `json:"time_ago"`
	Status        string       `json:"status"`
	Popular       bool         `json:"popular"`
	LikeAnimating bool         `json:"like_animating"`
	ShowImage     bool         `json:"show_image"`
}

// CreatePost creates a new published post. Name, title and content are
// required after trimming; a blank image is stored as null.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	req.Image = strings.TrimSpace(req.Image)
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := &models.Post{
		Name:    req.Name,
		Title:   req.Title,
		Content: req.Content,
		Likes:   0,
		Submit:  true,
	}
	if req.Image != "" {
		post.Image = &req.Image
	}

	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "Error creating post")
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPost loads a post into the detail controller. A vanished post
// redirects to the feed instead of rendering an error page.
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := h.detail.Load(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "Error loading post")
	}

	post := h.detail.Post()
	if post == nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	return c.JSON(http.StatusOK, h.detailView(post))
}

// LikePost upvotes a post. The loaded detail post gets the optimistic
// increment with its animation window; anything else goes through the feed
// controller. Both apply the same optimistic policy.
func (h *PostHandler) LikePost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	ctx := c.Request().Context()

	if post := h.detail.Post(); post != nil && post.ID == id {
		if err := h.detail.Like(ctx); err != nil {
			return echo.NewHTTPError(http.StatusBadGateway, "Error updating likes")
		}
		return c.JSON(http.StatusOK, h.detailView(h.detail.Post()))
	}

	if err := h.feed.Like(ctx, id); err != nil {
		if repositories.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusBadGateway, "Error updating likes")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "liked"})
}

// UpdatePost applies a validated edit and republishes the post
func (h *PostHandler) UpdatePost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var input controllers.EditInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	ctx := c.Request().Context()
	if err := h.ensureLoaded(c, id); err != nil {
		return err
	}
	if h.detail.Post() == nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := h.detail.Edit(ctx, input); err != nil {
		if fieldErrs, ok := controllers.AsFieldErrors(err); ok {
			return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{"errors": fieldErrs})
		}
		return echo.NewHTTPError(http.StatusBadGateway, "Error updating post")
	}

	post := h.detail.Post()
	if post == nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return c.JSON(http.StatusOK, h.detailView(post))
}

// SaveDraft stores the form as an unpublished draft, filling placeholders
// for anything left blank
func (h *PostHandler) SaveDraft(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var input controllers.EditInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	ctx := c.Request().Context()
	if err := h.ensureLoaded(c, id); err != nil {
		return err
	}
	if h.detail.Post() == nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := h.detail.SaveDraft(ctx, input); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "Error saving draft")
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// DeletePost deletes the post and sends the user back to the feed
func (h *PostHandler) DeletePost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	if err := h.ensureLoaded(c, id); err != nil {
		return err
	}
	if err := h.detail.Remove(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "Error deleting post")
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *PostHandler) ensureLoaded(c echo.Context, id uuid.UUID) error {
	if post := h.detail.Post(); post != nil && post.ID == id {
		return nil
	}
	if err := h.detail.Load(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "Error loading post")
	}
	return nil
}

func (h *PostHandler) detailView(post *models.Post) DetailView {
	status := "Draft"
	if post.Submit {
		status = "Published"
	}
	return DetailView{
		Post:          post,
		TimeAgo:       timeutil.TimeAgo(post.CreatedAt),
		Status:        status,
		Popular:       post.Likes >= 5,
		LikeAnimating: h.detail.LikeAnimating(),
		ShowImage:     h.prefs.Get().ShowPostImages,
	}
}
