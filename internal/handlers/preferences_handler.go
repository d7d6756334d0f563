package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sajidcodez/basketballhub/backend/internal/preferences"
)

// PreferencesHandler exposes the display preferences and the one-shot
// onboarding flag
type PreferencesHandler struct {
	prefs      *preferences.Store
	onboarding *preferences.Onboarding
}

// NewPreferencesHandler creates a new PreferencesHandler
func NewPreferencesHandler(prefs *preferences.Store, onboarding *preferences.Onboarding) *PreferencesHandler {
	return &PreferencesHandler{prefs: prefs, onboarding: onboarding}
}

// RegisterPreferenceRoutes registers preference and onboarding routes
func (h *PreferencesHandler) RegisterPreferenceRoutes(e *echo.Echo) {
	e.GET("/preferences", h.GetPreferences)
	e.PUT("/preferences/color-scheme", h.SetColorScheme)
	e.POST("/preferences/toggle-images", h.ToggleImages)
	e.POST("/preferences/toggle-layout", h.ToggleLayout)
	e.GET("/onboarding", h.GetOnboarding)
	e.POST("/onboarding/seen", h.MarkOnboardingSeen)
}

// PreferencesView is the settings panel response
type PreferencesView struct {
	Settings preferences.Settings      `json:"settings"`
	Schemes  []preferences.ColorScheme `json:"schemes"`
}

// GetPreferences returns the current settings and the scheme catalog
func (h *PreferencesHandler) GetPreferences(c echo.Context) error {
	return c.JSON(http.StatusOK, PreferencesView{
		Settings: h.prefs.Get(),
		Schemes:  preferences.Schemes(),
	})
}

// SetColorScheme switches the theme; unknown ids leave it unchanged
func (h *PreferencesHandler) SetColorScheme(c echo.Context) error {
	var req struct {
		ID string `json:"id"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	h.prefs.SetColorScheme(c.Request().Context(), req.ID)
	return c.JSON(http.StatusOK, h.prefs.Get())
}

// ToggleImages flips post-image visibility
func (h *PreferencesHandler) ToggleImages(c echo.Context) error {
	h.prefs.ToggleShowPostImages(c.Request().Context())
	return c.JSON(http.StatusOK, h.prefs.Get())
}

// ToggleLayout flips between standard and compact layout
func (h *PreferencesHandler) ToggleLayout(c echo.Context) error {
	h.prefs.ToggleLayoutMode(c.Request().Context())
	return c.JSON(http.StatusOK, h.prefs.Get())
}

// GetOnboarding reports whether the welcome notice was dismissed
func (h *PreferencesHandler) GetOnboarding(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"seen": h.onboarding.HasBeenSeen()})
}

// MarkOnboardingSeen dismisses the welcome notice for good
func (h *PreferencesHandler) MarkOnboardingSeen(c echo.Context) error {
	h.onboarding.MarkSeen(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}
