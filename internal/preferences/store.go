package preferences

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	keyColorScheme = "basketballhub_colorScheme"
	keyShowImages  = "basketballhub_showImages"
	keyLayoutMode  = "basketballhub_layoutMode"
)

const (
	LayoutStandard = "standard"
	LayoutCompact  = "compact"
)

// Settings is the snapshot handed to views.
type Settings struct {
	ColorScheme    ColorScheme `json:"colorScheme"`
	ShowPostImages bool        `json:"showPostImages"`
	LayoutMode     string      `json:"layoutMode"`
}

// Store owns the process-wide display preferences. It reads durable state
// once at construction and persists synchronously on every setter, so the
// in-memory snapshot and the stored one never diverge from the caller's
// point of view.
type Store struct {
	mu  sync.RWMutex
	kv  KeyValue
	log *logrus.Entry

	scheme     ColorScheme
	showImages bool
	layoutMode string
}

// NewStore loads preferences from the KeyValue capability. Missing or
// malformed values fall back to defaults and never fail construction.
func NewStore(ctx context.Context, kv KeyValue, log *logrus.Entry) *Store {
	s := &Store{
		kv:         kv,
		log:        log,
		scheme:     colorSchemes[DefaultSchemeID],
		showImages: true,
		layoutMode: LayoutStandard,
	}

	if raw, err := kv.Get(ctx, keyColorScheme); err == nil {
		if scheme, ok := colorSchemes[raw]; ok {
			s.scheme = scheme
		}
	}
	if raw, err := kv.Get(ctx, keyShowImages); err == nil {
		var show bool
		if err := json.Unmarshal([]byte(raw), &show); err == nil {
			s.showImages = show
		}
	}
	if raw, err := kv.Get(ctx, keyLayoutMode); err == nil {
		if raw == LayoutStandard || raw == LayoutCompact {
			s.layoutMode = raw
		}
	}

	return s
}

// Get returns the current preference snapshot
func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Settings{
		ColorScheme:    s.scheme,
		ShowPostImages: s.showImages,
		LayoutMode:     s.layoutMode,
	}
}

// SetColorScheme switches the active scheme. Unrecognized ids are ignored
// silently; the current scheme stays active.
func (s *Store) SetColorScheme(ctx context.Context, id string) {
	scheme, ok := colorSchemes[id]
	if !ok {
		return
	}

	s.mu.Lock()
	s.scheme = scheme
	s.mu.Unlock()
	s.persist(ctx, keyColorScheme, scheme.ID)
}

// ToggleShowPostImages flips image visibility
func (s *Store) ToggleShowPostImages(ctx context.Context) {
	s.mu.Lock()
	s.showImages = !s.showImages
	encoded, _ := json.Marshal(s.showImages)
	s.mu.Unlock()
	s.persist(ctx, keyShowImages, string(encoded))
}

// ToggleLayoutMode flips between standard and compact
func (s *Store) ToggleLayoutMode(ctx context.Context) {
	s.mu.Lock()
	if s.layoutMode == LayoutStandard {
		s.layoutMode = LayoutCompact
	} else {
		s.layoutMode = LayoutStandard
	}
	mode := s.layoutMode
	s.mu.Unlock()
	s.persist(ctx, keyLayoutMode, mode)
}

func (s *Store) persist(ctx context.Context, key, value string) {
	if err := s.kv.Set(ctx, key, value); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("failed to persist preference")
	}
}
