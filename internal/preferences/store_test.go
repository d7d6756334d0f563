package preferences

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testLog() *logrus.Entry {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log.WithField("service", "test")
}

func TestStoreDefaults(t *testing.T) {
	store := NewStore(context.Background(), NewMemoryKV(), testLog())

	settings := store.Get()
	assert.Equal(t, "default", settings.ColorScheme.ID)
	assert.True(t, settings.ShowPostImages)
	assert.Equal(t, LayoutStandard, settings.LayoutMode)
}

func TestStoreMalformedValuesFallBack(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	assert.Nil(t, kv.Set(ctx, keyColorScheme, "warriors"))
	assert.Nil(t, kv.Set(ctx, keyShowImages, "not-json"))
	assert.Nil(t, kv.Set(ctx, keyLayoutMode, "sideways"))

	store := NewStore(ctx, kv, testLog())
	settings := store.Get()
	assert.Equal(t, "default", settings.ColorScheme.ID)
	assert.True(t, settings.ShowPostImages)
	assert.Equal(t, LayoutStandard, settings.LayoutMode)
}

func TestStoreUnknownSchemeIsIgnored(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, NewMemoryKV(), testLog())
	store.SetColorScheme(ctx, "lakers")

	store.SetColorScheme(ctx, "warriors")
	assert.Equal(t, "lakers", store.Get().ColorScheme.ID)
}

func TestStoreToggleLayoutRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, NewMemoryKV(), testLog())

	store.ToggleLayoutMode(ctx)
	assert.Equal(t, LayoutCompact, store.Get().LayoutMode)
	store.ToggleLayoutMode(ctx)
	assert.Equal(t, LayoutStandard, store.Get().LayoutMode)
}

func TestStorePersistsAcrossLoads(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	store := NewStore(ctx, kv, testLog())
	store.SetColorScheme(ctx, "bulls")
	store.ToggleShowPostImages(ctx)
	store.ToggleLayoutMode(ctx)

	// A fresh session sees the persisted values.
	reloaded := NewStore(ctx, kv, testLog())
	settings := reloaded.Get()
	assert.Equal(t, "bulls", settings.ColorScheme.ID)
	assert.False(t, settings.ShowPostImages)
	assert.Equal(t, LayoutCompact, settings.LayoutMode)
}

func TestSchemeCatalog(t *testing.T) {
	schemes := Schemes()
	assert.Len(t, schemes, 4)
	assert.Equal(t, "default", schemes[0].ID)
	ids := map[string]bool{}
	for _, scheme := range schemes {
		ids[scheme.ID] = true
		assert.NotEmpty(t, scheme.Name)
		assert.NotEmpty(t, scheme.Primary)
		assert.NotEmpty(t, scheme.NavGradient)
	}
	assert.True(t, ids["lakers"] && ids["bulls"] && ids["celtics"])
}

func TestOnboardingFlag(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	onboarding := NewOnboarding(ctx, kv, testLog())
	assert.False(t, onboarding.HasBeenSeen())

	onboarding.MarkSeen(ctx)
	assert.True(t, onboarding.HasBeenSeen())

	// A new session still sees the dismissal.
	fresh := NewOnboarding(ctx, kv, testLog())
	assert.True(t, fresh.HasBeenSeen())
}
