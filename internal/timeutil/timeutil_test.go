package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeAgo(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "just now", TimeAgo(now.Add(-10*time.Second)))
	assert.Equal(t, "5m ago", TimeAgo(now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", TimeAgo(now.Add(-3*time.Hour)))
	assert.Equal(t, "2d ago", TimeAgo(now.Add(-48*time.Hour)))
}
