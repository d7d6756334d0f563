package navigation

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Navigator is the external dispatcher controllers push redirects into.
// A vanished post must redirect the user home, never error-page them, so
// controllers own the decision and the routing layer only executes it.
type Navigator interface {
	GoToFeed()
	GoToPost(id uuid.UUID)
}

// Dispatcher records the most recent destination for the routing layer to
// act on. It doubles as the test double for navigation assertions.
type Dispatcher struct {
	mu   sync.RWMutex
	path string
}

// NewDispatcher creates a Dispatcher with no pending destination
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) GoToFeed() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.path = "/"
}

func (d *Dispatcher) GoToPost(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.path = fmt.Sprintf("/post/%s", id)
}

// Current returns the last requested destination, empty when none
func (d *Dispatcher) Current() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.path
}
