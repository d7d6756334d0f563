package preferences

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

const keyWelcomeSeen = "basketballhub_welcome_seen"

// Onboarding is the one-shot flag gating the first-visit notice. It is
// read once at construction and only ever transitions to seen.
type Onboarding struct {
	mu   sync.RWMutex
	kv   KeyValue
	log  *logrus.Entry
	seen bool
}

// NewOnboarding reads the durable flag; absence means unseen.
func NewOnboarding(ctx context.Context, kv KeyValue, log *logrus.Entry) *Onboarding {
	o := &Onboarding{kv: kv, log: log}
	if raw, err := kv.Get(ctx, keyWelcomeSeen); err == nil {
		o.seen = raw == "true"
	}
	return o
}

// HasBeenSeen reports whether the welcome notice was ever dismissed
func (o *Onboarding) HasBeenSeen() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.seen
}

// MarkSeen permanently records the dismissal. There is no un-seeing.
func (o *Onboarding) MarkSeen(ctx context.Context) {
	o.mu.Lock()
	o.seen = true
	o.mu.Unlock()
	if err := o.kv.Set(ctx, keyWelcomeSeen, "true"); err != nil {
		o.log.WithError(err).Warn("failed to persist onboarding flag")
	}
}
