package notify

import (
	"sync"
	"time"
)

// DefaultBannerTTL is how long a non-sticky banner stays visible.
const DefaultBannerTTL = 30 * time.Second

// Banner keeps the latest alert in memory for the interactive screen to render.
type Banner struct {
	mu      sync.Mutex
	current *Alert
	shownAt time.Time
	ttl     time.Duration
	now     func() time.Time
}

// NewBanner creates a banner whose non-sticky alerts expire after ttl.
func NewBanner(ttl time.Duration) *Banner {
	if ttl <= 0 {
		ttl = DefaultBannerTTL
	}
	return &Banner{ttl: ttl, now: time.Now}
}

// Show replaces the current alert.
func (b *Banner) Show(alert Alert) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = &alert
	b.shownAt = b.now()
	return nil
}

// Dismiss clears the current alert.
func (b *Banner) Dismiss() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = nil
	return nil
}

// Current returns the visible alert, if any.
func (b *Banner) Current() (Alert, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return Alert{}, false
	}
	if !b.current.Sticky && b.now().Sub(b.shownAt) >= b.ttl {
		b.current = nil
		return Alert{}, false
	}
	return *b.current, true
}
