package timer

import (
	"sync"
	"time"
)

// Scheduler invokes fn every interval until the returned cancel func is called.
// Cancel must not block on a running fn: the controller calls it while holding
// its own lock, and a callback that was already in flight is discarded by the
// controller's run generation check.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

// TickerScheduler runs callbacks from a time.Ticker goroutine, one at a time.
type TickerScheduler struct{}

// Every starts a ticker goroutine
func (TickerScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	var once sync.Once

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()

	return func() {
		once.Do(func() { close(done) })
	}
}
