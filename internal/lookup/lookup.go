// Package lookup opens the reference page about the waiting customs in the user's browser.
package lookup

import (
	"fmt"
	"net/url"

	"github.com/pkg/browser"
)

// Launcher opens URLs externally.
type Launcher struct {
	URL  string
	open func(string) error
}

// New creates a launcher for rawURL.
func New(rawURL string) *Launcher {
	return &Launcher{URL: rawURL, open: browser.OpenURL}
}

// Open validates the URL and hands it to the system browser.
func (l *Launcher) Open() error {
	u, err := url.Parse(l.URL)
	if err != nil {
		return fmt.Errorf("invalid lookup url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid lookup url %q: only http and https are opened", l.URL)
	}
	return l.open(u.String())
}
