package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shimmer sweeps a highlight across a headline, one step per frame.
// It is used for the "dairy now" headline once a countdown finishes.
type Shimmer struct {
	Enabled    bool
	WidthRatio float64 // highlight width as a share of the text
	Steps      int     // frames per sweep, pause included
	Pause      int     // frames the highlight stays off the text between sweeps

	frame int
}

// NewShimmer returns a shimmer with the default sweep
func NewShimmer(enabled bool) *Shimmer {
	return &Shimmer{
		Enabled:    enabled,
		WidthRatio: 0.25,
		Steps:      18,
		Pause:      5,
	}
}

// Advance moves to the next frame
func (s *Shimmer) Advance() {
	if !s.Enabled || s.Steps <= 0 {
		return
	}
	s.frame = (s.frame + 1) % s.Steps
}

// Reset puts the highlight back at the start
func (s *Shimmer) Reset() {
	s.frame = 0
}

// center returns the highlight position for text of length n, or false during the pause
func (s *Shimmer) center(n int) (float64, bool) {
	sweep := s.Steps - s.Pause
	if sweep <= 0 || s.frame >= sweep {
		return 0, false
	}
	margin := float64(n) * s.WidthRatio
	travel := float64(n) + 2*margin
	return -margin + travel*float64(s.frame)/float64(sweep-1), true
}

// Render draws text in base with the highlight blended in.
func (s *Shimmer) Render(text, base, highlight string) string {
	baseStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(base)).Bold(true)
	runes := []rune(text)
	if !s.Enabled || len(runes) == 0 {
		return baseStyle.Render(text)
	}
	center, ok := s.center(len(runes))
	if !ok {
		return baseStyle.Render(text)
	}

	hiStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(highlight)).Bold(true)
	sigma := math.Max(1, s.WidthRatio*float64(len(runes))/2)

	var b strings.Builder
	for i, r := range runes {
		dx := float64(i) - center
		if math.Exp(-(dx*dx)/(2*sigma*sigma)) >= 0.5 {
			b.WriteString(hiStyle.Render(string(r)))
		} else {
			b.WriteString(baseStyle.Render(string(r)))
		}
	}
	return b.String()
}
