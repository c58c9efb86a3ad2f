package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sliicy/meatdairy/internal/app"
	"github.com/sliicy/meatdairy/internal/notify"
	"github.com/sliicy/meatdairy/internal/timer"
)

// RunTimerTUI shows the countdown screen until the user leaves it.
// Leaving does not stop the countdown; it stays persisted and a pending alert is raised.
func RunTimerTUI(a *app.App, opts Options) error {
	a.Foreground()

	p := tea.NewProgram(NewTimerModel(a, opts), tea.WithAltScreen())

	// Send blocks until the program reads the message, and updates can fire
	// from inside Update, so deliver them off the caller's goroutine.
	a.OnUpdate(func(timer.State) { go p.Send(stateMsg{}) })
	defer a.OnUpdate(nil)

	if _, err := p.Run(); err != nil {
		return err
	}

	a.Background()

	s := a.State()
	switch s.Status {
	case timer.StatusRunning:
		fmt.Printf("\n⏳ %s %s (%s left)\n", notify.TitleDairyAt, timer.FormatClockTime(s.EndsAt), s.RemainingText())
		fmt.Printf("   Use 'meatdairy watch' to be alerted, 'meatdairy status' to check, or 'meatdairy stop' to cancel.\n")
	case timer.StatusFinished:
		fmt.Printf("\n🥛 %s\n", notify.TitleDairyNow)
	}
	return nil
}
