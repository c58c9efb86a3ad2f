package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/sliicy/meatdairy/internal/app"
	"github.com/sliicy/meatdairy/internal/notify"
	"github.com/sliicy/meatdairy/internal/presets"
	"github.com/sliicy/meatdairy/internal/timer"
)

const (
	refreshInterval = time.Second
	frameInterval   = 120 * time.Millisecond
)

// stateMsg is sent whenever the countdown ticks or changes status
type stateMsg struct{}

// refreshMsg re-reads the persisted countdown so other processes' changes show up
type refreshMsg struct{}

// frameMsg drives the finished headline animation
type frameMsg struct{}

// Opener opens the reference page about the waiting customs
type Opener interface {
	Open() error
}

// Options configures the countdown screen
type Options struct {
	Banner  *notify.Banner // alerts raised while the screen is open
	Lookup  Opener
	Locale  language.Tag
	Animate bool
}

// TimerModel is the countdown screen: a preset picker next to the big clock
type TimerModel struct {
	app     *app.App
	banner  *notify.Banner
	lookup  Opener
	locale  language.Tag
	keys    keyMap
	help    help.Model
	bar     progress.Model
	shimmer *Shimmer

	width  int
	height int

	state  timer.State
	prefs  app.Preferences
	cursor int

	prompt   string // last refusal or failure, cleared by the next successful action
	quitting bool
}

// NewTimerModel creates the countdown screen for a
func NewTimerModel(a *app.App, opts Options) TimerModel {
	m := TimerModel{
		app:     a,
		banner:  opts.Banner,
		lookup:  opts.Lookup,
		locale:  opts.Locale,
		keys:    defaultKeyMap(),
		help:    help.New(),
		bar:     progress.New(progress.WithGradient(ColorMeat, ColorDairy), progress.WithoutPercentage()),
		shimmer: NewShimmer(opts.Animate),
	}
	m.refresh()
	return m
}

func refreshTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg { return refreshMsg{} })
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

// Init starts the refresh and animation tickers
func (m TimerModel) Init() tea.Cmd {
	if m.shimmer.Enabled {
		return tea.Batch(refreshTick(), frameTick())
	}
	return refreshTick()
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bar.Width = min(bigClockWidth, max(msg.Width-8, 10))
		return m, nil

	case stateMsg:
		m.refresh()
		return m, nil

	case refreshMsg:
		if err := m.app.Sync(); err != nil {
			m.prompt = err.Error()
		}
		m.refresh()
		if m.quitting {
			return m, nil
		}
		return m, refreshTick()

	case frameMsg:
		if m.state.Status == timer.StatusFinished {
			m.shimmer.Advance()
		}
		if m.quitting {
			return m, nil
		}
		return m, frameTick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
		case key.Matches(msg, m.keys.Down):
			m.move(1)
		case key.Matches(msg, m.keys.Toggle):
			m.toggle()
		case key.Matches(msg, m.keys.Notify):
			m.toggleNotify()
		case key.Matches(msg, m.keys.Lookup):
			m.openLookup()
		}
		return m, nil
	}

	return m, nil
}

// refresh pulls the current countdown and preferences from the app
func (m *TimerModel) refresh() {
	m.state = m.app.State()
	m.prefs = m.app.Preferences()

	if m.state.Status == timer.StatusIdle {
		m.cursor = m.prefs.SelectedPresetIndex
	} else {
		m.cursor = m.state.PresetIndex
	}
	m.keys.lockPicker(m.state.Status == timer.StatusRunning)
}

func (m *TimerModel) move(delta int) {
	if m.state.Status == timer.StatusRunning {
		m.prompt = app.ErrRunning.Error()
		return
	}
	n := m.app.Table().Len()
	next := ((m.cursor+delta)%n + n) % n
	if err := m.app.SelectPreset(next); err != nil {
		m.prompt = err.Error()
		return
	}
	m.prompt = ""
	m.refresh()
	m.cursor = next
}

func (m *TimerModel) toggle() {
	switch m.state.Status {
	case timer.StatusRunning:
		m.app.Stop()
		m.prompt = ""
	case timer.StatusFinished:
		m.app.Acknowledge()
		m.shimmer.Reset()
		if m.banner != nil {
			_ = m.banner.Dismiss()
		}
		m.prompt = ""
	default:
		if _, err := m.app.Start(); err != nil {
			m.prompt = err.Error()
		} else {
			m.prompt = ""
		}
	}
	m.refresh()
}

func (m *TimerModel) toggleNotify() {
	if err := m.app.SetNotify(!m.prefs.NotifyOnComplete); err != nil {
		m.prompt = err.Error()
		return
	}
	m.prompt = ""
	m.refresh()
}

func (m *TimerModel) openLookup() {
	if m.lookup == nil {
		return
	}
	if err := m.lookup.Open(); err != nil {
		m.prompt = err.Error()
		return
	}
	m.prompt = ""
}

// View renders the countdown screen
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Align(lipgloss.Center).
		Width(m.width).
		Render(m.help.View(m.keys))
	contentHeight := m.height - lipgloss.Height(helpBar) - 1

	if m.width < 90 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderCountdownPanel(m.width, contentHeight, true),
			helpBar,
		)
	}

	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth - 2

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderCountdownPanel(leftWidth, contentHeight, false),
		"  ",
		m.renderPickerPanel(rightWidth, contentHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, helpBar)
}

func centered(width int) lipgloss.Style {
	return lipgloss.NewStyle().Align(lipgloss.Center).Width(width)
}

// selected returns the preset shown on the clock: the running one, or the picker's
func (m TimerModel) selected() presets.Preset {
	if m.state.Status != timer.StatusIdle {
		return m.state.Preset
	}
	p, _ := m.app.Table().At(m.cursor)
	return p
}

func (m TimerModel) renderCountdownPanel(width, height int, compact bool) string {
	var components []string

	header := centered(width).
		Foreground(lipgloss.Color(ColorAccentLight)).
		Bold(true).
		Render("🥩  MEAT ▸ DAIRY  🥛")
	components = append(components, header)

	components = append(components, centered(width).Render(m.headline()))

	clockText, clockColor := m.clockFace()
	clockLines := strings.Split(renderBigClock(clockText, clockColor), "\n")
	for i, line := range clockLines {
		clockLines[i] = centered(width).Render(line)
	}
	components = append(components, strings.Join(clockLines, "\n"))

	components = append(components, centered(width).Render(m.bar.ViewAs(m.state.Progress())))

	caption := centered(width).
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Render(m.caption())
	components = append(components, caption)

	if compact {
		components = append(components, centered(width).Render(m.renderCompactPicker()))
	}

	sound := "off"
	if m.prefs.NotifyOnComplete {
		sound = "on"
	}
	components = append(components, centered(width).
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Render("🔔 Sound on finish: "+sound))

	if banner := m.renderBanner(width); banner != "" {
		components = append(components, banner)
	}
	if m.prompt != "" {
		components = append(components, centered(width).
			Foreground(lipgloss.Color(ColorError)).
			Bold(true).
			Render("⚠ "+capitalize(m.prompt)))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(components, "\n\n"))
}

func (m TimerModel) headline() string {
	switch m.state.Status {
	case timer.StatusRunning:
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Bold(true).
			Render(notify.TitleDairyAt + " " + timer.FormatClockTime(m.state.EndsAt))
	case timer.StatusFinished:
		return m.shimmer.Render(notify.TitleDairyNow, ColorSuccess, ColorDairy)
	default:
		p := m.selected()
		color := ColorPrimaryText
		if p.IsPlaceholder() {
			color = ColorDisabledText
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(p.Label)
	}
}

func (m TimerModel) clockFace() (string, string) {
	switch m.state.Status {
	case timer.StatusRunning:
		return m.state.RemainingText(), ColorPrimaryText
	case timer.StatusFinished:
		return timer.FormatRemaining(0), ColorSuccess
	default:
		return timer.FormatRemaining(m.selected().Duration), ColorDisabledText
	}
}

func (m TimerModel) caption() string {
	switch m.state.Status {
	case timer.StatusRunning:
		return fmt.Sprintf("%s · started at %s", m.state.Preset.Label, timer.FormatClockTime(m.state.StartedAt))
	case timer.StatusFinished:
		return timer.Pluralize(m.state.Preset.Label, m.locale) + " elapsed since " + timer.FormatClockTime(m.state.StartedAt) + ". Press space to reset."
	default:
		if m.selected().IsPlaceholder() {
			return "Pick your minhag with ↑/↓, then press space"
		}
		return "Press space to start waiting"
	}
}

func (m TimerModel) renderBanner(width int) string {
	if m.banner == nil {
		return ""
	}
	alert, ok := m.banner.Current()
	if !ok {
		return ""
	}
	text := lipgloss.NewStyle().Bold(true).Render(alert.Title)
	if alert.Body != "" {
		text += "\n" + alert.Body
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorWarning)).
		Align(lipgloss.Center).
		Padding(0, 1).
		Width(min(width-4, 56)).
		Render(text)
}

func (m TimerModel) renderCompactPicker() string {
	color := ColorAccentLight
	if m.state.Status == timer.StatusRunning {
		color = ColorDisabledText
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Render("◀ " + m.selected().Label + " ▶")
}

func (m TimerModel) renderPickerPanel(width, height int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Width(width-12).
		Padding(0, 1)
	b.WriteString(title.Render("Minhagim"))
	b.WriteString("\n\n")

	locked := m.state.Status == timer.StatusRunning
	for i, p := range m.app.Table().All() {
		marker := "  "
		labelColor := ColorSecondaryText
		if i == m.cursor {
			marker = "▸ "
			labelColor = ColorAccentLight
		}
		if p.IsPlaceholder() || (locked && i != m.cursor) {
			labelColor = ColorDisabledText
		}

		row := lipgloss.NewStyle().Foreground(lipgloss.Color(labelColor)).Bold(i == m.cursor).Render(marker + p.Label)
		b.WriteString(row)
		b.WriteString("\n")
		if p.Custom != "" {
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDisabledText)).
				Italic(true).
				PaddingLeft(4).
				Render(p.Custom))
			b.WriteString("\n")
		}
	}

	if locked {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Italic(true).
			Render("Stop the countdown to pick another minhag"))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(2, 2).
		Render(b.String())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
