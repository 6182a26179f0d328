// Package tui provides the interactive Bubble Tea dashboard for fitlog.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/fitlog/internal/cli"
	"github.com/fitlog/internal/metrics"
	"github.com/fitlog/internal/model"
	"github.com/fitlog/internal/tracker"
	"github.com/fitlog/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const refreshInterval = 30 * time.Second

// DataLoadedMsg carries a fresh set of window summaries.
type DataLoadedMsg struct {
	Summaries []metrics.Summary
	Err       error
}

type tickMsg time.Time

// App is the root Bubble Tea model. One tab per time window.
type App struct {
	svc      *tracker.Service
	storeErr error // storage unavailable at launch; dashboard runs degraded

	summaries   []metrics.Summary
	loaded      bool
	loadErr     error // last refresh error; stale data stays on screen
	lastRefresh time.Time

	width     int
	height    int
	activeTab int
	showHelp  bool

	spinner spinner.Model
}

// NewApp creates the dashboard model. A nil service with a non-nil
// openErr launches the degraded view: default goals, no entries, and a
// persistent banner, rather than refusing to start.
func NewApp(svc *tracker.Service, openErr error) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{svc: svc, storeErr: openErr, spinner: sp}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadDataCmd(a.svc, a.storeErr),
		a.spinner.Tick,
		tickCmd(),
	)
}

// loadDataCmd rolls the day over if needed, then aggregates every window
// in one pass so tab switches never wait on the store. Without a store
// it falls back to empty entries and default goals, carrying the open
// error so the banner stays up.
func loadDataCmd(svc *tracker.Service, storeErr error) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return DataLoadedMsg{Summaries: emptySummaries(), Err: storeErr}
		}

		if _, err := svc.ResetDaily(nil); err != nil {
			return DataLoadedMsg{Err: err}
		}

		summaries := make([]metrics.Summary, 0, len(metrics.Windows))
		for _, w := range metrics.Windows {
			s, err := svc.Summary(w)
			if err != nil {
				return DataLoadedMsg{Err: err}
			}
			summaries = append(summaries, s)
		}
		return DataLoadedMsg{Summaries: summaries}
	}
}

func emptySummaries() []metrics.Summary {
	now := time.Now()
	goals := model.DefaultGoals()
	summaries := make([]metrics.Summary, 0, len(metrics.Windows))
	for _, w := range metrics.Windows {
		summaries = append(summaries, metrics.Summarize(nil, goals, w, now))
	}
	return summaries
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case DataLoadedMsg:
		a.loadErr = msg.Err
		if msg.Summaries != nil {
			a.summaries = msg.Summaries
			a.loaded = true
			a.lastRefresh = time.Now()
		}
		return a, nil

	case tickMsg:
		return a, tea.Batch(loadDataCmd(a.svc, a.storeErr), tickCmd())

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "?":
		a.showHelp = !a.showHelp
		return a, nil

	case "tab", "right", "l":
		a.activeTab = (a.activeTab + 1) % len(metrics.Windows)
		return a, nil

	case "shift+tab", "left", "h":
		a.activeTab = (a.activeTab + len(metrics.Windows) - 1) % len(metrics.Windows)
		return a, nil

	case "1", "2", "3", "4":
		a.activeTab = int(msg.String()[0] - '1')
		return a, nil

	case "r":
		return a, loadDataCmd(a.svc, a.storeErr)
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	t := theme.Active

	if !a.loaded && a.loadErr == nil {
		return fmt.Sprintf("\n\n  %s Loading entries...\n", a.spinner.View())
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(a.renderTabBar())
	b.WriteString("\n\n")

	if a.loadErr != nil {
		warn := lipgloss.NewStyle().Foreground(t.Orange)
		b.WriteString(warn.Render(fmt.Sprintf("  refresh failed: %v", a.loadErr)))
		b.WriteString("\n\n")
	}

	if a.loaded {
		s := a.summaries[a.activeTab]
		b.WriteString(a.renderGoals(s))
		b.WriteString("\n")
		b.WriteString(a.renderMoods(s))
		b.WriteString("\n")
	}

	if a.showHelp {
		b.WriteString(a.renderHelp())
	}
	b.WriteString(a.renderStatusBar())

	return b.String()
}

func (a App) renderTabBar() string {
	t := theme.Active
	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	parts := make([]string, 0, len(metrics.Windows))
	for i, w := range metrics.Windows {
		label := fmt.Sprintf("%d %s", i+1, w.Title())
		if i == a.activeTab {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, inactiveStyle.Render(label))
		}
	}
	return " " + strings.Join(parts, dimStyle.Render("  │  "))
}

// renderGoals renders one labeled progress bar per metric.
func (a App) renderGoals(s metrics.Summary) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	barWidth := 30
	if a.width > 0 && a.width < 60 {
		barWidth = a.width - 30
		if barWidth < 10 {
			barWidth = 10
		}
	}

	months := s.Window.Months()
	row := func(label string, typ model.EntryType, total, goal, pct float64) string {
		scaledGoal := goal
		if months > 0 {
			scaledGoal = goal * float64(months)
		}

		bar := progress.New(
			progress.WithSolidFill(string(colorForPct(pct))),
			progress.WithWidth(barWidth),
			progress.WithoutPercentage(),
		)
		bar.EmptyColor = string(t.TextDim)

		fill := pct / 100
		if fill > 1 {
			fill = 1
		}
		if fill < 0 {
			fill = 0
		}

		return fmt.Sprintf("  %s %s %s  %s",
			labelStyle.Render(fmt.Sprintf("%-9s", label)),
			bar.ViewAs(fill),
			valueStyle.Render(fmt.Sprintf("%6s", cli.FormatPercent(pct))),
			labelStyle.Render(fmt.Sprintf("%s / %s",
				cli.FormatAmount(total), cli.FormatQuantity(typ, scaledGoal))),
		)
	}

	var b strings.Builder
	b.WriteString(row("Calories", model.TypeCalories, s.Calories, s.Goals.CalorieGoal, s.CaloriesPct))
	b.WriteString("\n")
	b.WriteString(row("Water", model.TypeWater, s.Water, s.Goals.WaterGoal, s.WaterPct))
	b.WriteString("\n")
	b.WriteString(row("Exercise", model.TypeExercise, s.Exercise, s.Goals.ExerciseGoal, s.ExercisePct))
	b.WriteString("\n")
	return b.String()
}

// renderMoods renders the mood share for the window, one colored bar per
// mood plus the unreported remainder.
func (a App) renderMoods(s metrics.Summary) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	rows := []struct {
		label string
		count int
		pct   float64
		color lipgloss.Color
	}{
		{"Happy", s.Moods.Happy, s.MoodPct.Happy, t.Green},
		{"Neutral", s.Moods.Neutral, s.MoodPct.Neutral, t.Yellow},
		{"Sad", s.Moods.Sad, s.MoodPct.Sad, t.Blue},
		{"Unreported", -1, s.MoodPct.Unreported, t.TextDim},
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(headerStyle.Render("Mood"))
	b.WriteString("\n")

	for _, r := range rows {
		fill := r.pct / 100
		if fill > 1 {
			fill = 1
		}
		if fill < 0 {
			fill = 0
		}
		filled := int(fill * 20)

		barStyle := lipgloss.NewStyle().Foreground(r.color)
		bar := barStyle.Render(strings.Repeat("█", filled)) +
			lipgloss.NewStyle().Foreground(t.TextDim).Render(strings.Repeat("░", 20-filled))

		count := ""
		if r.count >= 0 {
			count = fmt.Sprintf("×%d", r.count)
		}
		b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-11s", r.label)),
			bar,
			labelStyle.Render(fmt.Sprintf("%6s", cli.FormatPercent(r.pct))),
			labelStyle.Render(count),
		))
	}
	return b.String()
}

func (a App) renderHelp() string {
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	return dim.Render("  tab/←→ switch window   1-4 jump   r refresh   ? help   q quit") + "\n"
}

func (a App) renderStatusBar() string {
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	status := "  ? for help"
	if !a.lastRefresh.IsZero() {
		status = fmt.Sprintf("  refreshed %s   ? for help", a.lastRefresh.Format("15:04:05"))
	}
	return dim.Render(status) + "\n"
}

func colorForPct(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 100:
		return t.Green
	case pct >= 50:
		return t.Accent
	default:
		return t.Blue
	}
}
