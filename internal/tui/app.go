// Package tui provides the interactive Bubble Tea dashboard for sipli.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"sipli/internal/snapshot"
	"sipli/internal/store"
	"sipli/internal/tui/theme"
)

const (
	tabOverview = iota
	tabHistory
	tabProfile
	tabCount
)

var tabNames = [tabCount]string{"Overview", "History", "Profile"}

// refreshInterval keeps the dashboard current while idle; every tick
// re-reads the shared state, same as the widget process.
const refreshInterval = time.Minute

// timeNow is a test seam.
var timeNow = time.Now

// RefreshMsg is sent on the periodic refresh tick.
type RefreshMsg time.Time

// App is the root Bubble Tea model.
type App struct {
	store *store.Store
	asm   *snapshot.Assembler

	snap    snapshot.Snapshot
	history []dayTotal

	width     int
	height    int
	activeTab int

	historyDays int
	help        help.Model

	profileForm *huh.Form
	// Pointer so form inputs survive model value copies.
	profileVals *profileValues
	formErr     error
}

// NewApp creates the dashboard model over the given store.
func NewApp(s *store.Store, historyDays int) App {
	if historyDays <= 0 {
		historyDays = 14
	}
	return App{
		store:       s,
		asm:         snapshot.New(s, nil),
		historyDays: historyDays,
		help:        help.New(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return RefreshMsg(timeNow()) },
		tickRefresh(),
	)
}

func tickRefresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return RefreshMsg(t)
	})
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case RefreshMsg:
		a.refresh(time.Time(msg))
		return a, tickRefresh()

	case tea.KeyMsg:
		// Let an open profile form consume keys first.
		if a.activeTab == tabProfile && a.profileForm != nil {
			if msg.String() == "esc" {
				a.profileForm = nil
				return a, nil
			}
			return a.updateProfileForm(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.NextTab):
			a.activeTab = (a.activeTab + 1) % tabCount
			return a, nil
		case key.Matches(msg, keys.PrevTab):
			a.activeTab = (a.activeTab + tabCount - 1) % tabCount
			return a, nil
		case key.Matches(msg, keys.Refresh):
			a.refresh(timeNow())
			return a, nil
		case key.Matches(msg, keys.Edit):
			if a.activeTab == tabProfile {
				return a.openProfileForm()
			}
		}
		switch msg.String() {
		case "1", "2", "3":
			a.activeTab = int(msg.String()[0] - '1')
			return a, nil
		}
	}

	if a.activeTab == tabProfile && a.profileForm != nil {
		return a.updateProfileForm(msg)
	}
	return a, nil
}

func (a *App) refresh(now time.Time) {
	a.snap = a.asm.Build(now)
	a.history = a.buildHistory(now)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(a.renderTabs())
	b.WriteString("\n\n")

	switch a.activeTab {
	case tabHistory:
		b.WriteString(a.renderHistory())
	case tabProfile:
		b.WriteString(a.renderProfile())
	default:
		b.WriteString(a.renderOverview())
	}

	b.WriteString("\n  ")
	b.WriteString(a.help.View(keys))
	return b.String()
}

func (a App) renderTabs() string {
	t := theme.Active
	active := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	inactive := lipgloss.NewStyle().Foreground(t.TextMuted)

	parts := make([]string, 0, tabCount)
	for i, name := range tabNames {
		label := fmt.Sprintf(" %d %s ", i+1, name)
		if i == a.activeTab {
			parts = append(parts, active.Render(label))
		} else {
			parts = append(parts, inactive.Render(label))
		}
	}
	return "  " + strings.Join(parts, lipgloss.NewStyle().Foreground(t.Border).Render("│"))
}
