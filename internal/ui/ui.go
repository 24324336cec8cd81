// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flazor/galactic-compass/internal/state"
	"github.com/flazor/galactic-compass/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewCompass ViewMode = iota
	ViewLevels
)

const viewCount = 2

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// DataUpdateMsg signals a freshly computed snapshot.
	DataUpdateMsg struct {
		View state.View
	}

	// ErrorMsg signals a compute error.
	ErrorMsg struct {
		Error error
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	state *state.Manager

	viewMode ViewMode
	width    int
	height   int
	ready    bool

	compass CompassModel
	levels  LevelsModel

	view state.View
}

// New creates the root UI model.
func New(stateMgr *state.Manager) Model {
	return Model{
		state:   stateMgr,
		compass: NewCompassModel(),
		levels:  NewLevelsModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "1", "c":
			m.viewMode = ViewCompass
		case "2", "l":
			m.viewMode = ViewLevels
		case "tab":
			m.viewMode = (m.viewMode + 1) % viewCount
		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header takes ~5 lines, footer ~2.
		contentHeight := msg.Height - 7
		m.compass = m.compass.SetSize(msg.Width, contentHeight)
		m.levels = m.levels.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())
		m.view = m.state.View()
		m.compass = m.compass.UpdateData(m.view)
		m.levels = m.levels.UpdateData(m.view)

	case DataUpdateMsg:
		m.view = msg.View
		m.compass = m.compass.UpdateData(m.view)
		m.levels = m.levels.UpdateData(m.view)

	case ErrorMsg:
		m.view.LastError = msg.Error

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewCompass:
		m.compass, cmd = m.compass.Update(msg)
	case ViewLevels:
		m.levels, cmd = m.levels.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewCompass:
		content = m.compass.View()
	case ViewLevels:
		content = m.levels.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")).Bold(true)
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(title.Render("  ✦ galactic-compass"))
	b.WriteString(muted.Render(fmt.Sprintf("  v%s · your motion through the cosmos", version.Version)))
	b.WriteString("\n")

	if m.view.Data != nil {
		s := m.view.Data
		b.WriteString(muted.Render(fmt.Sprintf("  observer %.4f°, %.4f° · %s UTC · levels 1-%d",
			s.Observer.LatDeg, s.Observer.LonDeg,
			s.Time.Format("2006-01-02 15:04:05"), s.MaxLevel)))
		b.WriteString("\n")
		b.WriteString(muted.Render(fmt.Sprintf("  sun az %.1f° alt %.1f° · moon az %.1f° alt %.1f° · galactic center az %.1f° alt %.1f° roll %.1f°",
			s.Sun.AzDeg(), s.Sun.AltDeg(), s.Moon.AzDeg(), s.Moon.AltDeg(),
			s.Galactic.AzDeg, s.Galactic.AltDeg, s.Galactic.RollDeg)))
		b.WriteString("\n")
	} else {
		b.WriteString(muted.Render("  waiting for first computation..."))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Compass", "[2] Levels"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))

	var status string
	switch {
	case m.view.LastError != nil:
		status = errorStyle.Render("ERROR: " + m.view.LastError.Error())
	case m.view.Data != nil && m.view.Data.Resultant != nil:
		r := m.view.Data.Resultant
		status = dimStyle.Render(fmt.Sprintf("resultant %.1f km/s → az %.1f° alt %.1f°",
			r.MagnitudeKmS, r.Direction.AzDeg(), r.Direction.AltDeg()))
	default:
		status = dimStyle.Render("no resultant yet")
	}

	help := dimStyle.Render("tab: switch view | q: quit")
	return "  " + status + "  " + dimStyle.Render("|") + "  " + help
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// SendDataUpdate creates a command that sends a data update message.
func SendDataUpdate(v state.View) tea.Cmd {
	return func() tea.Msg {
		return DataUpdateMsg{View: v}
	}
}

// SendError creates a command that sends an error message.
func SendError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Error: err}
	}
}
