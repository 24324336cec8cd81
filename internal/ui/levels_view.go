package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flazor/galactic-compass/internal/catalog"
	"github.com/flazor/galactic-compass/internal/state"
)

// LevelsModel renders the motion catalog as a table with per-level
// velocities and directions.
type LevelsModel struct {
	width  int
	height int
	view   state.View
}

// NewLevelsModel creates the levels view.
func NewLevelsModel() LevelsModel {
	return LevelsModel{}
}

// SetSize updates the view dimensions.
func (m LevelsModel) SetSize(width, height int) LevelsModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData stores the latest state for rendering.
func (m LevelsModel) UpdateData(v state.View) LevelsModel {
	m.view = v
	return m
}

// Update implements the sub-model update contract.
func (m LevelsModel) Update(msg tea.Msg) (LevelsModel, tea.Cmd) {
	_ = msg
	return m, nil
}

// View renders the levels table.
func (m LevelsModel) View() string {
	if m.view.Data == nil {
		return "  computing..."
	}

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))

	s := m.view.Data

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-3s %-18s %-28s %12s %9s %9s",
		"LVL", "ID", "NAME", "VEL km/s", "AZ°", "ALT°")))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 84)))
	b.WriteString("\n")

	evaluated := make(map[int]bool)
	for _, v := range s.Vectors {
		evaluated[v.Number] = true
		if v.Failed() {
			b.WriteString(errStyle.Render(fmt.Sprintf("  %-3d %-18s %-28s  failed: %s",
				v.Number, v.ID, v.Name, v.Err)))
			b.WriteString("\n")
			continue
		}
		b.WriteString(rowStyle.Render(fmt.Sprintf("  %-3d %-18s %-28s %12.2f %9.1f %9.1f",
			v.Number, v.ID, v.Name, v.VelocityKmS,
			v.Direction.AzDeg(), v.Direction.AltDeg())))
		b.WriteString("\n")
	}

	// Show out-of-range catalog entries greyed out so the full ladder
	// stays visible at low max levels.
	for _, l := range catalog.All() {
		if evaluated[l.Number] || (s.Reference != nil && s.Reference.Number == l.Number) {
			continue
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %-3d %-18s %-28s %12s", l.Number, l.ID, l.Name, "—")))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 84)))
	b.WriteString("\n")

	if s.Resultant != nil {
		b.WriteString(headerStyle.Render(fmt.Sprintf("  %-51s %12.2f %9.1f %9.1f",
			"RESULTANT", s.Resultant.MagnitudeKmS,
			s.Resultant.Direction.AzDeg(), s.Resultant.Direction.AltDeg())))
		b.WriteString("\n")
	} else {
		b.WriteString(dimStyle.Render("  RESULTANT  (no contributing vectors)"))
		b.WriteString("\n")
	}

	if ref := s.Reference; ref != nil && !ref.Failed() {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %-51s %12.2f %9.1f %9.1f",
			"CMB DIPOLE (reference, not summed)", ref.VelocityKmS,
			ref.Direction.AzDeg(), ref.Direction.AltDeg())))
		b.WriteString("\n")
		if s.Resultant != nil {
			delta := s.Resultant.MagnitudeKmS - ref.VelocityKmS
			b.WriteString(dimStyle.Render(fmt.Sprintf("  resultant vs CMB dipole: %+.1f km/s", delta)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
