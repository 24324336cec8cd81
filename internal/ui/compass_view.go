package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flazor/galactic-compass/internal/state"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// levelGlyphs maps catalog level numbers to plot markers.
var levelGlyphs = map[int]rune{
	1: '1', 2: '2', 3: '3', 4: '4',
	5: '5', 6: '6', 7: '7', 8: '8',
}

// CompassModel renders the sky as an azimuth/altitude grid with each
// motion vector plotted at its apparent direction.
type CompassModel struct {
	width  int
	height int
	view   state.View
}

// NewCompassModel creates the compass view.
func NewCompassModel() CompassModel {
	return CompassModel{}
}

// SetSize updates the view dimensions.
func (m CompassModel) SetSize(width, height int) CompassModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData stores the latest state for rendering.
func (m CompassModel) UpdateData(v state.View) CompassModel {
	m.view = v
	return m
}

// Update implements the sub-model update contract.
func (m CompassModel) Update(msg tea.Msg) (CompassModel, tea.Cmd) {
	_ = msg
	return m, nil
}

// View renders the compass grid.
func (m CompassModel) View() string {
	if m.width < 20 || m.height < 8 {
		return "  (terminal too small)"
	}
	if m.view.Data == nil {
		return "  computing..."
	}

	gridW := m.width - 6
	gridH := m.height - 5 // leave room for axis labels and the sparkline
	if gridH < 5 {
		gridH = 5
	}

	grid := make([][]rune, gridH)
	for i := range grid {
		grid[i] = make([]rune, gridW)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	// Horizon line with cardinal ticks.
	horizonRow := gridH / 2
	for j := 0; j < gridW; j++ {
		grid[horizonRow][j] = '·'
	}
	for az, label := range map[float64]rune{0: 'N', 90: 'E', 180: 'S', 270: 'W'} {
		col, _ := project(az, 0, gridW, gridH)
		grid[horizonRow][col] = label
	}

	s := m.view.Data
	for _, v := range s.Vectors {
		if v.Failed() {
			continue
		}
		col, row := project(v.Direction.AzDeg(), v.Direction.AltDeg(), gridW, gridH)
		if g, ok := levelGlyphs[v.Number]; ok {
			grid[row][col] = g
		}
	}
	if s.Reference != nil && !s.Reference.Failed() {
		col, row := project(s.Reference.Direction.AzDeg(), s.Reference.Direction.AltDeg(), gridW, gridH)
		grid[row][col] = '○'
	}
	if s.Resultant != nil {
		col, row := project(s.Resultant.Direction.AzDeg(), s.Resultant.Direction.AltDeg(), gridW, gridH)
		grid[row][col] = '✦'
	}

	gridStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#C77DFF"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var b strings.Builder
	b.WriteString(dimStyle.Render("  +90°"))
	b.WriteString("\n")
	for i, row := range grid {
		prefix := "      "
		if i == horizonRow {
			prefix = dimStyle.Render("   0° ")
		}
		b.WriteString(prefix)
		b.WriteString(gridStyle.Render(string(row)))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("  -90°   ✦ resultant   ○ CMB dipole   1-8 motion levels"))
	b.WriteString("\n")
	b.WriteString(m.renderSparkline(gridW))
	return b.String()
}

// renderSparkline draws the recent resultant-magnitude history.
func (m CompassModel) renderSparkline(width int) string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	sparkStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6"))

	hist := m.view.History
	if len(hist) == 0 {
		return dimStyle.Render("  resultant history: (none)")
	}
	if len(hist) > width {
		hist = hist[len(hist)-width:]
	}

	min, max := hist[0], hist[0]
	for _, v := range hist {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}

	var sb strings.Builder
	for _, v := range hist {
		sb.WriteRune(sparkRune(v, min, max))
	}
	return dimStyle.Render(fmt.Sprintf("  resultant %6.1f km/s ", hist[len(hist)-1])) +
		sparkStyle.Render(sb.String())
}

// project maps an azimuth/altitude pair onto grid coordinates. Azimuth
// runs left to right over [0, 360); altitude +90 at the top row, -90 at
// the bottom.
func project(azDeg, altDeg float64, gridW, gridH int) (col, row int) {
	az := math.Mod(azDeg, 360)
	if az < 0 {
		az += 360
	}
	col = int(az / 360 * float64(gridW))
	if col >= gridW {
		col = gridW - 1
	}

	alt := math.Max(-90, math.Min(90, altDeg))
	row = int((90 - alt) / 180 * float64(gridH-1))
	if row >= gridH {
		row = gridH - 1
	}
	return col, row
}

// sparkRune picks the bar rune for a value within [min, max].
func sparkRune(v, min, max float64) rune {
	if max <= min {
		return sparkRunes[len(sparkRunes)/2]
	}
	idx := int((v - min) / (max - min) * float64(len(sparkRunes)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sparkRunes) {
		idx = len(sparkRunes) - 1
	}
	return sparkRunes[idx]
}
