package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Screen rows outside the two panes.
const (
	// headerRows covers the header, command bar and input row.
	headerRows = 3

	// footerRows covers the detail line.
	footerRows = 1
)

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops
	// secondary fields.
	LayoutCompactWidth = 100

	// fallbackWidth and fallbackHeight apply before the first WindowSizeMsg.
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Timing constants.
const (
	// DefaultUIInterval is how often the store is polled while loading.
	DefaultUIInterval = 200 * time.Millisecond
)

// screenSize returns the terminal size, or a default before it is known.
func (m Model) screenSize() (int, int) {
	if !m.ready || m.width <= 0 || m.height <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return m.width, m.height
}

// paneWidths splits the screen between the country list and the groups pane.
func (m Model) paneWidths() (list, groups int) {
	width, _ := m.screenSize()
	list = width / 2
	return list, width - list
}

// paneHeight is the outer height of both panes.
func (m Model) paneHeight() int {
	_, height := m.screenSize()
	return max(height-headerRows-footerRows, 3)
}

// listRows is the number of country rows visible inside the list pane.
func (m Model) listRows() int {
	return m.paneHeight() - 2
}

// resize fits the groups viewport to the current pane size.
func (m *Model) resize() {
	_, groupsWidth := m.paneWidths()
	m.groupsViewport.Width = max(groupsWidth-4, 1)
	m.groupsViewport.Height = max(m.paneHeight()-2, 1)
	m.refreshGroups()
	m.scrollListToCursor()
}

// clampCursor keeps the cursor inside the filtered list.
func (m *Model) clampCursor() {
	n := 0
	if m.picker != nil {
		n = len(m.picker.Visible())
	}
	if m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// scrollListToCursor adjusts the list offset so the cursor row is visible.
func (m *Model) scrollListToCursor() {
	rows := m.listRows()
	if rows <= 0 {
		return
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+rows {
		m.listOffset = m.cursor - rows + 1
	}
	if m.listOffset < 0 {
		m.listOffset = 0
	}
}

// listRowAt maps a screen cell to an index into the filtered list.
func (m Model) listRowAt(x, y int) (int, bool) {
	if m.picker == nil {
		return 0, false
	}
	listWidth, _ := m.paneWidths()
	if x <= 0 || x >= listWidth-1 {
		return 0, false
	}
	top := headerRows + 1 // pane border
	rel := y - top
	if rel < 0 || rel >= m.listRows() {
		return 0, false
	}
	idx := m.listOffset + rel
	if idx >= len(m.picker.Visible()) {
		return 0, false
	}
	return idx, true
}

// inGroupsPane reports whether column x falls inside the groups pane.
func (m Model) inGroupsPane(x int) bool {
	listWidth, _ := m.paneWidths()
	return x >= listWidth
}

// renderTitledBox renders content in a box with the title embedded in the top border:
// ┌─── Title ───┐
// When focused is true, uses BorderFocus color and FocusBg background.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 0))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().
		Width(innerWidth).
		MaxWidth(innerWidth).
		Background(lipgloss.Color(bgColorStr))

	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	lines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lines = append(lines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(lines, "\n") + "\n" + bottomBorder
}
