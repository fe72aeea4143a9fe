package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/passport/internal/countries"
)

// renderCountryList renders the "Filtered Countries" pane.
func (m Model) renderCountryList(width, height int) string {
	focused := m.focus == focusList
	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}

	visible := m.picker.Visible()
	title := "Filtered Countries"
	if strings.TrimSpace(m.picker.FilterText()) != "" {
		title = fmt.Sprintf("Filtered Countries (%d/%d)", len(visible), m.picker.Len())
	}

	var content string
	switch {
	case strings.TrimSpace(m.picker.FilterText()) == "":
		content = m.renderListHint("Type a name to list countries", width-2, bgColor)
	case len(visible) == 0:
		content = m.renderListHint("No matches", width-2, bgColor)
	default:
		content = m.renderCountryRows(visible, width-2, height-2, bgColor)
	}
	return m.renderTitledBox(title, content, width, height, focused)
}

func (m Model) renderListHint(text string, width int, bgColor string) string {
	styles := m.theme.Styles()
	return NewBgStyle(bgColor).FillLine(NewBgStyle(bgColor).Render(text, styles.MutedText), width)
}

// renderCountryRows renders the visible window of the filtered list.
func (m Model) renderCountryRows(visible []countries.Country, width, rows int, bgColor string) string {
	end := min(m.listOffset+rows, len(visible))
	lines := make([]string, 0, end-m.listOffset)
	for i := m.listOffset; i < end; i++ {
		lines = append(lines, m.formatCountryRow(visible[i], width, bgColor, i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

// formatCountryRow formats one row as "› SE  Sweden". Selected countries are
// painted with the current highlight color; the cursor row uses the theme's
// cursor colors unless it is highlighted.
func (m Model) formatCountryRow(c countries.Country, width int, bgColor string, isCursor bool) string {
	styles := m.theme.Styles()

	rowBg := bgColor
	codeStyle := styles.MutedText
	nameStyle := styles.Text
	if color, ok := m.picker.Highlight(c); ok {
		rowBg = color.Hex
		hl := styles.HighlightStyle(color)
		codeStyle = hl
		nameStyle = hl.Bold(true)
	} else if isCursor && m.focus == focusList {
		rowBg = m.theme.CursorBg
		codeStyle = styles.Cursor
		nameStyle = styles.Cursor
	}
	bg := NewBgStyle(rowBg)

	marker := "  "
	if isCursor {
		marker = "› "
	}

	nameWidth := max(width-len(marker)-4, 1)
	content := bg.Render(marker, nameStyle) +
		bg.Render(padRight(c.Code, 3), codeStyle) + bg.Space() +
		bg.Render(truncate(c.Name, nameWidth), nameStyle)

	return lipgloss.NewStyle().
		Background(lipgloss.Color(rowBg)).
		Width(width).
		Render(content)
}
