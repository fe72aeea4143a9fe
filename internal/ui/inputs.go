package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

const (
	filterPlaceholder    = "Filter by name..."
	groupSizePlaceholder = "Group Size"
)

// initInputs builds the filter and group size inputs. The filter starts
// focused.
func (m *Model) initInputs() {
	filter := textinput.New()
	filter.Prompt = ""
	filter.Placeholder = filterPlaceholder
	filter.CharLimit = 64
	filter.Width = 28
	filter.Focus()

	group := textinput.New()
	group.Prompt = ""
	group.Placeholder = groupSizePlaceholder
	group.CharLimit = 4
	group.Width = 10

	m.filterInput = filter
	m.groupInput = group
	m.focus = focusFilter
}

// renderInputs renders the input row: label and field for the filter and the
// group size.
func (m Model) renderInputs() string {
	width, _ := m.screenSize()
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)

	field := func(label string, input textinput.Model, focused bool) string {
		labelStyle := styles.MutedText
		boxBg := m.theme.SurfaceAlt
		if focused {
			labelStyle = styles.AccentText.Bold(true)
			boxBg = m.theme.FocusBg
		}
		input.TextStyle = styles.Input.Background(lipgloss.Color(boxBg))
		input.PlaceholderStyle = styles.FaintText.Background(lipgloss.Color(boxBg))
		input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))

		box := lipgloss.NewStyle().
			Background(lipgloss.Color(boxBg)).
			Padding(0, 1).
			Render(input.View())
		return bg.Render(label, labelStyle) + bg.Space() + box
	}

	row := field("Filter", m.filterInput, m.focus == focusFilter) +
		bg.Spaces(3) +
		field("Group size", m.groupInput, m.focus == focusGroupSize)

	if size, ok := m.picker.GroupSize(); ok {
		row += bg.Spaces(2) + bg.Render(pluralize(size, "country", "countries")+" per group", styles.FaintText)
	} else {
		row += bg.Spaces(2) + bg.Render("one group", styles.FaintText)
	}
	return bg.FillLine(row, width)
}
