package ui

import (
	"fmt"
	"strings"
)

// refreshGroups re-renders the "Selected Items" content into the groups
// viewport.
func (m *Model) refreshGroups() {
	if m.picker == nil {
		return
	}
	m.groupsViewport.SetContent(m.renderGroupsContent(m.groupsViewport.Width))
}

// renderGroupsContent lists each group under a "Group N" heading.
func (m Model) renderGroupsContent(width int) string {
	styles := m.theme.Styles()
	groups := m.picker.Groups()
	if len(groups) == 0 {
		return styles.MutedText.Render("Nothing selected")
	}

	var b strings.Builder
	for i, group := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		heading := fmt.Sprintf("Group %d", i+1)
		b.WriteString(styles.AccentText.Bold(true).Render(heading))
		b.WriteString(styles.FaintText.Render(fmt.Sprintf(" (%d)", len(group))))
		b.WriteString("\n")
		for _, c := range group {
			b.WriteString("  ")
			b.WriteString(styles.Text.Render(truncate(c.Name, max(width-2, 1))))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderGroups renders the "Selected Items" pane around the viewport.
func (m Model) renderGroups(width, height int) string {
	title := "Selected Items"
	if n := len(m.picker.Selected()); n > 0 {
		title = fmt.Sprintf("Selected Items (%d)", n)
	}
	vp := m.groupsViewport
	vp.Width = max(width-4, 1)
	vp.Height = max(height-2, 1)
	return m.renderTitledBox(title, padLines(vp.View(), 1), width, height, false)
}

// padLines indents every line by n spaces.
func padLines(content string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
