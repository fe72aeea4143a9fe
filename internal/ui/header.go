package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderMain renders the picker screen.
func (m Model) renderMain() string {
	listWidth, groupsWidth := m.paneWidths()
	height := m.paneHeight()

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderCountryList(listWidth, height),
		m.renderGroups(groupsWidth, height),
	)

	return strings.Join([]string{
		m.renderHeader(),
		m.renderCommandBar(),
		m.renderInputs(),
		panes,
		m.renderDetail(),
	}, "\n")
}

// renderHeader renders the status bar: logo, counts, the current highlight
// color and the theme.
func (m Model) renderHeader() string {
	width, _ := m.screenSize()
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := width < LayoutCompactWidth

	parts := []string{
		bg.Render("passport", styles.Logo),
		bg.Render("Countries:", styles.MutedText) + bg.Space() +
			bg.Render(fmt.Sprintf("%d", m.picker.Len()), styles.Text),
	}

	if strings.TrimSpace(m.picker.FilterText()) != "" {
		parts = append(parts,
			bg.Render("Shown:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", len(m.picker.Visible())), styles.Text))
	}

	selected := len(m.picker.Selected())
	selStyle := styles.MutedText
	if selected > 0 {
		selStyle = styles.SuccessText
	}
	parts = append(parts,
		bg.Render("Selected:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", selected), selStyle))

	if groups := len(m.picker.Groups()); groups > 0 {
		parts = append(parts,
			bg.Render("Groups:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", groups), styles.Text))
	}

	color := m.picker.CurrentColor()
	swatch := styles.HighlightStyle(color).Render(" " + color.Name + " ")
	parts = append(parts, bg.Render("Highlight:", styles.MutedText)+bg.Space()+swatch)

	if !compact {
		parts = append(parts, bg.Render("Theme:", styles.MutedText)+bg.Space()+
			bg.Render(m.theme.Name, styles.FaintText))
		if m.endpoint != "" {
			parts = append(parts, bg.Render(truncate(m.endpoint, 48), styles.FaintText))
		}
	}

	return styles.Header.Width(width).MaxWidth(width).Render(bg.Join(parts, "  "))
}

// renderCommandBar renders the key hints for the focused widget.
func (m Model) renderCommandBar() string {
	width, _ := m.screenSize()
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.focus {
	case focusList:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"Space", "Toggle"},
			{"g/G", "Top/Bottom"},
			{"ctrl+d/u", "Groups"},
			{"Tab", "Filter"},
			{"T", "Theme"},
			{"?", "Help"},
			{"q", "Quit"},
		}
	default:
		commands = []cmd{
			{"Type", "Edit"},
			{"Tab", "Next"},
			{"Enter", "List"},
			{"ctrl+d/u", "Groups"},
			{"ctrl+c", "Quit"},
		}
	}

	parts := make([]string, 0, len(commands))
	for _, c := range commands {
		parts = append(parts,
			bg.Render("<"+c.key+">", styles.AccentText)+bg.Space()+
				bg.Render(c.desc, styles.MutedText))
	}
	return styles.Footer.Width(width).MaxWidth(width).Render(bg.Join(parts, "  "))
}

// renderLoading renders the fetch-in-progress screen.
func (m Model) renderLoading() string {
	width, height := m.screenSize()
	styles := m.theme.Styles()

	body := m.spinner.View() + " " + styles.Text.Render("Loading...")
	if m.endpoint != "" {
		body += "\n\n" + styles.FaintText.Render(m.endpoint)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// renderError renders the terminal error screen. Only quitting remains
// possible from here.
func (m Model) renderError() string {
	width, height := m.screenSize()
	styles := m.theme.Styles()

	msg := "unknown error"
	if m.snapshot.Err != nil {
		msg = m.snapshot.Err.Error()
	}
	body := styles.DangerText.Render("Error: "+msg) + "\n\n" +
		styles.FaintText.Render("q to quit")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().MaxWidth(width).Render(body))
}
