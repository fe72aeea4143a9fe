package ui

import (
	"strings"

	"github.com/five82/passport/internal/countries"
)

// cursorCountry returns the filtered row under the cursor, if any.
func (m Model) cursorCountry() (countries.Country, bool) {
	if m.picker == nil {
		return countries.Country{}, false
	}
	visible := m.picker.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return countries.Country{}, false
	}
	return visible[m.cursor], true
}

// renderDetail renders one line describing the country under the cursor:
// code, currencies and languages.
func (m Model) renderDetail() string {
	width, _ := m.screenSize()
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	c, ok := m.cursorCountry()
	if !ok {
		return styles.Footer.Width(width).Render(bg.Render("No country under cursor", styles.FaintText))
	}

	status := "not selected"
	statusStyle := styles.FaintText
	if m.picker.IsSelected(c.Code) {
		status = "selected"
		statusStyle = styles.SuccessText
	}

	parts := []string{
		bg.Render(c.Name, styles.Text.Bold(true)),
		bg.Render("Code", styles.MutedText) + bg.Space() + bg.Render(c.Code, styles.AccentText),
		bg.Render("Currency", styles.MutedText) + bg.Space() + bg.Render(orDash(strings.Join(c.Currencies(), ", ")), styles.InfoText),
		bg.Render("Languages", styles.MutedText) + bg.Space() + bg.Render(orDash(joinNonEmpty(c.LanguageNames(), ", ")), styles.Text),
		bg.Render(status, statusStyle),
	}
	line := bg.Join(parts, "  ·  ")
	return styles.Footer.Width(width).MaxWidth(width).Render(line)
}
