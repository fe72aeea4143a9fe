package picker

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/five82/passport/internal/countries"
)

// Filter returns the countries whose lowercased name contains the lowercased
// text, in their original order. A blank text returns nil: nothing is shown
// until the user types something.
func Filter(all []countries.Country, text string) []countries.Country {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lower := cases.Lower(language.Und)
	needle := lower.String(text)

	var out []countries.Country
	for _, c := range all {
		if strings.Contains(lower.String(c.Name), needle) {
			out = append(out, c)
		}
	}
	return out
}
