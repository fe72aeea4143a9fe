package picker

import (
	"slices"

	"github.com/five82/passport/internal/countries"
)

// State is the mutable picker state. The zero value is an empty picker.
type State struct {
	countries   []countries.Country
	filterText  string
	groupRaw    string
	selected    []countries.Country
	colorCursor int
}

// New returns a State over a private copy of list.
func New(list []countries.Country) *State {
	s := &State{}
	if len(list) > 0 {
		s.countries = make([]countries.Country, len(list))
		copy(s.countries, list)
	}
	return s
}

// Countries returns the full country list.
func (s *State) Countries() []countries.Country {
	return s.countries
}

// Len reports how many countries were loaded.
func (s *State) Len() int {
	return len(s.countries)
}

// SetFilter replaces the filter text as typed.
func (s *State) SetFilter(text string) {
	s.filterText = text
}

// FilterText returns the filter text as typed.
func (s *State) FilterText() string {
	return s.filterText
}

// SetGroupSize stores the raw group size input. Invalid input is kept as-is
// and treated as unset when grouping.
func (s *State) SetGroupSize(raw string) {
	s.groupRaw = raw
}

// GroupSize returns the parsed group size and whether it is usable.
func (s *State) GroupSize() (int, bool) {
	return ParseGroupSize(s.groupRaw)
}

// Visible returns the filtered list.
func (s *State) Visible() []countries.Country {
	return Filter(s.countries, s.filterText)
}

// Toggle removes c from the selection if present, otherwise appends it. The
// color cursor advances either way. It reports whether c is now selected.
func (s *State) Toggle(c countries.Country) bool {
	s.colorCursor = (s.colorCursor + 1) % PaletteSize

	if idx := s.indexOf(c.Code); idx >= 0 {
		s.selected = slices.Delete(s.selected, idx, idx+1)
		return false
	}
	s.selected = append(s.selected, c)
	return true
}

// IsSelected reports whether the country with code is selected.
func (s *State) IsSelected(code string) bool {
	return s.indexOf(code) >= 0
}

// Selected returns a copy of the selection in insertion order.
func (s *State) Selected() []countries.Country {
	if len(s.selected) == 0 {
		return nil
	}
	out := make([]countries.Country, len(s.selected))
	copy(out, s.selected)
	return out
}

// Groups partitions the selection by the current group size.
func (s *State) Groups() [][]countries.Country {
	size, _ := s.GroupSize()
	return Group(s.selected, size)
}

// ColorCursor returns the palette index used for highlights.
func (s *State) ColorCursor() int {
	return s.colorCursor
}

// CurrentColor returns the palette entry selected rows are drawn with.
func (s *State) CurrentColor() Color {
	return ColorAt(s.colorCursor)
}

// Highlight returns the background for c: the current palette color when c
// is selected, ok=false (transparent) otherwise.
func (s *State) Highlight(c countries.Country) (Color, bool) {
	if !s.IsSelected(c.Code) {
		return Color{}, false
	}
	return s.CurrentColor(), true
}

func (s *State) indexOf(code string) int {
	for i, c := range s.selected {
		if c.Code == code {
			return i
		}
	}
	return -1
}
