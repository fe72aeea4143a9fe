package picker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/five82/passport/internal/countries"
)

func country(code, name string) countries.Country {
	return countries.Country{Code: code, Name: name}
}

func names(list []countries.Country) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.Name)
	}
	return out
}

var europe = []countries.Country{
	country("SE", "Sweden"),
	country("ES", "Spain"),
	country("FR", "France"),
	country("AX", "Åland"),
	country("DE", "Germany"),
	country("CH", "Switzerland"),
}

func TestFilter_Scenario(t *testing.T) {
	list := []countries.Country{country("SE", "Sweden"), country("ES", "Spain"), country("FR", "France")}
	got := Filter(list, "sp")
	if diff := cmp.Diff([]string{"Spain"}, names(got)); diff != "" {
		t.Fatalf("Filter(sp) mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_BlankShowsNothing(t *testing.T) {
	for _, text := range []string{"", " ", "\t", "   \n"} {
		require.Empty(t, Filter(europe, text), "filter %q", text)
	}
}

func TestFilter_CaseInsensitiveAndComplete(t *testing.T) {
	for _, text := range []string{"S", "sw", "LAND", "an", "e", "åL", "zzz", " Sw"} {
		t.Run(text, func(t *testing.T) {
			got := Filter(europe, text)
			needle := strings.ToLower(text)

			want := []string{}
			for _, c := range europe {
				if strings.Contains(strings.ToLower(c.Name), needle) {
					want = append(want, c.Name)
				}
			}
			if diff := cmp.Diff(want, names(got)); diff != "" {
				t.Fatalf("Filter(%q) mismatch (-want +got):\n%s", text, diff)
			}
		})
	}
}

func TestFilter_LowercaseOnly(t *testing.T) {
	list := []countries.Country{country("XS", "Straße"), country("IS", "ICELAND")}
	require.Empty(t, Filter(list, "ss"), "lowercasing does not expand ß")
	require.Equal(t, []string{"Straße"}, names(Filter(list, "STRAß")))
	require.Equal(t, []string{"ICELAND"}, names(Filter(list, "icel")))
}

func TestFilter_PreservesOrder(t *testing.T) {
	got := Filter(europe, "a")
	require.Equal(t, []string{"Spain", "France", "Åland", "Germany", "Switzerland"}, names(got))
}

func TestToggle_Scenario(t *testing.T) {
	a, b := country("A", "Aland"), country("B", "Bolivia")
	s := New([]countries.Country{a, b})

	require.True(t, s.Toggle(a))
	require.Equal(t, 1, s.ColorCursor())
	require.True(t, s.Toggle(b))
	require.Equal(t, 2, s.ColorCursor())
	require.False(t, s.Toggle(a))
	require.Equal(t, 3, s.ColorCursor())

	require.Equal(t, []countries.Country{b}, s.Selected())
}

func TestToggle_TwiceRestoresSelectionButAdvancesColorByTwo(t *testing.T) {
	s := New(europe)
	for _, c := range europe[:3] {
		s.Toggle(c)
	}
	before := s.Selected()
	cursor := s.ColorCursor()

	for _, c := range europe {
		s.Toggle(c)
		s.Toggle(c)
		require.ElementsMatch(t, before, s.Selected(), "toggling %s twice", c.Code)
		cursor = (cursor + 2) % PaletteSize
		require.Equal(t, cursor, s.ColorCursor())
	}
}

func TestToggle_NoDuplicates(t *testing.T) {
	s := New(europe)
	se := europe[0]
	s.Toggle(se)
	// A distinct value with the same code is the same country.
	s.Toggle(countries.Country{Code: "SE", Name: "Sweden"})
	require.Empty(t, s.Selected())
	require.False(t, s.IsSelected("SE"))
}

func TestColorCursorWraps(t *testing.T) {
	s := New(europe)
	for i := 0; i < 9; i++ {
		s.Toggle(europe[0])
	}
	require.Equal(t, 9%PaletteSize, s.ColorCursor())
	require.Equal(t, Palette[1], s.CurrentColor())
	require.Equal(t, Palette[3], ColorAt(-1))
}

func TestHighlight_SharedGlobalColor(t *testing.T) {
	s := New(europe)
	s.Toggle(europe[0])
	s.Toggle(europe[1])

	c0, ok0 := s.Highlight(europe[0])
	c1, ok1 := s.Highlight(europe[1])
	require.True(t, ok0)
	require.True(t, ok1)
	require.Equal(t, c0, c1)
	require.Equal(t, "lightcoral", c0.Name)

	_, ok := s.Highlight(europe[2])
	require.False(t, ok, "unselected countries are transparent")

	s.Toggle(europe[2])
	s.Toggle(europe[2])
	c0, _ = s.Highlight(europe[0])
	require.Equal(t, "lightblue", c0.Name, "color rotates on every toggle")
}

func TestGroup_Scenario(t *testing.T) {
	sel := []countries.Country{country("A", "A"), country("B", "B"), country("C", "C"), country("D", "D"), country("E", "E")}
	got := Group(sel, 2)
	want := [][]countries.Country{
		{sel[0], sel[1]},
		{sel[2], sel[3]},
		{sel[4]},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Group mismatch (-want +got):\n%s", diff)
	}
}

func TestGroup_ConcatenationReproducesSelection(t *testing.T) {
	for n := 0; n <= len(europe); n++ {
		sel := europe[:n]
		for size := 1; size <= len(europe)+1; size++ {
			t.Run(fmt.Sprintf("n=%d/size=%d", n, size), func(t *testing.T) {
				groups := Group(sel, size)

				var flat []countries.Country
				for i, g := range groups {
					if i < len(groups)-1 {
						require.Len(t, g, size)
					} else {
						require.NotEmpty(t, g)
						require.LessOrEqual(t, len(g), size)
					}
					flat = append(flat, g...)
				}
				if diff := cmp.Diff(names(sel), names(flat)); diff != "" {
					t.Fatalf("concat mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestGroup_InvalidSizeYieldsSingleGroup(t *testing.T) {
	sel := europe[:3]
	for _, size := range []int{0, -1, -100} {
		groups := Group(sel, size)
		require.Len(t, groups, 1)
		require.Equal(t, names(sel), names(groups[0]))
	}
	require.Nil(t, Group(nil, 2))
}

func TestParseGroupSize(t *testing.T) {
	cases := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{"", 0, false},
		{"  ", 0, false},
		{"abc", 0, false},
		{"2.5", 0, false},
		{"0", 0, false},
		{"-3", 0, false},
		{"3", 3, true},
		{" 12 ", 12, true},
	}
	for _, tc := range cases {
		got, ok := ParseGroupSize(tc.raw)
		require.Equal(t, tc.wantOK, ok, "ParseGroupSize(%q)", tc.raw)
		require.Equal(t, tc.want, got, "ParseGroupSize(%q)", tc.raw)
	}
}

func TestState_DerivedViews(t *testing.T) {
	s := New(europe)
	require.Equal(t, len(europe), s.Len())
	require.Empty(t, s.Visible())

	s.SetFilter("sw")
	require.Equal(t, []string{"Sweden", "Switzerland"}, names(s.Visible()))

	for _, c := range s.Visible() {
		s.Toggle(c)
	}
	s.Toggle(europe[1])

	s.SetGroupSize("2")
	size, ok := s.GroupSize()
	require.True(t, ok)
	require.Equal(t, 2, size)
	require.Equal(t, [][]countries.Country{{europe[0], europe[5]}, {europe[1]}}, s.Groups())

	s.SetGroupSize("nope")
	require.Len(t, s.Groups(), 1)
	require.Equal(t, "sw", s.FilterText())
}

func TestNew_CopiesInput(t *testing.T) {
	list := []countries.Country{country("SE", "Sweden")}
	s := New(list)
	list[0].Name = "Changed"
	require.Equal(t, "Sweden", s.Countries()[0].Name)

	sel := s.Selected()
	require.Nil(t, sel)
	s.Toggle(s.Countries()[0])
	sel = s.Selected()
	sel[0].Name = "Mutated"
	require.Equal(t, "Sweden", s.Selected()[0].Name)
}
