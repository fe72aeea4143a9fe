package picker

// Color is a named highlight color.
type Color struct {
	Name string
	Hex  string
}

// Palette is the fixed rotation used for highlighting selected countries.
var Palette = [...]Color{
	{Name: "lightblue", Hex: "#ADD8E6"},
	{Name: "lightgreen", Hex: "#90EE90"},
	{Name: "lightcoral", Hex: "#F08080"},
	{Name: "lightpink", Hex: "#FFB6C1"},
}

// PaletteSize is the number of colors the cursor rotates through.
const PaletteSize = len(Palette)

// ColorAt returns the palette entry for cursor, wrapping out-of-range values.
func ColorAt(cursor int) Color {
	idx := cursor % PaletteSize
	if idx < 0 {
		idx += PaletteSize
	}
	return Palette[idx]
}
