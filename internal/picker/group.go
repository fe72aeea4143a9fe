package picker

import (
	"strconv"
	"strings"

	"github.com/five82/passport/internal/countries"
)

// ParseGroupSize reads a group size typed by the user. ok is false when raw
// is blank, not an integer, or not positive.
func ParseGroupSize(raw string) (size int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Group partitions selection into consecutive chunks of size in selection
// order; the last chunk may be shorter. A non-positive size yields a single
// group holding the whole selection. An empty selection yields no groups.
func Group(selection []countries.Country, size int) [][]countries.Country {
	if len(selection) == 0 {
		return nil
	}
	if size <= 0 || size > len(selection) {
		size = len(selection)
	}

	groups := make([][]countries.Country, 0, (len(selection)+size-1)/size)
	for start := 0; start < len(selection); start += size {
		end := min(start+size, len(selection))
		chunk := make([]countries.Country, end-start)
		copy(chunk, selection[start:end])
		groups = append(groups, chunk)
	}
	return groups
}
