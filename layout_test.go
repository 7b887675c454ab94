package oneaway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLayoutTables_Coverage checks both tables cover exactly a–z.
func TestLayoutTables_Coverage(t *testing.T) {
	for name, table := range map[string]map[rune][]rune{
		"horizontal": qwertyHorizontal,
		"vertical":   qwertyVertical,
	} {
		assert.Len(t, table, 26, "%s table", name)
		for r := 'a'; r <= 'z'; r++ {
			neighbors, ok := table[r]
			assert.True(t, ok, "%s table missing %q", name, r)
			assert.NotEmpty(t, neighbors, "%s table %q has no neighbors", name, r)
			for _, neighbor := range neighbors {
				assert.GreaterOrEqual(t, neighbor, 'a', "%s table %q neighbor %q", name, r, neighbor)
				assert.LessOrEqual(t, neighbor, 'z', "%s table %q neighbor %q", name, r, neighbor)
			}
		}
	}
}

// TestLayoutTables_HorizontalMutual checks row adjacency is symmetric:
// if "g" neighbors "h" then "h" neighbors "g".
func TestLayoutTables_HorizontalMutual(t *testing.T) {
	for r, neighbors := range qwertyHorizontal {
		for _, neighbor := range neighbors {
			back := qwertyHorizontal[neighbor]
			assert.Contains(t, back, r, "%q -> %q has no reverse edge", r, neighbor)
		}
	}
}

// TestLayout_String covers the layout names.
func TestLayout_String(t *testing.T) {
	assert.Equal(t, "qwerty-horizontal", QWERTYHorizontal.String())
	assert.Equal(t, "qwerty-vertical", QWERTYVertical.String())
	assert.Equal(t, "unknown", Layout(42).String())
}
