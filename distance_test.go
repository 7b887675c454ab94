package oneaway_test

import (
	"testing"

	"github.com/agext/levenshtein"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kezabelle/oneaway"
)

// Every variant class stays within a bounded edit distance of the token:
// drops and proximity substitutions are distance 1, adjacent swaps count
// as two substitutions under plain Levenshtein.

// TestDistance_DroppedAndProximity checks the distance-1 classes.
func TestDistance_DroppedAndProximity(t *testing.T) {
	params := levenshtein.NewParams()
	for _, token := range []string{"cat", "word", "typo", "queue"} {
		for name, generator := range map[string]oneaway.Generator{
			"DroppedLetter":       oneaway.DroppedLetter,
			"HorizontalProximity": oneaway.HorizontalProximity,
			"VerticalProximity":   oneaway.VerticalProximity,
		} {
			variants, err := oneaway.Collect(generator(token))
			require.NoError(t, err, "%s(%q)", name, token)
			for _, variant := range variants {
				dist := levenshtein.Distance(token, variant, params)
				assert.Equal(t, 1, dist, "%s(%q) variant %q", name, token, variant)
			}
		}
	}
}

// TestDistance_Swapped checks transpositions cost at most two.
func TestDistance_Swapped(t *testing.T) {
	params := levenshtein.NewParams()
	for _, token := range []string{"cat", "word", "typo", "letter"} {
		variants, err := oneaway.Collect(oneaway.SwappedLetter(token))
		require.NoError(t, err)
		for _, variant := range variants {
			// Swapping equal adjacent runes ("letter" at tt) reproduces the
			// token, so distance 0 is legitimate.
			dist := levenshtein.Distance(token, variant, params)
			assert.LessOrEqual(t, dist, 2, "SwappedLetter(%q) variant %q", token, variant)
		}
	}
}
