package oneaway

import (
	"fmt"
	"iter"
	"unicode"
)

// ProximityTypo — fat-finger variants for a keyboard layout.
//
// Description:
//
//	For each rune in the token, looks up the rune's neighbor list in the
//	table bound to layout and yields one variant per neighbor, the rune
//	replaced by that neighbor. Neighbor order follows the table, so output
//	order is fully deterministic.
//
//	As with SwappedCasing, the replacement lands on the first occurrence of
//	the rune; repeated letters collapse onto the first occurrence's
//	variants.
//
// Errors:
//   - ErrUnknownLayout   — layout names no table; nothing is yielded.
//   - ErrWhitespace      — the rune at the current position is whitespace.
//   - ErrUnsupportedRune — the rune has no table entry (uppercase, digits,
//     punctuation, letters outside a–z).
func ProximityTypo(token string, layout Layout) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		table, ok := layout.table()
		if !ok {
			yield("", fmt.Errorf("%w: %d", ErrUnknownLayout, int(layout)))
			return
		}
		runes := []rune(token)
		seen := make(map[string]struct{}, len(runes)*2)
		for _, r := range runes {
			if unicode.IsSpace(r) {
				yield("", ErrWhitespace)
				return
			}
			neighbors, covered := table[r]
			if !covered {
				yield("", fmt.Errorf("%w: %q is not in the %s table", ErrUnsupportedRune, r, layout))
				return
			}
			at := firstIndex(runes, r)
			for _, neighbor := range neighbors {
				variant := string(runes[:at]) + string(neighbor) + string(runes[at+1:])
				if _, dup := seen[variant]; dup {
					continue
				}
				seen[variant] = struct{}{}
				if !yield(variant, nil) {
					return
				}
			}
		}
	}
}

// HorizontalProximity is ProximityTypo bound to QWERTYHorizontal.
// It is a Generator and slots directly into Multiple.
func HorizontalProximity(token string) iter.Seq2[string, error] {
	return ProximityTypo(token, QWERTYHorizontal)
}

// VerticalProximity is ProximityTypo bound to QWERTYVertical.
func VerticalProximity(token string) iter.Seq2[string, error] {
	return ProximityTypo(token, QWERTYVertical)
}
