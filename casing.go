package oneaway

import (
	"fmt"
	"iter"
	"unicode"
)

// SwappedCasing — shift/caps-lock variants.
//
// Description:
//
//	For each rune in the token, yields the token with that rune's case
//	inverted: lowercase becomes uppercase and vice versa. Only simple
//	bicameral inversion is attempted; a rune that is cased in neither
//	direction terminates the sequence with ErrUnsupportedRune. No general
//	Unicode case folding, no locale awareness.
//
//	The replacement lands on the first occurrence of the rune, so repeated
//	letters collapse onto one variant ("aba" yields "Aba" and "aBa" only).
//
// Excluded from the Common and Mix presets on purpose: it suits
// post-composition, applying it to each variant another generator emits,
// more than it suits being a primary typo class.
//
// Errors:
//   - ErrWhitespace      — the rune at the current position is whitespace
//     (the wrapped error names the position).
//   - ErrUnsupportedRune — the rune has no upper/lowercase form.
func SwappedCasing(token string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		runes := []rune(token)
		seen := make(map[string]struct{}, len(runes))
		for i, r := range runes {
			if unicode.IsSpace(r) {
				yield("", fmt.Errorf("%w (position %d)", ErrWhitespace, i))
				return
			}
			var replacement rune
			switch {
			case unicode.IsLower(r):
				replacement = unicode.ToUpper(r)
			case unicode.IsUpper(r):
				replacement = unicode.ToLower(r)
			default:
				yield("", fmt.Errorf("%w: %q has no simple case inversion", ErrUnsupportedRune, r))
				return
			}
			at := firstIndex(runes, r)
			variant := string(runes[:at]) + string(replacement) + string(runes[at+1:])
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

// firstIndex returns the index of the first occurrence of r in runes.
// Callers only pass runes known to be present.
func firstIndex(runes []rune, r rune) int {
	for i, candidate := range runes {
		if candidate == r {
			return i
		}
	}

	return -1
}
