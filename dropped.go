package oneaway

import (
	"iter"
	"unicode"
)

// DroppedLetter — missing-letter variants.
//
// Description:
//
//	For a token of n runes, yields the token with the rune at each position
//	removed, left to right. Two positions holding the same rune produce the
//	same variant; only the first occurrence is yielded.
//
// Contract:
//   - Lazy: nothing past the last pulled element is computed.
//   - Variants have length n−1; a one-rune token yields the empty string.
//   - Whitespace is validated at the position being dropped, not up front:
//     positions before a whitespace rune are yielded normally, then the
//     sequence terminates with ErrWhitespace.
//
// Errors:
//   - ErrWhitespace — the rune at the current position is whitespace.
func DroppedLetter(token string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		runes := []rune(token)
		seen := make(map[string]struct{}, len(runes))
		for i, r := range runes {
			if unicode.IsSpace(r) {
				yield("", ErrWhitespace)
				return
			}
			variant := string(runes[:i]) + string(runes[i+1:])
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
