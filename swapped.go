package oneaway

import (
	"iter"
	"unicode"
)

// SwappedLetter — adjacent-transposition variants.
//
// Description:
//
//	For each adjacent rune pair (i, i+1), yields the token with that pair
//	transposed ("ab" appearing as "ba"). Running out of pairs is normal
//	termination: tokens of length ≤ 1 yield nothing and no error.
//
// Errors:
//   - ErrWhitespace — either rune of the pair under consideration is
//     whitespace.
func SwappedLetter(token string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		runes := []rune(token)
		seen := make(map[string]struct{}, len(runes))
		for i := 0; i+1 < len(runes); i++ {
			this, next := runes[i], runes[i+1]
			if unicode.IsSpace(this) || unicode.IsSpace(next) {
				yield("", ErrWhitespace)
				return
			}
			variant := string(runes[:i]) + string(next) + string(this) + string(runes[i+2:])
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
