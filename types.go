package oneaway

import (
	"errors"
	"iter"
)

// Sentinel errors for variant generation.
var (
	// ErrWhitespace is returned when a generator inspects a whitespace rune.
	// Split your sentence or fragment on whitespace and supply each word
	// as its own token.
	ErrWhitespace = errors.New("oneaway: whitespace in token; split on whitespace and supply each word separately")

	// ErrUnsupportedRune is returned for runes outside a generator's domain:
	// a rune with no simple upper/lowercase form (SwappedCasing), or a rune
	// absent from the bound layout table (ProximityTypo).
	ErrUnsupportedRune = errors.New("oneaway: unsupported character")

	// ErrUnknownLayout is returned when a Layout value names no known table.
	ErrUnknownLayout = errors.New("oneaway: unknown keyboard layout")

	// ErrNilGenerator is returned by Multiple when the generator list
	// contains a nil entry.
	ErrNilGenerator = errors.New("oneaway: nil generator in list")
)

// Generator enumerates single-edit variants of a token as a lazy sequence.
// A non-nil error is the sequence's final element; variants yielded before
// it remain valid. Every built-in generator, every bound parameterization
// (HorizontalProximity, VerticalProximity) and every preset satisfies this
// shape, so custom combinations beyond the named presets compose freely
// through Multiple.
type Generator func(token string) iter.Seq2[string, error]

// Layout selects which QWERTY adjacency table ProximityTypo consults.
//
//   - QWERTYHorizontal — neighbors on the same key row ("g" → "f", "h").
//   - QWERTYVertical   — neighbors on the rows above and below
//     ("g" → "t", "y", "v", "b").
//
// Both tables cover the 26 lowercase ASCII letters and nothing else;
// uppercase letters, digits and punctuation are unsupported. The vertical
// table does not account for ortholinear keyboards.
type Layout int

const (
	// QWERTYHorizontal binds the same-row neighbor table.
	QWERTYHorizontal Layout = iota

	// QWERTYVertical binds the adjacent-row neighbor table.
	QWERTYVertical
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case QWERTYHorizontal:
		return "qwerty-horizontal"
	case QWERTYVertical:
		return "qwerty-vertical"
	default:
		return "unknown"
	}
}

// table resolves the adjacency map bound to l, or ok=false for an
// out-of-range value.
func (l Layout) table() (map[rune][]rune, bool) {
	switch l {
	case QWERTYHorizontal:
		return qwertyHorizontal, true
	case QWERTYVertical:
		return qwertyVertical, true
	default:
		return nil, false
	}
}

// Collect drains seq into a slice. On a mid-stream error the variants
// produced before the failure are returned alongside it, matching the
// partial-result contract of every generator in this package.
func Collect(seq iter.Seq2[string, error]) ([]string, error) {
	var out []string
	for variant, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, variant)
	}

	return out, nil
}
