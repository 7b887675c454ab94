package oneaway

import "iter"

// Multiple — ordered union of several generators.
//
// Description:
//
//	Runs each generator over token in list order, draining one completely
//	before starting the next. A single seen-set spans the whole call: a
//	variant an earlier generator already produced is suppressed when a
//	later one produces it again, so output order is encounter order across
//	the concatenation.
//
// Error handling:
//
//	The first error from any constituent terminates the sequence after
//	everything produced before it has been yielded. There is no rollback;
//	callers consuming the full sequence must accept a partial result
//	followed by an error.
//
// Errors:
//   - ErrNilGenerator — generators contains a nil entry (reported when the
//     drain reaches it).
//   - any error a constituent generator produces.
func Multiple(token string, generators []Generator) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		seen := make(map[string]struct{}, len(token)*len(generators))
		for _, generator := range generators {
			if generator == nil {
				yield("", ErrNilGenerator)
				return
			}
			for variant, err := range generator(token) {
				if err != nil {
					yield("", err)
					return
				}
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

// Common allows for missing letters, swapped letters, and horizontal
// proximity typos. SwappedCasing is deliberately absent; see its doc.
func Common(token string) iter.Seq2[string, error] {
	return Multiple(token, []Generator{DroppedLetter, SwappedLetter, HorizontalProximity})
}

// Mix allows for missing letters, swapped letters, and both horizontal and
// vertical proximity typos. Its output is a superset of Common's for the
// same token.
func Mix(token string) iter.Seq2[string, error] {
	return Multiple(token, []Generator{
		DroppedLetter,
		SwappedLetter,
		HorizontalProximity,
		VerticalProximity,
	})
}

// Alternative export names for Mix.
var (
	Aggregate Generator = Mix
	Amalgam   Generator = Mix
	Solution  Generator = Mix
)
