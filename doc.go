// Package oneaway enumerates the strings that are "one away" from a given
// token — the single-keystroke typos a user could plausibly have made.
//
// 🚀 What is oneaway?
//
//	A small, lazy, composable library for typo-tolerant matching:
//		• DroppedLetter: one letter missing
//		• SwappedLetter: two adjacent letters transposed
//		• SwappedCasing: one letter's case inverted
//		• ProximityTypo: one letter fat-fingered onto a QWERTY neighbor
//		• Multiple: ordered union of any generators, deduplicated
//		• Presets: Common and Mix (aliases Aggregate, Amalgam, Solution)
//
// ✨ Why choose oneaway?
//
//   - Lazy by construction – every generator is an iter.Seq2; stop ranging
//     early and no further variants are computed
//   - Deterministic – left-to-right position order, first-seen wins on
//     duplicates
//   - Reentrant – all deduplication state is call-local; no shared mutable
//     state anywhere
//   - Composable – anything of type Generator slots into Multiple alongside
//     the built-ins
//
// ⚙️ Usage:
//
//	for variant, err := range oneaway.Common("cat") {
//	  if err != nil {
//	    // ErrWhitespace or ErrUnsupportedRune; prior variants stand
//	    break
//	  }
//	  allow[variant] = struct{}{}
//	}
//
// Inputs are single words: any whitespace rune aborts generation with
// ErrWhitespace. Split sentences first and feed each word separately.
//
// Designed for short tokens (labels, commands, identifiers). The variant
// count grows with token length and no attempt is made to keep long inputs
// cheap.
//
// The cmd/oneaway binary wraps the Common preset in a reporting tool:
// dictionary clash detection and a regex alternation of every variant.
package oneaway
