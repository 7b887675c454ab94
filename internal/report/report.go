// Package report renders the variant report the oneaway CLI prints: each
// Common-preset variant for a word, dictionary clash annotations, and a
// naive regular-expression alternation covering every non-empty variant.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/kezabelle/oneaway"
)

// DefaultDictionaryPath is the word list consulted when no --dictionary
// flag is given.
const DefaultDictionaryPath = "/usr/share/dict/words"

// Dictionary is a set of known lowercase words.
type Dictionary map[string]struct{}

// Contains reports whether word (lowercased) is in the dictionary.
func (d Dictionary) Contains(word string) bool {
	_, ok := d[strings.ToLower(word)]
	return ok
}

// LoadDictionary reads a newline-delimited word list, lowercasing each
// entry and skipping blank lines.
func LoadDictionary(r io.Reader) (Dictionary, error) {
	dict := make(Dictionary)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		dict[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("report: reading dictionary: %w", err)
	}

	return dict, nil
}

// LoadDictionaryFile opens path and loads it via LoadDictionary.
func LoadDictionaryFile(path string) (Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	defer f.Close()

	return LoadDictionary(f)
}

// Report holds the outcome of generating Common-preset variants for one
// word. Err carries a generation failure; Variants and Clashes then hold
// whatever was produced before it.
type Report struct {
	Word     string
	Variants []string // every yielded variant, encounter order, "" included
	Clashes  []string // dictionary clashes longer than one rune, first-seen order
	Err      error
}

// Build drains oneaway.Common over word, flagging clashes against dict.
// A nil or empty dict disables clash detection. A generation error is
// recorded on the Report rather than returned, so partial output renders.
func Build(word string, dict Dictionary) *Report {
	rep := &Report{Word: word}
	clashed := make(map[string]struct{})
	for variant, err := range oneaway.Common(word) {
		if err != nil {
			rep.Err = err
			break
		}
		rep.Variants = append(rep.Variants, variant)
		// Single-rune clashes are noise: given "a", flagging that "s" is a
		// real word helps nobody.
		if len(dict) > 0 && len([]rune(variant)) > 1 && dict.Contains(variant) {
			if _, dup := clashed[variant]; !dup {
				clashed[variant] = struct{}{}
				rep.Clashes = append(rep.Clashes, variant)
			}
		}
	}

	return rep
}

// Alternation joins every non-empty variant into a pipe-delimited regex
// alternation, ordered so the most plausible matches win first: longer
// variants before shorter, then variants reusing exactly the word's
// letters, then variants sharing the word's first rune. Returns "" when no
// non-empty variant exists.
func (r *Report) Alternation() string {
	var candidates []string
	for _, variant := range r.Variants {
		if variant != "" {
			candidates = append(candidates, variant)
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	wordSet := runeSet(strings.ToLower(r.Word))
	wordFirst, _ := firstRune(r.Word)
	slices.SortStableFunc(candidates, func(a, b string) int {
		if c := len([]rune(b)) - len([]rune(a)); c != 0 {
			return c
		}
		if c := boolRank(sameRuneSet(b, wordSet)) - boolRank(sameRuneSet(a, wordSet)); c != 0 {
			return c
		}
		aFirst, _ := firstRune(a)
		bFirst, _ := firstRune(b)

		return boolRank(bFirst == wordFirst) - boolRank(aFirst == wordFirst)
	})

	return "(" + strings.Join(candidates, "|") + ")"
}

// Render writes the human-readable report. dictionaryPath names the word
// list for the header; loaded reports whether it actually loaded. When a
// generation error is recorded, rendering stops after the variant lines so
// the caller can surface the error itself.
func (r *Report) Render(w io.Writer, dictionaryPath string, loaded bool) {
	fmt.Fprintf(w, "# Variants allowed:\n")
	fmt.Fprintf(w, "  - missing letters\n")
	fmt.Fprintf(w, "  - swapped letters\n")
	fmt.Fprintf(w, "  - horizontal typos\n")
	fmt.Fprintf(w, "# Dictionary file `%s` being used:\n", dictionaryPath)
	if loaded {
		fmt.Fprintf(w, "  - yes\n")
	} else {
		fmt.Fprintf(w, "  - no\n")
	}
	fmt.Fprintf(w, "# Variations for `%s`:\n", r.Word)
	clashed := make(map[string]struct{}, len(r.Clashes))
	for _, clash := range r.Clashes {
		clashed[clash] = struct{}{}
	}
	for _, variant := range r.Variants {
		if _, clash := clashed[variant]; clash {
			fmt.Fprintf(w, "  - %q (clashes!)\n", variant)
		} else {
			fmt.Fprintf(w, "  - %q\n", variant)
		}
	}
	if r.Err != nil {
		return
	}
	fmt.Fprintf(w, "# Total: %d\n", len(r.Variants))
	if len(r.Clashes) > 0 {
		fmt.Fprintf(w, "# Variations which clash with known words: %d\n", len(r.Clashes))
		for _, clash := range r.Clashes {
			fmt.Fprintf(w, "  - %q\n", clash)
		}
	}
	if alternation := r.Alternation(); alternation != "" {
		fmt.Fprintf(w, "# Variations as a (naive) regular expression alternation:\n")
		fmt.Fprintf(w, "  - %s\n", alternation)
	}
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}

	return set
}

func sameRuneSet(s string, want map[rune]struct{}) bool {
	have := runeSet(strings.ToLower(s))
	if len(have) != len(want) {
		return false
	}
	for r := range have {
		if _, ok := want[r]; !ok {
			return false
		}
	}

	return true
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}

	return 0, false
}

// boolRank orders true before false in descending sorts.
func boolRank(b bool) int {
	if b {
		return 1
	}

	return 0
}
