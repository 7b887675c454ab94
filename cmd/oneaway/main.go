package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kezabelle/oneaway/internal/report"
)

var dictionaryPath string

var rootCmd = &cobra.Command{
	Use:   "oneaway <word>",
	Short: "Generate off-by-one typo variants for a word",
	Long: `oneaway prints every string reachable from a word by a single typo:
a dropped letter, two adjacent letters swapped, or a letter replaced by
its horizontal QWERTY neighbor.

When a dictionary file is readable, variants that collide with real
words are flagged, and the report ends with all non-empty variants as a
pipe-delimited regular-expression alternation.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&dictionaryPath, "dictionary", report.DefaultDictionaryPath,
		"newline-delimited word list used to flag clashing variants")
}

func run(cmd *cobra.Command, args []string) error {
	word := args[0]
	if word == "" {
		return errors.New("no word provided")
	}

	var dict report.Dictionary
	if dictionaryPath != "" {
		loaded, err := report.LoadDictionaryFile(dictionaryPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read dictionary %s: %v\n", dictionaryPath, err)
		} else {
			dict = loaded
		}
	}

	rep := report.Build(word, dict)
	rep.Render(os.Stdout, dictionaryPath, len(dict) > 0)
	if rep.Err != nil {
		return rep.Err
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
