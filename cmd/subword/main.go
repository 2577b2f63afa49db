// Command subword reads a postfix regular expression and a word, and prints
// the length of the longest contiguous substring of the word that occurs as a
// substring of some string in the expression's language.
//
// Input is two whitespace-delimited tokens — the expression, then the word —
// read from the file given with --input, or from stdin. On success the single
// integer result is printed with a trailing newline and the process exits 0;
// on any validation error a message is written to stderr and the process
// exits non-zero.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/coregx/subword"
	"github.com/coregx/subword/meta"
	"github.com/coregx/subword/syntax"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		inputPath string
		alphabet  string
		epsilon   string
		parallel  int
	)

	cmd := &cobra.Command{
		Use:   "subword",
		Short: "longest substring of a word contained in a regular language",
		Long: `subword reads a postfix regular expression and a word (two whitespace-
delimited tokens) and prints the length of the longest contiguous substring
of the word that occurs as a substring of some string in the expression's
language.

The expression is postfix over the alphabet letters plus the epsilon marker,
with operators '+' (union), '.' (concatenation) and '*' (Kleene star).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(epsilon) != 1 {
				return fmt.Errorf("--epsilon must be a single character, got %q", epsilon)
			}

			in := cmd.InOrStdin()
			if inputPath != "" {
				f, err := os.Open(inputPath)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			config := meta.DefaultConfig()
			config.Alphabet = syntax.Alphabet{Letters: []byte(alphabet), Epsilon: epsilon[0]}
			config.Parallelism = parallel

			result, err := solve(in, config)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "read the expression and word from this file instead of stdin")
	cmd.Flags().StringVar(&alphabet, "alphabet", "abc", "alphabet letters")
	cmd.Flags().StringVar(&epsilon, "epsilon", "1", "epsilon marker character")
	cmd.Flags().IntVar(&parallel, "parallel", 0, "solver worker count (0 = one per CPU)")

	return cmd
}

// solve reads the two input tokens and runs the engine.
func solve(in io.Reader, config meta.Config) (int, error) {
	pattern, word, err := readTokens(in)
	if err != nil {
		return 0, err
	}

	expr, err := subword.CompileWithConfig(pattern, config)
	if err != nil {
		return 0, err
	}
	return expr.LongestSubstringString(word)
}

// readTokens reads the expression and word tokens. A missing expression maps
// to ErrEmptyExpression and a missing word to ErrEmptyWord, so truncated
// input reports the same way as empty tokens.
func readTokens(in io.Reader) (pattern, word string, err error) {
	if _, err := fmt.Fscan(in, &pattern); err != nil {
		if errors.Is(err, io.EOF) {
			return "", "", &syntax.ParseError{Err: syntax.ErrEmptyExpression}
		}
		return "", "", err
	}
	if _, err := fmt.Fscan(in, &word); err != nil {
		if errors.Is(err, io.EOF) {
			return "", "", &syntax.WordError{Err: syntax.ErrEmptyWord}
		}
		return "", "", err
	}
	return pattern, word, nil
}
