package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"go.dw1.io/rex/ansi"
	"go.dw1.io/rex/input"
	"go.dw1.io/rex/internal/seen"
	"go.dw1.io/rex/regexp"
)

type scanOptions struct {
	all    bool
	count  bool
	unique bool

	seen *seen.Set
}

func newScanCommand(s *settings) *cobra.Command {
	var opts scanOptions

	cmd := &cobra.Command{
		Use:   "scan <recipe> <file>...",
		Short: "Print lines of files that match a recipe",
		Long: `Compile the recipe and print every line of the given files that
contains a match, prefixed with the file name and line number. Matches
are highlighted when color is enabled.

Only the first match per line is highlighted unless the recipe uses
global_search or --all is given. With --count, print the number of matches
per file instead, counting every match on a line. With --unique, a line
repeated anywhere in the input is reported only the first time.

Exit code: 0 if anything matched, 1 otherwise`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, re, err := s.compile(args[0])
			if err != nil {
				return err
			}
			defer re.Release()

			b, err := r.Builder()
			if err != nil {
				return err
			}
			if b.Global() {
				opts.all = true
			}
			if opts.unique {
				opts.seen = seen.New(seen.DefaultSize)
			}

			out := cmd.OutOrStdout()
			paint := s.painter(out)

			total := 0
			for _, path := range args[1:] {
				n, err := scanFile(out, paint, re, path, opts)
				if err != nil {
					return err
				}
				total += n
			}

			if total == 0 {
				return ErrNoMatch
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.all, "all", false, "find every match on a line, not just the first")
	cmd.Flags().BoolVarP(&opts.count, "count", "c", false, "print match counts per file")
	cmd.Flags().BoolVarP(&opts.unique, "unique", "u", false, "skip matching lines already reported")

	return cmd
}

// scanFile writes the matching lines of path and returns the number of
// matches.
func scanFile(out io.Writer, paint func(ansi.Color, string) string, re *regexp.Regexp, path string, opts scanOptions) (int, error) {
	f, err := input.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	log.Debug().
		Str("path", path).
		Bool("mapped", f.Mapped()).
		Int("size", f.Len()).
		Msg("Scanning file")

	limit := 1
	if opts.all || opts.count {
		limit = -1
	}

	total := 0
	for n, line := range f.Lines() {
		matches := re.FindAllIndex(line, limit)
		if len(matches) == 0 {
			continue
		}
		if opts.seen != nil && !opts.seen.Add(line) {
			continue
		}
		total += len(matches)

		if !opts.count {
			fmt.Fprintf(out, "%s:%d:%s\n", path, n, highlight(line, matches, paint))
		}
	}

	if opts.count {
		fmt.Fprintf(out, "%s:%d\n", path, total)
	}

	return total, nil
}

// highlight paints the matched ranges of line red.
func highlight(line []byte, matches [][]int, paint func(ansi.Color, string) string) string {
	var buf bytes.Buffer

	prev := 0
	for _, m := range matches {
		if m[0] == m[1] {
			continue
		}
		buf.Write(line[prev:m[0]])
		buf.WriteString(paint(ansi.Red, string(line[m[0]:m[1]])))
		prev = m[1]
	}
	buf.Write(line[prev:])

	return buf.String()
}
