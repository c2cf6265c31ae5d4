package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"go.dw1.io/rex/ansi"
)

// ErrNoMatch is returned by match and scan when nothing matched.
var ErrNoMatch = errors.New("no match")

func newMatchCommand(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "match <recipe> <subject>...",
		Short: "Test subjects against a recipe",
		Long: `Compile the recipe and report, for each subject, whether it matches.
Capturing groups of a matching subject are printed after it.

Exit code: 0 if any subject matched, 1 otherwise`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, re, err := s.compile(args[0])
			if err != nil {
				return err
			}
			defer re.Release()

			out := cmd.OutOrStdout()
			paint := s.painter(out)
			names := re.SubexpNames()

			matched := false
			for _, subject := range args[1:] {
				groups := re.FindStringSubmatch(subject)
				if groups == nil {
					fmt.Fprintf(out, "%s\t%s\n", paint(ansi.Red, "false"), subject)
					continue
				}

				matched = true
				fmt.Fprintf(out, "%s\t%s", paint(ansi.Green, "true"), subject)
				if len(groups) > 1 {
					fmt.Fprintf(out, "\t%s", formatGroups(names, groups[1:]))
				}
				fmt.Fprintln(out)
			}

			if !matched {
				return ErrNoMatch
			}

			return nil
		},
	}
}

// formatGroups renders submatches as "1=a year=2024"; names[0] belongs to
// the whole match and is skipped.
func formatGroups(names, groups []string) string {
	parts := make([]string, len(groups))
	for i, g := range groups {
		label := fmt.Sprint(i + 1)
		if i+1 < len(names) && names[i+1] != "" {
			label = names[i+1]
		}
		parts[i] = label + "=" + g
	}

	return strings.Join(parts, " ")
}
