package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"go.dw1.io/rex/ansi"
	"go.dw1.io/rex/recipe"
)

func newCheckCommand(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "check <recipe>...",
		Short: "Run each recipe against its samples",
		Long: `Compile each recipe and verify that it matches every sample under
samples.match and none under samples.reject.

Exit code: 0 if every recipe passes, 1 otherwise`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			paint := s.painter(out)

			failed := 0
			for _, path := range args {
				r, re, err := s.compile(path)
				if err != nil {
					return err
				}

				err = r.Check(re)
				re.Release()

				var serr *recipe.SampleError
				switch {
				case err == nil:
					n := len(r.Samples.Match) + len(r.Samples.Reject)
					fmt.Fprintf(out, "%s %s (%d samples)\n", paint(ansi.Green, "ok"), r.Name, n)
				case errors.As(err, &serr):
					failed++
					fmt.Fprintf(out, "%s %s\n", paint(ansi.Red, "FAIL"), serr)
				default:
					return err
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d recipes failed", failed, len(args))
			}

			return nil
		},
	}
}
