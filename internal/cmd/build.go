package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.dw1.io/rex/json"
)

// buildResult is the --json form of one built recipe.
type buildResult struct {
	Name    string   `json:"name"`
	Path    string   `json:"path"`
	Pattern string   `json:"pattern"`
	Engine  string   `json:"engine"`
	Global  bool     `json:"global"`
	Groups  []string `json:"groups,omitempty"`
}

func newBuildCommand(s *settings) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "build <recipe>...",
		Short: "Print the pattern each recipe builds",
		Long: `Build each recipe and print its pattern, one per line.

The pattern is also compiled, so a recipe the selected engine rejects is
reported as an error. With --json, print an array of objects carrying the
pattern, the engine that compiled it and its named groups.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]buildResult, 0, len(args))
			for _, path := range args {
				r, re, err := s.compile(path)
				if err != nil {
					return err
				}

				b, err := r.Builder()
				if err != nil {
					return err
				}

				res := buildResult{
					Name:    r.Name,
					Path:    path,
					Pattern: re.String(),
					Engine:  re.Engine().String(),
					Global:  b.Global(),
				}
				for _, name := range re.SubexpNames() {
					if name != "" {
						res.Groups = append(res.Groups, name)
					}
				}
				re.Release()

				results = append(results, res)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(results, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}

			for _, res := range results {
				fmt.Fprintln(out, res.Pattern)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")

	return cmd
}
