package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"go.dw1.io/rex/ansi"
	"go.dw1.io/rex/internal/config"
	"go.dw1.io/rex/internal/logging"
	"go.dw1.io/rex/recipe"
	"go.dw1.io/rex/regexp"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// settings is the state shared by every subcommand of one root command.
type settings struct {
	verbosity  int
	configPath string
	engine     string
	color      string
	longest    bool
	timeout    time.Duration

	cfg *config.Config
}

// NewRootCommand creates and returns the root cobra command for rex
func NewRootCommand() *cobra.Command {
	s := &settings{}

	cmd := &cobra.Command{
		Use:   "rex",
		Short: "Build regular expressions from recipes",
		Long: `rex builds regular expressions from recipe files (YAML, TOML or JSON),
each a list of builder steps, and runs them against text.

Patterns compile on the fastest engine that supports them: coregex by
default, regexp2 for lookarounds and backreferences, or RE2 on request.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(s.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			return s.load(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.CountVarP(&s.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	flags.StringVar(&s.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/rex/config.toml)")
	flags.StringVar(&s.engine, "engine", "", "regexp engine: auto, core, pcre or re2")
	flags.StringVar(&s.color, "color", "", "colorize output: auto, always or never")
	flags.BoolVar(&s.longest, "longest", false, "prefer leftmost-longest matches")
	flags.DurationVar(&s.timeout, "timeout", 0, "match timeout for the pcre engine")

	cmd.AddCommand(newBuildCommand(s))
	cmd.AddCommand(newCheckCommand(s))
	cmd.AddCommand(newMatchCommand(s))
	cmd.AddCommand(newScanCommand(s))
	cmd.AddCommand(newStepsCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// load reads the config file and environment, then applies flags that were
// set explicitly.
func (s *settings) load(cmd *cobra.Command) error {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("engine") {
		cfg.Engine = s.engine
	}
	if flags.Changed("color") {
		cfg.Color = s.color
	}
	if flags.Changed("longest") {
		cfg.Longest = s.longest
	}
	if flags.Changed("timeout") {
		cfg.Timeout = s.timeout
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log.Debug().
		Str("engine", cfg.Engine).
		Str("color", cfg.Color).
		Bool("longest", cfg.Longest).
		Dur("timeout", cfg.Timeout).
		Msg("Configuration loaded")

	s.cfg = cfg
	return nil
}

// compile loads the recipe at path and compiles it with the configured
// options.
func (s *settings) compile(path string) (*recipe.Recipe, *regexp.Regexp, error) {
	r, err := recipe.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	re, err := r.Compile(s.cfg.Options()...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return r, re, nil
}

// painter returns a function coloring text for w according to the color
// mode.
func (s *settings) painter(w io.Writer) func(ansi.Color, string) string {
	enabled := false
	switch s.cfg.Color {
	case config.ColorAlways:
		enabled = true
	case config.ColorAuto:
		enabled = logging.IsTerminal(w)
	}

	if !enabled {
		return func(_ ansi.Color, text string) string { return text }
	}

	return ansi.Colorize
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rex version %s\n", Version)
		},
	}
}
