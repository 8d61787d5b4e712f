package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dahlia/pkg/config"
	"github.com/arthur-debert/dahlia/pkg/dahlia"
	"github.com/arthur-debert/dahlia/pkg/logging"
)

// globalOptions are the persistent flag values shared by the subcommands
type globalOptions struct {
	depth   string
	marker  string
	noReset bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "dahlia",
		Short: "Convert inline color markup to ANSI escape sequences",
		Long: `dahlia converts text containing marker-based color codes (&a, &~4,
&#ff00ff;) into ANSI escape sequences, at a color depth matched to the
terminal.

Text is taken from the arguments, or from stdin when none are given, so
dahlia works as a pipeline filter:

  echo '&aHello &cWorld' | dahlia convert`,
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&opts.depth, "depth", "d", "", "Color depth: tty, low, medium, high or none (default: detect)")
	rootCmd.PersistentFlags().StringVarP(&opts.marker, "marker", "m", "", "Character introducing codes (default \"&\")")
	rootCmd.PersistentFlags().BoolVar(&opts.noReset, "no-reset", false, "Do not append a reset sequence to converted output")

	// Add all commands
	rootCmd.AddCommand(newConvertCmd(opts))
	rootCmd.AddCommand(newCleanCmd(opts))
	rootCmd.AddCommand(newStripAnsiCmd())
	rootCmd.AddCommand(newChartCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// buildConverter layers config file, environment and flags into a
// converter. Flags win over the environment, which wins over the file.
func buildConverter(opts *globalOptions) (*dahlia.Dahlia, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.depth != "" {
		cfg.Depth = opts.depth
	}
	if opts.marker != "" {
		cfg.Marker = opts.marker
	}
	if opts.noReset {
		cfg.AutoReset = false
	}

	marker, err := cfg.MarkerRune()
	if err != nil {
		return nil, err
	}
	d, err := cfg.ResolveDepth(os.Stdout)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("depth", d.String()).
		Str("marker", string(marker)).
		Bool("autoReset", cfg.AutoReset).
		Msg("Converter configured")

	return dahlia.New(
		dahlia.WithDepth(d),
		dahlia.WithMarker(marker),
		dahlia.WithAutoReset(cfg.AutoReset),
	), nil
}

// runFilter applies transform to the arguments, or line by line to stdin
// when no arguments are given.
func runFilter(cmd *cobra.Command, args []string, transform func(string) string) error {
	out := cmd.OutOrStdout()

	if len(args) > 0 {
		_, err := fmt.Fprintln(out, transform(strings.Join(args, " ")))
		return err
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(out, transform(scanner.Text())); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func newConvertCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [text...]",
		Short: "Convert markup codes to ANSI escape sequences",
		Example: `  # Convert arguments
  dahlia convert '&aHello &cWorld'

  # Convert a stream
  cat motd.txt | dahlia convert --depth high`,
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := buildConverter(opts)
			if err != nil {
				return err
			}
			return runFilter(cmd, args, conv.Convert)
		},
	}
}

func newCleanCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clean [text...]",
		Short: "Remove markup codes without emitting ANSI",
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := buildConverter(opts)
			if err != nil {
				return err
			}
			return runFilter(cmd, args, conv.Clean)
		},
	}
}

func newStripAnsiCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "strip-ansi [text...]",
		Aliases: []string{"clean-ansi"},
		Short:   "Remove ANSI escape sequences from text",
		Long: `Remove ANSI escape sequences from text, whether or not they were
produced by dahlia. Useful for logging colored output to a file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, args, dahlia.CleanAnsi)
		},
	}
}
