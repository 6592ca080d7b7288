package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metapop/internal/config"
	"github.com/katalvlaran/metapop/internal/logger"
	"github.com/katalvlaran/metapop/internal/service/extinction"
	"github.com/katalvlaran/metapop/internal/version"
)

// flagValues mirrors every tunable field of config.Config. Only flags the user
// actually set override the configuration file and environment.
type flagValues struct {
	configPath      string
	smallExtinction float64
	largeExtinction float64
	recolonization  float64
	years           int
	tolerance       float64
	method          string
	format          string
	curve           bool
	logLevel        string
}

// rootCmd represents the base command.
var rootCmd = newRootCommand()

func newRootCommand() *cobra.Command {
	flags := &flagValues{}

	cmd := &cobra.Command{
		Use:   "metapop",
		Short: "Two-patch metapopulation extinction probability.",
		Long: `Builds the yearly transition matrix of a species living on a small and a
large habitat patch, checks that it is row-stochastic and propagates the
"both patches occupied" starting state for the requested number of years.

The reported value is the probability that both patches are empty, which
is permanent because an empty landscape cannot be recolonized.

Settings are layered: built-in defaults, then the YAML file given by
--config, then METAPOP_* environment variables, then explicit flags.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}

			if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
				logger.SetLevel(level)
			}

			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return extinction.Run(ctx, cmd.OutOrStdout(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "path to YAML configuration file")
	f.Float64Var(&flags.smallExtinction, "small-extinction", config.DefaultSmallExtinction, "per-year extinction probability e_s of the small patch")
	f.Float64Var(&flags.largeExtinction, "large-extinction", config.DefaultLargeExtinction, "per-year extinction probability e_l of the large patch")
	f.Float64Var(&flags.recolonization, "recolonization", config.DefaultRecolonization, "per-year recolonization probability r of an empty patch")
	f.IntVarP(&flags.years, "years", "t", config.DefaultYears, "number of annual steps T")
	f.Float64Var(&flags.tolerance, "tolerance", config.Default().Tolerance, "row-sum tolerance of the stochasticity check")
	f.StringVar(&flags.method, "method", config.Default().Method, "propagation method: iterate or squaring")
	f.StringVar(&flags.format, "format", config.Default().Format, "output format: text or yaml")
	f.BoolVar(&flags.curve, "curve", false, "also print the per-year extinction curve")
	f.StringVar(&flags.logLevel, "log-level", config.DefaultLogLevel, "diagnostic level on stderr: debug, info, warn or error")

	version.AttachCobraVersionCommand(cmd)

	return cmd
}

// resolveConfig applies file, environment and changed flags, in that order.
func resolveConfig(cmd *cobra.Command, flags *flagValues) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	if err = config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("small-extinction") {
		cfg.SmallExtinction = flags.smallExtinction
	}
	if changed("large-extinction") {
		cfg.LargeExtinction = flags.largeExtinction
	}
	if changed("recolonization") {
		cfg.Recolonization = flags.recolonization
	}
	if changed("years") {
		cfg.Years = flags.years
	}
	if changed("tolerance") {
		cfg.Tolerance = flags.tolerance
	}
	if changed("method") {
		cfg.Method = flags.method
	}
	if changed("format") {
		cfg.Format = flags.format
	}
	if changed("curve") {
		cfg.Curve = flags.curve
	}
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}

	return cfg, nil
}

// Execute runs the metapop CLI and exits with non-zero status on error.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
