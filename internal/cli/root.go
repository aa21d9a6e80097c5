package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wattwise/wattwise/internal/config"
	"github.com/wattwise/wattwise/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// configKey carries the loaded config through the command context.
type configKey struct{}

func contextWithConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFromCmd returns the config loaded during PersistentPreRunE.
// Falls back to defaults when setup has not run (direct command tests).
func configFromCmd(cmd *cobra.Command) config.Config {
	ctx := cmd.Context()
	if ctx == nil {
		return config.Default()
	}
	if cfg, ok := ctx.Value(configKey{}).(config.Config); ok {
		return cfg
	}
	return config.Default()
}

// NewRootCmd creates the root Cobra command for the wattwise CLI.
// It wires up config loading, logging, and the tea and exergy subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wattwise",
		Short:   "Techno-economic and exergy analysis for energy projects",
		Long:    "WattWise: Compute LCOE, NPV, IRR and second-law (exergy) efficiency for energy-producing assets",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupCommand(cmd)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to config file (default ~/.wattwise/config.yaml)")
	cmd.PersistentFlags().String("output", "", "output format (table, json); overrides config default")

	cmd.AddCommand(newTeaCmd(), newExergyCmd())

	return cmd
}

// setupCommand loads configuration and wires the logger into the command
// context with a per-invocation trace ID.
func setupCommand(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	loggingCfg := cfg.Logging
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
	}
	if envLevel := os.Getenv("WATTWISE_LOG_LEVEL"); envLevel != "" {
		loggingCfg.Level = envLevel
	}

	logger = logging.ComponentLogger(logging.New(loggingCfg), "cli")
	logger = logger.With().Str("trace_id", logging.NewTraceID()).Logger()

	ctx := logger.WithContext(cmd.Context())
	ctx = contextWithConfig(ctx, cfg)
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Msg("command started")
	return nil
}

// resolveOutputFormat picks the output format from the flag, then the config
// default, and validates it.
func resolveOutputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = configFromCmd(cmd).Output.DefaultFormat
	}
	if format == "" {
		format = outputFormatTable
	}
	switch format {
	case outputFormatTable, outputFormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected table or json)", format)
	}
}

const rootCmdExample = `  # Full techno-economic analysis from an assumptions file
  wattwise tea compute --input project.yaml

  # Sensitivity sweep on capital cost
  wattwise tea sensitivity --input project.yaml --parameter capex_per_kw \
    --variations -20,-10,0,10,20

  # Exergy analysis of a coal-to-electricity conversion
  wattwise exergy analyze --source coal --energy 1000

  # Rank technologies by second-law efficiency
  wattwise exergy compare --input technologies.yaml

  # Exergy-adjusted economic value of annual production
  wattwise exergy value --production 219000 --source solar --price 50`
