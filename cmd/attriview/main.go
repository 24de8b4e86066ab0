package main

import (
	"errors"
	"fmt"
	"os"

	"attriview/pkg/charts"
	"attriview/pkg/config"
	"attriview/pkg/dataset"
	"attriview/pkg/parser"
	"attriview/pkg/report"
	"attriview/pkg/schema"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Exit statuses. A load failure must be distinguishable so callers can tell
// "no data" from an analysis failure.
const (
	exitOK              = 0
	exitError           = 1
	exitDataUnavailable = 2
	exitSchemaMismatch  = 3
	exitUnmappedCode    = 4
)

var rootCmd = &cobra.Command{
	Use:   "attriview",
	Short: "Descriptive attrition analysis of the IBM HR dataset",
	Long: `attriview loads the IBM HR employee attrition CSV, drops zero-variance
columns, recodes the integer-coded ordinal columns to descriptive labels,
prints descriptive summaries with the overall attrition rate, renders a fixed
sequence of chart artifacts, and flags categories with elevated attrition.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringP("input", "i", "", "path to the HR attrition CSV file")
	flags.StringP("out-dir", "o", "charts", "directory for chart artifacts")
	flags.String("export", "", "write the full report as JSON to this path")
	flags.String("mappings", "", "YAML file overriding the ordinal label tables")
	flags.Bool("no-charts", false, "skip chart rendering")
	flags.BoolP("verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "attriview:", err)
		os.Exit(exitCode(err))
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	log := newLogger(cfg.Verbose)
	defer func() { _ = log.Sync() }()

	opts := []dataset.Option{}
	if cfg.Mappings != "" {
		mappings, err := schema.LoadOverrides(cfg.Mappings)
		if err != nil {
			return err
		}
		log.Info("ordinal mapping overrides loaded", zap.String("path", cfg.Mappings))
		opts = append(opts, dataset.WithMappings(mappings))
	}

	ds, err := dataset.NewPipeline(log, opts...).Run(cfg.Input)
	if err != nil {
		return err
	}

	summary, err := report.BuildSummary(ds)
	if err != nil {
		return err
	}
	findings := report.ScreenDrivers(summary)
	report.RenderConsole(cmd.OutOrStdout(), ds, summary, findings)

	if !cfg.NoCharts {
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		if _, err := charts.NewRenderer(cfg.OutDir, log).RenderAll(ds, summary); err != nil {
			return err
		}
	}

	if cfg.Export != "" {
		export, err := report.BuildExport(ds, summary, findings)
		if err != nil {
			return err
		}
		if err := report.WriteJSON(cfg.Export, export); err != nil {
			return err
		}
		log.Info("report exported", zap.String("path", cfg.Export))
	}

	return nil
}

// newLogger sets up a console-encoded zap logger with ISO8601 timestamps.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, _ := cfg.Build()
	return log
}

// exitCode maps pipeline failures onto their distinguished exit statuses.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, parser.ErrDataUnavailable):
		return exitDataUnavailable
	case errors.Is(err, schema.ErrSchemaMismatch):
		return exitSchemaMismatch
	case errors.Is(err, schema.ErrUnmappedCode):
		return exitUnmappedCode
	default:
		return exitError
	}
}
