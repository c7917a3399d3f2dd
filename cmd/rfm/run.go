package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kenh/donor-rfm/internal/config"
	"github.com/kenh/donor-rfm/internal/enrich"
	"github.com/kenh/donor-rfm/internal/ingestion"
	"github.com/kenh/donor-rfm/internal/observability"
	"github.com/kenh/donor-rfm/internal/pipeline"
	"github.com/kenh/donor-rfm/internal/schemas"
	"github.com/kenh/donor-rfm/internal/types"
	schemadocs "github.com/kenh/donor-rfm/schemas"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the enrichment pipeline over a gift log CSV",
	Long: `Reads a donor gift log, computes per-donor RFM scores and segment labels
relative to the full donor population, and writes the enriched CSV.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath  string
	runInput       string
	runOutput      string
	runMode        string
	runAsOf        string
	runDatabaseURL string
	runVerbose     bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runInput, "input", "i", "", "Path to the gift log CSV")
	runCommand.Flags().StringVarP(&runOutput, "output", "o", "", "Path for the enriched CSV (both-mode appends _discrete/_continuous)")
	runCommand.Flags().StringVarP(&runMode, "mode", "m", "", "Scoring regime: discrete, continuous, or both")
	runCommand.Flags().StringVar(&runAsOf, "as-of", "", "As-of date for recency (YYYY-MM-DD, defaults to today)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed run summaries")

	// Database URL for run persistence
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		raw, err := os.ReadFile(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
		if err := schemas.ValidateBytes(schemadocs.RunConfig(), raw); err != nil {
			return fmt.Errorf("config file %s: %w", runConfigPath, err)
		}

		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("input") {
		cfg.Input = runInput
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = runOutput
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = runMode
	}
	if cmd.Flags().Changed("as-of") {
		cfg.AsOf = runAsOf
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Mode: string(types.ModeDiscrete),
	})

	// Step 4: Validate required fields
	if cfg.Input == "" {
		return fmt.Errorf("--input is required (via flag or config)")
	}
	if cfg.Output == "" {
		return fmt.Errorf("--output is required (via flag or config)")
	}
	mode := types.Mode(cfg.Mode)
	if !mode.Valid() {
		return fmt.Errorf("--mode must be discrete, continuous, or both, got %q", cfg.Mode)
	}

	var asOf time.Time
	if cfg.AsOf != "" {
		var err error
		asOf, err = time.Parse("2006-01-02", cfg.AsOf)
		if err != nil {
			return fmt.Errorf("--as-of must be YYYY-MM-DD: %w", err)
		}
	}

	// Step 5: Database URL handling (optional)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	gifts, err := ingestion.ReadFile(cfg.Input)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		Gifts:       gifts,
		AsOf:        asOf,
		Mode:        mode,
		DatabaseURL: cfg.DatabaseURL,
		Logger:      observability.NewLogger(cfg.Verbose),
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRunSummary(result)
		printer.PrintSegmentBreakdown(result.Discrete)
		printer.PrintSegmentBreakdown(result.Continuous)
		printer.PrintTopDonors(firstRegime(result))
	}

	return writeOutputs(result, mode, cfg.Output)
}

// writeOutputs writes one enriched CSV per computed regime. In both-mode the
// output path gets a _discrete/_continuous suffix before the extension.
func writeOutputs(result *pipeline.Result, mode types.Mode, output string) error {
	write := func(regime *pipeline.RegimeResult, path string) error {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file %s: %w", path, err)
		}
		defer f.Close()

		if err := enrich.WriteCSV(f, regime.Rows, regime.Mode); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote %d rows to %s\n", len(regime.Rows), path)
		return nil
	}

	if mode == types.ModeBoth {
		if err := write(result.Discrete, suffixPath(output, "_discrete")); err != nil {
			return err
		}
		return write(result.Continuous, suffixPath(output, "_continuous"))
	}
	return write(firstRegime(result), output)
}

// suffixPath inserts a suffix between a path's base name and extension.
func suffixPath(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

func firstRegime(result *pipeline.Result) *pipeline.RegimeResult {
	if result.Discrete != nil {
		return result.Discrete
	}
	return result.Continuous
}
