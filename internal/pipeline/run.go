// Package pipeline provides the high-level orchestration for a donor RFM
// enrichment run: aggregate -> score -> segment -> join.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/kenh/donor-rfm/internal/aggregation"
	"github.com/kenh/donor-rfm/internal/db"
	"github.com/kenh/donor-rfm/internal/enrich"
	"github.com/kenh/donor-rfm/internal/scoring"
	"github.com/kenh/donor-rfm/internal/segmentation"
	"github.com/kenh/donor-rfm/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Mode    string `json:"mode,omitempty"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Gifts       []types.Gift // Required: validated gift records
	AsOf        time.Time    // Reference date for recency; zero means now
	Mode        types.Mode
	DatabaseURL string // Optional: persist run artifacts when set
	Logger      zerolog.Logger
	OnProgress  ProgressCallback
}

// RegimeResult holds the outputs of one scoring regime.
type RegimeResult struct {
	Mode   types.Mode
	Scores []types.DonorScores
	Rows   []types.EnrichedRow
}

// Result holds the outputs of a full pipeline run. Discrete and Continuous
// are populated according to the requested mode.
type Result struct {
	RunID      uuid.UUID
	AsOf       time.Time
	Aggregates []types.DonorAggregate
	Discrete   *RegimeResult
	Continuous *RegimeResult
}

// RowCount returns the number of input gift rows the run enriched.
func (r *Result) RowCount() int {
	if r.Discrete != nil {
		return len(r.Discrete.Rows)
	}
	if r.Continuous != nil {
		return len(r.Continuous.Rows)
	}
	return 0
}

// DonorCount returns the number of distinct donors in the run.
func (r *Result) DonorCount() int { return len(r.Aggregates) }

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, mode, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Mode: mode, Message: message})
	}
}

// Run executes the enrichment pipeline over the supplied gift records. The
// donor population snapshot is built once; each regime then computes scores
// from read-only references into it. With ModeBoth the two regimes run
// concurrently, each over the same immutable snapshot.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if len(opts.Gifts) == 0 {
		return nil, fmt.Errorf("no gift records to process")
	}
	if !opts.Mode.Valid() {
		return nil, fmt.Errorf("invalid mode: %q", opts.Mode)
	}
	asOf := opts.AsOf
	if asOf.IsZero() {
		now := time.Now().UTC()
		asOf = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	result := &Result{RunID: uuid.New(), AsOf: asOf}
	logger := opts.Logger.With().Str("run_id", result.RunID.String()).Logger()

	logger.Info().
		Int("gifts", len(opts.Gifts)).
		Str("mode", string(opts.Mode)).
		Time("as_of", asOf).
		Msg("starting enrichment run")

	emitProgress(&opts, "aggregate", "", "building donor aggregates")
	result.Aggregates = aggregation.Build(opts.Gifts, asOf)
	logger.Info().Int("donors", len(result.Aggregates)).Msg("aggregates built")

	runRegime := func(mode types.Mode) (*RegimeResult, error) {
		emitProgress(&opts, "score", string(mode), "scoring donor population")
		var scores []types.DonorScores
		switch mode {
		case types.ModeDiscrete:
			scores = scoreDiscrete(result.Aggregates)
		case types.ModeContinuous:
			scores = scoreContinuous(result.Aggregates)
		}

		emitProgress(&opts, "join", string(mode), "joining scores onto gift rows")
		rows, err := enrich.Join(opts.Gifts, result.Aggregates, scores)
		if err != nil {
			return nil, fmt.Errorf("failed to join %s regime: %w", mode, err)
		}
		return &RegimeResult{Mode: mode, Scores: scores, Rows: rows}, nil
	}

	switch opts.Mode {
	case types.ModeDiscrete:
		regime, err := runRegime(types.ModeDiscrete)
		if err != nil {
			return nil, err
		}
		result.Discrete = regime
	case types.ModeContinuous:
		regime, err := runRegime(types.ModeContinuous)
		if err != nil {
			return nil, err
		}
		result.Continuous = regime
	case types.ModeBoth:
		g, _ := errgroup.WithContext(ctx)
		g.Go(func() error {
			regime, err := runRegime(types.ModeDiscrete)
			if err != nil {
				return err
			}
			result.Discrete = regime
			return nil
		})
		g.Go(func() error {
			regime, err := runRegime(types.ModeContinuous)
			if err != nil {
				return err
			}
			result.Continuous = regime
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	if opts.DatabaseURL != "" {
		if err := persistRun(ctx, opts, result); err != nil {
			return nil, err
		}
	}

	logger.Info().Int("rows", result.RowCount()).Msg("enrichment run complete")
	return result, nil
}

// scoreDiscrete computes 1-5 quintile scores and discrete segments for every
// donor in the snapshot.
func scoreDiscrete(aggregates []types.DonorAggregate) []types.DonorScores {
	recency, frequency, monetary := seriesOf(aggregates)

	// Lower days-since-last-gift is better.
	r := scoring.QuintileScores(recency, false)
	f := scoring.QuintileScores(frequency, true)
	m := scoring.QuintileScores(monetary, true)

	scores := make([]types.DonorScores, len(aggregates))
	for i, agg := range aggregates {
		scores[i] = types.DonorScores{
			DonorID:        agg.DonorID,
			RecencyScore:   float64(r[i]),
			FrequencyScore: float64(f[i]),
			MonetaryScore:  float64(m[i]),
			RFM:            fmt.Sprintf("%d%d%d", r[i], f[i], m[i]),
			Segment:        segmentation.Discrete(r[i], f[i], m[i]),
		}
	}
	return scores
}

// scoreContinuous computes 0-10 percentile scores, the composite mean, and
// continuous segments for every donor in the snapshot.
func scoreContinuous(aggregates []types.DonorAggregate) []types.DonorScores {
	recency, frequency, monetary := seriesOf(aggregates)

	r := scoring.PercentileScores(recency, false)
	f := scoring.PercentileScores(frequency, true)
	m := scoring.PercentileScores(monetary, true)

	scores := make([]types.DonorScores, len(aggregates))
	for i, agg := range aggregates {
		composite := (r[i] + f[i] + m[i]) / 3.0
		scores[i] = types.DonorScores{
			DonorID:        agg.DonorID,
			RecencyScore:   r[i],
			FrequencyScore: f[i],
			MonetaryScore:  m[i],
			Composite:      composite,
			Segment:        segmentation.Continuous(r[i], f[i], m[i], composite),
		}
	}
	return scores
}

// seriesOf extracts the three score input series, index-aligned with the
// aggregate snapshot.
func seriesOf(aggregates []types.DonorAggregate) (recency, frequency, monetary []float64) {
	recency = make([]float64, len(aggregates))
	frequency = make([]float64, len(aggregates))
	monetary = make([]float64, len(aggregates))
	for i, agg := range aggregates {
		recency[i] = float64(agg.DaysSinceLastGift)
		frequency[i] = float64(agg.TotalGifts)
		monetary[i] = agg.TotalAmount
	}
	return recency, frequency, monetary
}

// persistRun stores the run record and its artifacts.
func persistRun(ctx context.Context, opts RunOptions, result *Result) error {
	database, err := db.Connect(ctx, opts.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := database.CreateRun(ctx, result.RunID, opts.Mode, result.AsOf, result.RowCount(), result.DonorCount()); err != nil {
		return err
	}
	if err := database.SaveArtifact(ctx, result.RunID, db.StepAggregates, result.Aggregates); err != nil {
		return err
	}
	if result.Discrete != nil {
		if err := database.SaveArtifact(ctx, result.RunID, db.StepDiscreteScores, result.Discrete.Scores); err != nil {
			return err
		}
	}
	if result.Continuous != nil {
		if err := database.SaveArtifact(ctx, result.RunID, db.StepContinuousScores, result.Continuous.Scores); err != nil {
			return err
		}
	}
	return database.CompleteRun(ctx, result.RunID, "completed")
}
