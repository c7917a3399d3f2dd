package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/kenh/donor-rfm/internal/types"
)

// Artifact step names.
const (
	StepAggregates       = "donor_aggregates"
	StepDiscreteScores   = "discrete_scores"
	StepContinuousScores = "continuous_scores"
)

// GetAggregatesByRunID loads the donor aggregate snapshot for a run.
func (db *DB) GetAggregatesByRunID(ctx context.Context, runID uuid.UUID) ([]types.DonorAggregate, error) {
	content, err := db.GetArtifact(ctx, runID, StepAggregates)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var aggregates []types.DonorAggregate
	if err := json.Unmarshal(content, &aggregates); err != nil {
		return nil, fmt.Errorf("failed to unmarshal donor aggregates: %w", err)
	}
	return aggregates, nil
}

// GetScoresByRunID loads the per-donor scores a run computed for one regime.
// The step must be StepDiscreteScores or StepContinuousScores.
func (db *DB) GetScoresByRunID(ctx context.Context, runID uuid.UUID, step string) ([]types.DonorScores, error) {
	content, err := db.GetArtifact(ctx, runID, step)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var scores []types.DonorScores
	if err := json.Unmarshal(content, &scores); err != nil {
		return nil, fmt.Errorf("failed to unmarshal donor scores: %w", err)
	}
	return scores, nil
}
