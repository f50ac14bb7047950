package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"employee-matcher-backend/internal/domain"
)

type matchRanker struct {
	oracle Oracle
}

// NewMatchRanker creates the ranker that scores a candidate set against a task
// description in one Gemini round-trip.
func NewMatchRanker(oracle Oracle) domain.MatchRanker {
	return &matchRanker{oracle: oracle}
}

// rankPayload mirrors one element of the JSON array the model is asked to
// produce. Pointer fields let a single malformed entry be dropped without
// failing the batch.
type rankPayload struct {
	EmployeeID       *string  `json:"employee_id"`
	PerformanceScore *float64 `json:"performance_score"`
	Justification    *string  `json:"justification"`
}

// Rank serializes the full candidate set into the ranking prompt and parses
// the model's scored list. The empty set short-circuits without a model call.
// The model's claimed ordering is passed through as-is; merging re-sorts.
//
// Entry-level policy: entries whose employee_id is not a string are dropped,
// out-of-range scores are clamped into [0, 100], and a missing justification
// becomes the empty string. Only an unusable response as a whole (model error,
// or text that is not a JSON array) surfaces as *domain.RankingError.
func (r *matchRanker) Rank(ctx context.Context, taskDescription string, candidates []domain.CandidateRecord) ([]domain.MatchEntry, error) {
	if len(candidates) == 0 {
		return []domain.MatchEntry{}, nil
	}

	blob, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return nil, &domain.RankingError{Err: fmt.Errorf("serializing candidates: %w", err)}
	}

	raw, err := r.oracle.Generate(ctx, buildRankingPrompt(taskDescription, string(blob)))
	if err != nil {
		return nil, &domain.RankingError{Err: err}
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(Normalize(raw)), &elements); err != nil {
		return nil, &domain.RankingError{Err: fmt.Errorf("invalid ranking JSON: %w", err)}
	}

	entries := make([]domain.MatchEntry, 0, len(elements))
	for _, element := range elements {
		var payload rankPayload
		if err := json.Unmarshal(element, &payload); err != nil {
			continue
		}
		if payload.EmployeeID == nil || *payload.EmployeeID == "" {
			continue
		}

		entry := domain.MatchEntry{EmployeeID: *payload.EmployeeID}
		if payload.PerformanceScore != nil {
			entry.PerformanceScore = clampScore(int(*payload.PerformanceScore))
		}
		if payload.Justification != nil {
			entry.Justification = *payload.Justification
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
