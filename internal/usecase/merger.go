package usecase

import (
	"sort"

	"employee-matcher-backend/internal/domain"
)

// MergeMatches reconciles the model's ranking entries with the authoritative
// records in the store and truncates to topN.
//
// The model's output is trusted only for id, score and justification; profile
// data always comes from the store. Entries referencing ids the store does not
// hold are dropped silently (the model can hallucinate ids), as are repeat
// entries for an id already merged (first occurrence wins). The claimed
// ordering is discarded: entries are re-sorted by score descending with a
// stable sort, so ties keep the model's original order and results stay
// deterministic.
func MergeMatches(entries []domain.MatchEntry, store domain.CandidateStore, topN int) []domain.MatchResult {
	results := make([]domain.MatchResult, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for _, entry := range entries {
		if seen[entry.EmployeeID] {
			continue
		}
		record, ok := store.GetByID(entry.EmployeeID)
		if !ok {
			continue
		}
		seen[entry.EmployeeID] = true
		results = append(results, domain.MatchResult{
			EmployeeID:       record.EmployeeID,
			Profile:          record.Profile,
			PerformanceScore: entry.PerformanceScore,
			Justification:    entry.Justification,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].PerformanceScore > results[j].PerformanceScore
	})

	if topN > 0 && len(results) > topN {
		results = results[:topN]
	}
	return results
}
