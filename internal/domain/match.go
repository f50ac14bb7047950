package domain

import (
	"context"
)

// TaskRequest describes the task candidates are ranked against.
// TopN defaults to 5 when omitted (applied before validation).
type TaskRequest struct {
	TaskDescription string `json:"task_description" validate:"required,min=20"`
	TopN            int    `json:"top_n" validate:"gt=0,lte=20"`
}

// MatchEntry is one ranking entry as claimed by the AI model: an id, a score and
// a short justification. It has not yet been checked against the store, so the
// id may reference a candidate that does not exist.
type MatchEntry struct {
	EmployeeID       string `json:"employee_id"`
	PerformanceScore int    `json:"performance_score"`
	Justification    string `json:"justification"`
}

// MatchResult is a merged entry: the model's score and justification combined
// with the authoritative profile held in the store.
type MatchResult struct {
	EmployeeID       string           `json:"employee_id"`
	Profile          CandidateProfile `json:"profile"`
	PerformanceScore int              `json:"performance_score"`
	Justification    string           `json:"justification"`
}

// MatchRanker asks the AI model to score candidates against a task description.
// The returned order is whatever the model produced; callers must re-sort.
type MatchRanker interface {
	Rank(ctx context.Context, taskDescription string, candidates []CandidateRecord) ([]MatchEntry, error)
}

type MatchUsecase interface {
	FindMatches(ctx context.Context, req *TaskRequest) ([]MatchResult, error)
}
