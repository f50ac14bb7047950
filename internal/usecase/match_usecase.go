package usecase

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"employee-matcher-backend/internal/domain"
	"employee-matcher-backend/pkg/apperror"
	"employee-matcher-backend/pkg/logger"
)

// defaultTopN is used when the request leaves top_n unset.
const defaultTopN = 5

type matchUsecase struct {
	store     domain.CandidateStore
	ranker    domain.MatchRanker
	validate  *validator.Validate
	aiTimeout time.Duration
}

// NewMatchUsecase wires the matching pipeline: request validation, store
// snapshot, AI ranking, merge against the store. aiTimeout bounds the single
// model call.
func NewMatchUsecase(store domain.CandidateStore, ranker domain.MatchRanker, validate *validator.Validate, aiTimeout time.Duration) domain.MatchUsecase {
	return &matchUsecase{
		store:     store,
		ranker:    ranker,
		validate:  validate,
		aiTimeout: aiTimeout,
	}
}

func (u *matchUsecase) FindMatches(ctx context.Context, req *domain.TaskRequest) ([]domain.MatchResult, error) {
	if req.TopN == 0 {
		req.TopN = defaultTopN
	}
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	candidates := u.store.ListAll()
	if len(candidates) == 0 {
		return []domain.MatchResult{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, u.aiTimeout)
	defer cancel()

	entries, err := u.ranker.Rank(ctx, req.TaskDescription, candidates)
	if err != nil {
		return nil, err
	}

	results := MergeMatches(entries, u.store, req.TopN)
	logger.Log.Info("Match request served",
		"candidates", len(candidates),
		"ranked", len(entries),
		"returned", len(results))
	return results, nil
}
