package usecase

import (
	"context"
	"time"

	"employee-matcher-backend/internal/domain"
	"employee-matcher-backend/pkg/logger"
)

type resumeUsecase struct {
	store     domain.CandidateStore
	parser    domain.DocumentParser
	extractor domain.ProfileExtractor
	aiTimeout time.Duration
}

// NewResumeUsecase wires the upload pipeline: document text extraction, AI
// profile extraction, store insert. aiTimeout bounds the single model call.
func NewResumeUsecase(store domain.CandidateStore, parser domain.DocumentParser, extractor domain.ProfileExtractor, aiTimeout time.Duration) domain.ResumeUsecase {
	return &resumeUsecase{
		store:     store,
		parser:    parser,
		extractor: extractor,
		aiTimeout: aiTimeout,
	}
}

func (u *resumeUsecase) UploadResume(ctx context.Context, data []byte, contentType string) (*domain.CandidateRecord, error) {
	text, err := u.parser.ExtractText(data, contentType)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, u.aiTimeout)
	defer cancel()

	profile, err := u.extractor.Extract(ctx, text)
	if err != nil {
		return nil, err
	}

	id := u.store.Insert(*profile)
	logger.Log.Info("Candidate profile created", "employee_id", id, "name", profile.Name)

	record, _ := u.store.GetByID(id)
	return &record, nil
}

func (u *resumeUsecase) ListCandidates(ctx context.Context) ([]domain.CandidateRecord, error) {
	return u.store.ListAll(), nil
}
