package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"employee-matcher-backend/internal/domain"
)

type profileExtractor struct {
	oracle Oracle
}

// NewProfileExtractor creates the extractor that turns raw resume text into a
// structured profile via one Gemini round-trip.
func NewProfileExtractor(oracle Oracle) domain.ProfileExtractor {
	return &profileExtractor{oracle: oracle}
}

// profilePayload mirrors the JSON object the model is asked to produce.
// Pointer fields distinguish "missing" from "zero value" so absent keys can be
// coerced to defaults instead of failing. Experience arrives as a float because
// models occasionally answer "7.5" despite the integer instruction.
type profilePayload struct {
	Name                 *string  `json:"name"`
	TotalYearsExperience *float64 `json:"total_years_experience"`
	TechnicalSkills      []string `json:"technical_skills"`
	SoftSkills           []string `json:"soft_skills"`
	Summary              *string  `json:"summary"`
}

func (p *profilePayload) toProfile() *domain.CandidateProfile {
	profile := &domain.CandidateProfile{
		TechnicalSkills: []string{},
		SoftSkills:      []string{},
	}
	if p.Name != nil {
		profile.Name = *p.Name
	}
	if p.TotalYearsExperience != nil && *p.TotalYearsExperience > 0 {
		profile.TotalYearsExperience = int(*p.TotalYearsExperience)
	}
	if p.TechnicalSkills != nil {
		profile.TechnicalSkills = p.TechnicalSkills
	}
	if p.SoftSkills != nil {
		profile.SoftSkills = p.SoftSkills
	}
	if p.Summary != nil {
		profile.Summary = *p.Summary
	}
	return profile
}

// Extract asks the model for a structured profile of documentText.
// Empty input fails fast with domain.ErrEmptyDocument before any model call.
// Model or parse failures surface as *domain.ExtractionError.
func (e *profileExtractor) Extract(ctx context.Context, documentText string) (*domain.CandidateProfile, error) {
	if strings.TrimSpace(documentText) == "" {
		return nil, domain.ErrEmptyDocument
	}

	raw, err := e.oracle.Generate(ctx, buildExtractionPrompt(documentText))
	if err != nil {
		return nil, &domain.ExtractionError{Err: err}
	}

	payload := Normalize(raw)
	var parsed profilePayload
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, &domain.ExtractionError{Err: fmt.Errorf("invalid profile JSON: %w", err)}
	}

	return parsed.toProfile(), nil
}
