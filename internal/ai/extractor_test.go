package ai_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"employee-matcher-backend/internal/ai"
	"employee-matcher-backend/internal/domain"
)

type MockOracle struct {
	mock.Mock
}

func (m *MockOracle) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func TestExtractEmptyDocument(t *testing.T) {
	oracle := new(MockOracle)
	extractor := ai.NewProfileExtractor(oracle)

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := extractor.Extract(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrEmptyDocument)
	}

	// No oracle invocation may happen for empty input
	oracle.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestExtractFencedResponse(t *testing.T) {
	oracle := new(MockOracle)
	oracle.On("Generate", mock.Anything, mock.Anything).
		Return("```json {\"name\":\"Jane Doe\",\"total_years_experience\":5,\"technical_skills\":[\"Go\"],\"soft_skills\":[],\"summary\":\"x\"} ```", nil)

	extractor := ai.NewProfileExtractor(oracle)
	profile, err := extractor.Extract(context.Background(), "resume text")

	assert.NoError(t, err)
	assert.Equal(t, &domain.CandidateProfile{
		Name:                 "Jane Doe",
		TotalYearsExperience: 5,
		TechnicalSkills:      []string{"Go"},
		SoftSkills:           []string{},
		Summary:              "x",
	}, profile)
}

func TestExtractRoundTrip(t *testing.T) {
	original := domain.CandidateProfile{
		Name:                 "John Smith",
		TotalYearsExperience: 12,
		TechnicalSkills:      []string{"Go", "PostgreSQL", "Kubernetes"},
		SoftSkills:           []string{"communication"},
		Summary:              "Seasoned backend engineer.",
	}
	serialized, err := json.Marshal(original)
	assert.NoError(t, err)

	oracle := new(MockOracle)
	oracle.On("Generate", mock.Anything, mock.Anything).Return(string(serialized), nil)

	extractor := ai.NewProfileExtractor(oracle)
	profile, err := extractor.Extract(context.Background(), "any resume")

	assert.NoError(t, err)
	assert.Equal(t, original, *profile)
}

func TestExtractDefaultsMissingFields(t *testing.T) {
	t.Run("Missing keys coerce to zero values", func(t *testing.T) {
		oracle := new(MockOracle)
		oracle.On("Generate", mock.Anything, mock.Anything).Return(`{"name":"Jane Doe"}`, nil)

		extractor := ai.NewProfileExtractor(oracle)
		profile, err := extractor.Extract(context.Background(), "resume")

		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", profile.Name)
		assert.Equal(t, 0, profile.TotalYearsExperience)
		assert.NotNil(t, profile.TechnicalSkills)
		assert.Empty(t, profile.TechnicalSkills)
		assert.NotNil(t, profile.SoftSkills)
		assert.Empty(t, profile.SoftSkills)
		assert.Equal(t, "", profile.Summary)
	})

	t.Run("Explicit nulls coerce the same way", func(t *testing.T) {
		oracle := new(MockOracle)
		oracle.On("Generate", mock.Anything, mock.Anything).
			Return(`{"name":null,"total_years_experience":null,"technical_skills":null,"soft_skills":null,"summary":null}`, nil)

		extractor := ai.NewProfileExtractor(oracle)
		profile, err := extractor.Extract(context.Background(), "resume")

		assert.NoError(t, err)
		assert.Equal(t, "", profile.Name)
		assert.Equal(t, 0, profile.TotalYearsExperience)
		assert.Empty(t, profile.TechnicalSkills)
	})

	t.Run("Negative experience clamps to zero", func(t *testing.T) {
		oracle := new(MockOracle)
		oracle.On("Generate", mock.Anything, mock.Anything).
			Return(`{"name":"x","total_years_experience":-3}`, nil)

		extractor := ai.NewProfileExtractor(oracle)
		profile, err := extractor.Extract(context.Background(), "resume")

		assert.NoError(t, err)
		assert.Equal(t, 0, profile.TotalYearsExperience)
	})
}

func TestExtractFailures(t *testing.T) {
	t.Run("Oracle error surfaces as ExtractionError", func(t *testing.T) {
		oracle := new(MockOracle)
		oracle.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))

		extractor := ai.NewProfileExtractor(oracle)
		_, err := extractor.Extract(context.Background(), "resume")

		var extractionErr *domain.ExtractionError
		assert.ErrorAs(t, err, &extractionErr)
		assert.ErrorContains(t, extractionErr.Err, "quota exceeded")
	})

	t.Run("Malformed JSON surfaces as ExtractionError", func(t *testing.T) {
		oracle := new(MockOracle)
		oracle.On("Generate", mock.Anything, mock.Anything).Return("I could not process this resume.", nil)

		extractor := ai.NewProfileExtractor(oracle)
		_, err := extractor.Extract(context.Background(), "resume")

		var extractionErr *domain.ExtractionError
		assert.ErrorAs(t, err, &extractionErr)
	})
}
