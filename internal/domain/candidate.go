package domain

import (
	"context"
)

// CandidateProfile is the structured data the AI model extracts from one resume.
// It is built once at upload time and never mutated afterwards; the store is the
// single source of truth for its content.
type CandidateProfile struct {
	Name                 string   `json:"name"`
	TotalYearsExperience int      `json:"total_years_experience"`
	TechnicalSkills      []string `json:"technical_skills"`
	SoftSkills           []string `json:"soft_skills"`
	Summary              string   `json:"summary"`
}

// CandidateRecord is a stored profile plus the identifier the store assigned at insert.
type CandidateRecord struct {
	EmployeeID string           `json:"employee_id"`
	Profile    CandidateProfile `json:"profile"`
}

// CandidateStore holds candidate records for the lifetime of the process.
// Implementations must be safe for concurrent use: uploads and match requests
// run on separate goroutines and interleave freely.
type CandidateStore interface {
	// Insert stores the profile under a fresh unique identifier and returns it.
	Insert(profile CandidateProfile) string
	// ListAll returns a snapshot of every record, in insertion order.
	ListAll() []CandidateRecord
	// GetByID returns the record for id, or false if no such record exists.
	GetByID(id string) (CandidateRecord, bool)
}

// ProfileExtractor turns raw resume text into a CandidateProfile via the AI model.
type ProfileExtractor interface {
	Extract(ctx context.Context, documentText string) (*CandidateProfile, error)
}

// DocumentParser extracts plain text from an uploaded resume document.
type DocumentParser interface {
	ExtractText(data []byte, contentType string) (string, error)
}

type ResumeUsecase interface {
	UploadResume(ctx context.Context, data []byte, contentType string) (*CandidateRecord, error)
	ListCandidates(ctx context.Context) ([]CandidateRecord, error)
}
