package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument indicates the uploaded document yielded no text to extract.
// This is a user input problem, detected before any AI call is made.
var ErrEmptyDocument = errors.New("document contains no extractable text")

// ExtractionError indicates the profile extraction call failed: either the AI
// model call itself errored, or its response could not be parsed as a profile.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("resume extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// RankingError indicates the candidate ranking call failed: either the AI model
// call errored, or its response was not a parseable ranking list.
type RankingError struct {
	Err error
}

func (e *RankingError) Error() string {
	return fmt.Sprintf("candidate ranking failed: %v", e.Err)
}

func (e *RankingError) Unwrap() error {
	return e.Err
}
