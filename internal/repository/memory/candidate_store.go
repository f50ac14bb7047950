// Package memory provides the process-lifetime candidate store. Records live
// until restart; swapping in a durable backend only means re-implementing
// domain.CandidateStore.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"employee-matcher-backend/internal/domain"
)

type candidateStore struct {
	mu      sync.RWMutex
	records map[string]domain.CandidateRecord
	// order keeps insertion order for ListAll; the map alone would shuffle it.
	order []string
}

// NewCandidateStore creates an empty in-memory store.
func NewCandidateStore() domain.CandidateStore {
	return &candidateStore{
		records: make(map[string]domain.CandidateRecord),
	}
}

// Insert stores the profile under a fresh UUID and returns it. IDs are assigned
// exactly once and never reused.
func (s *candidateStore) Insert(profile domain.CandidateProfile) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[id] = domain.CandidateRecord{
		EmployeeID: id,
		Profile:    profile,
	}
	s.order = append(s.order, id)
	return id
}

// ListAll returns a snapshot in insertion order. Callers own the returned slice.
func (s *candidateStore) ListAll() []domain.CandidateRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CandidateRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

// GetByID looks up a single record.
func (s *candidateStore) GetByID(id string) (domain.CandidateRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	return rec, ok
}
