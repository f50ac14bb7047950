package memory_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"employee-matcher-backend/internal/domain"
	"employee-matcher-backend/internal/repository/memory"
)

func TestCandidateStoreInsertAndGet(t *testing.T) {
	store := memory.NewCandidateStore()

	profile := domain.CandidateProfile{Name: "Jane Doe", TotalYearsExperience: 5}
	id := store.Insert(profile)
	assert.NotEmpty(t, id)

	rec, ok := store.GetByID(id)
	assert.True(t, ok)
	assert.Equal(t, id, rec.EmployeeID)
	assert.Equal(t, profile, rec.Profile)

	t.Run("Unknown id is absent", func(t *testing.T) {
		_, ok := store.GetByID("no-such-id")
		assert.False(t, ok)
	})
}

func TestCandidateStoreUniqueIDs(t *testing.T) {
	store := memory.NewCandidateStore()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := store.Insert(domain.CandidateProfile{})
		assert.False(t, seen[id], "id %s assigned twice", id)
		seen[id] = true
	}
}

func TestCandidateStoreListAllOrder(t *testing.T) {
	store := memory.NewCandidateStore()

	ids := []string{
		store.Insert(domain.CandidateProfile{Name: "first"}),
		store.Insert(domain.CandidateProfile{Name: "second"}),
		store.Insert(domain.CandidateProfile{Name: "third"}),
	}

	all := store.ListAll()
	assert.Len(t, all, 3)
	for i, rec := range all {
		assert.Equal(t, ids[i], rec.EmployeeID)
	}
}

func TestCandidateStoreConcurrentInserts(t *testing.T) {
	store := memory.NewCandidateStore()

	var wg sync.WaitGroup
	const workers = 20
	const perWorker = 10

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				store.Insert(domain.CandidateProfile{})
				store.ListAll()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, store.ListAll(), workers*perWorker)
}
