package profiles

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/justestif/go-movie-mood-recommender/internal/db"
)

// memoryStore implements MovieStore over a slice.
type memoryStore struct {
	mu        sync.Mutex
	movies    []db.Movie
	updates   int
	listErr   error
	updateErr error
}

func newMemoryStore(n int) *memoryStore {
	s := &memoryStore{}
	for i := 0; i < n; i++ {
		s.movies = append(s.movies, db.Movie{
			ID:       uuid.New(),
			TMDBID:   i + 1,
			Overview: "A quiet story about friendship and second chances.",
			Genres:   []string{"Drama"},
		})
	}
	return s
}

func (s *memoryStore) ListUnprofiled(_ context.Context, limit int) ([]db.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []db.Movie
	for _, m := range s.movies {
		if m.Profile == nil && len(out) < limit {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *memoryStore) UpdateProfiles(_ context.Context, updates []db.ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updates++
	for _, u := range updates {
		for i := range s.movies {
			if s.movies[i].ID == u.MovieID {
				p := u.Profile
				s.movies[i].Profile = &p
			}
		}
	}
	return nil
}

func TestProcessPending(t *testing.T) {
	tests := []struct {
		name        string
		movies      int
		batchSize   int
		wantUpdates int
	}{
		{name: "empty store", movies: 0, batchSize: 10, wantUpdates: 0},
		{name: "single partial batch", movies: 3, batchSize: 10, wantUpdates: 1},
		{name: "exact multiple", movies: 10, batchSize: 5, wantUpdates: 2},
		{name: "several batches", movies: 12, batchSize: 5, wantUpdates: 3},
		{name: "default batch size", movies: 7, batchSize: 0, wantUpdates: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemoryStore(tt.movies)
			runner := NewRunner(store, NewService(&mockProfiler{}))

			n, err := runner.ProcessPending(context.Background(), tt.batchSize)
			if err != nil {
				t.Fatalf("ProcessPending() error = %v", err)
			}
			if n != tt.movies {
				t.Errorf("ProcessPending() = %d, want %d", n, tt.movies)
			}
			if store.updates != tt.wantUpdates {
				t.Errorf("UpdateProfiles called %d times, want %d", store.updates, tt.wantUpdates)
			}
			for _, m := range store.movies {
				if m.Profile == nil {
					t.Errorf("movie %d left unprofiled", m.TMDBID)
				}
			}
		})
	}
}

func TestProcessPending_StoreErrors(t *testing.T) {
	errDB := errors.New("connection reset")

	store := newMemoryStore(2)
	store.listErr = errDB
	if _, err := NewRunner(store, NewService(&mockProfiler{})).ProcessPending(context.Background(), 10); !errors.Is(err, errDB) {
		t.Errorf("list failure: error = %v, want %v", err, errDB)
	}

	store = newMemoryStore(2)
	store.updateErr = errDB
	n, err := NewRunner(store, NewService(&mockProfiler{})).ProcessPending(context.Background(), 10)
	if !errors.Is(err, errDB) {
		t.Errorf("update failure: error = %v, want %v", err, errDB)
	}
	if n != 0 {
		t.Errorf("update failure: processed = %d, want 0", n)
	}
}

func TestProcessPending_Cancelled(t *testing.T) {
	store := newMemoryStore(4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := NewRunner(store, NewService(&mockProfiler{})).ProcessPending(ctx, 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if n != 0 {
		t.Errorf("processed = %d, want 0", n)
	}
}
