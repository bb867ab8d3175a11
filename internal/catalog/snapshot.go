package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/justestif/go-movie-mood-recommender/internal/logging"
	"github.com/justestif/go-movie-mood-recommender/internal/recommend"
)

// Snapshot caches a Source for a refresh interval. A zero interval loads once.
// Callers must not modify the returned slice.
type Snapshot struct {
	source  Source
	refresh time.Duration
	now     func() time.Time

	mu       sync.RWMutex
	movies   []recommend.Movie
	loadedAt time.Time
	loaded   bool
}

// NewSnapshot wraps source.
func NewSnapshot(source Source, refresh time.Duration) *Snapshot {
	return &Snapshot{source: source, refresh: refresh, now: time.Now}
}

// Movies returns the cached catalog, reloading it when stale. When a reload
// fails the previous catalog is kept and served.
func (s *Snapshot) Movies(ctx context.Context) ([]recommend.Movie, error) {
	s.mu.RLock()
	if s.loaded && !s.stale() {
		movies := s.movies
		s.mu.RUnlock()
		return movies, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have reloaded while we waited
	if s.loaded && !s.stale() {
		return s.movies, nil
	}

	movies, err := s.source.Movies(ctx)
	if err != nil {
		if s.loaded {
			logging.Ctx(ctx).Warn().Err(err).Msg("catalog refresh failed, serving previous snapshot")
			s.loadedAt = s.now()
			return s.movies, nil
		}
		return nil, err
	}

	s.movies = movies
	s.loadedAt = s.now()
	s.loaded = true
	logging.Ctx(ctx).Debug().Int("movies", len(movies)).Msg("catalog loaded")
	return movies, nil
}

// Invalidate forces the next call to reload.
func (s *Snapshot) Invalidate() {
	s.mu.Lock()
	s.loaded = false
	s.mu.Unlock()
}

func (s *Snapshot) stale() bool {
	return s.refresh > 0 && s.now().Sub(s.loadedAt) >= s.refresh
}
