// Package profiles computes emotion profiles for batches of movies.
package profiles

import (
	"context"
	"sync"

	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
)

// DefaultConcurrency is the number of movies profiled in parallel.
const DefaultConcurrency = 4

// Input is the text and genres of one movie to profile.
type Input struct {
	Key    string
	Text   string
	Genres []string
}

// Result holds the profile computed for an Input.
type Result struct {
	Key     string
	Profile emotion.Profile
	Error   error // Non-nil if the item was skipped
}

// Profiler abstracts the synthesizer for testing.
type Profiler interface {
	Synthesize(ctx context.Context, text string, genres []string) emotion.Profile
}

// Service profiles movies concurrently.
type Service struct {
	profiler    Profiler
	concurrency int
}

// Option configures a Service.
type Option func(*Service)

// WithConcurrency sets the number of concurrent profiling workers.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewService creates a new profiling service.
func NewService(profiler Profiler, opts ...Option) *Service {
	s := &Service{
		profiler:    profiler,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProfileMovies profiles multiple movies concurrently.
// Results are returned in the same order as inputs. Items not started before
// the context is cancelled carry the context error.
func (s *Service) ProfileMovies(ctx context.Context, inputs []Input) ([]Result, error) {
	if len(inputs) == 0 {
		return []Result{}, nil
	}

	results := make([]Result, len(inputs))

	type workItem struct {
		index int
		input Input
	}
	workCh := make(chan workItem, len(inputs))

	// Feed work items
	for i, in := range inputs {
		workCh <- workItem{index: i, input: in}
	}
	close(workCh)

	// Process with worker pool
	var wg sync.WaitGroup
	for i := 0; i < s.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for work := range workCh {
				if err := ctx.Err(); err != nil {
					results[work.index] = Result{Key: work.input.Key, Error: err}
					continue
				}

				results[work.index] = Result{
					Key:     work.input.Key,
					Profile: s.profiler.Synthesize(ctx, work.input.Text, work.input.Genres),
				}
			}
		}()
	}

	wg.Wait()

	// Check if context was cancelled
	if ctx.Err() != nil {
		return results, ctx.Err()
	}

	return results, nil
}
