package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/justestif/go-movie-mood-recommender/internal/db"
	"github.com/justestif/go-movie-mood-recommender/internal/logging"
)

// DefaultBatchSize is the number of movies loaded per round trip.
const DefaultBatchSize = 100

// MovieStore is the slice of the movie repository the runner needs.
type MovieStore interface {
	ListUnprofiled(ctx context.Context, limit int) ([]db.Movie, error)
	UpdateProfiles(ctx context.Context, updates []db.ProfileUpdate) error
}

// Runner profiles stored movies that do not have a profile yet.
type Runner struct {
	store   MovieStore
	service *Service
}

// NewRunner creates a Runner over the given store.
func NewRunner(store MovieStore, service *Service) *Runner {
	return &Runner{store: store, service: service}
}

// ProcessPending profiles unprofiled movies batch by batch until none remain
// and returns how many were written.
func (r *Runner) ProcessPending(ctx context.Context, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	log := logging.Ctx(ctx)
	processed := 0
	for {
		movies, err := r.store.ListUnprofiled(ctx, batchSize)
		if err != nil {
			return processed, fmt.Errorf("loading unprofiled movies: %w", err)
		}
		if len(movies) == 0 {
			return processed, nil
		}

		inputs := make([]Input, len(movies))
		for i, m := range movies {
			inputs[i] = Input{Key: m.ID.String(), Text: m.Overview, Genres: m.Genres}
		}

		results, err := r.service.ProfileMovies(ctx, inputs)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			return processed, fmt.Errorf("profiling movies: %w", err)
		}

		updates := make([]db.ProfileUpdate, 0, len(results))
		for i, res := range results {
			if res.Error != nil {
				continue
			}
			updates = append(updates, db.ProfileUpdate{MovieID: movies[i].ID, Profile: res.Profile})
		}

		if err := r.store.UpdateProfiles(ctx, updates); err != nil {
			return processed, fmt.Errorf("saving profiles: %w", err)
		}
		processed += len(updates)

		log.Info().
			Int("batch", len(movies)).
			Int("processed", processed).
			Msg("profiled movie batch")

		if ctx.Err() != nil {
			return processed, ctx.Err()
		}
		// A short batch means the backlog is drained.
		if len(movies) < batchSize {
			return processed, nil
		}
	}
}
