// Package sync imports movie listings from TMDB into PostgreSQL.
package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/justestif/go-movie-mood-recommender/internal/db"
	"github.com/justestif/go-movie-mood-recommender/internal/logging"
	"github.com/justestif/go-movie-mood-recommender/internal/tmdb"
)

// DefaultPages is the number of listing pages fetched per source.
const DefaultPages = 5

// MovieSource abstracts the TMDB client for testing.
type MovieSource interface {
	Popular(ctx context.Context, page int) (*tmdb.Page, error)
	TopRated(ctx context.Context, page int) (*tmdb.Page, error)
	MovieDetails(ctx context.Context, id int) (*tmdb.MovieDetails, error)
}

// MovieWriter persists imported movies.
type MovieWriter interface {
	UpsertBatch(ctx context.Context, movies []db.Movie) error
}

// Service handles syncing listings from TMDB to the database.
type Service struct {
	source    MovieSource
	writer    MovieWriter
	maxMovies int
}

// Option configures a Service.
type Option func(*Service)

// WithMaxMovies caps how many discovered movies are imported. Zero means no cap.
func WithMaxMovies(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxMovies = n
		}
	}
}

// New creates a new sync service.
func New(source MovieSource, writer MovieWriter, opts ...Option) *Service {
	s := &Service{
		source: source,
		writer: writer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SyncResult contains the result of a sync operation.
type SyncResult struct {
	Discovered int
	Imported   int
	Failed     int
	SyncedAt   time.Time
}

// SyncListings walks the popular and top rated listings, fetches details for
// each unique movie and upserts them in one batch. Movies whose details cannot
// be fetched are counted in Failed and skipped.
func (s *Service) SyncListings(ctx context.Context, pages int) (*SyncResult, error) {
	if pages <= 0 {
		pages = DefaultPages
	}
	log := logging.Ctx(ctx)

	// Gather IDs in discovery order
	var ids []int
	seen := make(map[int]bool)
	listings := []struct {
		name  string
		fetch func(context.Context, int) (*tmdb.Page, error)
	}{
		{"popular", s.source.Popular},
		{"top_rated", s.source.TopRated},
	}
	for _, l := range listings {
		for page := 1; page <= pages; page++ {
			p, err := l.fetch(ctx, page)
			if err != nil {
				return nil, fmt.Errorf("fetching %s listings: %w", l.name, err)
			}
			for _, m := range p.Results {
				if !seen[m.ID] {
					seen[m.ID] = true
					ids = append(ids, m.ID)
				}
			}
			if page >= p.TotalPages {
				break
			}
		}
		log.Debug().Str("listing", l.name).Int("unique_ids", len(ids)).Msg("collected listing")
	}

	if s.maxMovies > 0 && len(ids) > s.maxMovies {
		ids = ids[:s.maxMovies]
	}

	result := &SyncResult{Discovered: len(ids)}
	movies := make([]db.Movie, 0, len(ids))
	for _, id := range ids {
		details, err := s.source.MovieDetails(ctx, id)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			log.Warn().Err(err).Int("tmdb_id", id).Msg("skipping movie")
			result.Failed++
			continue
		}
		movies = append(movies, toDBMovie(details))
	}

	if err := s.writer.UpsertBatch(ctx, movies); err != nil {
		return nil, fmt.Errorf("upserting movies: %w", err)
	}

	result.Imported = len(movies)
	result.SyncedAt = time.Now()
	log.Info().
		Int("discovered", result.Discovered).
		Int("imported", result.Imported).
		Int("failed", result.Failed).
		Msg("sync complete")
	return result, nil
}

func toDBMovie(d *tmdb.MovieDetails) db.Movie {
	return db.Movie{
		TMDBID:      d.ID,
		Title:       d.Title,
		Overview:    d.Overview,
		Genres:      d.GenreNames(),
		PosterURL:   d.PosterURL(),
		ReleaseDate: d.ReleaseDate,
		Popularity:  d.Popularity,
		VoteAverage: d.VoteAverage,
	}
}
