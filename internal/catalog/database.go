package catalog

import (
	"context"
	"fmt"

	"github.com/justestif/go-movie-mood-recommender/internal/db"
	"github.com/justestif/go-movie-mood-recommender/internal/recommend"
)

// ProfiledLister is the slice of the movie repository DBSource needs.
type ProfiledLister interface {
	ListProfiled(ctx context.Context) ([]db.Movie, error)
}

// DBSource reads profiled movies from PostgreSQL.
type DBSource struct {
	movies ProfiledLister
}

// NewDBSource creates a DBSource.
func NewDBSource(movies ProfiledLister) *DBSource {
	return &DBSource{movies: movies}
}

// Movies returns every profiled movie.
func (s *DBSource) Movies(ctx context.Context) ([]recommend.Movie, error) {
	stored, err := s.movies.ListProfiled(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profiled movies: %w", err)
	}

	movies := make([]recommend.Movie, len(stored))
	for i, m := range stored {
		movies[i] = FromDB(m)
	}
	return movies, nil
}
