package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/justestif/go-movie-mood-recommender/internal/db"
	"github.com/justestif/go-movie-mood-recommender/internal/recommend"
)

// ErrNotFound is returned when no movie matches a title.
var ErrNotFound = errors.New("movie not found")

// FindMovie looks a title up in the current snapshot.
func (s *Snapshot) FindMovie(ctx context.Context, title string) (recommend.Movie, error) {
	movies, err := s.Movies(ctx)
	if err != nil {
		return recommend.Movie{}, err
	}
	m, ok := FindByTitle(movies, title)
	if !ok {
		return recommend.Movie{}, fmt.Errorf("%q: %w", title, ErrNotFound)
	}
	return m, nil
}

// TitleFinder is the slice of the movie repository DBFinder needs.
type TitleFinder interface {
	FindByTitle(ctx context.Context, title string) (*db.Movie, error)
}

// DBFinder looks titles up in PostgreSQL, including movies not yet profiled.
type DBFinder struct {
	movies TitleFinder
}

// NewDBFinder creates a DBFinder.
func NewDBFinder(movies TitleFinder) *DBFinder {
	return &DBFinder{movies: movies}
}

// FindMovie returns the best stored match for title.
func (f *DBFinder) FindMovie(ctx context.Context, title string) (recommend.Movie, error) {
	m, err := f.movies.FindByTitle(ctx, title)
	if errors.Is(err, db.ErrNotFound) {
		return recommend.Movie{}, fmt.Errorf("%q: %w", title, ErrNotFound)
	}
	if err != nil {
		return recommend.Movie{}, fmt.Errorf("finding movie: %w", err)
	}
	return FromDB(*m), nil
}
