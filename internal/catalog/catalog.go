// Package catalog loads the profiled movie catalog the recommender ranks over.
package catalog

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/justestif/go-movie-mood-recommender/internal/db"
	"github.com/justestif/go-movie-mood-recommender/internal/recommend"
)

// Source provides the current catalog.
type Source interface {
	Movies(ctx context.Context) ([]recommend.Movie, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]recommend.Movie, error)

// Movies calls f.
func (f SourceFunc) Movies(ctx context.Context) ([]recommend.Movie, error) {
	return f(ctx)
}

// FromDB converts a stored movie. Unprofiled movies get a zero profile.
func FromDB(m db.Movie) recommend.Movie {
	out := recommend.Movie{
		ID:          m.ID.String(),
		TMDBID:      m.TMDBID,
		Title:       m.Title,
		Overview:    m.Overview,
		Genres:      m.Genres,
		PosterURL:   m.PosterURL,
		ReleaseDate: m.ReleaseDate,
		Popularity:  m.Popularity,
	}
	if m.Profile != nil {
		out.Profile = *m.Profile
	}
	return out
}

// FindByTitle returns the catalog entry whose title matches case-insensitively,
// falling back to the most popular substring match.
func FindByTitle(movies []recommend.Movie, title string) (recommend.Movie, bool) {
	query := strings.ToLower(strings.TrimSpace(title))
	if query == "" {
		return recommend.Movie{}, false
	}

	var matches []recommend.Movie
	for _, m := range movies {
		lower := strings.ToLower(m.Title)
		if lower == query {
			return m, true
		}
		if strings.Contains(lower, query) {
			matches = append(matches, m)
		}
	}
	if len(matches) == 0 {
		return recommend.Movie{}, false
	}
	slices.SortStableFunc(matches, func(a, b recommend.Movie) int {
		return cmp.Compare(b.Popularity, a.Popularity)
	})
	return matches[0], true
}
