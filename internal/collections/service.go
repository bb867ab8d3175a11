// Package collections provides services for detecting and persisting mood
// collections over the movie catalog.
package collections

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/justestif/go-movie-mood-recommender/internal/catalog"
	"github.com/justestif/go-movie-mood-recommender/internal/clustering"
	"github.com/justestif/go-movie-mood-recommender/internal/db"
	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
	"github.com/justestif/go-movie-mood-recommender/internal/recommend"
)

const sampleTitles = 3

// Store persists collections.
type Store interface {
	Replace(ctx context.Context, collections []db.NewCollection) ([]db.MoodCollection, error)
	List(ctx context.Context) ([]db.MoodCollection, error)
	GetMovies(ctx context.Context, collectionID uuid.UUID) ([]db.Movie, error)
}

// Summary is a collection as listed to users.
type Summary struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	TopEmotions  []string `json:"top_emotions"`
	MovieCount   int      `json:"movie_count"`
	SampleTitles []string `json:"sample_titles,omitempty"`
}

// Service handles collection detection and persistence. Without a store,
// collections are detected on demand and nothing is saved.
type Service struct {
	store  Store
	source catalog.Source
	cfg    clustering.Config
}

// New creates a new collection service. store may be nil.
func New(store Store, source catalog.Source, cfg clustering.Config) *Service {
	return &Service{store: store, source: source, cfg: cfg}
}

// DetectResult contains the outcome of collection detection.
type DetectResult struct {
	Collections  []clustering.Collection // Detected collections
	Stored       []db.MoodCollection     // Persisted rows, empty without a store
	Outliers     []recommend.Movie       // Movies that didn't fit any collection
	OutlierCount int                     // len(Outliers)
	TotalMovies  int                     // Total movies analyzed
}

// Detect clusters the current catalog without persisting anything.
func (s *Service) Detect(ctx context.Context) (*DetectResult, error) {
	movies, err := s.source.Movies(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	detected, outliers := clustering.DetectCollections(movies, s.cfg)
	return &DetectResult{
		Collections:  detected,
		Outliers:     outliers,
		OutlierCount: len(outliers),
		TotalMovies:  len(movies),
	}, nil
}

// DetectAndPersist runs detection and replaces the stored collections.
func (s *Service) DetectAndPersist(ctx context.Context) (*DetectResult, error) {
	result, err := s.Detect(ctx)
	if err != nil {
		return nil, err
	}
	if s.store == nil {
		return result, nil
	}

	toStore := make([]db.NewCollection, len(result.Collections))
	for i, c := range result.Collections {
		toStore[i] = toNewCollection(c)
	}

	stored, err := s.store.Replace(ctx, toStore)
	if err != nil {
		return nil, fmt.Errorf("replacing collections: %w", err)
	}
	result.Stored = stored
	return result, nil
}

// Summaries lists stored collections, or detects them on the fly without a
// store.
func (s *Service) Summaries(ctx context.Context) ([]Summary, error) {
	if s.store != nil {
		stored, err := s.store.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing collections: %w", err)
		}
		out := make([]Summary, len(stored))
		for i, c := range stored {
			out[i] = Summary{
				ID:          c.ID.String(),
				Name:        c.Name,
				TopEmotions: c.TopEmotions,
				MovieCount:  c.MovieCount,
			}
		}
		return out, nil
	}

	result, err := s.Detect(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, len(result.Collections))
	for i, c := range result.Collections {
		titles := make([]string, 0, sampleTitles)
		for _, m := range c.Movies[:min(sampleTitles, len(c.Movies))] {
			titles = append(titles, m.Title)
		}
		out[i] = Summary{
			Name:         c.Name,
			TopEmotions:  categoryStrings(c.TopEmotions),
			MovieCount:   len(c.Movies),
			SampleTitles: titles,
		}
	}
	return out, nil
}

// Movies retrieves all movies of a stored collection.
func (s *Service) Movies(ctx context.Context, collectionID string) ([]db.Movie, error) {
	if s.store == nil {
		return nil, fmt.Errorf("collection %s: %w", collectionID, db.ErrNotFound)
	}
	id, err := uuid.Parse(collectionID)
	if err != nil {
		return nil, fmt.Errorf("invalid collection ID: %w", err)
	}
	movies, err := s.store.GetMovies(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting collection movies: %w", err)
	}
	return movies, nil
}

// toNewCollection converts a detected collection. Movies without a stored
// UUID are skipped since they cannot be linked.
func toNewCollection(c clustering.Collection) db.NewCollection {
	ids := make([]uuid.UUID, 0, len(c.Movies))
	for _, m := range c.Movies {
		if id, err := uuid.Parse(m.ID); err == nil {
			ids = append(ids, id)
		}
	}
	return db.NewCollection{
		Name:        c.Name,
		TopEmotions: categoryStrings(c.TopEmotions),
		MovieIDs:    ids,
	}
}

func categoryStrings(cats []emotion.Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}
