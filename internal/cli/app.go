package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/justestif/go-movie-mood-recommender/internal/catalog"
	"github.com/justestif/go-movie-mood-recommender/internal/classifier"
	"github.com/justestif/go-movie-mood-recommender/internal/config"
	"github.com/justestif/go-movie-mood-recommender/internal/db"
	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
)

var errNoDatabase = errors.New("database.url is not configured (set DATABASE_URL)")

// openDB connects to PostgreSQL and makes sure the schema exists.
func openDB(ctx context.Context) (*db.DB, error) {
	if cfg.Database.URL == "" {
		return nil, errNoDatabase
	}

	database, err := db.New(ctx, cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// openCatalog returns the configured catalog source. The returned database is
// nil for the file source; otherwise the caller must close it.
func openCatalog(ctx context.Context) (catalog.Source, *db.DB, error) {
	if cfg.Catalog.Source != config.SourceDatabase {
		return catalog.NewFileSource(cfg.Catalog.Path), nil, nil
	}

	database, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	return catalog.NewDBSource(database.Movies()), database, nil
}

// newSynthesizer builds a profile synthesizer from the classifier and weight
// settings.
func newSynthesizer() (*emotion.Synthesizer, error) {
	c, err := classifier.New(cfg.Classifier.Classifier())
	if err != nil {
		return nil, fmt.Errorf("creating classifier: %w", err)
	}
	return emotion.NewSynthesizer(c, emotion.WithWeights(cfg.Profile.NLPWeight, cfg.Profile.GenreWeight))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
