package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/justestif/go-movie-mood-recommender/internal/recommend"
)

// FileSource reads a JSON array of movies with structured profiles.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Movies reads the catalog file.
func (s *FileSource) Movies(_ context.Context) ([]recommend.Movie, error) {
	return LoadFile(s.path)
}

// LoadFile decodes a catalog file.
func LoadFile(path string) ([]recommend.Movie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var movies []recommend.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	if movies == nil {
		movies = []recommend.Movie{}
	}
	return movies, nil
}

// SaveFile writes movies as an indented JSON array, replacing path atomically.
func SaveFile(path string, movies []recommend.Movie) error {
	if movies == nil {
		movies = []recommend.Movie{}
	}
	data, err := json.MarshalIndent(movies, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".catalog-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("writing catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing catalog: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing catalog: %w", err)
	}
	return nil
}
