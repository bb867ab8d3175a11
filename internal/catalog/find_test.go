package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/justestif/go-movie-mood-recommender/internal/db"
	"github.com/justestif/go-movie-mood-recommender/internal/recommend"
)

func TestSnapshotFindMovie(t *testing.T) {
	snap := NewSnapshot(SourceFunc(func(context.Context) ([]recommend.Movie, error) {
		return sampleMovies(), nil
	}), 0)

	m, err := snap.FindMovie(context.Background(), "paddington")
	if err != nil || m.Title != "Paddington 2" {
		t.Errorf("FindMovie(paddington) = %q, %v", m.Title, err)
	}
	if _, err := snap.FindMovie(context.Background(), "Alien"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindMovie(Alien) error = %v, want ErrNotFound", err)
	}
}

type fakeTitleFinder struct {
	movie *db.Movie
	err   error
}

func (f fakeTitleFinder) FindByTitle(context.Context, string) (*db.Movie, error) {
	return f.movie, f.err
}

func TestDBFinder(t *testing.T) {
	id := uuid.New()
	f := NewDBFinder(fakeTitleFinder{movie: &db.Movie{ID: id, Title: "Heat", TMDBID: 949}})
	m, err := f.FindMovie(context.Background(), "heat")
	if err != nil || m.ID != id.String() || m.TMDBID != 949 {
		t.Errorf("FindMovie() = %+v, %v", m, err)
	}

	_, err = NewDBFinder(fakeTitleFinder{err: db.ErrNotFound}).FindMovie(context.Background(), "x")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("not found error = %v, want ErrNotFound", err)
	}

	errDB := errors.New("timeout")
	_, err = NewDBFinder(fakeTitleFinder{err: errDB}).FindMovie(context.Background(), "x")
	if !errors.Is(err, errDB) || errors.Is(err, ErrNotFound) {
		t.Errorf("db error = %v, want wrapped %v", err, errDB)
	}
}
