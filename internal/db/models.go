package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
)

// Movie is a stored movie. Profile is nil until synthesis has run.
type Movie struct {
	ID          uuid.UUID
	TMDBID      int
	Title       string
	Overview    string
	Genres      []string
	PosterURL   string
	ReleaseDate string
	Popularity  float64
	VoteAverage float64
	Profile     *emotion.Profile // nullable
	ProfiledAt  *time.Time       // nullable
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProfileUpdate assigns a synthesized profile to a movie.
type ProfileUpdate struct {
	MovieID uuid.UUID
	Profile emotion.Profile
}

// MoodCollection is a persisted cluster of emotionally similar movies.
type MoodCollection struct {
	ID          uuid.UUID
	Name        string
	TopEmotions []string
	MovieCount  int
	CreatedAt   time.Time
}

// NewCollection is a collection to store together with its members.
type NewCollection struct {
	Name        string
	TopEmotions []string
	MovieIDs    []uuid.UUID
}
