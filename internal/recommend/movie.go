// Package recommend ranks profiled movies against a user's mood.
//
// All functions are pure: they read the catalog slice they are given and
// never modify it, so a single catalog snapshot can serve concurrent callers.
package recommend

import (
	"errors"
	"math"
	"slices"
	"unicode/utf8"

	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
)

const overviewSnippetLength = 200

// ErrInvalidCount is returned for a negative result count or an empty journey.
var ErrInvalidCount = errors.New("invalid recommendation count")

// Movie is a catalog entry with its synthesized profile.
type Movie struct {
	ID          string          `json:"id,omitempty"`
	TMDBID      int             `json:"tmdb_id,omitempty"`
	Title       string          `json:"title"`
	Overview    string          `json:"overview"`
	Genres      []string        `json:"genres"`
	PosterURL   string          `json:"poster_url,omitempty"`
	ReleaseDate string          `json:"release_date,omitempty"`
	Popularity  float64         `json:"popularity,omitempty"`
	Profile     emotion.Profile `json:"profile"`
}

// Recommendation is one ranked result.
type Recommendation struct {
	Title            string             `json:"title"`
	TMDBID           int                `json:"tmdb_id,omitempty"`
	Overview         string             `json:"overview"`
	Genres           []string           `json:"genres"`
	PosterURL        string             `json:"poster_url"`
	DominantEmotions []emotion.Category `json:"dominant_emotions"`
	IntensityScore   float64            `json:"intensity_score"`
	ComfortScore     float64            `json:"comfort_score"`
	CatharsisScore   float64            `json:"catharsis_score"`
	MatchScore       float64            `json:"match_score"`
	Explanation      string             `json:"explanation"`
	Phase            Phase              `json:"journey_phase,omitempty"`
}

func newRecommendation(m Movie, score float64, explanation string) Recommendation {
	return Recommendation{
		Title:            m.Title,
		TMDBID:           m.TMDBID,
		Overview:         Snippet(m.Overview),
		Genres:           slices.Clone(m.Genres),
		PosterURL:        m.PosterURL,
		DominantEmotions: slices.Clone(m.Profile.Dominant),
		IntensityScore:   m.Profile.Intensity,
		ComfortScore:     m.Profile.Comfort,
		CatharsisScore:   m.Profile.Catharsis,
		MatchScore:       math.Round(score*100) / 100,
		Explanation:      explanation,
	}
}

// Snippet shortens an overview to 200 characters, marking the cut with "...".
func Snippet(overview string) string {
	if utf8.RuneCountInString(overview) <= overviewSnippetLength {
		return overview
	}
	return string([]rune(overview)[:overviewSnippetLength]) + "..."
}
