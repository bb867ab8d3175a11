// Package clustering groups movies into mood collections by k-means over their
// emotion profiles.
package clustering

import (
	"github.com/muesli/clusters"

	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
	"github.com/justestif/go-movie-mood-recommender/internal/recommend"
)

// dimensions is the length of a profile vector: one per category plus
// normalized intensity and comfort.
var dimensions = len(emotion.All()) + 2

// movieObservation wraps a Movie to implement clusters.Observation interface.
type movieObservation struct {
	movie  *recommend.Movie
	coords clusters.Coordinates
}

func (o movieObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o movieObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// profileVector lays out category scores in taxonomy order followed by
// intensity and comfort scaled to 0-1.
func profileVector(p emotion.Profile) clusters.Coordinates {
	v := make(clusters.Coordinates, 0, dimensions)
	for _, c := range emotion.All() {
		v = append(v, p.Emotions[c])
	}
	return append(v, p.Intensity/10, p.Comfort/10)
}

// hasProfile reports whether a movie carries any emotion signal to cluster on.
func hasProfile(m *recommend.Movie) bool {
	for _, s := range m.Profile.Emotions {
		if s > 0 {
			return true
		}
	}
	return false
}
