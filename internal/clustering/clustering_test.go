package clustering

import (
	"testing"

	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
	"github.com/justestif/go-movie-mood-recommender/internal/recommend"
)

// makeMovie builds a profiled movie with the given category scores.
func makeMovie(title string, popularity, intensity, comfort float64, scores emotion.Scores) recommend.Movie {
	return recommend.Movie{
		ID:         title,
		Title:      title,
		Popularity: popularity,
		Profile: emotion.Profile{
			Emotions:  scores,
			Intensity: intensity,
			Comfort:   comfort,
		},
	}
}

func TestProfileVector(t *testing.T) {
	p := emotion.Profile{
		Emotions:  emotion.Scores{emotion.CatharticSadness: 0.4, emotion.AweWonder: 0.2},
		Intensity: 7,
		Comfort:   2.5,
	}

	v := profileVector(p)
	if len(v) != 14 {
		t.Fatalf("vector length = %d, want 14", len(v))
	}
	if v[0] != 0.4 {
		t.Errorf("v[0] = %v, want 0.4 (cathartic_sadness first)", v[0])
	}
	if v[11] != 0.2 {
		t.Errorf("v[11] = %v, want 0.2 (awe_wonder last)", v[11])
	}
	if v[12] != 0.7 || v[13] != 0.25 {
		t.Errorf("levels = %v, %v, want 0.7, 0.25", v[12], v[13])
	}
	for i := 1; i < 11; i++ {
		if v[i] != 0 {
			t.Errorf("v[%d] = %v, want 0", i, v[i])
		}
	}
}

func TestHasProfile(t *testing.T) {
	tests := []struct {
		name   string
		scores emotion.Scores
		want   bool
	}{
		{name: "nil scores", scores: nil, want: false},
		{name: "all zero", scores: emotion.Scores{emotion.PureJoy: 0}, want: false},
		{name: "some signal", scores: emotion.Scores{emotion.PureJoy: 0.1}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := makeMovie("x", 0, 0, 0, tt.scores)
			if got := hasProfile(&m); got != tt.want {
				t.Errorf("hasProfile() = %v, want %v", got, tt.want)
			}
		})
	}
}
