package recommend

import (
	"testing"

	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
)

func TestExplain(t *testing.T) {
	dominant := []emotion.Category{emotion.ThrillingTension, emotion.ControlledFear, emotion.MindBlown}

	tests := []struct {
		feeling string
		want    string
	}{
		{"feel-good", "A comforting choice with thrilling tension, controlled fear to lift your spirits."},
		{"thrilled", "An intense experience with thrilling tension, controlled fear to get your heart racing."},
		{"cry", "An emotional journey with thrilling tension, controlled fear for a good cathartic release."},
		{"inspired", "An uplifting film with thrilling tension, controlled fear to inspire you."},
		{"think", "A thought-provoking movie with thrilling tension, controlled fear to engage your mind."},
		{"Thrilled ", "An intense experience with thrilling tension, controlled fear to get your heart racing."},
		{"scared", "Featuring thrilling tension, controlled fear - a great match for your mood."},
		{"", "Featuring thrilling tension, controlled fear - a great match for your mood."},
	}

	for _, tt := range tests {
		t.Run(tt.feeling, func(t *testing.T) {
			if got := Explain(tt.feeling, dominant); got != tt.want {
				t.Errorf("Explain(%q) = %q, want %q", tt.feeling, got, tt.want)
			}
		})
	}
}

func TestExplainFewEmotions(t *testing.T) {
	if got := Explain("think", []emotion.Category{emotion.MindBlown}); got != "A thought-provoking movie with mind blown to engage your mind." {
		t.Errorf("Explain() = %q", got)
	}
	if got := Explain("laugh", nil); got != "Featuring  - a great match for your mood." {
		t.Errorf("Explain(nil) = %q", got)
	}
}
