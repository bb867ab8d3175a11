package emotion

import "strings"

const defaultGenreLevel = 5.0

// GenreModel holds the hand-curated genre heuristics: a per-genre emotion
// distribution and two side tables for intensity and comfort priors.
type GenreModel struct {
	emotions  map[string]Scores
	intensity map[string]float64
	comfort   map[string]float64
}

// NewGenreModel builds a model from explicit tables. Keys are normalized with
// NormalizeGenre.
func NewGenreModel(emotions map[string]Scores, intensity, comfort map[string]float64) *GenreModel {
	m := &GenreModel{
		emotions:  make(map[string]Scores, len(emotions)),
		intensity: make(map[string]float64, len(intensity)),
		comfort:   make(map[string]float64, len(comfort)),
	}
	for g, s := range emotions {
		m.emotions[NormalizeGenre(g)] = s
	}
	for g, v := range intensity {
		m.intensity[NormalizeGenre(g)] = v
	}
	for g, v := range comfort {
		m.comfort[NormalizeGenre(g)] = v
	}
	return m
}

// DefaultGenreModel returns the built-in table of 18 genres.
func DefaultGenreModel() *GenreModel {
	return NewGenreModel(defaultGenreEmotions, defaultGenreIntensity, defaultGenreComfort)
}

// NormalizeGenre lowercases and trims a genre tag.
func NormalizeGenre(genre string) string {
	return strings.ToLower(strings.TrimSpace(genre))
}

// Known reports whether genre has an emotion distribution.
func (m *GenreModel) Known(genre string) bool {
	_, ok := m.emotions[NormalizeGenre(genre)]
	return ok
}

// Emotions scores the genre set. A category fed by more than one genre is
// combined as a running average in input order: each new value is averaged
// with the estimate so far. Unknown genres contribute nothing.
func (m *GenreModel) Emotions(genres []string) Scores {
	out := make(Scores)
	for _, g := range genres {
		dist, ok := m.emotions[NormalizeGenre(g)]
		if !ok {
			continue
		}
		for category, score := range dist {
			if current, seen := out[category]; seen {
				out[category] = (current + score) / 2
			} else {
				out[category] = score
			}
		}
	}
	return out
}

// Intensity averages the per-genre intensity prior on a 0-10 scale.
// Unrecognised genres count as 5; an empty set yields 5.
func (m *GenreModel) Intensity(genres []string) float64 {
	return averageLevel(m.intensity, genres)
}

// Comfort averages the per-genre comfort prior on a 0-10 scale.
// Unrecognised genres count as 5; an empty set yields 5.
func (m *GenreModel) Comfort(genres []string) float64 {
	return averageLevel(m.comfort, genres)
}

func averageLevel(table map[string]float64, genres []string) float64 {
	if len(genres) == 0 {
		return defaultGenreLevel
	}
	var sum float64
	for _, g := range genres {
		if v, ok := table[NormalizeGenre(g)]; ok {
			sum += v
		} else {
			sum += defaultGenreLevel
		}
	}
	return sum / float64(len(genres))
}

// Level scores used by the side tables.
const (
	intensityHigh   = 8.0
	intensityMedium = 5.0
	intensityLow    = 3.0

	comfortHigh   = 8.0
	comfortMedium = 5.0
	comfortLow    = 2.0
)

var defaultGenreEmotions = map[string]Scores{
	"action":          {ThrillingTension: 0.8, TriumphantInspired: 0.6, RighteousAnger: 0.4, AweWonder: 0.3},
	"adventure":       {AweWonder: 0.8, ThrillingTension: 0.6, TriumphantInspired: 0.5, PureJoy: 0.4},
	"thriller":        {ThrillingTension: 0.9, ControlledFear: 0.6, MindBlown: 0.5, IntellectualStimulation: 0.4},
	"drama":           {CatharticSadness: 0.7, BittersweetHope: 0.6, IntellectualStimulation: 0.4, TriumphantInspired: 0.3},
	"romance":         {RomanticWarmth: 0.9, BittersweetHope: 0.5, CatharticSadness: 0.3, PureJoy: 0.4},
	"comedy":          {PureJoy: 0.9, CozyComfort: 0.5, RomanticWarmth: 0.3},
	"family":          {CozyComfort: 0.8, PureJoy: 0.7, BittersweetHope: 0.4, RomanticWarmth: 0.3},
	"animation":       {AweWonder: 0.7, PureJoy: 0.6, CozyComfort: 0.5},
	"horror":          {ControlledFear: 0.9, ThrillingTension: 0.7, CatharticSadness: 0.2},
	"crime":           {ThrillingTension: 0.7, RighteousAnger: 0.6, IntellectualStimulation: 0.5, MindBlown: 0.4},
	"mystery":         {IntellectualStimulation: 0.8, ThrillingTension: 0.6, MindBlown: 0.7},
	"war":             {CatharticSadness: 0.7, RighteousAnger: 0.6, TriumphantInspired: 0.5, ThrillingTension: 0.5},
	"science fiction": {AweWonder: 0.8, IntellectualStimulation: 0.7, MindBlown: 0.6, ThrillingTension: 0.4},
	"fantasy":         {AweWonder: 0.8, PureJoy: 0.5, TriumphantInspired: 0.5, RomanticWarmth: 0.3},
	"documentary":     {IntellectualStimulation: 0.9, MindBlown: 0.5, AweWonder: 0.4},
	"music":           {PureJoy: 0.7, TriumphantInspired: 0.6, RomanticWarmth: 0.5},
	"history":         {IntellectualStimulation: 0.7, BittersweetHope: 0.5, CatharticSadness: 0.4},
	"western":         {RighteousAnger: 0.6, ThrillingTension: 0.5, TriumphantInspired: 0.4},
}

// The intensity table is maintained separately from the emotion table and
// does not cover the same genre set.
var defaultGenreIntensity = map[string]float64{
	"action": intensityHigh, "thriller": intensityHigh, "horror": intensityHigh, "war": intensityHigh, "crime": intensityHigh,
	"adventure": intensityMedium, "mystery": intensityMedium, "science fiction": intensityMedium, "drama": intensityMedium, "western": intensityMedium,
	"comedy": intensityLow, "family": intensityLow, "romance": intensityLow, "animation": intensityLow, "music": intensityLow,
}

var defaultGenreComfort = map[string]float64{
	"comedy": comfortHigh, "family": comfortHigh, "animation": comfortHigh, "romance": comfortHigh, "music": comfortHigh,
	"adventure": comfortMedium, "fantasy": comfortMedium, "drama": comfortMedium, "documentary": comfortMedium,
	"horror": comfortLow, "thriller": comfortLow, "war": comfortLow, "crime": comfortLow,
}
