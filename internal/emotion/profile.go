package emotion

import (
	"context"
	"errors"
	"math"
	"sort"
	"unicode/utf8"

	"github.com/justestif/go-movie-mood-recommender/internal/logging"
)

// Synthesis constants.
const (
	DefaultNLPWeight   = 0.6
	DefaultGenreWeight = 0.4

	minTextLength     = 20   // text must be longer than this to be classified
	defaultConfidence = 0.5  // confidence when no text was classified
	maxConfidence     = 0.9  // cap on text-length driven confidence
	materiality       = 0.01 // combined scores at or below this are dropped
	dominantCount     = 3
)

var (
	highIntensitySet = []Category{ThrillingTension, ControlledFear, RighteousAnger, MindBlown}
	catharticSet     = []Category{CatharticSadness, BittersweetHope, TriumphantInspired, AweWonder}
	comfortSet       = []Category{PureJoy, CozyComfort, RomanticWarmth}
	discomfortSet    = []Category{ControlledFear, ThrillingTension, CatharticSadness}
)

// ErrInvalidWeights is returned when the NLP/genre weights cannot be normalized.
var ErrInvalidWeights = errors.New("emotion weights must be non-negative with a positive sum")

// Profile is the synthesized emotional fingerprint of one movie.
type Profile struct {
	Emotions   Scores     `json:"emotion_profile"`
	Dominant   []Category `json:"dominant_emotions"`
	Intensity  float64    `json:"intensity_score"` // 0-10
	Catharsis  float64    `json:"catharsis_score"` // 0-10
	Comfort    float64    `json:"comfort_score"`   // 0-10
	Confidence float64    `json:"confidence"`      // 0-1
}

// HasDominant reports whether c is one of the profile's dominant emotions.
func (p Profile) HasDominant(c Category) bool {
	for _, d := range p.Dominant {
		if d == c {
			return true
		}
	}
	return false
}

// NormalizeWeights scales the two weights so they sum to 1.
func NormalizeWeights(nlpWeight, genreWeight float64) (float64, float64, error) {
	if nlpWeight < 0 || genreWeight < 0 || math.IsNaN(nlpWeight) || math.IsNaN(genreWeight) {
		return 0, 0, ErrInvalidWeights
	}
	total := nlpWeight + genreWeight
	if total <= 0 || math.IsInf(total, 0) {
		return 0, 0, ErrInvalidWeights
	}
	return nlpWeight / total, genreWeight / total, nil
}

// Synthesizer combines classifier output and genre heuristics into profiles.
// It holds no mutable state and is safe for concurrent use if its classifier is.
type Synthesizer struct {
	classifier  EmotionClassifier
	labels      LabelTable
	genres      *GenreModel
	nlpWeight   float64
	genreWeight float64
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithWeights sets the NLP and genre weights. They are normalized by NewSynthesizer.
func WithWeights(nlpWeight, genreWeight float64) Option {
	return func(s *Synthesizer) {
		s.nlpWeight = nlpWeight
		s.genreWeight = genreWeight
	}
}

// WithLabelTable replaces the classifier label lookup table.
func WithLabelTable(t LabelTable) Option {
	return func(s *Synthesizer) {
		s.labels = t
	}
}

// WithGenreModel replaces the genre heuristics.
func WithGenreModel(m *GenreModel) Option {
	return func(s *Synthesizer) {
		s.genres = m
	}
}

// NewSynthesizer creates a Synthesizer. A nil classifier disables text analysis.
func NewSynthesizer(classifier EmotionClassifier, opts ...Option) (*Synthesizer, error) {
	s := &Synthesizer{
		classifier:  classifier,
		labels:      DefaultLabelTable(),
		genres:      DefaultGenreModel(),
		nlpWeight:   DefaultNLPWeight,
		genreWeight: DefaultGenreWeight,
	}
	for _, opt := range opts {
		opt(s)
	}

	nlp, genre, err := NormalizeWeights(s.nlpWeight, s.genreWeight)
	if err != nil {
		return nil, err
	}
	s.nlpWeight, s.genreWeight = nlp, genre
	return s, nil
}

// Synthesize builds a profile using the configured weights.
func (s *Synthesizer) Synthesize(ctx context.Context, text string, genres []string) Profile {
	return s.synthesize(ctx, text, genres, s.nlpWeight, s.genreWeight)
}

// SynthesizeWeighted builds a profile with per-call weights.
func (s *Synthesizer) SynthesizeWeighted(ctx context.Context, text string, genres []string, nlpWeight, genreWeight float64) (Profile, error) {
	nlp, genre, err := NormalizeWeights(nlpWeight, genreWeight)
	if err != nil {
		return Profile{}, err
	}
	return s.synthesize(ctx, text, genres, nlp, genre), nil
}

func (s *Synthesizer) synthesize(ctx context.Context, text string, genres []string, nlpWeight, genreWeight float64) Profile {
	nlpScores := Scores{}
	confidence := defaultConfidence

	if n := utf8.RuneCountInString(text); n > minTextLength {
		nlpScores = s.classify(ctx, text)
		confidence = math.Min(maxConfidence, defaultConfidence+float64(n)/1000)
	}

	genreScores := s.genres.Emotions(genres)

	combined := make(Scores)
	for _, c := range All() {
		score := nlpScores[c]*nlpWeight + genreScores[c]*genreWeight
		if score > materiality {
			combined[c] = round(score, 3)
		}
	}

	return Profile{
		Emotions:   combined,
		Dominant:   dominant(combined, dominantCount),
		Intensity:  round(intensity(combined, s.genres.Intensity(genres)), 1),
		Catharsis:  round(catharsis(combined), 1),
		Comfort:    round(comfort(combined, s.genres.Comfort(genres)), 1),
		Confidence: round(confidence, 2),
	}
}

// classify runs the classifier once. Failures degrade to an empty mapping.
func (s *Synthesizer) classify(ctx context.Context, text string) Scores {
	if s.classifier == nil {
		return Scores{}
	}
	raw, err := s.classifier.Classify(ctx, text)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Int("text_len", len(text)).Msg("emotion classification failed, using genre signal only")
		return Scores{}
	}
	return s.labels.Map(raw)
}

// dominant returns up to n categories by descending score, ties in taxonomy order.
func dominant(scores Scores, n int) []Category {
	ranked := make([]Category, 0, len(scores))
	for _, c := range All() {
		if _, ok := scores[c]; ok {
			ranked = append(ranked, c)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func intensity(scores Scores, genreIntensity float64) float64 {
	emotional := maxOf(scores, highIntensitySet)
	return clamp((emotional*0.7 + (genreIntensity/10)*0.3) * 10)
}

func catharsis(scores Scores) float64 {
	return clamp((maxOf(scores, catharticSet)*0.7 + meanOf(scores, catharticSet)*0.3) * 10)
}

func comfort(scores Scores, genreComfort float64) float64 {
	net := meanOf(scores, comfortSet) - meanOf(scores, discomfortSet)*0.5
	return clamp((net*0.6 + (genreComfort/10)*0.4) * 10)
}

func maxOf(scores Scores, set []Category) float64 {
	var best float64
	for _, c := range set {
		best = math.Max(best, scores[c])
	}
	return best
}

func meanOf(scores Scores, set []Category) float64 {
	var sum float64
	for _, c := range set {
		sum += scores[c]
	}
	return sum / float64(len(set))
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(10, v))
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
