package emotion

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
)

// mockClassifier returns fixed scores and counts calls.
type mockClassifier struct {
	scores map[string]float64
	err    error
	calls  atomic.Int32
}

func (m *mockClassifier) Classify(_ context.Context, _ string) (map[string]float64, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	return m.scores, nil
}

func mustSynthesizer(t *testing.T, c EmotionClassifier, opts ...Option) *Synthesizer {
	t.Helper()
	s, err := NewSynthesizer(c, opts...)
	if err != nil {
		t.Fatalf("NewSynthesizer() error = %v", err)
	}
	return s
}

func TestSynthesizeGenreOnlyComedyRomance(t *testing.T) {
	s := mustSynthesizer(t, nil)
	p := s.Synthesize(context.Background(), "", []string{"Comedy", "Romance"})

	wantScores := Scores{
		PureJoy:          0.26,
		RomanticWarmth:   0.24,
		BittersweetHope:  0.2,
		CozyComfort:      0.2,
		CatharticSadness: 0.12,
	}
	if !reflect.DeepEqual(p.Emotions, wantScores) {
		t.Errorf("Emotions = %v, want %v", p.Emotions, wantScores)
	}

	// bittersweet_hope and cozy_comfort tie; taxonomy order decides
	wantDominant := []Category{PureJoy, RomanticWarmth, BittersweetHope}
	if !reflect.DeepEqual(p.Dominant, wantDominant) {
		t.Errorf("Dominant = %v, want %v", p.Dominant, wantDominant)
	}

	if p.Intensity != 0.9 {
		t.Errorf("Intensity = %v, want 0.9", p.Intensity)
	}
	if p.Comfort != 4.5 {
		t.Errorf("Comfort = %v, want 4.5", p.Comfort)
	}
	if p.Catharsis != 1.6 {
		t.Errorf("Catharsis = %v, want 1.6", p.Catharsis)
	}
	if p.Confidence != 0.5 {
		t.Errorf("Confidence = %v, want 0.5", p.Confidence)
	}
	if p.Comfort <= p.Intensity {
		t.Errorf("comfort %v should exceed intensity %v", p.Comfort, p.Intensity)
	}
}

func TestSynthesizeGenreOnlyHorrorThriller(t *testing.T) {
	s := mustSynthesizer(t, nil)
	p := s.Synthesize(context.Background(), "", []string{"Horror", "Thriller"})

	wantDominant := []Category{ThrillingTension, ControlledFear, MindBlown}
	if !reflect.DeepEqual(p.Dominant, wantDominant) {
		t.Errorf("Dominant = %v, want %v", p.Dominant, wantDominant)
	}
	if p.Emotions[ThrillingTension] != 0.32 || p.Emotions[ControlledFear] != 0.3 {
		t.Errorf("Emotions = %v", p.Emotions)
	}
	if p.Comfort != 0.1 {
		t.Errorf("Comfort = %v, want 0.1", p.Comfort)
	}
	if p.Intensity != 4.6 {
		t.Errorf("Intensity = %v, want 4.6", p.Intensity)
	}
}

func TestSynthesizeEmptyInput(t *testing.T) {
	s := mustSynthesizer(t, &mockClassifier{})
	p := s.Synthesize(context.Background(), "", nil)

	if len(p.Emotions) != 0 || len(p.Dominant) != 0 {
		t.Errorf("expected empty profile, got %+v", p)
	}
	if p.Confidence != 0.5 {
		t.Errorf("Confidence = %v, want 0.5", p.Confidence)
	}
	if p.Intensity != 1.5 {
		t.Errorf("Intensity = %v, want 1.5", p.Intensity)
	}
	if p.Comfort != 2.0 {
		t.Errorf("Comfort = %v, want 2.0", p.Comfort)
	}
	if p.Catharsis != 0 {
		t.Errorf("Catharsis = %v, want 0", p.Catharsis)
	}
}

func TestSynthesizeWithText(t *testing.T) {
	mock := &mockClassifier{scores: map[string]float64{"joy": 0.9, "sadness": 0.2, "neutral": 0.5}}
	s := mustSynthesizer(t, mock)

	p := s.Synthesize(context.Background(), strings.Repeat("a", 100), []string{"Comedy"})

	if mock.calls.Load() != 1 {
		t.Errorf("classifier calls = %d, want 1", mock.calls.Load())
	}
	want := Scores{
		PureJoy:          0.9,
		CozyComfort:      0.2,
		RomanticWarmth:   0.12,
		CatharticSadness: 0.12,
	}
	if !reflect.DeepEqual(p.Emotions, want) {
		t.Errorf("Emotions = %v, want %v", p.Emotions, want)
	}
	wantDominant := []Category{PureJoy, CozyComfort, CatharticSadness}
	if !reflect.DeepEqual(p.Dominant, wantDominant) {
		t.Errorf("Dominant = %v, want %v", p.Dominant, wantDominant)
	}
	if p.Confidence != 0.6 {
		t.Errorf("Confidence = %v, want 0.6", p.Confidence)
	}
}

func TestSynthesizeTextThreshold(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantCalls int32
		wantConf  float64
	}{
		{"empty", "", 0, 0.5},
		{"exactly twenty", strings.Repeat("x", 20), 0, 0.5},
		{"twenty one", strings.Repeat("x", 21), 1, 0.52},
		{"multibyte runes counted once", strings.Repeat("é", 20), 0, 0.5},
		{"capped", strings.Repeat("x", 2000), 1, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockClassifier{scores: map[string]float64{}}
			s := mustSynthesizer(t, mock)

			p := s.Synthesize(context.Background(), tt.text, nil)

			if got := mock.calls.Load(); got != tt.wantCalls {
				t.Errorf("classifier calls = %d, want %d", got, tt.wantCalls)
			}
			if p.Confidence != tt.wantConf {
				t.Errorf("Confidence = %v, want %v", p.Confidence, tt.wantConf)
			}
		})
	}
}

func TestSynthesizeClassifierFailureDegrades(t *testing.T) {
	failing := &mockClassifier{err: errors.New("model unavailable")}
	s := mustSynthesizer(t, failing)
	genreOnly := mustSynthesizer(t, nil)

	text := strings.Repeat("a", 100)
	got := s.Synthesize(context.Background(), text, []string{"Drama"})
	want := genreOnly.Synthesize(context.Background(), "", []string{"Drama"})

	if !reflect.DeepEqual(got.Emotions, want.Emotions) {
		t.Errorf("Emotions = %v, want genre-only %v", got.Emotions, want.Emotions)
	}
	if got.Confidence != 0.6 {
		t.Errorf("Confidence = %v, want 0.6", got.Confidence)
	}
}

func TestNormalizeWeights(t *testing.T) {
	tests := []struct {
		name      string
		nlp       float64
		genre     float64
		wantNLP   float64
		wantGenre float64
		wantErr   bool
	}{
		{"defaults", 0.6, 0.4, 0.6, 0.4, false},
		{"unnormalized", 3, 1, 0.75, 0.25, false},
		{"genre only", 0, 2, 0, 1, false},
		{"both zero", 0, 0, 0, 0, true},
		{"negative", -1, 2, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nlp, genre, err := NormalizeWeights(tt.nlp, tt.genre)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeWeights() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidWeights) {
					t.Errorf("error = %v, want ErrInvalidWeights", err)
				}
				return
			}
			if !approx(nlp, tt.wantNLP) || !approx(genre, tt.wantGenre) {
				t.Errorf("NormalizeWeights() = (%v, %v), want (%v, %v)", nlp, genre, tt.wantNLP, tt.wantGenre)
			}
		})
	}
}

func TestNewSynthesizerRejectsZeroWeights(t *testing.T) {
	_, err := NewSynthesizer(nil, WithWeights(0, 0))
	if !errors.Is(err, ErrInvalidWeights) {
		t.Errorf("NewSynthesizer() error = %v, want ErrInvalidWeights", err)
	}
}

func TestSynthesizeWeighted(t *testing.T) {
	mock := &mockClassifier{scores: map[string]float64{"fear": 0.8}}
	s := mustSynthesizer(t, mock)
	text := strings.Repeat("a", 50)

	p, err := s.SynthesizeWeighted(context.Background(), text, []string{"Comedy"}, 0, 5)
	if err != nil {
		t.Fatalf("SynthesizeWeighted() error = %v", err)
	}
	if _, ok := p.Emotions[ControlledFear]; ok {
		t.Errorf("genre-only weights still used NLP scores: %v", p.Emotions)
	}
	if p.Emotions[PureJoy] != 0.9 {
		t.Errorf("pure_joy = %v, want 0.9", p.Emotions[PureJoy])
	}

	if _, err := s.SynthesizeWeighted(context.Background(), text, nil, 0, 0); !errors.Is(err, ErrInvalidWeights) {
		t.Errorf("SynthesizeWeighted(0,0) error = %v, want ErrInvalidWeights", err)
	}
}

func TestProfileInvariants(t *testing.T) {
	mock := &mockClassifier{scores: map[string]float64{
		"joy": 0.4, "fear": 0.9, "surprise": 0.7, "love": 0.3, "admiration": 1.0,
	}}
	s := mustSynthesizer(t, mock)
	text := strings.Repeat("plot ", 40)

	genreSets := [][]string{
		nil,
		{"Action"},
		{"Drama", "War", "History"},
		{"Family", "Animation", "Comedy", "Music"},
		{"Science Fiction", "Mystery", "Thriller"},
		{"Documentary", "unknown"},
	}

	for _, genres := range genreSets {
		for _, txt := range []string{"", text} {
			p := s.Synthesize(context.Background(), txt, genres)

			if len(p.Dominant) > 3 {
				t.Errorf("%v: %d dominant emotions", genres, len(p.Dominant))
			}
			for _, d := range p.Dominant {
				for c, score := range p.Emotions {
					if !p.HasDominant(c) && score > p.Emotions[d] {
						t.Errorf("%v: %s (%v) outranks dominant %s (%v)", genres, c, score, d, p.Emotions[d])
					}
				}
			}
			for name, v := range map[string]float64{"intensity": p.Intensity, "catharsis": p.Catharsis, "comfort": p.Comfort} {
				if v < 0 || v > 10 {
					t.Errorf("%v: %s = %v out of range", genres, name, v)
				}
			}
			if p.Confidence < 0 || p.Confidence > 1 {
				t.Errorf("%v: confidence = %v", genres, p.Confidence)
			}
			for c, score := range p.Emotions {
				if !c.Valid() || score <= 0.01 {
					t.Errorf("%v: unexpected entry %s=%v", genres, c, score)
				}
			}

			again := s.Synthesize(context.Background(), txt, genres)
			if !reflect.DeepEqual(p, again) {
				t.Errorf("%v: synthesis not deterministic", genres)
			}
		}
	}
}
