package db

import (
	"reflect"
	"strings"
	"testing"

	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
)

func TestProfileRoundTrip(t *testing.T) {
	p := emotion.Profile{
		Emotions:   emotion.Scores{emotion.PureJoy: 0.26, emotion.RomanticWarmth: 0.24},
		Dominant:   []emotion.Category{emotion.PureJoy, emotion.RomanticWarmth},
		Intensity:  0.9,
		Catharsis:  1.6,
		Comfort:    4.5,
		Confidence: 0.5,
	}

	raw, err := encodeProfile(p)
	if err != nil {
		t.Fatalf("encodeProfile() error = %v", err)
	}
	for _, key := range []string{`"emotion_profile"`, `"dominant_emotions"`, `"intensity_score"`, `"pure_joy":0.26`} {
		if !strings.Contains(string(raw), key) {
			t.Errorf("encoded profile missing %s: %s", key, raw)
		}
	}

	got, err := decodeProfile(raw)
	if err != nil {
		t.Fatalf("decodeProfile() error = %v", err)
	}
	if !reflect.DeepEqual(*got, p) {
		t.Errorf("decodeProfile() = %+v, want %+v", *got, p)
	}
}

func TestEncodeEmptyProfile(t *testing.T) {
	raw, err := encodeProfile(emotion.Profile{Confidence: 0.5})
	if err != nil {
		t.Fatalf("encodeProfile() error = %v", err)
	}
	if !strings.Contains(string(raw), `"emotion_profile":{}`) || !strings.Contains(string(raw), `"dominant_emotions":[]`) {
		t.Errorf("empty profile should encode empty containers, got %s", raw)
	}
}

func TestDecodeProfileNull(t *testing.T) {
	got, err := decodeProfile(nil)
	if err != nil || got != nil {
		t.Errorf("decodeProfile(nil) = %v, %v, want nil, nil", got, err)
	}
	if _, err := decodeProfile([]byte("{not json")); err == nil {
		t.Error("decodeProfile(garbage) expected error")
	}
}
