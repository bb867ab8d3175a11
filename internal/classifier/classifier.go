// Package classifier provides concrete emotion.EmotionClassifier backends.
package classifier

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
)

// Providers accepted by New.
const (
	ProviderLexicon = "lexicon"
	ProviderOpenAI  = "openai"
	ProviderNone    = "none"
)

// maxInputRunes bounds the text sent to any backend.
const maxInputRunes = 512

var (
	// ErrUnknownProvider is returned by New for an unsupported provider name.
	ErrUnknownProvider = errors.New("unknown classifier provider")
	// ErrEmptyResponse is returned when a backend produced no scores at all.
	ErrEmptyResponse = errors.New("classifier returned no scores")
)

// Config selects and tunes a classifier backend.
type Config struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string

	// Breaker settings; FailureThreshold 0 disables the breaker.
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

// New builds the configured classifier, wrapped in a circuit breaker when
// FailureThreshold is positive.
func New(cfg Config) (emotion.EmotionClassifier, error) {
	var c emotion.EmotionClassifier

	switch strings.ToLower(cfg.Provider) {
	case "", ProviderLexicon:
		c = NewLexicon()
	case ProviderOpenAI:
		oc, err := NewOpenAI(OpenAIConfig{APIKey: cfg.APIKey, Model: cfg.Model, BaseURL: cfg.BaseURL})
		if err != nil {
			return nil, err
		}
		c = oc
	case ProviderNone:
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}

	if cfg.FailureThreshold > 0 {
		c = NewBreaker(c, BreakerConfig{
			Name:             cfg.Provider,
			FailureThreshold: cfg.FailureThreshold,
			Timeout:          cfg.OpenTimeout,
		})
	}
	return c, nil
}

// Noop never classifies anything; profiles are then driven by genres alone.
type Noop struct{}

// Classify returns an empty mapping.
func (Noop) Classify(context.Context, string) (map[string]float64, error) {
	return map[string]float64{}, nil
}

func truncate(text string) string {
	r := []rune(text)
	if len(r) <= maxInputRunes {
		return text
	}
	return string(r[:maxInputRunes])
}
