package emotion

import (
	"context"
	"strings"
)

// EmotionClassifier scores free text against an external label vocabulary.
// Scores are in [0,1]; the label set depends on the backing model.
type EmotionClassifier interface {
	Classify(ctx context.Context, text string) (map[string]float64, error)
}

// ClassifierFunc adapts a plain function to EmotionClassifier.
type ClassifierFunc func(ctx context.Context, text string) (map[string]float64, error)

// Classify calls f.
func (f ClassifierFunc) Classify(ctx context.Context, text string) (map[string]float64, error) {
	return f(ctx, text)
}

// LabelTable maps external classifier labels to taxonomy categories.
// A label mapped to the empty Category is known but intentionally dropped.
type LabelTable map[string]Category

// DefaultLabelTable covers the 7-label distilroberta emotion model and the
// 28-label GoEmotions vocabulary.
func DefaultLabelTable() LabelTable {
	return LabelTable{
		// 7-label model
		"joy":      PureJoy,
		"sadness":  CatharticSadness,
		"anger":    RighteousAnger,
		"fear":     ControlledFear,
		"surprise": MindBlown,
		"disgust":  ControlledFear,
		"neutral":  "",

		// GoEmotions
		"love":           RomanticWarmth,
		"excitement":     ThrillingTension,
		"admiration":     TriumphantInspired,
		"amusement":      PureJoy,
		"gratitude":      BittersweetHope,
		"optimism":       BittersweetHope,
		"relief":         CozyComfort,
		"pride":          TriumphantInspired,
		"curiosity":      IntellectualStimulation,
		"confusion":      MindBlown,
		"nervousness":    ThrillingTension,
		"remorse":        CatharticSadness,
		"grief":          CatharticSadness,
		"disappointment": CatharticSadness,
		"embarrassment":  CatharticSadness,
		"realization":    MindBlown,
		"approval":       CozyComfort,
		"caring":         RomanticWarmth,
		"desire":         RomanticWarmth,
		"annoyance":      RighteousAnger,
		"disapproval":    RighteousAnger,
	}
}

// Map translates raw classifier scores into taxonomy scores. When several
// labels land on the same category the highest score wins. Unknown labels
// are ignored.
func (t LabelTable) Map(raw map[string]float64) Scores {
	out := make(Scores)
	for label, score := range raw {
		category, ok := t[strings.ToLower(strings.TrimSpace(label))]
		if !ok || category == "" {
			continue
		}
		if current, seen := out[category]; !seen || score > current {
			out[category] = score
		}
	}
	return out
}

// Labels returns the external labels the table recognises, dropped ones included.
func (t LabelTable) Labels() []string {
	labels := make([]string, 0, len(t))
	for label := range t {
		labels = append(labels, label)
	}
	return labels
}
