package classifier

import (
	"context"
	"math"
	"strings"
	"sync"
	"unicode"

	"github.com/jonreiter/govader"
)

// Lexicon is an offline classifier built on VADER sentiment. It emits the
// label vocabulary of the 7-label emotion model (joy, sadness, anger, fear,
// surprise, disgust, neutral) plus a few GoEmotions labels triggered by plot
// keywords. It is deterministic and safe for concurrent use.
type Lexicon struct {
	mu  sync.Mutex
	sia *govader.SentimentIntensityAnalyzer
}

// NewLexicon loads the VADER lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{sia: govader.NewSentimentIntensityAnalyzer()}
}

// negative labels share the VADER negative mass according to keyword cues.
var negativeLabels = []string{"sadness", "anger", "fear", "disgust"}

// cueWords maps plot keywords to the label they hint at.
var cueWords = map[string]string{
	// sadness
	"death": "sadness", "dies": "sadness", "dying": "sadness", "loss": "sadness", "grief": "sadness",
	"tragic": "sadness", "tragedy": "sadness", "alone": "sadness", "lonely": "sadness", "cancer": "sadness",
	"funeral": "sadness", "heartbreak": "sadness", "mourning": "sadness",
	// anger
	"revenge": "anger", "vengeance": "anger", "betrayal": "anger", "betrayed": "anger", "injustice": "anger",
	"corrupt": "anger", "corruption": "anger", "justice": "anger", "oppression": "anger", "rage": "anger",
	// fear
	"killer": "fear", "murder": "fear", "haunted": "fear", "terror": "fear", "demon": "fear",
	"monster": "fear", "nightmare": "fear", "danger": "fear", "deadly": "fear", "evil": "fear",
	"hunted": "fear", "ghost": "fear", "kidnapped": "fear",
	// disgust
	"gruesome": "disgust", "twisted": "disgust", "depraved": "disgust", "sick": "disgust",
	// surprise
	"twist": "surprise", "secret": "surprise", "shocking": "surprise", "mysterious": "surprise",
	"revealed": "surprise", "unexpected": "surprise", "discovers": "surprise",
	// GoEmotions extras
	"love": "love", "romance": "love", "falls": "love", "wedding": "love", "lovers": "love",
	"mystery": "curiosity", "investigate": "curiosity", "puzzle": "curiosity", "unravel": "curiosity",
	"race": "excitement", "heist": "excitement", "chase": "excitement", "battle": "excitement", "escape": "excitement",
	"hero": "admiration", "legend": "admiration", "champion": "admiration", "triumph": "admiration",
	"hope": "optimism", "dream": "optimism", "dreams": "optimism", "second chance": "optimism",
	"family": "caring", "friendship": "caring", "friends": "caring", "home": "caring",
	"funny": "amusement", "hilarious": "amusement", "comedy": "amusement",
}

// Classify scores text. Empty or whitespace-only input yields an empty mapping.
func (l *Lexicon) Classify(_ context.Context, text string) (map[string]float64, error) {
	text = truncate(strings.TrimSpace(text))
	if text == "" {
		return map[string]float64{}, nil
	}

	l.mu.Lock()
	s := l.sia.PolarityScores(text)
	l.mu.Unlock()

	cues := countCues(text)
	out := map[string]float64{
		"neutral": clamp01(s.Neutral),
		"joy":     clamp01(s.Positive + math.Max(0, s.Compound)*0.5),
	}

	// Distribute negative sentiment across the cued negative labels.
	negMass := clamp01(s.Negative + math.Max(0, -s.Compound)*0.5)
	var negCues int
	for _, label := range negativeLabels {
		negCues += cues[label]
	}
	for _, label := range negativeLabels {
		share := 0.0
		switch {
		case negCues > 0:
			share = float64(cues[label]) / float64(negCues)
		case label == "sadness":
			share = 1
		}
		// Keyword evidence alone is worth a little even in upbeat text.
		out[label] = clamp01(negMass*share + cueStrength(cues[label])*0.5)
	}

	for label, n := range cues {
		if _, done := out[label]; done {
			continue
		}
		out[label] = cueStrength(n)
	}
	return out, nil
}

// cueStrength turns a keyword count into a score: 0, 0.5, 0.7, 0.9 ...
func cueStrength(n int) float64 {
	if n == 0 {
		return 0
	}
	return clamp01(0.3 + 0.2*float64(n))
}

func countCues(text string) map[string]int {
	lower := strings.ToLower(text)
	counts := make(map[string]int)

	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	for _, w := range words {
		if label, ok := cueWords[w]; ok {
			counts[label]++
		}
	}
	// multi-word cues
	for cue, label := range cueWords {
		if strings.Contains(cue, " ") && strings.Contains(lower, cue) {
			counts[label]++
		}
	}
	return counts
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
