package recommend

import (
	"fmt"
	"math"
	"sort"

	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
)

// Match score weights.
const (
	emotionWeight   = 0.4
	intensityWeight = 0.3
	comfortWeight   = 0.3
	primaryBonus    = 0.1
)

// EmotionQuery asks for explicit target emotions within score bounds.
type EmotionQuery struct {
	Targets      []emotion.Category
	MinIntensity float64
	MaxIntensity float64
	MinComfort   float64
}

// DefaultEmotionQuery returns a query with the widest bounds.
func DefaultEmotionQuery(targets ...emotion.Category) EmotionQuery {
	return EmotionQuery{Targets: targets, MinIntensity: 0, MaxIntensity: 10, MinComfort: 0}
}

type scored struct {
	movie *Movie
	score float64
}

// RankByMood scores every movie against the current mood preset and the
// desired feeling's target emotions, returning the best n. Ties keep catalog
// order. n larger than the catalog returns everything.
func RankByMood(catalog []Movie, currentMood, desiredFeeling string, n int) ([]Recommendation, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidCount, n)
	}

	preset, _ := Preset(currentMood)
	targets := Targets(desiredFeeling)

	results := make([]scored, len(catalog))
	for i := range catalog {
		results[i] = scored{movie: &catalog[i], score: MatchScore(catalog[i].Profile, preset, targets)}
	}
	top := topN(results, n)

	recs := make([]Recommendation, len(top))
	for i, r := range top {
		recs[i] = newRecommendation(*r.movie, r.score, Explain(desiredFeeling, r.movie.Profile.Dominant))
	}
	return recs, nil
}

// RankByEmotions keeps movies whose intensity lies in [MinIntensity,
// MaxIntensity] and whose comfort is at least MinComfort, then ranks them by
// the fraction of target emotions among their dominant emotions.
func RankByEmotions(catalog []Movie, q EmotionQuery, n int) ([]Recommendation, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidCount, n)
	}

	var results []scored
	for i := range catalog {
		p := catalog[i].Profile
		if p.Intensity < q.MinIntensity || p.Intensity > q.MaxIntensity || p.Comfort < q.MinComfort {
			continue
		}
		results = append(results, scored{movie: &catalog[i], score: emotionMatch(p, q.Targets)})
	}
	top := topN(results, n)

	recs := make([]Recommendation, len(top))
	for i, r := range top {
		recs[i] = newRecommendation(*r.movie, r.score, fmt.Sprintf("Matches %d%% of your desired emotions.", int(r.score*100)))
	}
	return recs, nil
}

// MatchScore combines emotion overlap, intensity fit and comfort fit, adding a
// bonus when the preset's primary emotion is dominant. Capped at 1.
func MatchScore(p emotion.Profile, preset MoodPreset, targets []emotion.Category) float64 {
	score := emotionMatch(p, targets)*emotionWeight +
		levelMatch(p.Intensity, preset.Intensity)*intensityWeight +
		levelMatch(p.Comfort, preset.Comfort)*comfortWeight

	if preset.Primary != "" && p.HasDominant(preset.Primary) {
		score += primaryBonus
	}
	return math.Min(1, score)
}

// emotionMatch is the fraction of targets found in the dominant emotions.
func emotionMatch(p emotion.Profile, targets []emotion.Category) float64 {
	if len(targets) == 0 {
		return 0
	}
	var hits int
	for _, t := range targets {
		if p.HasDominant(t) {
			hits++
		}
	}
	return float64(hits) / float64(len(targets))
}

// levelMatch rates a 0-10 value against a preference band.
func levelMatch(value float64, pref Level) float64 {
	switch pref {
	case LevelLow:
		return math.Max(0, 1-value/10)
	case LevelHigh:
		return value / 10
	default:
		return 1 - math.Abs(value-5)/5
	}
}

// topN orders by descending score, stable on catalog order, and keeps n.
func topN(results []scored, n int) []scored {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})
	if n < len(results) {
		results = results[:n]
	}
	return results
}
