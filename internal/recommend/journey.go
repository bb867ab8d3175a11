package recommend

import "fmt"

// Phase labels a step of a mood journey.
type Phase string

const (
	PhaseAcknowledge Phase = "acknowledge"
	PhaseTransition  Phase = "transition"
	PhaseArrival     Phase = "arrival"
)

// neutralMood carries no preset, so the arrival step is driven by the target
// feeling alone.
const neutralMood = "neutral"

// PlanJourney sequences recommendations that move from startMood to endMood:
// one movie that meets the viewer where they are, n-2 transition picks when
// n >= 3, and one arrival pick. The result is truncated to n. The same movie
// may appear in more than one step.
func PlanJourney(catalog []Movie, startMood, endMood string, n int) ([]Recommendation, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: journey needs at least one movie, got %d", ErrInvalidCount, n)
	}

	var journey []Recommendation

	first, err := RankByMood(catalog, startMood, startMood, 1)
	if err != nil {
		return nil, err
	}
	journey = append(journey, withPhase(first, PhaseAcknowledge)...)

	if n >= 3 {
		middle, err := RankByMood(catalog, startMood, endMood, n-2)
		if err != nil {
			return nil, err
		}
		journey = append(journey, withPhase(middle, PhaseTransition)...)
	}

	last, err := RankByMood(catalog, neutralMood, endMood, 1)
	if err != nil {
		return nil, err
	}
	journey = append(journey, withPhase(last, PhaseArrival)...)

	if len(journey) > n {
		journey = journey[:n]
	}
	return journey, nil
}

func withPhase(recs []Recommendation, phase Phase) []Recommendation {
	for i := range recs {
		recs[i].Phase = phase
	}
	return recs
}
