package clustering

import (
	"strings"

	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
)

// mixedName is used when a centroid carries no emotion signal.
const mixedName = "Mixed Feelings"

// collectionName joins the display names of the top categories.
func collectionName(top []emotion.Category) string {
	if len(top) == 0 {
		return mixedName
	}
	names := make([]string, len(top))
	for i, c := range top {
		names[i] = c.DisplayName()
	}
	return strings.Join(names, " & ")
}

// Describe returns a one-line description of a collection's intensity and
// comfort quadrant.
//
// Quadrants (threshold 5 on the 0-10 scale):
//   - High intensity + high comfort = rousing but reassuring
//   - High intensity + low comfort  = gripping and unsettling
//   - Low intensity  + high comfort = gentle and comforting
//   - Low intensity  + low comfort  = quiet and contemplative
func Describe(c Collection) string {
	highIntensity := c.Intensity > 5
	highComfort := c.Comfort > 5

	switch {
	case highIntensity && highComfort:
		return "Rousing but reassuring, big feelings with a soft landing"
	case highIntensity && !highComfort:
		return "Gripping and unsettling, best when you want to be shaken up"
	case !highIntensity && highComfort:
		return "Gentle and comforting, ideal for unwinding"
	default:
		return "Quiet and contemplative, for reflective evenings"
	}
}
