package recommend

import (
	"fmt"
	"strings"

	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
)

var explanationTemplates = map[string]string{
	"feel-good": "A comforting choice with %s to lift your spirits.",
	"thrilled":  "An intense experience with %s to get your heart racing.",
	"cry":       "An emotional journey with %s for a good cathartic release.",
	"inspired":  "An uplifting film with %s to inspire you.",
	"think":     "A thought-provoking movie with %s to engage your mind.",
}

const genericExplanation = "Featuring %s - a great match for your mood."

// Explain describes why a movie suits the desired feeling, naming its top two
// dominant emotions.
func Explain(desiredFeeling string, dominant []emotion.Category) string {
	top := dominant
	if len(top) > 2 {
		top = top[:2]
	}
	phrases := make([]string, len(top))
	for i, c := range top {
		phrases[i] = c.Phrase()
	}

	tmpl, ok := explanationTemplates[normalizeKey(desiredFeeling)]
	if !ok {
		tmpl = genericExplanation
	}
	return fmt.Sprintf(tmpl, strings.Join(phrases, ", "))
}
