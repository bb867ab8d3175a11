package recommend

import (
	"strings"

	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
)

// Level is a coarse preference band for intensity or comfort.
type Level string

const (
	LevelAny    Level = ""
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// MoodPreset describes what suits someone in a given current mood.
// Zero fields mean "no preference".
type MoodPreset struct {
	Primary   emotion.Category `json:"primary,omitempty"`
	Intensity Level            `json:"intensity,omitempty"`
	Comfort   Level            `json:"comfort,omitempty"`
}

type namedPreset struct {
	name   string
	preset MoodPreset
}

var moodPresets = []namedPreset{
	{"stressed", MoodPreset{Intensity: LevelLow, Comfort: LevelHigh}},
	{"sad", MoodPreset{Primary: emotion.CatharticSadness, Comfort: LevelMedium}},
	{"bored", MoodPreset{Primary: emotion.ThrillingTension, Intensity: LevelHigh}},
	{"anxious", MoodPreset{Intensity: LevelLow, Comfort: LevelHigh}},
	{"happy", MoodPreset{Primary: emotion.PureJoy, Comfort: LevelHigh}},
	{"lonely", MoodPreset{Primary: emotion.RomanticWarmth, Comfort: LevelHigh}},
	{"angry", MoodPreset{Primary: emotion.RighteousAnger, Intensity: LevelHigh}},
	{"tired", MoodPreset{Intensity: LevelLow, Comfort: LevelHigh}},
	{"curious", MoodPreset{Primary: emotion.IntellectualStimulation}},
	{"romantic", MoodPreset{Primary: emotion.RomanticWarmth}},
	{"adventurous", MoodPreset{Primary: emotion.AweWonder, Intensity: LevelHigh}},
	{"reflective", MoodPreset{Primary: emotion.BittersweetHope, Intensity: LevelLow}},
}

type namedFeeling struct {
	name    string
	targets []emotion.Category
}

var desiredFeelings = []namedFeeling{
	{"feel-good", []emotion.Category{emotion.PureJoy, emotion.CozyComfort, emotion.RomanticWarmth}},
	{"thrilled", []emotion.Category{emotion.ThrillingTension, emotion.ControlledFear, emotion.MindBlown}},
	{"inspired", []emotion.Category{emotion.TriumphantInspired, emotion.AweWonder, emotion.BittersweetHope}},
	{"cry", []emotion.Category{emotion.CatharticSadness, emotion.BittersweetHope}},
	{"laugh", []emotion.Category{emotion.PureJoy, emotion.CozyComfort}},
	{"think", []emotion.Category{emotion.IntellectualStimulation, emotion.MindBlown}},
	{"scared", []emotion.Category{emotion.ControlledFear, emotion.ThrillingTension}},
	{"romantic", []emotion.Category{emotion.RomanticWarmth, emotion.BittersweetHope}},
	{"empowered", []emotion.Category{emotion.TriumphantInspired, emotion.RighteousAnger}},
	{"relaxed", []emotion.Category{emotion.CozyComfort, emotion.PureJoy}},
	{"amazed", []emotion.Category{emotion.AweWonder, emotion.MindBlown}},
}

var fallbackTargets = []emotion.Category{emotion.PureJoy, emotion.CozyComfort}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Preset resolves a current mood. Unknown moods yield an empty preset and false.
func Preset(mood string) (MoodPreset, bool) {
	key := normalizeKey(mood)
	for _, p := range moodPresets {
		if p.name == key {
			return p.preset, true
		}
	}
	return MoodPreset{}, false
}

// Targets resolves a desired feeling into target categories. Unknown feelings
// fall back to pure joy and cozy comfort.
func Targets(feeling string) []emotion.Category {
	key := normalizeKey(feeling)
	for _, f := range desiredFeelings {
		if f.name == key {
			return append([]emotion.Category(nil), f.targets...)
		}
	}
	return append([]emotion.Category(nil), fallbackTargets...)
}

// Moods lists the known current moods in table order.
func Moods() []string {
	out := make([]string, len(moodPresets))
	for i, p := range moodPresets {
		out[i] = p.name
	}
	return out
}

// Feelings lists the known desired feelings in table order.
func Feelings() []string {
	out := make([]string, len(desiredFeelings))
	for i, f := range desiredFeelings {
		out[i] = f.name
	}
	return out
}
