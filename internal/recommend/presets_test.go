package recommend

import (
	"reflect"
	"testing"

	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
)

func TestPreset(t *testing.T) {
	tests := []struct {
		mood   string
		want   MoodPreset
		wantOK bool
	}{
		{"stressed", MoodPreset{Intensity: LevelLow, Comfort: LevelHigh}, true},
		{"Sad", MoodPreset{Primary: emotion.CatharticSadness, Comfort: LevelMedium}, true},
		{" bored ", MoodPreset{Primary: emotion.ThrillingTension, Intensity: LevelHigh}, true},
		{"curious", MoodPreset{Primary: emotion.IntellectualStimulation}, true},
		{"neutral", MoodPreset{}, false},
		{"", MoodPreset{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.mood, func(t *testing.T) {
			got, ok := Preset(tt.mood)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Preset(%q) = %+v, %v, want %+v, %v", tt.mood, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTargets(t *testing.T) {
	if got := Targets("cry"); !reflect.DeepEqual(got, []emotion.Category{emotion.CatharticSadness, emotion.BittersweetHope}) {
		t.Errorf("Targets(cry) = %v", got)
	}
	if got := Targets("unknown"); !reflect.DeepEqual(got, []emotion.Category{emotion.PureJoy, emotion.CozyComfort}) {
		t.Errorf("Targets(unknown) = %v", got)
	}

	got := Targets("laugh")
	got[0] = emotion.AweWonder
	if Targets("laugh")[0] != emotion.PureJoy {
		t.Error("Targets exposed internal table")
	}
}

func TestMoodAndFeelingLists(t *testing.T) {
	if got := len(Moods()); got != 12 {
		t.Errorf("len(Moods()) = %d, want 12", got)
	}
	if got := len(Feelings()); got != 11 {
		t.Errorf("len(Feelings()) = %d, want 11", got)
	}
	if Moods()[0] != "stressed" || Feelings()[0] != "feel-good" {
		t.Errorf("unexpected first entries %q %q", Moods()[0], Feelings()[0])
	}
	for _, f := range Feelings() {
		for _, c := range Targets(f) {
			if !c.Valid() {
				t.Errorf("feeling %q targets invalid category %q", f, c)
			}
		}
	}
}
