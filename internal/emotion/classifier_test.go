package emotion

import "testing"

func TestLabelTableMap(t *testing.T) {
	table := DefaultLabelTable()

	tests := []struct {
		name string
		raw  map[string]float64
		want Scores
	}{
		{
			name: "empty input",
			raw:  nil,
			want: Scores{},
		},
		{
			name: "neutral dropped",
			raw:  map[string]float64{"neutral": 0.9, "joy": 0.2},
			want: Scores{PureJoy: 0.2},
		},
		{
			name: "synonyms keep max",
			raw:  map[string]float64{"sadness": 0.3, "grief": 0.7, "remorse": 0.5},
			want: Scores{CatharticSadness: 0.7},
		},
		{
			name: "fear and disgust share category",
			raw:  map[string]float64{"fear": 0.4, "disgust": 0.6},
			want: Scores{ControlledFear: 0.6},
		},
		{
			name: "unknown labels ignored",
			raw:  map[string]float64{"boredom": 0.8, "curiosity": 0.4},
			want: Scores{IntellectualStimulation: 0.4},
		},
		{
			name: "labels are case insensitive",
			raw:  map[string]float64{"Surprise": 0.5},
			want: Scores{MindBlown: 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Map(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("Map() = %v, want %v", got, tt.want)
			}
			for c, score := range tt.want {
				if got[c] != score {
					t.Errorf("Map()[%s] = %v, want %v", c, got[c], score)
				}
			}
		})
	}
}

func TestLabelTableOnlyEmitsTaxonomy(t *testing.T) {
	for label, c := range DefaultLabelTable() {
		if c != "" && !c.Valid() {
			t.Errorf("label %q maps to non-taxonomy category %q", label, c)
		}
	}
}
