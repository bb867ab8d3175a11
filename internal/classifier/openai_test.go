package classifier

import (
	"context"
	"errors"
	"testing"

	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

type failingResponses struct{ err error }

func (f failingResponses) New(context.Context, responses.ResponseNewParams, ...option.RequestOption) (*responses.Response, error) {
	return nil, f.err
}

func TestParseScores(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    map[string]float64
		wantErr bool
	}{
		{
			name:   "plain json",
			output: `{"emotions":[{"label":"joy","score":0.8},{"label":"fear","score":0.1}]}`,
			want:   map[string]float64{"joy": 0.8, "fear": 0.1},
		},
		{
			name:   "prefixed json",
			output: "Here you go:\n{\"emotions\":[{\"label\":\"Love\",\"score\":0.6}]}",
			want:   map[string]float64{"love": 0.6},
		},
		{
			name:   "clamps and drops unknown labels",
			output: `{"emotions":[{"label":"joy","score":1.4},{"label":"boredom","score":0.9},{"label":"fear","score":-2}]}`,
			want:   map[string]float64{"joy": 1, "fear": 0},
		},
		{
			name:   "duplicates keep max",
			output: `{"emotions":[{"label":"joy","score":0.2},{"label":"joy","score":0.7},{"label":"joy","score":0.5}]}`,
			want:   map[string]float64{"joy": 0.7},
		},
		{
			name:    "empty",
			output:  "  ",
			wantErr: true,
		},
		{
			name:    "garbage",
			output:  "not json",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScores(tt.output)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseScores() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseScores() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("parseScores()[%s] = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestGenerateSchemaIsStrict(t *testing.T) {
	schema, err := generateSchema[classifyResponse]()
	if err != nil {
		t.Fatalf("generateSchema() error = %v", err)
	}
	if schema["additionalProperties"] != false {
		t.Errorf("top-level additionalProperties = %v, want false", schema["additionalProperties"])
	}

	props := schema["properties"].(map[string]any)
	items := props["emotions"].(map[string]any)["items"].(map[string]any)
	if items["additionalProperties"] != false {
		t.Errorf("item additionalProperties = %v, want false", items["additionalProperties"])
	}
	required, _ := items["required"].([]string)
	if len(required) != 2 {
		t.Errorf("item required = %v, want label and score", items["required"])
	}
}

func TestOpenAIClassifyErrors(t *testing.T) {
	o, err := newOpenAI(failingResponses{err: errors.New("429 too many requests")}, "")
	if err != nil {
		t.Fatalf("newOpenAI() error = %v", err)
	}

	if _, err := o.Classify(context.Background(), "A long enough plot description."); err == nil {
		t.Error("expected error from failing backend")
	}

	got, err := o.Classify(context.Background(), "")
	if err != nil || len(got) != 0 {
		t.Errorf("Classify(empty) = %v, %v", got, err)
	}
}
