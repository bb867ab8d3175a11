package classifier

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

// DefaultOpenAIModel is used when no model is configured.
const DefaultOpenAIModel = "gpt-4o-mini"

// ErrMissingAPIKey is returned when the OpenAI backend has no API key.
var ErrMissingAPIKey = errors.New("openai classifier requires an API key")

// goEmotionLabels is the 28-label GoEmotions vocabulary the model must answer in.
var goEmotionLabels = []string{
	"admiration", "amusement", "anger", "annoyance", "approval", "caring", "confusion",
	"curiosity", "desire", "disappointment", "disapproval", "disgust", "embarrassment",
	"excitement", "fear", "gratitude", "grief", "joy", "love", "nervousness", "optimism",
	"pride", "realization", "relief", "remorse", "sadness", "surprise", "neutral",
}

const classifyInstructions = `You rate the emotions a movie plot description is likely to evoke in a viewer.
Return every emotion label that applies with a score between 0 and 1, where 1 means the emotion is central to the experience.
Use only the allowed labels. Omit labels that do not apply. Return at most 8 labels.`

// labelScore is one entry of the structured model answer.
type labelScore struct {
	Label string  `json:"label" jsonschema:"required,description=Emotion label from the allowed vocabulary"`
	Score float64 `json:"score" jsonschema:"required,description=Strength between 0 and 1"`
}

type classifyResponse struct {
	Emotions []labelScore `json:"emotions" jsonschema:"required,description=Emotions evoked by the text"`
}

// responsesAPI is the subset of the OpenAI client used here.
type responsesAPI interface {
	New(ctx context.Context, body responses.ResponseNewParams, opts ...option.RequestOption) (*responses.Response, error)
}

// OpenAIConfig configures the OpenAI backend.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// OpenAI classifies text with a Responses API call constrained by a strict
// JSON schema. It performs no retries of its own.
type OpenAI struct {
	api    responsesAPI
	model  string
	schema map[string]any
}

// NewOpenAI creates an OpenAI-backed classifier.
func NewOpenAI(cfg OpenAIConfig) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := openai.NewClient(opts...)
	return newOpenAI(&client.Responses, cfg.Model)
}

func newOpenAI(api responsesAPI, model string) (*OpenAI, error) {
	if model == "" {
		model = DefaultOpenAIModel
	}
	schema, err := generateSchema[classifyResponse]()
	if err != nil {
		return nil, fmt.Errorf("building response schema: %w", err)
	}
	return &OpenAI{api: api, model: model, schema: schema}, nil
}

// Classify asks the model for label scores.
func (o *OpenAI) Classify(ctx context.Context, text string) (map[string]float64, error) {
	text = truncate(strings.TrimSpace(text))
	if text == "" {
		return map[string]float64{}, nil
	}

	params := responses.ResponseNewParams{
		Model:           o.model,
		MaxOutputTokens: openai.Int(400),
		Instructions:    openai.String(classifyInstructions + "\nAllowed labels: " + strings.Join(goEmotionLabels, ", ")),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(text, responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Name:        "EmotionScores",
					Schema:      o.schema,
					Strict:      openai.Bool(true),
					Description: openai.String("Emotion label scores"),
					Type:        "json_schema",
				},
			},
		},
	}

	resp, err := o.api.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai classify: %w", err)
	}
	return parseScores(resp.OutputText())
}

// parseScores decodes the model output, keeping known labels and clamping
// scores to [0,1]. Duplicate labels keep their highest score.
func parseScores(output string) (map[string]float64, error) {
	s := strings.TrimSpace(output)
	if s == "" {
		return nil, ErrEmptyResponse
	}
	if start, end := strings.IndexByte(s, '{'), strings.LastIndexByte(s, '}'); start > 0 && end > start {
		s = s[start : end+1]
	}

	var out classifyResponse
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("decoding classifier output: %w", err)
	}

	known := make(map[string]bool, len(goEmotionLabels))
	for _, l := range goEmotionLabels {
		known[l] = true
	}

	scores := make(map[string]float64, len(out.Emotions))
	for _, e := range out.Emotions {
		label := strings.ToLower(strings.TrimSpace(e.Label))
		if !known[label] {
			continue
		}
		v := clamp01(e.Score)
		if current, seen := scores[label]; !seen || v > current {
			scores[label] = v
		}
	}
	return scores, nil
}

// generateSchema reflects T into a strict JSON schema the Responses API accepts.
func generateSchema[T any]() (map[string]any, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	raw, err := reflector.Reflect(v).MarshalJSON()
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	strictObjects(m)
	return m, nil
}

// strictObjects marks every object closed with all properties required.
func strictObjects(schema map[string]any) {
	if t, ok := schema["type"].(string); ok && t == "object" {
		schema["additionalProperties"] = false
		if props, ok := schema["properties"].(map[string]any); ok {
			required := make([]string, 0, len(props))
			for name := range props {
				required = append(required, name)
			}
			schema["required"] = required
		}
	}
	if props, ok := schema["properties"].(map[string]any); ok {
		for _, p := range props {
			if pm, ok := p.(map[string]any); ok {
				strictObjects(pm)
			}
		}
	}
	if items, ok := schema["items"].(map[string]any); ok {
		strictObjects(items)
	}
}
