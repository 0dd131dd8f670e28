package classifier

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/zhouzirui/mood-mirror/backend/internal/model/mood"
)

// remotePayload is the JSON object the model is asked to return. Its schema is
// embedded in the system prompt.
type remotePayload struct {
	Mood            string                 `json:"mood" jsonschema:"required"`
	Energy          string                 `json:"energy" jsonschema:"required,enum=low,enum=medium,enum=high"`
	Intent          string                 `json:"intent" jsonschema:"required,enum=relax,enum=distract,enum=focus,enum=uplift,enum=express"`
	Confidence      *float64               `json:"confidence" jsonschema:"required,minimum=0,maximum=1"`
	Recommendations *remoteRecommendations `json:"recommendations" jsonschema:"required"`
}

type remoteRecommendations struct {
	Outfit       []string `json:"outfit" jsonschema:"required,minItems=3,maxItems=3"`
	Playlist     string   `json:"playlist" jsonschema:"required" jsonschema_description:"A real, popular Spotify playlist ID, e.g. 37i9dQZF1DXcBWIGoYBM5M"`
	Workout      string   `json:"workout" jsonschema:"required"`
	Food         string   `json:"food" jsonschema:"required"`
	Affirmation  string   `json:"affirmation" jsonschema:"required"`
	Productivity string   `json:"productivity" jsonschema:"required"`
}

// JSONSchemaExtend pins mood to the shared vocabulary.
func (remotePayload) JSONSchemaExtend(s *jsonschema.Schema) {
	prop, ok := s.Properties.Get("mood")
	if !ok {
		return
	}
	prop.Enum = make([]any, 0, len(mood.Vocabulary))
	for _, m := range mood.Vocabulary {
		prop.Enum = append(prop.Enum, string(m))
	}
}

func responseSchema() (string, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	raw, err := json.MarshalIndent(reflector.Reflect(&remotePayload{}), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal response schema: %w", err)
	}
	return string(raw), nil
}

func buildSystemPrompt() (string, error) {
	schemaText, err := responseSchema()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(systemPromptFormat, schemaText), nil
}

const systemPromptFormat = `You analyze how a person is feeling from a short check-in and suggest lifestyle recommendations for that mood.

Return only a JSON object that validates against this JSON Schema, with no surrounding prose:
%s

Ensure the playlist ID is real and popular for that mood.
For the "face" method, treat the input as a description of facial features or expression if one is provided; otherwise infer a mood suitable for a random check-in and vary it.
If the input is vague, make a best guess.`

const userPrompt = `Analyze the mood of a person based on this input: "{input}" (Method: {method}).`
