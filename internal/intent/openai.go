package intent

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"voice_control_system/internal/models"
	"voice_control_system/internal/rooms"
)

const systemPrompt = `
You classify voice commands for a smart-home lighting panel.
Output ONLY JSON, no markdown, no explanations:
{"room":"<kitchen|hall|master|guest or empty>","intent":"<on|off or empty>","intensity":"<low|high or empty>"}

Rules:
- Map synonyms onto the canonical rooms: living room -> hall,
  bedroom 1 / main bedroom -> master, bedroom 2 / spare room -> guest.
- soft/dim/decrease mean intensity low; bright/increase mean high.
- Any intensity implies intent on.
- If no room is mentioned, leave every field empty.
- Never invent values.
`

// OpenAIClassifier asks a chat model to do the extraction. Selected via
// config for deployments where the keyword lists are too rigid.
type OpenAIClassifier struct {
	client openai.Client
	model  string
}

func NewOpenAIClassifier(apiKey, model string) *OpenAIClassifier {
	if model == "" {
		model = openai.ChatModelGPT5Nano
	}
	return &OpenAIClassifier{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

var _ Classifier = (*OpenAIClassifier)(nil)

func (o *OpenAIClassifier) Classify(ctx context.Context, transcript string) (models.VoiceCommand, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(transcript),
		},
		Model: o.model,
	})
	if err != nil {
		return models.VoiceCommand{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return models.VoiceCommand{}, fmt.Errorf("no choices in response")
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return models.VoiceCommand{}, fmt.Errorf("empty message content")
	}

	var cmd models.VoiceCommand
	if err := json.Unmarshal([]byte(content), &cmd); err != nil {
		return models.VoiceCommand{}, fmt.Errorf("unmarshal classifier result: %w (raw: %s)", err, content)
	}
	return sanitize(cmd), nil
}

// sanitize keeps the model honest: unknown rooms are dropped, aliases
// canonicalized, intensity cleared unless the light is being turned on.
func sanitize(cmd models.VoiceCommand) models.VoiceCommand {
	if room, ok := rooms.Canonicalize(cmd.Room); ok {
		cmd.Room = room
	} else {
		return models.VoiceCommand{}
	}
	switch cmd.Intent {
	case models.IntentOn, models.IntentOff:
	default:
		cmd.Intent = models.IntentOn
	}
	switch cmd.Intensity {
	case models.IntensityLow, models.IntensityHigh:
	default:
		cmd.Intensity = ""
	}
	if cmd.Intent == models.IntentOff {
		cmd.Intensity = ""
	} else if cmd.Intensity == "" {
		cmd.Intensity = models.IntensityLow
	}
	return cmd
}
