package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// contentCaller is the slice of genai.Client.Models the generator needs.
type contentCaller interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator wraps the Google GenAI client behind a single text-in text-out
// call. A Generator built without a usable credential still accepts calls;
// they fail and the consumers degrade to their safe defaults.
type Generator struct {
	models    contentCaller
	modelName string
	logger    *zap.Logger
}

// NewGenerator creates a Generator for the Gemini API backend. A missing
// api key is logged rather than rejected: the resulting generator fails
// every call, which the match and reply clients translate into their
// empty-result behavior.
func NewGenerator(ctx context.Context, apiKey, model string, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	g := &Generator{modelName: model, logger: logger}

	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		logger.Warn("gemini api key is not configured",
			zap.String("hint", "set GEMINI_API_KEY or ai.gemini.api-key-file"),
		)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Warn("creating genai client failed", zap.Error(err))
		return g
	}

	g.models = client.Models
	return g
}

// GenerateContent sends the prompt to Gemini with the given config and
// returns the concatenated textual response. An empty response is an error.
func (g *Generator) GenerateContent(ctx context.Context, config *genai.GenerateContentConfig, prompt string) (string, error) {
	if g == nil || g.models == nil {
		return "", errors.New("gemini generator is not initialized")
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	resp, err := g.models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	return output, nil
}

func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.modelName
}
