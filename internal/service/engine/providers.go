package engine

import (
	"context"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/kapu/contract-assistant-go/internal/constants"
	apperrors "github.com/kapu/contract-assistant-go/pkg/errors"
)

// GeminiEngine runs analysis through the Gemini API.
type GeminiEngine struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

func NewGeminiEngine(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiEngine, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, apperrors.NewEngineError("failed to create Gemini client", "gemini", err)
	}

	return &GeminiEngine{client: client, model: model, logger: logger}, nil
}

func (g *GeminiEngine) Name() string {
	return "gemini"
}

func (g *GeminiEngine) Analyze(ctx context.Context, question, documentText string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.Engine.RequestTimeout)
	defer cancel()

	prompt := buildPrompt(question, documentText)
	temperature := float32(0.3)
	maxTokens := int32(constants.Engine.MaxOutputTokens)

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{
			Temperature:     &temperature,
			MaxOutputTokens: maxTokens,
		})
	if err != nil {
		return "", apperrors.NewEngineError("Gemini request failed", "gemini", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", apperrors.NewEngineError("Gemini returned no candidates", "gemini", nil)
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", apperrors.NewEngineError("Gemini returned empty text", "gemini", nil)
	}
	return text, nil
}

// OpenAIEngine runs analysis through the OpenAI chat completions API.
type OpenAIEngine struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func NewOpenAIEngine(apiKey, model string, logger *zap.Logger) *OpenAIEngine {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIEngine{client: &client, model: model, logger: logger}
}

func (o *OpenAIEngine) Name() string {
	return "openai"
}

func (o *OpenAIEngine) Analyze(ctx context.Context, question, documentText string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.Engine.RequestTimeout)
	defer cancel()

	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: o.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildPrompt(question, documentText)),
		},
		MaxCompletionTokens: openai.Int(int64(constants.Engine.MaxOutputTokens)),
	})
	if err != nil {
		return "", apperrors.NewEngineError("OpenAI request failed", "openai", err)
	}

	if len(resp.Choices) == 0 {
		return "", apperrors.NewEngineError("OpenAI returned no choices", "openai", nil)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", apperrors.NewEngineError("OpenAI returned empty text", "openai", nil)
	}
	return text, nil
}
