package recommend

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// LLMProvider talks to any langchaingo model in JSON mode
type LLMProvider struct {
	name        string
	model       llms.Model
	temperature float64
}

// NewLLMProvider wraps an initialized langchaingo model
func NewLLMProvider(name string, model llms.Model, temperature float64) *LLMProvider {
	return &LLMProvider{name: name, model: model, temperature: temperature}
}

// NewGeminiProvider creates a Google Gemini provider
func NewGeminiProvider(ctx context.Context, s Settings) (*LLMProvider, error) {
	if s.APIKey == "" {
		return nil, ErrNotConfigured
	}
	model, err := googleai.New(ctx,
		googleai.WithAPIKey(s.APIKey),
		googleai.WithDefaultModel(s.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini model: %w", err)
	}
	return NewLLMProvider(ProviderGemini, model, s.Temperature), nil
}

// NewOpenAIProvider creates an OpenAI (or OpenAI-compatible) provider
func NewOpenAIProvider(s Settings) (*LLMProvider, error) {
	if s.APIKey == "" {
		return nil, ErrNotConfigured
	}
	opts := []openai.Option{
		openai.WithToken(s.APIKey),
		openai.WithModel(s.Model),
	}
	if s.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(s.BaseURL))
	}
	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenAI model: %w", err)
	}
	return NewLLMProvider(ProviderOpenAI, model, s.Temperature), nil
}

// NewGitHubModelsProvider creates a provider for GitHub Models, which speaks the OpenAI API
func NewGitHubModelsProvider(s Settings) (*LLMProvider, error) {
	if s.BaseURL == "" {
		s.BaseURL = githubModelsURL
	}
	p, err := NewOpenAIProvider(s)
	if err != nil {
		return nil, err
	}
	p.name = ProviderGitHubModels
	return p, nil
}

// Name returns the provider name
func (p *LLMProvider) Name() string {
	return p.name
}

// Complete generates a JSON answer for the prompt
func (p *LLMProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.model.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	},
		llms.WithTemperature(p.temperature),
		llms.WithJSONMode(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from %s", p.name)
	}
	return resp.Choices[0].Content, nil
}
