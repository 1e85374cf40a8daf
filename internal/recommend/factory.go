package recommend

import (
	"context"
	"fmt"
)

type providerInit func(ctx context.Context, s Settings) (Provider, error)

var providerInits = map[string]providerInit{
	ProviderGemini: func(ctx context.Context, s Settings) (Provider, error) {
		p, err := NewGeminiProvider(ctx, s)
		if err != nil {
			return nil, err
		}
		return p, nil
	},
	ProviderOpenAI: func(_ context.Context, s Settings) (Provider, error) {
		p, err := NewOpenAIProvider(s)
		if err != nil {
			return nil, err
		}
		return p, nil
	},
	ProviderGitHubModels: func(_ context.Context, s Settings) (Provider, error) {
		p, err := NewGitHubModelsProvider(s)
		if err != nil {
			return nil, err
		}
		return p, nil
	},
	ProviderAzureOpenAI: func(_ context.Context, s Settings) (Provider, error) {
		p, err := NewAzureOpenAIProvider(s)
		if err != nil {
			return nil, err
		}
		return p, nil
	},
}

// NewProvider initializes the provider named in the settings.
// Missing credentials yield ErrNotConfigured.
func NewProvider(ctx context.Context, s Settings) (Provider, error) {
	if s.Provider == "" {
		s.Provider = ProviderGemini
	}
	if s.Model == "" && s.Provider == ProviderGemini {
		s.Model = DefaultModel
	}
	if s.Temperature == 0 {
		s.Temperature = DefaultTemperature
	}

	build, ok := providerInits[s.Provider]
	if !ok {
		return nil, fmt.Errorf("unsupported recommendation provider: %s", s.Provider)
	}
	return build(ctx, s)
}
