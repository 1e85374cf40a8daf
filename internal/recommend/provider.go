package recommend

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when no provider credentials are available
var ErrNotConfigured = errors.New("recommendation provider is not configured")

// Provider sends one prompt to a text-generation backend and returns its raw answer
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// Settings selects and configures a provider
type Settings struct {
	Provider    string  `yaml:"provider"`
	Model       string  `yaml:"model"`
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url"`
	Endpoint    string  `yaml:"endpoint"`
	Deployment  string  `yaml:"deployment"`
	Temperature float64 `yaml:"temperature"`
}

// Provider names
const (
	ProviderGemini       = "gemini"
	ProviderOpenAI       = "openai"
	ProviderGitHubModels = "github_models"
	ProviderAzureOpenAI  = "azure_openai"
)

// Defaults used when settings leave them empty
const (
	DefaultModel       = "gemini-2.5-flash"
	DefaultTemperature = 0.5
	githubModelsURL    = "https://models.inference.ai.azure.com"
)
