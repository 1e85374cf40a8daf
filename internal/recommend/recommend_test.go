package recommend

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"ecolife/internal/models"
)

const validAnswer = "```json\n{\"how\": \"Curățați tamburul cu peria de sârmă.\", \"withWhat\": \"Perie de sârmă, degresant\", \"deadline\": \"La următorul schimb\", \"action\": \"Curățare\"}\n```"

type fakeProvider struct {
	answer string
	err    error
	calls  int32
	gate   chan struct{}
	prompt string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, prompt string) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	f.prompt = prompt
	if f.gate != nil {
		<-f.gate
	}
	return f.answer, f.err
}

func TestGenerate_Ok(t *testing.T) {
	p := &fakeProvider{answer: validAnswer}
	var outcomes []string
	s := NewService(p, WithObserver(func(outcome string, _ time.Duration) { outcomes = append(outcomes, outcome) }))

	res := s.Generate(context.Background(), "Conveior B1", "Lipsa gresare")
	require.True(t, res.IsOk())
	assert.Equal(t, "Curățare", res.Recommendation.Action)
	assert.Equal(t, "La următorul schimb", res.Recommendation.Deadline)
	assert.Equal(t, res.Recommendation, res.OrFallback())
	assert.Equal(t, []string{OutcomeOK}, outcomes)

	assert.Contains(t, p.prompt, `"Conveior B1"`)
	assert.Contains(t, p.prompt, `"Lipsa gresare"`)
	assert.Contains(t, p.prompt, "'Oprire echipament până la remediere'")
}

func TestGenerate_NotConfigured(t *testing.T) {
	s := NewService(nil)
	assert.False(t, s.Configured())

	res := s.Generate(context.Background(), "Conveior B1", "Lipsa gresare")
	assert.False(t, res.IsOk())
	assert.ErrorIs(t, res.Err, ErrNotConfigured)

	rec := res.OrFallback()
	assert.Equal(t, ActionConfigurationError, rec.Action)
	assert.Equal(t, "Cheia API nu este configurată. Introduceți manual recomandarea.", rec.How)
	assert.Empty(t, rec.WithWhat)
	assert.Empty(t, rec.Deadline)
}

func TestGenerate_APIFailure(t *testing.T) {
	s := NewService(&fakeProvider{err: errors.New("connection refused")})

	res := s.Generate(context.Background(), "Separator Metale", "Zgomote suspecte")
	require.Error(t, res.Err)

	rec := res.OrFallback()
	assert.Equal(t, ActionAPIError, rec.Action)
	assert.Equal(t, "A apărut o eroare la generarea recomandării. Vă rugăm introduceți manual.", rec.How)
	assert.NotEqual(t, ConfigurationFallback().Action, rec.Action)
}

func TestGenerate_UnparseableAnswerFallsBackToAPIError(t *testing.T) {
	for _, answer := range []string{
		"nu pot raspunde",
		`{"how": "", "action": "Curățare"}`,
		`{"how": "ceva", "action": "Vopsire"}`,
	} {
		res := NewService(&fakeProvider{answer: answer}).Generate(context.Background(), "a", "b")
		assert.ErrorIs(t, res.Err, ErrInvalidResponse, answer)
		assert.Equal(t, ActionAPIError, res.OrFallback().Action)
	}
}

func TestGenerate_DeduplicatesConcurrentRequests(t *testing.T) {
	p := &fakeProvider{answer: validAnswer, gate: make(chan struct{})}
	s := NewService(p)

	var wg sync.WaitGroup
	results := make([]Result, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.Generate(context.Background(), "Conveior B1", "Lipsa gresare")
		}(i)
	}

	time.Sleep(100 * time.Millisecond)
	close(p.gate)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&p.calls))
	for _, r := range results {
		assert.True(t, r.IsOk())
	}
}

func TestParseRecommendation(t *testing.T) {
	rec, err := ParseRecommendation(`  {"how":" Gresați lagărele ","withWhat":"Pompă de gresare","deadline":"Imediat","action":"Gresare"} `)
	require.NoError(t, err)
	assert.Equal(t, models.Recommendation{How: "Gresați lagărele", WithWhat: "Pompă de gresare", Deadline: "Imediat", Action: "Gresare"}, rec)
}

// fakeModel records the call options passed by LLMProvider
type fakeModel struct {
	options llms.CallOptions
	content string
	err     error
}

func (m *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, opt := range options {
		opt(&m.options)
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.content}}}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func TestLLMProvider_Complete(t *testing.T) {
	model := &fakeModel{content: validAnswer}
	p := NewLLMProvider(ProviderGemini, model, 0.5)

	out, err := p.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, validAnswer, out)
	assert.True(t, model.options.JSONMode)
	assert.Equal(t, 0.5, model.options.Temperature)
	assert.Equal(t, ProviderGemini, p.Name())

	_, err = NewLLMProvider("x", &fakeModel{err: errors.New("quota")}, 0.5).Complete(context.Background(), "p")
	assert.Error(t, err)
}

func TestNewProvider_MissingCredentials(t *testing.T) {
	for _, name := range []string{ProviderGemini, ProviderOpenAI, ProviderGitHubModels, ProviderAzureOpenAI} {
		p, err := NewProvider(context.Background(), Settings{Provider: name})
		assert.ErrorIs(t, err, ErrNotConfigured, name)
		assert.Nil(t, p, name)
	}

	_, err := NewProvider(context.Background(), Settings{Provider: "anthropic", APIKey: "k"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotConfigured)
}

func TestNewProvider_OpenAICompatible(t *testing.T) {
	p, err := NewProvider(context.Background(), Settings{Provider: ProviderGitHubModels, APIKey: "token", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.Equal(t, ProviderGitHubModels, p.Name())
}
