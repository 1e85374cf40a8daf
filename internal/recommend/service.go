package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"ecolife/internal/models"
)

// ErrInvalidResponse is returned when the provider answer does not fit the recommendation shape
var ErrInvalidResponse = errors.New("invalid recommendation response")

// Outcome labels reported to the observer
const (
	OutcomeOK          = "ok"
	OutcomeConfigError = "config_error"
	OutcomeAPIError    = "api_error"
)

const promptTemplate = `Ești un expert în mentenanța echipamentelor industriale dintr-o stație de sortare a deșeurilor.
Pentru echipamentul "%s", s-a constatat neconformitatea: "%s".
Generează o recomandare de remediere în format JSON cu exact câmpurile:
- "how": pașii clari și conciși pentru remedierea neconformității;
- "withWhat": uneltele și materialele necesare;
- "deadline": un termen limită rezonabil pentru remediere (ex: "24 de ore", "La următorul schimb", "Imediat");
- "action": acțiunea principală necesară, una dintre: %s.
Fii concis și la obiect. Recomandările trebuie să fie practice și direct aplicabile. Limba răspunsului trebuie să fie româna.`

// Service generates remediation recommendations for findings
type Service struct {
	provider Provider
	group    singleflight.Group
	observe  func(outcome string, elapsed time.Duration)
}

// Option customizes a Service
type Option func(*Service)

// WithObserver reports the outcome and latency of every generation
func WithObserver(fn func(outcome string, elapsed time.Duration)) Option {
	return func(s *Service) { s.observe = fn }
}

// NewService creates a service over provider. A nil provider means not configured.
func NewService(provider Provider, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		observe:  func(string, time.Duration) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Configured reports whether a provider is available
func (s *Service) Configured() bool {
	return s.provider != nil
}

// BuildPrompt renders the request sent to the provider
func BuildPrompt(equipmentName, nonConformityType string) string {
	quoted := make([]string, len(models.RecommendationActions))
	for i, a := range models.RecommendationActions {
		quoted[i] = "'" + a + "'"
	}
	return fmt.Sprintf(promptTemplate, equipmentName, nonConformityType, strings.Join(quoted, ", "))
}

// Generate asks the provider for a recommendation.
// Identical requests in flight share one provider call.
func (s *Service) Generate(ctx context.Context, equipmentName, nonConformityType string) Result {
	start := time.Now()
	if s.provider == nil {
		log.Println("Recommendation provider is not configured")
		s.observe(OutcomeConfigError, time.Since(start))
		return Err(ErrNotConfigured)
	}

	key := equipmentName + "\x00" + nonConformityType
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		raw, err := s.provider.Complete(ctx, BuildPrompt(equipmentName, nonConformityType))
		if err != nil {
			return nil, err
		}
		return ParseRecommendation(raw)
	})
	if err != nil {
		log.Printf("Error generating recommendation with %s: %v", s.provider.Name(), err)
		s.observe(OutcomeAPIError, time.Since(start))
		return Err(err)
	}

	s.observe(OutcomeOK, time.Since(start))
	return Ok(v.(models.Recommendation))
}

// ParseRecommendation decodes a provider answer, tolerating code fences around the JSON
func ParseRecommendation(raw string) (models.Recommendation, error) {
	text := strings.TrimSpace(raw)
	if i, j := strings.Index(text, "{"), strings.LastIndex(text, "}"); i >= 0 && j > i {
		text = text[i : j+1]
	}

	var rec models.Recommendation
	if err := json.Unmarshal([]byte(text), &rec); err != nil {
		return models.Recommendation{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	rec.How = strings.TrimSpace(rec.How)
	rec.WithWhat = strings.TrimSpace(rec.WithWhat)
	rec.Deadline = strings.TrimSpace(rec.Deadline)
	rec.Action = strings.TrimSpace(rec.Action)

	if rec.How == "" {
		return models.Recommendation{}, fmt.Errorf("%w: missing how", ErrInvalidResponse)
	}
	if !isKnownAction(rec.Action) {
		return models.Recommendation{}, fmt.Errorf("%w: unknown action %q", ErrInvalidResponse, rec.Action)
	}
	return rec, nil
}

func isKnownAction(action string) bool {
	for _, a := range models.RecommendationActions {
		if a == action {
			return true
		}
	}
	return false
}
