package recommend

import (
	"errors"

	"ecolife/internal/models"
)

// Fallback action markers
const (
	ActionConfigurationError = "Eroare de configurare"
	ActionAPIError           = "Eroare API"
)

// ConfigurationFallback is the placeholder shown when no provider is configured
func ConfigurationFallback() models.Recommendation {
	return models.Recommendation{
		How:    "Cheia API nu este configurată. Introduceți manual recomandarea.",
		Action: ActionConfigurationError,
	}
}

// APIFallback is the placeholder shown when the provider call or its answer fails
func APIFallback() models.Recommendation {
	return models.Recommendation{
		How:    "A apărut o eroare la generarea recomandării. Vă rugăm introduceți manual.",
		Action: ActionAPIError,
	}
}

// Result is either a generated recommendation or the reason none was produced
type Result struct {
	Recommendation models.Recommendation
	Err            error
}

// Ok wraps a generated recommendation
func Ok(r models.Recommendation) Result {
	return Result{Recommendation: r}
}

// Err wraps a failure
func Err(err error) Result {
	return Result{Err: err}
}

// IsOk reports whether a recommendation was generated
func (r Result) IsOk() bool {
	return r.Err == nil
}

// OrFallback maps a failed result to its placeholder recommendation
func (r Result) OrFallback() models.Recommendation {
	switch {
	case r.Err == nil:
		return r.Recommendation
	case errors.Is(r.Err, ErrNotConfigured):
		return ConfigurationFallback()
	default:
		return APIFallback()
	}
}
