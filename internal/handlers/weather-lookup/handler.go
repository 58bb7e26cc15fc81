// internal/handlers/weather-lookup/handler.go
package weatherlookup

import (
	"context"
	"net/http"
	"time"

	relayerrors "weather-relay/internal/common/errors"
	"weather-relay/internal/common/logger"
	"weather-relay/internal/common/observability"
	"weather-relay/internal/common/openweather"
)

const Route = "/api/weather"

// Provider is the upstream weather source. Exactly one call is made per
// lookup; cancellation follows the inbound request context.
type Provider interface {
	CurrentByCity(ctx context.Context, city string) (*openweather.CurrentConditions, error)
}

// Handler is the weather relay pipeline: validate the city, check the
// credential, make one provider call, reshape the result. Three failure
// exits, one success exit, no loops.
type Handler struct {
	config     *Config
	provider   Provider
	errHandler *relayerrors.ErrorHandler
	logger     logger.Logger
	obs        *observability.Observability
}

func NewHandler(config *Config, provider Provider, obs *observability.Observability, log logger.Logger) *Handler {
	routeLog := log.With(map[string]interface{}{
		"route": Route,
	})
	return &Handler{
		config:     config,
		provider:   provider,
		errHandler: relayerrors.NewErrorHandler(routeLog),
		logger:     routeLog,
		obs:        obs,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	city := r.URL.Query().Get("city")

	h.logger.Info("lookup received", map[string]interface{}{
		"city": city,
	})

	summary, err := h.lookup(r.Context(), city)
	if err != nil {
		h.recordOutcome(r.Context(), err, start)
		h.errHandler.WriteError(w, err)
		return
	}

	h.recordOutcome(r.Context(), nil, start)
	relayerrors.WriteJSON(w, http.StatusOK, summary)
}

// lookup runs the relay pipeline. Order matters: validation, then the
// credential check, and only then the single outbound call.
func (h *Handler) lookup(ctx context.Context, city string) (*WeatherSummary, error) {
	if city == "" {
		return nil, relayerrors.NewMissingCityError()
	}

	if h.config.APIKey == "" {
		return nil, relayerrors.NewServerMisconfiguredError()
	}

	conditions, err := h.provider.CurrentByCity(ctx, city)
	if err != nil {
		return nil, err
	}

	return toSummary(conditions), nil
}

// toSummary renames provider fields into the client payload. The provider
// response is shape-validated before it gets here, so the condition list is
// never empty.
func toSummary(conditions *openweather.CurrentConditions) *WeatherSummary {
	first := conditions.Weather[0]
	return &WeatherSummary{
		City:        conditions.Name,
		Country:     conditions.Sys.Country,
		Temperature: conditions.Main.Temp,
		FeelsLike:   conditions.Main.FeelsLike,
		Description: first.Description,
		Icon:        first.Icon,
		Humidity:    conditions.Main.Humidity,
	}
}

func (h *Handler) recordOutcome(ctx context.Context, err error, start time.Time) {
	outcome := "success"
	if err != nil {
		if relayErr, ok := err.(*relayerrors.RelayError); ok {
			outcome = string(relayErr.Code)
		} else {
			outcome = string(relayerrors.ErrCodeTransportFailure)
		}
	}
	h.obs.RecordLookup(ctx, outcome)
	h.obs.RecordLookupDuration(ctx, time.Since(start), outcome)
}
