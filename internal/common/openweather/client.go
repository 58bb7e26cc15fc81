// internal/common/openweather/client.go
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"time"

	relayerrors "weather-relay/internal/common/errors"
	commonhttp "weather-relay/internal/common/http"
	"weather-relay/internal/common/logger"
	"weather-relay/internal/common/metrics"
	"weather-relay/internal/common/validation"
)

// Client calls the weather provider's current-conditions endpoint. One HTTP
// request per call; no retry, no backoff.
type Client struct {
	apiKey     string
	baseURL    string
	units      string
	httpClient *commonhttp.Client
	logger     logger.Logger
}

func NewClient(apiKey, baseURL, units string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		units:      units,
		httpClient: commonhttp.NewClient(timeout),
		logger: log.With(map[string]interface{}{
			"component": "openweather",
		}),
	}
}

// CurrentByCity fetches current conditions for a city. Failures come back as
// RelayError values: provider non-2xx keeps its status code, transport and
// decode problems map to a transport failure, and a 2xx body that fails
// shape validation maps to a malformed-upstream error.
func (c *Client) CurrentByCity(ctx context.Context, city string) (*CurrentConditions, error) {
	requestURL := c.buildURL(city)

	c.logger.Info("outbound call initiated", map[string]interface{}{
		"city": city,
	})

	start := time.Now()
	resp, err := c.httpClient.Get(ctx, requestURL)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("transport_failure").Inc()
		return nil, relayerrors.NewTransportFailureError(err)
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestDuration.Observe(time.Since(start).Seconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("transport_failure").Inc()
		return nil, relayerrors.NewTransportFailureError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody apiError
		_ = json.Unmarshal(body, &errBody)

		c.logger.Warn("provider returned error status", map[string]interface{}{
			"status":  resp.StatusCode,
			"message": errBody.Message,
		})
		metrics.UpstreamRequestsTotal.WithLabelValues("upstream_error").Inc()
		return nil, relayerrors.NewUpstreamError(resp.StatusCode, errBody.Message)
	}

	if err := validation.ValidateCurrentWeather(body); err != nil {
		c.logger.Error("provider response failed shape validation", map[string]interface{}{
			"error": err.Error(),
		})
		metrics.UpstreamRequestsTotal.WithLabelValues("malformed_response").Inc()
		return nil, relayerrors.NewMalformedUpstreamError(err.Error())
	}

	var conditions CurrentConditions
	if err := json.Unmarshal(body, &conditions); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("transport_failure").Inc()
		return nil, relayerrors.NewTransportFailureError(err)
	}

	c.logger.Info("outbound call completed", map[string]interface{}{
		"city":   conditions.Name,
		"status": resp.StatusCode,
	})
	metrics.UpstreamRequestsTotal.WithLabelValues("success").Inc()

	return &conditions, nil
}

func (c *Client) buildURL(city string) string {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", c.units)
	return fmt.Sprintf("%s/weather?%s", c.baseURL, params.Encode())
}
