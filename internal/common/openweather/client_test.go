// internal/common/openweather/client_test.go
package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	relayerrors "weather-relay/internal/common/errors"
	"weather-relay/internal/common/logger"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	return NewClient("test-api-key", baseURL, "metric", 2*time.Second, logger.NewTestLogger(t))
}

const validBody = `{
	"name": "Lisbon",
	"sys": {"country": "PT"},
	"main": {"temp": 24.3, "feels_like": 24.9, "humidity": 61},
	"weather": [{"description": "few clouds", "icon": "02d", "main": "Clouds"}]
}`

func TestClient_CurrentByCity_Success(t *testing.T) {
	var gotQuery map[string]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"q":     r.URL.Query().Get("q"),
			"appid": r.URL.Query().Get("appid"),
			"units": r.URL.Query().Get("units"),
		}
		assert.Equal(t, "/weather", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(validBody))
	}))
	defer upstream.Close()

	client := newTestClient(t, upstream.URL)

	conditions, err := client.CurrentByCity(context.Background(), "Lisbon")
	require.NoError(t, err)

	assert.Equal(t, "Lisbon", gotQuery["q"])
	assert.Equal(t, "test-api-key", gotQuery["appid"])
	assert.Equal(t, "metric", gotQuery["units"])

	assert.Equal(t, "Lisbon", conditions.Name)
	assert.Equal(t, "PT", conditions.Sys.Country)
	assert.Equal(t, 24.3, conditions.Main.Temp)
	assert.Equal(t, 24.9, conditions.Main.FeelsLike)
	assert.Equal(t, float64(61), conditions.Main.Humidity)
	require.Len(t, conditions.Weather, 1)
	assert.Equal(t, "few clouds", conditions.Weather[0].Description)
	assert.Equal(t, "02d", conditions.Weather[0].Icon)
}

func TestClient_CurrentByCity_UpstreamErrorWithMessage(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
	}))
	defer upstream.Close()

	client := newTestClient(t, upstream.URL)

	_, err := client.CurrentByCity(context.Background(), "Atlantis")
	require.Error(t, err)

	relayErr, ok := err.(*relayerrors.RelayError)
	require.True(t, ok)
	assert.Equal(t, relayerrors.ErrCodeUpstreamError, relayErr.Code)
	assert.Equal(t, http.StatusNotFound, relayErr.HTTPStatus())
	assert.Equal(t, "city not found", relayErr.Message)
}

func TestClient_CurrentByCity_UpstreamErrorWithoutMessage(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer upstream.Close()

	client := newTestClient(t, upstream.URL)

	_, err := client.CurrentByCity(context.Background(), "Lisbon")
	require.Error(t, err)

	relayErr, ok := err.(*relayerrors.RelayError)
	require.True(t, ok)
	assert.Equal(t, relayerrors.ErrCodeUpstreamError, relayErr.Code)
	assert.Equal(t, http.StatusBadGateway, relayErr.HTTPStatus())
	assert.Equal(t, relayerrors.MsgUpstreamFallback, relayErr.Message)
}

func TestClient_CurrentByCity_TransportFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // refuse connections

	client := newTestClient(t, upstream.URL)

	_, err := client.CurrentByCity(context.Background(), "Lisbon")
	require.Error(t, err)

	relayErr, ok := err.(*relayerrors.RelayError)
	require.True(t, ok)
	assert.Equal(t, relayerrors.ErrCodeTransportFailure, relayErr.Code)
	assert.Equal(t, relayerrors.MsgTransportFailure, relayErr.Message)
	assert.NotEmpty(t, relayErr.Details)
}

func TestClient_CurrentByCity_MalformedBody(t *testing.T) {
	cases := map[string]string{
		"empty condition list": `{"name": "Lisbon", "sys": {"country": "PT"}, "main": {"temp": 1, "feels_like": 1, "humidity": 1}, "weather": []}`,
		"missing main block":   `{"name": "Lisbon", "sys": {"country": "PT"}, "weather": [{"description": "x", "icon": "y"}]}`,
		"not json":             `not json at all`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer upstream.Close()

			client := newTestClient(t, upstream.URL)

			_, err := client.CurrentByCity(context.Background(), "Lisbon")
			require.Error(t, err)

			relayErr, ok := err.(*relayerrors.RelayError)
			require.True(t, ok)
			assert.Equal(t, relayerrors.ErrCodeMalformedUpstream, relayErr.Code)
			assert.Equal(t, relayerrors.MsgTransportFailure, relayErr.Message)
		})
	}
}

func TestClient_CurrentByCity_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer upstream.Close()

	client := newTestClient(t, upstream.URL)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.CurrentByCity(ctx, "Lisbon")
	require.Error(t, err)
	assert.True(t, relayerrors.IsCode(err, relayerrors.ErrCodeTransportFailure))
}
