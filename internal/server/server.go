// internal/server/server.go
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"weather-relay/internal/common/config"
	"weather-relay/internal/common/logger"
	"weather-relay/internal/handlers/health"
	weatherlookup "weather-relay/internal/handlers/weather-lookup"
)

// Server wires the HTTP surface: the lookup route, the health responder and
// the Prometheus endpoint, wrapped in the boundary middleware.
type Server struct {
	mux    *http.ServeMux
	cfg    config.ServerConfig
	logger logger.Logger
}

func New(cfg config.ServerConfig, lookup *weatherlookup.Handler, log logger.Logger) *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		cfg:    cfg,
		logger: log,
	}
	s.routes(lookup)
	return s
}

func (s *Server) routes(lookup *weatherlookup.Handler) {
	s.mux.Handle("GET "+weatherlookup.Route, s.instrument(weatherlookup.Route, lookup))
	s.mux.Handle("GET "+health.Route, s.instrument(health.Route, health.Handler()))
	s.mux.Handle("GET /metrics", promhttp.Handler())
}

// Router returns the mux wrapped in the boundary middleware chain:
// request ID, access logging, CORS.
func (s *Server) Router() http.Handler {
	var handler http.Handler = s.mux
	handler = corsMiddleware(s.cfg.CORSAllowedOrigins, handler)
	handler = accessLogMiddleware(s.logger, handler)
	handler = requestIDMiddleware(handler)
	return handler
}
