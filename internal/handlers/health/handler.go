// internal/handlers/health/handler.go
package health

import "net/http"

const Route = "/health"

// Body is fixed: the responder depends on nothing, not even configuration.
const Body = "Backend is healthy!"

func Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(Body))
	}
}
