package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/hartvaneindhoven/HVE-BookingService/pkg/metrics"
)

// statusRecorder запоминает код ответа
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware собирает метрики HTTP запросов. Лейбл route — шаблон
// маршрута mux ("/api/v1/bookings/{reference}"), а не сырой путь: иначе
// кардинальность растёт с каждым новым reference.
func MetricsMiddleware(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}

			m.ObserveHTTPRequest(r.Method, route, recorder.status, time.Since(start))
		})
	}
}
