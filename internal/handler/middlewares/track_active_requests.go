package middlewares

import (
	"net/http"
	"sync"

	"go.uber.org/zap"
)

// TrackActiveRequests учитывает запросы в activeRequests, чтобы сервер дождался их при остановке.
// После закрытия shutdownChan новые запросы отклоняются с 503 и Retry-After.
func TrackActiveRequests(
	activeRequests *sync.WaitGroup,
	shutdownChan <-chan struct{},
	log *zap.Logger,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-shutdownChan:
				log.Warn("request rejected during shutdown",
					zap.String("method", r.Method),
					zap.String("uri", r.URL.Path),
				)
				w.Header().Set("Connection", "close")
				w.Header().Set("Retry-After", "5")
				http.Error(w, "Server is shutting down", http.StatusServiceUnavailable)
				return
			default:
			}

			activeRequests.Add(1)
			defer activeRequests.Done()

			next.ServeHTTP(w, r)
		})
	}
}
