package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/obinnaeze/emart-backend/pkg/logger"
)

const (
	// requestIDHeader is the service's own correlation header, echoed on
	// every response.
	requestIDHeader = "X-Emart-Request-Id"
	// proxyRequestIDHeader is honored when a proxy in front of the
	// storefront already assigned an id.
	proxyRequestIDHeader = "X-Request-Id"
)

func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = r.Header.Get(proxyRequestIDHeader)
			}
			if reqID == "" {
				reqID = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
