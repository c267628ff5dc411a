package middleware

import (
	"net/http"

	"github.com/heartmarshall/fieldforms-backend/internal/attachment"
	"github.com/heartmarshall/fieldforms-backend/pkg/ctxutil"
)

// Device returns middleware that classifies the client from its User-Agent
// and stores the device class in the request context.
func Device() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			device := attachment.DetectDevice(r.UserAgent())
			next.ServeHTTP(w, r.WithContext(ctxutil.WithDevice(r.Context(), device.String())))
		})
	}
}
