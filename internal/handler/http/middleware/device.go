package middleware

import (
	"net/http"

	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
	"golang.org/x/crypto/bcrypt"
)

// DeviceKey authenticates punch devices by API key. The key travels in
// the X-Api-Key header and only its bcrypt hash is configured.
func DeviceKey(apiKeyHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-Api-Key")
			if key == "" {
				response.Unauthorized(w, "Missing API key")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(apiKeyHash), []byte(key)); err != nil {
				response.Unauthorized(w, "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
