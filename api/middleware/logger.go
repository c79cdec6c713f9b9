package middleware

import (
	"net/http"
	"strings"

	"github.com/MonkyMars/gecho"
)

// SetupLoggerMiddleware wraps gecho's request logger. Health probes and
// metrics scrapes arrive every few seconds and would drown out real traffic,
// so those paths bypass the logger.
func (mw *Middleware) SetupLoggerMiddleware() func(http.Handler) http.Handler {
	logged := gecho.Handlers.CreateLoggingMiddleware(mw.logger)

	return func(next http.Handler) http.Handler {
		loggedNext := logged(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/health") || r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}
			loggedNext.ServeHTTP(w, r)
		})
	}
}
