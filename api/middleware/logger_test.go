package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mountspa_server/structs"

	"github.com/MonkyMars/gecho"
)

func TestSetupLoggerMiddleware_PassesAllTrafficThrough(t *testing.T) {
	mw := NewMiddleware(&structs.Config{}, gecho.NewDefaultLogger(), nil)

	var served []string
	handler := mw.SetupLoggerMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served = append(served, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	// Probe paths skip the logger but must still reach the handler
	for _, path := range []string{"/health/server", "/metrics", "/catalog"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s returned %d", path, rec.Code)
		}
	}
	if len(served) != 3 {
		t.Fatalf("handler reached %d times, want 3", len(served))
	}
}
