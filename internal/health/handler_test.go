// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

var (
	healthy   = pingFunc(func(context.Context) error { return nil })
	unhealthy = pingFunc(func(context.Context) error { return errors.New("connection refused") })
)

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestLiveness(t *testing.T) {
	h := NewHandler("1.0.0", Dependency{Name: "database", Checker: unhealthy})

	for _, path := range []string{"/healthz", "/livez"} {
		rec := serve(h, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
	}

	h.SetShutdown(true)
	assert.Equal(t, http.StatusServiceUnavailable, serve(h, "/livez").Code)
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name   string
		deps   []Dependency
		status int
		body   string
	}{
		{
			name:   "all healthy",
			deps:   []Dependency{{Name: "database", Checker: healthy}, {Name: "redis", Checker: healthy}},
			status: http.StatusOK,
			body:   "ok",
		},
		{
			name:   "redis down",
			deps:   []Dependency{{Name: "database", Checker: healthy}, {Name: "redis", Checker: unhealthy}},
			status: http.StatusServiceUnavailable,
			body:   "degraded",
		},
		{
			name:   "checker missing",
			deps:   []Dependency{{Name: "database"}},
			status: http.StatusServiceUnavailable,
			body:   "degraded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler("1.0.0", tt.deps...), "/readyz")
			require.Equal(t, tt.status, rec.Code)

			var body ReadinessResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.body, body.Status)
			require.Len(t, body.Checks, len(tt.deps))
			for i, dep := range tt.deps {
				assert.Equal(t, dep.Name, body.Checks[i].Name)
			}
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestReadinessLifecycle(t *testing.T) {
	h := NewHandler("1.0.0", Dependency{Name: "database", Checker: healthy})

	h.SetReady(false)
	assert.Equal(t, http.StatusServiceUnavailable, serve(h, "/readyz").Code)

	h.SetReady(true)
	assert.Equal(t, http.StatusOK, serve(h, "/readyz").Code)

	h.SetShutdown(true)
	assert.Equal(t, http.StatusServiceUnavailable, serve(h, "/readyz").Code)
}
