// AngelaMos | 2026
// routes_test.go

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestMountAppliesAccessRequirements(t *testing.T) {
	calls := 0
	ok := func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}

	r := chi.NewRouter()
	Mount(r, Authenticator(newFakeVerifier()),
		Route{Method: http.MethodPost, Pattern: "/auth/login", Access: Public, Handler: ok},
		Route{Method: http.MethodGet, Pattern: "/chants", Access: Authenticated, Handler: ok},
		Route{Method: http.MethodGet, Pattern: "/admin/stats", Access: AdminOnly, Handler: ok},
	)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{"public without token", http.MethodPost, "/auth/login", "", http.StatusOK},
		{"user route without token", http.MethodGet, "/chants", "", http.StatusUnauthorized},
		{"user route with user token", http.MethodGet, "/chants", "user-token", http.StatusOK},
		{"admin route without token", http.MethodGet, "/admin/stats", "", http.StatusUnauthorized},
		{"admin route with user token", http.MethodGet, "/admin/stats", "user-token", http.StatusForbidden},
		{"admin route with admin token", http.MethodGet, "/admin/stats", "admin-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := calls
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, before+1, calls)
			} else {
				assert.Equal(t, before, calls, "guarded handler must not run")
			}
		})
	}
}

func TestAccessString(t *testing.T) {
	assert.Equal(t, "public", Public.String())
	assert.Equal(t, "user", Authenticated.String())
	assert.Equal(t, "admin", AdminOnly.String())
}
