// AngelaMos | 2026
// handler_test.go

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/om-backend/internal/core"
	"github.com/carterperez-dev/om-backend/internal/middleware"
)

func post(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestHandlerSignupAndLogin(t *testing.T) {
	svc, users, _ := newTestService(t)
	h := NewHandler(svc)

	rec := post(h.Signup, `{"email":"a@om.test","password":"secret1","name":"A"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "a@om.test", resp.User.Email)
	assert.Equal(t, "user", resp.User.Role)

	rec = post(h.Signup, `{"email":"a@om.test","password":"secret1","name":"A"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = post(h.Login, `{"email":"a@om.test","password":"secret1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = post(h.Login, `{"email":"a@om.test","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	users.byEmail["a@om.test"].IsDisabled = true
	rec = post(h.Login, `{"email":"a@om.test","password":"secret1"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	var body core.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ACCOUNT_DISABLED", body.Error.Code)
}

func TestHandlerSignupValidation(t *testing.T) {
	svc, users, _ := newTestService(t)
	h := NewHandler(svc)

	for _, body := range []string{
		`{`,
		`{"email":"not-an-email","password":"secret1","name":"A"}`,
		`{"email":"a@om.test","password":"12345","name":"A"}`,
		`{"email":"a@om.test","password":"secret1","name":""}`,
	} {
		rec := post(h.Signup, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	assert.Empty(t, users.byEmail)
}

func TestHandlerSignupPasswordByteLimit(t *testing.T) {
	svc, users, _ := newTestService(t)
	h := NewHandler(svc)

	atLimit := strings.Repeat("p", 72)
	rec := post(h.Signup, `{"email":"a@om.test","password":"`+atLimit+`","name":"A"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = post(h.Login, `{"email":"a@om.test","password":"`+atLimit+`"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = post(h.Signup, `{"email":"b@om.test","password":"`+strings.Repeat("p", 73)+`","name":"B"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// 25 runes pass the length tag but encode to 75 bytes.
	rec = post(h.Signup, `{"email":"c@om.test","password":"`+strings.Repeat("ॐ", 25)+`","name":"C"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "BAD_REQUEST")

	assert.Len(t, users.byEmail, 1)
}

func TestHandlerGetMe(t *testing.T) {
	svc, _, _ := newTestService(t)
	h := NewHandler(svc)

	signup := post(h.Signup, `{"email":"a@om.test","password":"secret1","name":"A"}`)
	var resp AuthResponse
	require.NoError(t, json.NewDecoder(signup.Body).Decode(&resp))

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req = req.WithContext(middleware.WithClaims(req.Context(), &middleware.AccessTokenClaims{
		UserID: resp.User.ID,
		Role:   "user",
	}))
	rec := httptest.NewRecorder()
	h.GetMe(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"plan_type":"FREE"`)
}
