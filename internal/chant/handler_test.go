// AngelaMos | 2026
// handler_test.go

package chant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	chants []Chant
}

func (m *memoryRepo) List(context.Context) ([]Chant, error) {
	return append([]Chant{}, m.chants...), nil
}

func (m *memoryRepo) Create(_ context.Context, c *Chant) error {
	c.Seq = int64(len(m.chants) + 1)
	c.CreatedAt = time.Now()
	m.chants = append(m.chants, *c)
	return nil
}

func (m *memoryRepo) Count(context.Context) (int, error) {
	return len(m.chants), nil
}

func TestCreateDefaultsPremiumToFalse(t *testing.T) {
	repo := &memoryRepo{}
	h := NewHandler(NewService(repo))

	req := httptest.NewRequest(http.MethodPost, "/admin/chants",
		strings.NewReader(`{"title":"Evening OM","frequency":"432Hz"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	require.Len(t, repo.chants, 1)
	assert.False(t, repo.chants[0].IsPremium)
	assert.Equal(t, DefaultCategory, repo.chants[0].Category)
}

func TestCreatePremiumChant(t *testing.T) {
	repo := &memoryRepo{}
	h := NewHandler(NewService(repo))

	req := httptest.NewRequest(http.MethodPost, "/admin/chants",
		strings.NewReader(`{"title":"Crown","category":"Spiritual","is_premium":true}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, repo.chants[0].IsPremium)
	assert.Equal(t, "Spiritual", repo.chants[0].Category)
}

func TestCreateRequiresTitle(t *testing.T) {
	repo := &memoryRepo{}
	h := NewHandler(NewService(repo))

	for _, body := range []string{`{}`, `{"title":""}`, `not json`, `{"title":"x","audio_url":"not a url"}`} {
		rec := httptest.NewRecorder()
		h.Create(rec, httptest.NewRequest(http.MethodPost, "/admin/chants", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	assert.Empty(t, repo.chants)
}

func TestListReturnsEveryTier(t *testing.T) {
	repo := &memoryRepo{chants: []Chant{
		{ID: "1", Title: "Morning OM"},
		{ID: "2", Title: "Third Eye Opening", IsPremium: true},
	}}
	h := NewHandler(NewService(repo))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/chants", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []ChantResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, "Morning OM", got[0].Title)
	assert.True(t, got[1].IsPremium)
}
