package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meguri-app/meguri/internal/config"
	"github.com/meguri-app/meguri/internal/utils"
	"github.com/meguri-app/meguri/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHTTPServerAdapter(config.ClientAdapter{
		BaseURL:        srv.URL,
		RequestTimeout: 2 * time.Second,
	})
}

func TestHTTPServerAdapter_List(t *testing.T) {
	visited := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/visits", r.URL.Path)
		require.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode([]models.VisitRecord{
			{ShrineID: 101, VisitedAt: visited},
			{ShrineID: 7, VisitedAt: visited},
		})
	}))
	a.SetToken("token-123")

	records, err := a.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.EqualValues(t, 101, records[0].ShrineID)
	assert.True(t, visited.Equal(records[0].VisitedAt))
}

func TestHTTPServerAdapter_List_Unauthorized(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))

	_, err := a.List(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPServerAdapter_List_ServerError(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := a.List(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPServerAdapter_Upsert(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/visits/42", r.URL.Path)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.VisitRecord{ShrineID: 42, VisitedAt: time.Now().UTC()})
	}))
	a.SetToken("t")

	record, err := a.Upsert(context.Background(), 42)
	require.NoError(t, err)
	assert.EqualValues(t, 42, record.ShrineID)
}

func TestHTTPServerAdapter_Delete_NotFoundIsSuccess(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		http.Error(w, "no such record", http.StatusNotFound)
	}))
	a.SetToken("t")

	assert.NoError(t, a.Delete(context.Background(), 9000))
}

func TestHTTPServerAdapter_Delete_Unauthorized(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "expired", http.StatusUnauthorized)
	}))

	assert.ErrorIs(t, a.Delete(context.Background(), 1), ErrUnauthorized)
}

func TestHTTPServerAdapter_Login_CachesToken(t *testing.T) {
	issued, err := utils.GenerateJWTToken("meguri-test", 77, time.Hour, "sign-key")
	require.NoError(t, err)

	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		require.Equal(t, "mika", user.Login)

		w.Header().Set("Authorization", "Bearer "+issued.SignedString)
		w.WriteHeader(http.StatusOK)
	}))

	token, err := a.Login(context.Background(), models.User{Login: "mika", Password: "pw"})
	require.NoError(t, err)
	assert.EqualValues(t, 77, token.UserID)
	assert.Equal(t, issued.SignedString, a.Token())
}

func TestHTTPServerAdapter_Unreachable(t *testing.T) {
	a := NewHTTPServerAdapter(config.ClientAdapter{
		BaseURL:        "http://127.0.0.1:1", // nothing listens here
		RequestTimeout: 200 * time.Millisecond,
	})

	_, err := a.List(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.ErrorIs(t, a.Ping(context.Background()), ErrUnavailable)
}
