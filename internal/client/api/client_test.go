package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/michaelwitz/smart-fit/internal/client/config"
	"github.com/michaelwitz/smart-fit/internal/client/session"
	"github.com/michaelwitz/smart-fit/internal/common"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIBaseURL = srv.URL + "/api"

	store := session.NewStore(session.NewMemoryStorage(), nil)
	return New(cfg, store, nil), store
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestDo_AttachesBearerWhenCredentialPresent(t *testing.T) {
	var gotAuth, gotRequestID, gotContentType string

	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get(common.RequestIDHeaderName)
		gotContentType = r.Header.Get("Content-Type")
		writeJSON(t, w, http.StatusOK, Profile{ID: 1, Email: "jane@example.com"})
	}))

	ctx := context.Background()
	require.NoError(t, store.SetCredential(ctx, "raw-token"))

	_, err := client.GetProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, "Bearer raw-token", gotAuth)
	require.NotEmpty(t, gotRequestID)
	require.Equal(t, "application/json", gotContentType)
}

func TestDo_SendsUnauthenticatedWhenNoCredential(t *testing.T) {
	var gotAuth string

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(t, w, http.StatusOK, Acknowledgment{Message: "ok"})
	}))

	_, err := client.RequestPasswordReset(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.Empty(t, gotAuth)
}

func TestDo_UnauthorizedClearsCredentialAndNotifies(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	ctx := context.Background()
	require.NoError(t, store.SetCredential(ctx, "stale-token"))

	notified := false
	client.OnUnauthorized(func() { notified = true })

	_, err := client.GetProfile(ctx)
	require.ErrorIs(t, err, common.ErrUnauthorized)
	require.True(t, notified)

	tok, err := store.Credential(ctx)
	require.NoError(t, err)
	require.Empty(t, tok)
}

func TestDo_UnauthorizedFromAnyOperation(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	ctx := context.Background()

	calls := []func() error{
		func() error { _, err := client.RefreshToken(ctx); return err },
		func() error { _, err := client.VerifyEmail(ctx, "tok"); return err },
		func() error { _, err := client.ResetPassword(ctx, "tok", "pw"); return err },
	}

	for _, call := range calls {
		require.NoError(t, store.SetCredential(ctx, "stale-token"))
		require.ErrorIs(t, call(), common.ErrUnauthorized)

		tok, err := store.Credential(ctx)
		require.NoError(t, err)
		require.Empty(t, tok)
	}
}

func TestDo_ServerMessageExtraction(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "json message field", status: http.StatusBadRequest, body: `{"message":"Email is required"}`, wantMsg: "Email is required"},
		{name: "json error field", status: http.StatusConflict, body: `{"error":"email already registered"}`, wantMsg: "email already registered"},
		{name: "plain text body", status: http.StatusBadRequest, body: "Invalid JSON payload\n", wantMsg: "Invalid JSON payload"},
		{name: "empty body falls back", status: http.StatusInternalServerError, body: "", wantMsg: "Could not load your profile."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))

			_, err := client.GetProfile(context.Background())
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tc.status, apiErr.StatusCode)
			require.Equal(t, tc.wantMsg, apiErr.Message)
		})
	}
}

func TestDo_NetworkFailure_MapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIBaseURL = srv.URL + "/api"

	store := session.NewStore(session.NewMemoryStorage(), nil)
	client := New(cfg, store, nil)

	_, err := client.GetProfile(context.Background())
	require.ErrorIs(t, err, common.ErrUnavailable)
	require.Contains(t, err.Error(), "Could not load your profile.")
}

func TestDo_NoRetries(t *testing.T) {
	attempts := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.GetProfile(context.Background())
	require.Error(t, err)
	require.Equal(t, 1, attempts)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
}
