package httpapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "lbtui/internal/platform/errors"
	"lbtui/internal/platform/httpapi"
)

type fakeTokens struct {
	token  string
	clears int
}

func (f *fakeTokens) Token(context.Context) (string, error) { return f.token, nil }
func (f *fakeTokens) Clear(context.Context) error {
	f.clears++
	f.token = ""
	return nil
}

func TestDoAttachesBearerAndDecodesJSON(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("expected bearer header, got %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Errorf("expected a request id header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"xp": 120}`))
	}))
	defer server.Close()

	client := httpapi.New(server.URL, time.Second, &fakeTokens{token: "tok-1"}, nil)
	var out struct {
		XP int `json:"xp"`
	}
	if err := client.Do(context.Background(), http.MethodGet, "/users/me/stats", nil, &out); err != nil {
		t.Fatalf("do: %v", err)
	}
	if out.XP != 120 {
		t.Fatalf("expected xp 120, got %d", out.XP)
	}
}

func TestUnauthorizedClearsCredentialIdempotently(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	tokens := &fakeTokens{token: "stale"}
	client := httpapi.New(server.URL, time.Second, tokens, nil)

	for i := 0; i < 2; i++ {
		err := client.Do(context.Background(), http.MethodGet, "/users/me/stats", nil, nil)
		if !errors.Is(err, apperrors.ErrUnauthorized) {
			t.Fatalf("call %d: expected ErrUnauthorized, got %v", i, err)
		}
	}
	if tokens.clears != 2 {
		t.Fatalf("expected clear on every 401, got %d", tokens.clears)
	}
	if tokens.token != "" {
		t.Fatalf("credential must be dropped after 401")
	}
}

func TestNoContentIsSuccessWithAbsentPayload(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := httpapi.New(server.URL, time.Second, &fakeTokens{token: "tok"}, nil)
	out := map[string]any{"untouched": true}
	if err := client.Do(context.Background(), http.MethodDelete, "/admin/users/3", nil, &out); err != nil {
		t.Fatalf("expected 204 to succeed, got %v", err)
	}
	if !out["untouched"].(bool) {
		t.Fatalf("204 must leave out untouched")
	}
}

func TestErrorDetailSurfacedWithFallback(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/with-detail" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"detail": "Incorrect username or password."}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := httpapi.New(server.URL, time.Second, nil, nil)

	err := client.Do(context.Background(), http.MethodPost, "/with-detail", nil, nil)
	var apiErr *httpapi.APIError
	if !errors.As(err, &apiErr) || apiErr.Error() != "Incorrect username or password." {
		t.Fatalf("expected backend detail, got %v", err)
	}

	err = client.Do(context.Background(), http.MethodPost, "/without-detail", nil, nil)
	if !errors.As(err, &apiErr) || apiErr.Detail != "" {
		t.Fatalf("expected fallback error, got %v", err)
	}
	if apiErr.Error() == "" {
		t.Fatalf("fallback message must not be empty")
	}
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	t.Parallel()
	client := httpapi.New("http://127.0.0.1:1", time.Second, nil, nil)
	err := client.Do(context.Background(), http.MethodGet, "/quests/today", nil, nil)
	var netErr *httpapi.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}
