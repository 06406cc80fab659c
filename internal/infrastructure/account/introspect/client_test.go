package introspect

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	jsoniter "github.com/json-iterator/go"

	"github.com/ptcgpocket/companion/internal/platform/logging"
	"github.com/ptcgpocket/companion/internal/platform/resilience"
	"github.com/ptcgpocket/companion/internal/usecase"
)

func TestClientVerifyAccessToken_ParsesClaims(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/v1/tokeninfo" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}

		var req map[string]string
		if err := jsoniter.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if req["token"] != "token-abc" {
			t.Fatalf("unexpected token value: %s", req["token"])
		}

		w.Header().Set("Content-Type", "application/json")
		_ = jsoniter.NewEncoder(w).Encode(map[string]any{
			"active":  true,
			"sub":     "google-oauth2|red",
			"email":   "red@pallet.town",
			"name":    "Red",
			"picture": "https://example.test/red.png",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "/v1/tokeninfo",
		resilience.CircuitBreakerConfig{Enabled: false}, logging.NewNop())

	identity, err := client.VerifyAccessToken(context.Background(), "token-abc")
	if err != nil {
		t.Fatalf("verify token failed: %v", err)
	}
	if identity.Subject != "google-oauth2|red" || identity.Email != "red@pallet.town" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	if identity.FullName != "Red" || identity.Picture == "" {
		t.Fatalf("unexpected profile claims: %+v", identity)
	}
}

func TestClientVerifyAccessToken_InactiveToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = jsoniter.NewEncoder(w).Encode(map[string]any{"active": false})
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "/v1/tokeninfo",
		resilience.CircuitBreakerConfig{Enabled: false}, logging.NewNop())

	_, err := client.VerifyAccessToken(context.Background(), "invalid-token")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClientVerifyAccessToken_EmptyToken(t *testing.T) {
	t.Parallel()

	client := NewClient(nil, "http://localhost:0", "/v1/tokeninfo",
		resilience.CircuitBreakerConfig{Enabled: false}, logging.NewNop())

	_, err := client.VerifyAccessToken(context.Background(), "   ")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClientVerifyAccessToken_CircuitOpensAfterFailures(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "/v1/tokeninfo",
		resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, HalfOpenMaxReq: 1}, logging.NewNop())

	for i := 0; i < 2; i++ {
		if _, err := client.VerifyAccessToken(context.Background(), "token-abc"); !errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("expected ErrDependencyUnavailable on attempt %d, got %v", i, err)
		}
	}

	before := hits.Load()
	_, err := client.VerifyAccessToken(context.Background(), "token-abc")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable while open, got %v", err)
	}
	if hits.Load() != before {
		t.Fatal("expected open circuit to short-circuit the provider call")
	}
}

func TestBuildURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base string
		path string
		want string
	}{
		{"https://auth.example.test/", "/v1/tokeninfo", "https://auth.example.test/v1/tokeninfo"},
		{"https://auth.example.test", "v1/tokeninfo", "https://auth.example.test/v1/tokeninfo"},
		{"https://auth.example.test", "", "https://auth.example.test"},
		{"https://auth.example.test", "https://other.test/introspect", "https://other.test/introspect"},
	}
	for _, tt := range tests {
		if got := buildURL(tt.base, tt.path); got != tt.want {
			t.Fatalf("buildURL(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
		}
	}
}
