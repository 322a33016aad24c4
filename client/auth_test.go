package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/billmate/billmate-go/models"
)

func TestSignIn_InvalidPayloadNeverHitsNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	adapter, _ := New(srv.URL)

	_, err := adapter.SignIn(context.Background(), models.SignInRequest{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if got := calls.Load(); got != 0 {
		t.Errorf("server calls = %d, want 0", got)
	}
}

func TestSignIn_SetsSessionCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth/signin" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req models.SignInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode sign-in body: %v", err)
		}
		http.SetCookie(w, &http.Cookie{Name: "billmate.session", Value: "tok-abc", Path: "/"})
		_ = json.NewEncoder(w).Encode(models.Identity{
			ID:    "u1",
			Email: req.Email,
			Accounts: []models.AccountMembership{
				{ID: "a1", Name: "Acme", IsActive: true},
			},
		})
	}))
	defer srv.Close()

	adapter, _ := New(srv.URL)

	identity, err := adapter.SignIn(context.Background(), models.SignInRequest{
		Email:    "user@example.com",
		Password: "Password123",
	})
	if err != nil {
		t.Fatalf("SignIn(): %v", err)
	}
	if identity.ID != "u1" {
		t.Errorf("identity id = %q, want u1", identity.ID)
	}
	if _, ok := identity.ActiveAccount(); !ok {
		t.Error("expected an active account membership")
	}
	if got := adapter.SessionToken(); got != "tok-abc" {
		t.Errorf("SessionToken() = %q, want tok-abc", got)
	}
}

func TestSessionToken_SeesBasePathScopedCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Servers commonly scope the session cookie to the API prefix
		// rather than the site root.
		http.SetCookie(w, &http.Cookie{Name: "billmate.session", Value: "tok-scoped", Path: "/api/v1"})
		_ = json.NewEncoder(w).Encode(models.Identity{ID: "u1"})
	}))
	defer srv.Close()

	adapter, _ := New(srv.URL)

	_, err := adapter.SignIn(context.Background(), models.SignInRequest{
		Email:    "user@example.com",
		Password: "Password123",
	})
	if err != nil {
		t.Fatalf("SignIn(): %v", err)
	}
	if got := adapter.SessionToken(); got != "tok-scoped" {
		t.Errorf("SessionToken() = %q, want tok-scoped", got)
	}
}

func TestSignIn_WrongCredentialsSurfaceUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"incorrect credentials"}`))
	}))
	defer srv.Close()

	adapter, _ := New(srv.URL)

	_, err := adapter.SignIn(context.Background(), models.SignInRequest{
		Email:    "user@example.com",
		Password: "Password123",
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "incorrect credentials" {
		t.Errorf("expected server message, got %v", err)
	}
}

func TestRequestPasswordReset_ValidatesEmail(t *testing.T) {
	adapter, _ := New("https://example.com")

	err := adapter.RequestPasswordReset(context.Background(), "not-an-email")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSignOut_RequiresUserID(t *testing.T) {
	adapter, _ := New("https://example.com")

	if err := adapter.SignOut(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
