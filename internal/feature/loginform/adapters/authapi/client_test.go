package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loginform/internal/feature/loginform/domain/entity"
)

var testCreds = entity.Credentials{Email: "user@example.com", Password: "longenough1"}

func TestNewClient(t *testing.T) {
	t.Parallel()

	cfg := Config{LoginURL: "http://auth.test/login", Timeout: time.Second}
	client := NewClient(cfg, &http.Client{})

	require.NotNil(t, client)
	assert.Equal(t, cfg, client.cfg)
}

func TestClient_Login_Request(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		// Body must contain exactly email and password.
		var body map[string]any
		assert.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, map[string]any{"email": "user@example.com", "password": "longenough1"}, body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"abc"}`))
	}))
	defer server.Close()

	client := NewClient(Config{LoginURL: server.URL + "/login"}, server.Client())

	body, err := client.Login(context.Background(), testCreds)
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"abc"}`, string(body))
}

func TestClient_Login_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"bad request", http.StatusBadRequest},
		{"unauthorized", http.StatusUnauthorized},
		{"forbidden", http.StatusForbidden},
		{"not found", http.StatusNotFound},
		{"internal server error", http.StatusInternalServerError},
		{"service unavailable", http.StatusServiceUnavailable},
		{"redirect not followed", http.StatusNotModified},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(`{"error":"Invalid credentials"}`))
			}))
			defer server.Close()

			client := NewClient(Config{LoginURL: server.URL}, server.Client())

			body, err := client.Login(context.Background(), testCreds)
			assert.Nil(t, body)
			assert.ErrorIs(t, err, ErrLoginFailed)
			assert.Equal(t, "Login failed. Please check your credentials.", err.Error())
		})
	}
}

func TestClient_Login_SuccessStatuses(t *testing.T) {
	t.Parallel()

	for _, code := range []int{http.StatusOK, http.StatusCreated, http.StatusAccepted} {
		code := code
		t.Run(http.StatusText(code), func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(code)
				_, _ = w.Write([]byte(`["any","json"]`))
			}))
			defer server.Close()

			client := NewClient(Config{LoginURL: server.URL}, server.Client())

			body, err := client.Login(context.Background(), testCreds)
			require.NoError(t, err)
			assert.JSONEq(t, `["any","json"]`, string(body))
		})
	}
}

func TestClient_Login_InvalidJSONBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"plain text", "welcome"},
		{"truncated json", `{"token":`},
		{"trailing garbage", `{"token":"abc"} garbage`},
		{"two json values", `{"a":1}{"b":2}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(Config{LoginURL: server.URL}, server.Client())

			body, err := client.Login(context.Background(), testCreds)
			assert.Nil(t, body)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "decode login response")
			assert.ErrorIs(t, err, ErrInvalidJSON)
			assert.False(t, errors.Is(err, ErrLoginFailed))
		})
	}
}

// slog.SetDefaultを差し替えるため並列実行しない
func TestClient_Login_DoesNotLogResponseBody(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"Login successful","access_token":"secret-token-value"}`))
	}))
	defer server.Close()

	client := NewClient(Config{LoginURL: server.URL}, server.Client())

	body, err := client.Login(context.Background(), testCreds)
	require.NoError(t, err)
	assert.Contains(t, string(body), "secret-token-value")

	assert.Contains(t, logs.String(), "login endpoint accepted request")
	assert.NotContains(t, logs.String(), "secret-token-value")
	assert.NotContains(t, logs.String(), "access_token")
}

func TestClient_Login_ConnectionError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(Config{LoginURL: url}, &http.Client{Timeout: time.Second})

	body, err := client.Login(context.Background(), testCreds)
	assert.Nil(t, body)
	require.Error(t, err)
	assert.NotEmpty(t, err.Error())
	assert.False(t, errors.Is(err, ErrLoginFailed))
}

func TestClient_Login_ContextCanceled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(Config{LoginURL: server.URL}, server.Client())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Login(ctx, testCreds)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("AUTH_LOGIN_URL", "")
		t.Setenv("LOGIN_TIMEOUT", "")

		cfg := LoadConfig()
		assert.Equal(t, DefaultLoginURL, cfg.LoginURL)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("AUTH_LOGIN_URL", "https://auth.example.com/login")
		t.Setenv("LOGIN_TIMEOUT", "2s")

		cfg := LoadConfig()
		assert.Equal(t, "https://auth.example.com/login", cfg.LoginURL)
		assert.Equal(t, 2*time.Second, cfg.Timeout)
	})
}
