package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnstileVerifier_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "secret-key", r.PostForm.Get("secret"))
		assert.Equal(t, "tok123", r.PostForm.Get("response"))
		assert.Equal(t, "203.0.113.7", r.PostForm.Get("remoteip"))

		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "hostname": "example.com"})
	}))
	defer srv.Close()

	verifier := NewTurnstileVerifier("secret-key")
	verifier.baseURL = srv.URL

	result, err := verifier.Verify(context.Background(), "tok123", "203.0.113.7")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "example.com", result.Hostname)
}

func TestTurnstileVerifier_ProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":     false,
			"error-codes": []string{"timeout-or-duplicate"},
		})
	}))
	defer srv.Close()

	verifier := NewTurnstileVerifier("secret-key")
	verifier.baseURL = srv.URL

	result, err := verifier.Verify(context.Background(), "replayed", "203.0.113.7")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, []string{"timeout-or-duplicate"}, result.ErrorCodes)
}

func TestTurnstileVerifier_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	verifier := NewTurnstileVerifier("secret-key")
	verifier.baseURL = srv.URL

	_, err := verifier.Verify(context.Background(), "tok123", "203.0.113.7")

	assert.Error(t, err)
}
