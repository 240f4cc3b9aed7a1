package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xalpha19/chaitravm/internal/core/domain"
)

func TestResendMailer_Send(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))

		var msg domain.EmailMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		assert.Equal(t, []string{"owner@example.com"}, msg.To)
		assert.Equal(t, "New Contact Form Submission: Security Review", msg.Subject)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "email-id"})
	}))
	defer srv.Close()

	mailer := NewResendMailer("re_test_key")
	mailer.baseURL = srv.URL

	err := mailer.Send(context.Background(), domain.EmailMessage{
		From:    "Contact Form <noreply@example.com>",
		To:      []string{"owner@example.com"},
		Subject: "New Contact Form Submission: Security Review",
		HTML:    "<p>body</p>",
	})

	assert.NoError(t, err)
}

func TestResendMailer_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid from address"})
	}))
	defer srv.Close()

	mailer := NewResendMailer("re_test_key")
	mailer.baseURL = srv.URL

	err := mailer.Send(context.Background(), domain.EmailMessage{To: []string{"x@example.com"}})

	assert.ErrorContains(t, err, "status 422")
}
