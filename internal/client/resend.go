package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Xalpha19/chaitravm/internal/core/domain"
)

const resendBaseURL = "https://api.resend.com"

// ResendMailer delivers notification emails through the Resend REST API.
type ResendMailer struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{
		apiKey:  apiKey,
		baseURL: resendBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Send dispatches a single email. The provider does not retry; neither do we.
func (m *ResendMailer) Send(ctx context.Context, msg domain.EmailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.WithFields(log.Fields{
			"status": resp.StatusCode,
			"detail": string(detail),
		}).Error("Email provider rejected send")
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}

	log.WithField("subject", msg.Subject).Debug("Email dispatched")
	return nil
}
