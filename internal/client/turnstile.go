package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Xalpha19/chaitravm/internal/core/domain"
)

const turnstileVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// TurnstileVerifier checks bot-check tokens against Cloudflare's siteverify
// endpoint. Tokens are single-use on the provider side; a replayed token
// fails verification on the second attempt.
type TurnstileVerifier struct {
	secret     string
	baseURL    string
	httpClient *http.Client
}

func NewTurnstileVerifier(secret string) *TurnstileVerifier {
	return &TurnstileVerifier{
		secret:  secret,
		baseURL: turnstileVerifyURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Verify posts the token and client IP to the provider and decodes its
// verdict. Transport and decode errors are returned to the caller, which
// treats them the same as a provider-reported failure.
func (v *TurnstileVerifier) Verify(ctx context.Context, token, remoteIP string) (*domain.VerificationResult, error) {
	form := url.Values{
		"secret":   {v.secret},
		"response": {token},
		"remoteip": {remoteIP},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("siteverify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("siteverify returned status %d", resp.StatusCode)
	}

	var result domain.VerificationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode siteverify response: %w", err)
	}

	log.WithFields(log.Fields{
		"success":    result.Success,
		"errorCodes": result.ErrorCodes,
	}).Debug("Turnstile verification completed")

	return &result, nil
}
