package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Xalpha19/chaitravm/internal/core/domain"
)

// IntakeClient submits a contact payload to the intake endpoint over HTTP.
// It is the network half of the form package's Submitter contract.
type IntakeClient struct {
	endpoint   string
	httpClient *http.Client
}

func NewIntakeClient(endpoint string) *IntakeClient {
	return &IntakeClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type intakeResponse struct {
	Success      bool      `json:"success"`
	Message      string    `json:"message"`
	SubmissionID uuid.UUID `json:"submissionId"`
	Error        string    `json:"error"`
}

// Submit posts the payload and maps the HTTP response onto an IntakeResult.
func (c *IntakeClient) Submit(ctx context.Context, payload domain.SubmissionPayload) (domain.IntakeResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.IntakeResult{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.IntakeResult{}, fmt.Errorf("failed to build intake request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.IntakeResult{}, fmt.Errorf("intake request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded intakeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.IntakeResult{}, fmt.Errorf("failed to decode intake response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK && decoded.Success:
		return domain.IntakeResult{
			Status:       domain.IntakeAccepted,
			SubmissionID: decoded.SubmissionID,
			Message:      decoded.Message,
		}, nil
	case resp.StatusCode == http.StatusBadRequest:
		return domain.IntakeResult{Status: domain.IntakeRejected, Message: decoded.Error}, nil
	default:
		return domain.IntakeResult{Status: domain.IntakeServerError, Message: decoded.Error}, nil
	}
}
