package domain

import (
	"time"

	"github.com/google/uuid"
)

var (
	RoutingKeySubmissionAccepted = "contact.submission.accepted"
	RoutingKeyEmailDegraded      = "contact.email.degraded"
)

const (
	ContactExchange        = "contact"
	ContactMonitoringQueue = "contact.monitoring"
)

// SubmissionAcceptedMessage announces a persisted submission to operational
// consumers. The message body never includes the submission text.
type SubmissionAcceptedMessage struct {
	SubmissionID uuid.UUID `json:"submission_id" validate:"required"`
	Email        string    `json:"email" validate:"required,email"`
	Subject      string    `json:"subject" validate:"required"`
	AcceptedAt   time.Time `json:"accepted_at" validate:"required"`
}

// EmailDegradedMessage reports a partial failure: the submission is durably
// recorded but one or both notification emails did not go out.
type EmailDegradedMessage struct {
	SubmissionID uuid.UUID `json:"submission_id" validate:"required"`
	OwnerError   string    `json:"owner_error,omitempty"`
	AckError     string    `json:"ack_error,omitempty"`
	OccurredAt   time.Time `json:"occurred_at" validate:"required"`
}
