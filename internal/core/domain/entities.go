package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionPayload is the contact form body as received from the client,
// including the bot-check token obtained from the verification widget.
type SubmissionPayload struct {
	FirstName         string `json:"firstName" validate:"required"`
	LastName          string `json:"lastName" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	Company           string `json:"company,omitempty"`
	Subject           string `json:"subject" validate:"required"`
	Message           string `json:"message" validate:"required"`
	VerificationToken string `json:"verificationToken" validate:"required"`
}

// RequestMeta carries ambient request metadata recorded for audit.
type RequestMeta struct {
	SourceIP  string
	UserAgent string
}

// ContactSubmission is the persisted record of one accepted submission.
// Immutable once created; retention is an external concern.
type ContactSubmission struct {
	ID                uuid.UUID
	FirstName         string
	LastName          string
	Email             string
	Company           string
	Subject           string
	Message           string
	VerificationToken string
	SourceIP          string
	UserAgent         string
	CreatedAt         time.Time
}

// Submission builds the record to persist from a payload and its request
// metadata. ID and CreatedAt are assigned by storage.
func (p SubmissionPayload) Submission(meta RequestMeta) *ContactSubmission {
	return &ContactSubmission{
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		Email:             p.Email,
		Company:           p.Company,
		Subject:           p.Subject,
		Message:           p.Message,
		VerificationToken: p.VerificationToken,
		SourceIP:          meta.SourceIP,
		UserAgent:         meta.UserAgent,
	}
}

// VerificationResult is the verification provider's answer for one token.
// Not persisted; its Success flag gates whether a submission is created at all.
type VerificationResult struct {
	Success     bool     `json:"success"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
	ChallengeTS string   `json:"challenge_ts,omitempty"`
	Hostname    string   `json:"hostname,omitempty"`
}

// IntakeStatus classifies the outcome of one intake attempt.
type IntakeStatus string

const (
	// IntakeAccepted means the submission was persisted and both emails sent.
	IntakeAccepted IntakeStatus = "accepted"
	// IntakeAcceptedEmailWarning means the submission was persisted but at
	// least one notification email failed. Reported to the caller as success.
	IntakeAcceptedEmailWarning IntakeStatus = "accepted_email_warning"
	// IntakeRejected means the verification provider refused the token.
	// Nothing was persisted, no email was sent.
	IntakeRejected IntakeStatus = "rejected"
	// IntakeServerError covers configuration and persistence failures.
	IntakeServerError IntakeStatus = "server_error"
)

// IntakeResult describes full or partial success of one intake attempt.
// Message is safe to show to the submitter; provider diagnostics stay in logs.
type IntakeResult struct {
	Status       IntakeStatus
	SubmissionID uuid.UUID
	Message      string
}

// Accepted reports whether the business goal (capturing the lead) was met.
func (r IntakeResult) Accepted() bool {
	return r.Status == IntakeAccepted || r.Status == IntakeAcceptedEmailWarning
}

// EmailMessage is one outbound notification email.
type EmailMessage struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// BlogPost is a read-only post summary from the blog feed.
type BlogPost struct {
	ID      int       `json:"id"`
	Title   string    `json:"title"`
	Excerpt string    `json:"excerpt"`
	Date    time.Time `json:"date"`
	Link    string    `json:"link"`
	Author  string    `json:"author"`
}
