package service

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Xalpha19/chaitravm/internal/core/domain"
	"github.com/Xalpha19/chaitravm/internal/core/port"
	"github.com/Xalpha19/chaitravm/internal/email"
)

// Caller-facing result messages. Provider diagnostics never leave the logs.
const (
	MsgServerConfigError  = "Server configuration error"
	MsgVerificationFailed = "Security verification failed"
	MsgSaveFailed         = "Failed to save submission"
	MsgEmailNotConfigured = "Email service not configured"
	MsgSubmitted          = "Form submitted successfully and emails sent"
	MsgSubmittedDegraded  = "Form submitted successfully, but there was an issue sending confirmation emails"
)

// IntakeService is the authoritative gate for contact submissions: it
// re-verifies the bot-check token, durably records the submission, and
// notifies both parties. Stateless; safe to share across requests.
type IntakeService struct {
	verifier    port.TokenVerifier
	storage     port.SubmissionStorage
	mailer      port.Mailer
	notifier    port.EventNotifier
	ownerEmail  string
	fromAddress string
}

func NewIntakeService(
	verifier port.TokenVerifier,
	storage port.SubmissionStorage,
	mailer port.Mailer,
	notifier port.EventNotifier,
	ownerEmail string,
	fromAddress string,
) *IntakeService {
	if notifier == nil {
		notifier = discardNotifier{}
	}
	return &IntakeService{
		verifier:    verifier,
		storage:     storage,
		mailer:      mailer,
		notifier:    notifier,
		ownerEmail:  ownerEmail,
		fromAddress: fromAddress,
	}
}

// discardNotifier stands in when no event notifier is wired. Monitoring
// events are best effort, so a missing notifier never blocks intake.
type discardNotifier struct{}

func (discardNotifier) NotifySubmissionAccepted(context.Context, *domain.SubmissionAcceptedMessage) error {
	return nil
}

func (discardNotifier) NotifyEmailDegraded(context.Context, *domain.EmailDegradedMessage) error {
	return nil
}

// Process runs the intake pipeline in strict order: token verification,
// persistence, then the two email dispatches. Each step is a hard gate
// except email delivery, which downgrades to a warning because the
// submission is already durably recorded.
func (s *IntakeService) Process(ctx context.Context, payload domain.SubmissionPayload, meta domain.RequestMeta) domain.IntakeResult {
	// Fail closed: without a verifier nothing can be authenticated.
	if s.verifier == nil {
		log.Error("Token verifier not configured, refusing submission")
		return domain.IntakeResult{Status: domain.IntakeServerError, Message: MsgServerConfigError}
	}

	result, err := s.verifier.Verify(ctx, payload.VerificationToken, meta.SourceIP)
	if err != nil {
		log.WithError(err).Error("Token verification call failed")
		return domain.IntakeResult{Status: domain.IntakeRejected, Message: MsgVerificationFailed}
	}
	if !result.Success {
		log.WithField("errorCodes", result.ErrorCodes).Warn("Token verification rejected")
		return domain.IntakeResult{Status: domain.IntakeRejected, Message: MsgVerificationFailed}
	}

	stored, err := s.storage.StoreSubmission(ctx, payload.Submission(meta))
	if err != nil {
		log.WithError(err).Error("Failed to store contact submission")
		return domain.IntakeResult{Status: domain.IntakeServerError, Message: MsgSaveFailed}
	}

	// Persisted-but-nobody-told is avoided by surfacing a missing mailer as
	// a hard error to the caller rather than silently succeeding.
	if s.mailer == nil {
		log.WithField("submissionID", stored.ID).Error("Mailer not configured after submission was persisted")
		return domain.IntakeResult{Status: domain.IntakeServerError, Message: MsgEmailNotConfigured}
	}

	ownerErr, ackErr := s.dispatchEmails(ctx, stored)
	if ownerErr != nil || ackErr != nil {
		s.notifyDegraded(ctx, stored, ownerErr, ackErr)
		return domain.IntakeResult{
			Status:       domain.IntakeAcceptedEmailWarning,
			SubmissionID: stored.ID,
			Message:      MsgSubmittedDegraded,
		}
	}

	s.notifyAccepted(ctx, stored)
	return domain.IntakeResult{
		Status:       domain.IntakeAccepted,
		SubmissionID: stored.ID,
		Message:      MsgSubmitted,
	}
}

// dispatchEmails sends the owner alert and the submitter acknowledgment
// concurrently. Both results are awaited; neither failure blocks the other.
func (s *IntakeService) dispatchEmails(ctx context.Context, sub *domain.ContactSubmission) (ownerErr, ackErr error) {
	ownerMsg, err := email.OwnerAlert(sub, s.ownerEmail, s.fromAddress)
	if err != nil {
		ownerErr = err
	}
	ackMsg, err := email.Acknowledgment(sub, s.fromAddress)
	if err != nil {
		ackErr = err
	}

	var wg sync.WaitGroup
	if ownerErr == nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ownerErr = s.mailer.Send(ctx, ownerMsg)
		}()
	}
	if ackErr == nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ackErr = s.mailer.Send(ctx, ackMsg)
		}()
	}
	wg.Wait()

	if ownerErr != nil {
		log.WithError(ownerErr).WithField("submissionID", sub.ID).Error("Failed to send owner alert email")
	}
	if ackErr != nil {
		log.WithError(ackErr).WithField("submissionID", sub.ID).Error("Failed to send acknowledgment email")
	}

	return ownerErr, ackErr
}

func (s *IntakeService) notifyAccepted(ctx context.Context, sub *domain.ContactSubmission) {
	msg := &domain.SubmissionAcceptedMessage{
		SubmissionID: sub.ID,
		Email:        sub.Email,
		Subject:      sub.Subject,
		AcceptedAt:   time.Now().UTC(),
	}
	if err := s.notifier.NotifySubmissionAccepted(ctx, msg); err != nil {
		log.WithError(err).WithField("submissionID", sub.ID).Warn("Failed to publish submission accepted event")
	}
}

func (s *IntakeService) notifyDegraded(ctx context.Context, sub *domain.ContactSubmission, ownerErr, ackErr error) {
	msg := &domain.EmailDegradedMessage{
		SubmissionID: sub.ID,
		OccurredAt:   time.Now().UTC(),
	}
	if ownerErr != nil {
		msg.OwnerError = ownerErr.Error()
	}
	if ackErr != nil {
		msg.AckError = ackErr.Error()
	}
	if err := s.notifier.NotifyEmailDegraded(ctx, msg); err != nil {
		log.WithError(err).WithField("submissionID", sub.ID).Warn("Failed to publish email degraded event")
	}
}
