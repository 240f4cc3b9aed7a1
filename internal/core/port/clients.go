package port

import (
	"context"

	"github.com/Xalpha19/chaitravm/internal/core/domain"
)

// TokenVerifier checks a bot-check token against the verification provider.
// A transport error is treated the same as a provider-reported failure.
type TokenVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) (*domain.VerificationResult, error)
}

// Mailer sends one notification email.
type Mailer interface {
	Send(ctx context.Context, msg domain.EmailMessage) error
}

// BlogSource returns post summaries from the external blog feed.
type BlogSource interface {
	LatestPosts(ctx context.Context, count int) ([]domain.BlogPost, error)
}

// EventNotifier publishes operational events. Best effort: publish failures
// must never change the outcome reported to the submitter.
type EventNotifier interface {
	NotifySubmissionAccepted(ctx context.Context, message *domain.SubmissionAcceptedMessage) error
	NotifyEmailDegraded(ctx context.Context, message *domain.EmailDegradedMessage) error
}
