package client

import (
	"context"

	"github.com/Xalpha19/chaitravm/internal/core/domain"
)

type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, message any) error
}

// AMQPNotifier publishes intake events to the contact exchange for
// operational consumers (monitoring, alerting).
type AMQPNotifier struct {
	publisher Publisher
}

func NewAMQPNotifier(publisher Publisher) *AMQPNotifier {
	return &AMQPNotifier{
		publisher: publisher,
	}
}

func (n *AMQPNotifier) NotifySubmissionAccepted(ctx context.Context, message *domain.SubmissionAcceptedMessage) error {
	return n.publisher.Publish(ctx, domain.ContactExchange, domain.RoutingKeySubmissionAccepted, message)
}

func (n *AMQPNotifier) NotifyEmailDegraded(ctx context.Context, message *domain.EmailDegradedMessage) error {
	return n.publisher.Publish(ctx, domain.ContactExchange, domain.RoutingKeyEmailDegraded, message)
}

// NoopNotifier is used when no broker is configured. Monitoring events are
// best effort, so dropping them never affects the intake result.
type NoopNotifier struct{}

func (NoopNotifier) NotifySubmissionAccepted(context.Context, *domain.SubmissionAcceptedMessage) error {
	return nil
}

func (NoopNotifier) NotifyEmailDegraded(context.Context, *domain.EmailDegradedMessage) error {
	return nil
}
