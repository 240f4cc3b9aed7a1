package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/Xalpha19/chaitravm/internal/core/domain"
)

// MonitorConsumer surfaces intake events on the monitoring queue: accepted
// submissions at info level, degraded email delivery as warnings that an
// operator is expected to follow up on.
type MonitorConsumer struct {
	validate *validator.Validate
}

func NewMonitorConsumer(validate *validator.Validate) *MonitorConsumer {
	return &MonitorConsumer{
		validate: validate,
	}
}

func (c *MonitorConsumer) Handle(ctx context.Context, delivery *amqp.Delivery) {
	var err error

	switch delivery.RoutingKey {
	case domain.RoutingKeySubmissionAccepted:
		err = c.handleSubmissionAccepted(delivery)
	case domain.RoutingKeyEmailDegraded:
		err = c.handleEmailDegraded(delivery)
	default:
		log.Errorf("unsupported routing key %s", delivery.RoutingKey)
	}

	if err != nil {
		log.WithError(err).WithField("routingKey", delivery.RoutingKey).Error("Failed to process intake event")
		_ = delivery.Nack(false, false)
		return
	}

	_ = delivery.Ack(false)
}

func (c *MonitorConsumer) handleSubmissionAccepted(delivery *amqp.Delivery) error {
	var msg domain.SubmissionAcceptedMessage
	if err := json.Unmarshal(delivery.Body, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal accepted message: %w", err)
	}
	if err := c.validate.Struct(&msg); err != nil {
		return fmt.Errorf("invalid accepted message: %w", err)
	}

	log.WithFields(log.Fields{
		"submissionID": msg.SubmissionID,
		"subject":      msg.Subject,
		"acceptedAt":   msg.AcceptedAt,
	}).Info("Contact submission accepted")

	return nil
}

func (c *MonitorConsumer) handleEmailDegraded(delivery *amqp.Delivery) error {
	var msg domain.EmailDegradedMessage
	if err := json.Unmarshal(delivery.Body, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal degraded message: %w", err)
	}
	if err := c.validate.Struct(&msg); err != nil {
		return fmt.Errorf("invalid degraded message: %w", err)
	}

	log.WithFields(log.Fields{
		"submissionID": msg.SubmissionID,
		"ownerError":   msg.OwnerError,
		"ackError":     msg.AckError,
		"occurredAt":   msg.OccurredAt,
	}).Warn("Submission persisted but email delivery degraded")

	return nil
}
