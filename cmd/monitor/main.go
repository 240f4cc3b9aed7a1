package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/Xalpha19/chaitravm/internal/core/domain"
	"github.com/Xalpha19/chaitravm/internal/handler"
	"github.com/Xalpha19/chaitravm/internal/infrastructure/amqp"
)

func main() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	amqpURL := os.Getenv("AMQP_URL")
	if amqpURL == "" {
		log.Fatal("AMQP_URL is required")
	}

	amqpClient, err := amqp.NewClient(amqpURL)
	if err != nil {
		log.Fatalf("Failed to create AMQP client: %v", err)
	}
	defer amqpClient.Close()

	// Set up topology (exchanges, queues, bindings)
	topologyManager := amqp.NewTopologyManager(amqpClient)
	if err := topologyManager.Setup(); err != nil {
		log.Fatalf("Failed to setup AMQP topology: %v", err)
	}

	messageHandler := handler.NewMonitorConsumer(validator.New())
	consumer := amqp.NewConsumer(amqpClient, messageHandler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Consume(ctx, domain.ContactMonitoringQueue); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	log.Info("Monitoring service started successfully")
	log.Infof("Consuming messages from queue: %s", domain.ContactMonitoringQueue)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down monitoring service...")
	cancel()
}
