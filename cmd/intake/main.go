package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Xalpha19/chaitravm/internal/client"
	"github.com/Xalpha19/chaitravm/internal/config"
	"github.com/Xalpha19/chaitravm/internal/core/port"
	"github.com/Xalpha19/chaitravm/internal/core/service"
	"github.com/Xalpha19/chaitravm/internal/infrastructure/amqp"
	"github.com/Xalpha19/chaitravm/internal/server"
	"github.com/Xalpha19/chaitravm/internal/storage"
)

func main() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()
	db, err := storage.NewPostgresDB(ctx, cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	submissionsStorage := storage.NewSubmissionsStorage(db)

	// Monitoring events are optional; without a broker the intake pipeline
	// runs with a no-op notifier.
	var notifier port.EventNotifier = client.NoopNotifier{}
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("Failed to create AMQP client: %v", err)
		}
		defer amqpClient.Close()

		topologyManager := amqp.NewTopologyManager(amqpClient)
		if err := topologyManager.Setup(); err != nil {
			log.Fatalf("Failed to setup AMQP topology: %v", err)
		}
		notifier = client.NewAMQPNotifier(amqp.NewPublisher(amqpClient))
	}

	verifier := client.NewTurnstileVerifier(cfg.VerificationSecret)
	mailer := client.NewResendMailer(cfg.EmailAPIKey)
	blogSource := client.NewWordPressClient(cfg.BlogSite)

	intakeService := service.NewIntakeService(
		verifier,
		submissionsStorage,
		mailer,
		notifier,
		cfg.OwnerEmail,
		cfg.FromAddress,
	)
	blogService := service.NewBlogService(blogSource)

	httpServer := server.NewHTTPServer(intakeService, blogService)

	go func() {
		if err := httpServer.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	log.Info("Intake service started successfully")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down intake service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
}
