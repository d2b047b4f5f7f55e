package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-account-verify/internal/config"
	"github.com/go-account-verify/internal/infrastructure/dynamo"
	"github.com/go-account-verify/internal/infrastructure/smtp"
	"github.com/go-account-verify/internal/pkg/hash"
	transporthttp "github.com/go-account-verify/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// SMTP mailer, checked reachable best-effort.
	mailer := smtp.NewMailer(cfg)
	if err := mailer.Ping(); err != nil {
		log.Printf("WARN: SMTP server not reachable: %v", err)
	} else {
		log.Println("Ready for messages")
	}

	deps := &transporthttp.Deps{
		AccountRepo: dynamo.NewAccountRepo(dynamoClient, cfg.DynamoTables.Accounts),
		LinkRepo:    dynamo.NewLinkVerificationRepo(dynamoClient, cfg.DynamoTables.LinkVerifications),
		OTPRepo:     dynamo.NewOTPVerificationRepo(dynamoClient, cfg.DynamoTables.OTPVerifications),
		Mailer:      mailer,
		Hasher:      hash.NewBcrypt(),
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
