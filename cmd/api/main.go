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

	"food-delivery-payments/internal/client"
	"food-delivery-payments/internal/config"
	"food-delivery-payments/internal/repository"
	"food-delivery-payments/internal/server"
	"food-delivery-payments/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	if cfg.Stripe.SecretKey == "" {
		log.Println("STRIPE_SECRET_KEY not configured, payment requests will be rejected")
	}

	db := client.InitSqliteClient(cfg.DatabaseURL)
	stripeClient := client.NewStripeClient(&cfg.Stripe)

	orderRepo := repository.NewOrderRepository(db)

	if cfg.Environment.IsDevelopment() {
		if err := repository.SeedDemoData(db); err != nil {
			log.Println("seed demo data:", err)
		}
	}

	paymentService := service.NewPaymentService(
		stripeClient,
		orderRepo,
		cfg.Stripe.SecretKey != "",
		cfg.Stripe.Currency,
	)
	orderService := service.NewOrderService(orderRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(cfg, paymentService, orderService)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
