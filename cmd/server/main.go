package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/TukaHeba/Optional-Task6/internal/configs"
	httpdelivery "github.com/TukaHeba/Optional-Task6/internal/delivery/http"
	"github.com/TukaHeba/Optional-Task6/internal/delivery/kafka"
	"github.com/TukaHeba/Optional-Task6/internal/repository"
	"github.com/TukaHeba/Optional-Task6/internal/repository/postgres"
	"github.com/TukaHeba/Optional-Task6/internal/service"
)

// @title customer orders service
// @version 1.0
// @description CRUD REST API for customers and their orders: relational filtering of customers by order status and date range, substring search over order product names, and a place-order-for-customer operation. Every response is wrapped in a uniform envelope.

// @host localhost:8080
// @basePath /

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	logrus.Print("config parsed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.ConnectDB(postgres.Config{
		URL:      cfg.DatabaseURL,
		Host:     cfg.PostgresHost,
		Port:     cfg.PostgresPort,
		Username: cfg.PostgresUser,
		Password: cfg.PostgresPass,
		DbName:   cfg.PostgresDB,
		SslMode:  cfg.PostgresSSLMode,
	})
	if err != nil {
		logrus.Fatalf("postgres connect: %s", err)
	}
	defer func() {
		if derr := db.Close(); derr != nil {
			logrus.Errorf("db close: %v", derr)
		}
	}()
	logrus.Print("connected to postgres")

	if err := postgres.Migrate(db); err != nil {
		logrus.Fatalf("migrate: %s", err)
	}
	logrus.Print("schema migrated")

	var events service.OrderEvents
	if cfg.KafkaBrokers != "" {
		pub := kafka.NewOrderPublisher(cfg.KafkaBrokersSlice(), cfg.KafkaTopic)
		defer func() {
			if cerr := pub.Close(); cerr != nil {
				logrus.Errorf("publisher close: %v", cerr)
			}
		}()
		events = pub
		logrus.Print("order event publisher enabled")
	}

	repo := repository.NewRepository(db)
	svc := service.NewService(repo, events, cfg.DefaultPerPage)

	h := httpdelivery.NewHandler(svc, svc)
	srv := new(httpdelivery.Server)

	go func() {
		if err := srv.Run(cfg.HTTPAddr, h.InitRoutes()); err != nil {
			logrus.Errorf("http run: %v", err)
			cancel()
		}
	}()
	logrus.Printf("http server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logrus.Print("shutdown signal received")
	case <-ctx.Done():
		logrus.Print("context canceled, shutting down")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}

	logrus.Print("service stopped")
}
