package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"gigboard/internal/admin/admin_api"
	"gigboard/internal/auth"
	"gigboard/internal/cache"
	"gigboard/internal/config"
	"gigboard/internal/database/migrations"
	"gigboard/internal/events"
	eventdb "gigboard/internal/events/db"
	"gigboard/internal/events/event_api"
	"gigboard/internal/kafka"
	"gigboard/internal/logger"
	"gigboard/internal/reports"
	reportdb "gigboard/internal/reports/db"
	"gigboard/internal/reports/report_api"
	"gigboard/internal/submissions"
	submissiondb "gigboard/internal/submissions/db"
	"gigboard/internal/submissions/submission_api"
	venuedb "gigboard/internal/venues/db"
)

func connectDatabase(cfg *config.Config, logger *logger.Logger) *bun.DB {
	if cfg.Database.DSN == "" {
		logger.Fatal("CONFIG", "POSTGRES_DSN not set")
	}

	var sqldb *sql.DB
	var err error
	maxRetries := 5

	for i := 0; i < maxRetries; i++ {
		logger.Info("DATABASE", fmt.Sprintf("Attempting to connect to PostgreSQL (attempt %d/%d)", i+1, maxRetries))
		sqldb, err = sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			logger.Error("DATABASE", fmt.Sprintf("Failed to open PostgreSQL: %v", err))
			time.Sleep(2 * time.Second)
			continue
		}

		err = sqldb.Ping()
		if err == nil {
			break
		}

		logger.Error("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL: %v", err))
		if i < maxRetries-1 {
			time.Sleep(2 * time.Second)
		}
	}

	if err != nil {
		logger.Fatal("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err))
	}

	sqldb.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	logger.Info("DATABASE", "✅ PostgreSQL connection successful")
	return bun.NewDB(sqldb, pgdialect.New())
}

func connectRedis(cfg *config.Config, logger *logger.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("DATABASE", fmt.Sprintf("Redis connection error: %v", err))
	}
	logger.Info("DATABASE", fmt.Sprintf("✅ Redis connection successful to %s", cfg.Redis.Addr))
	return client
}

func main() {
	logger := logger.NewLogger()
	defer logger.Close()

	logger.Info("APP", "Starting gigboard listings service")

	if err := godotenv.Load(); err != nil {
		logger.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		logger.Info("CONFIG", "Loaded environment variables from .env file")
	}

	cfg := config.Load()
	if cfg.Admin.Password == "" {
		logger.Fatal("CONFIG", "ADMIN_PASSWORD not set")
	}

	bunDB := connectDatabase(cfg, logger)
	defer bunDB.Close()

	if cfg.Migrations.Auto {
		runner := migrations.NewRunner(bunDB, cfg.Migrations.Dir)
		if err := runner.Up(); err != nil {
			logger.Fatal("DATABASE", fmt.Sprintf("Migrations failed: %v", err))
		}
		logger.Info("DATABASE", "Migrations applied")
	}

	redisClient := connectRedis(cfg, logger)
	defer redisClient.Close()
	eventCache := cache.NewEventCache(redisClient, cfg.Redis.CacheTTL)

	eventService := events.NewEventService(&eventdb.DB{Bun: bunDB}, nil, eventCache)
	submissionService := submissions.NewSubmissionService(&submissiondb.DB{Bun: bunDB}, eventService, nil)
	reportService := reports.NewReportService(&reportdb.DB{Bun: bunDB}, nil)
	venueDB := &venuedb.DB{Bun: bunDB}

	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topics)
		defer producer.Close()

		requiredTopics := []string{
			cfg.Kafka.Topics.EventCreated,
			cfg.Kafka.Topics.EventUpdated,
			cfg.Kafka.Topics.EventDeleted,
			cfg.Kafka.Topics.SubmissionReceived,
			cfg.Kafka.Topics.SubmissionApproved,
			cfg.Kafka.Topics.ReportFiled,
		}
		if err := kafka.EnsureTopicsExist(cfg.Kafka.Brokers, requiredTopics); err != nil {
			logger.Warn("KAFKA", fmt.Sprintf("Topic creation might have failed: %v", err))
		} else {
			logger.Info("KAFKA", "Required topics ensured successfully")
		}

		eventService.Publisher = producer
		submissionService.Publisher = producer
		reportService.Publisher = producer
		logger.Info("KAFKA", "Kafka producer initialized successfully")
	} else {
		logger.Warn("KAFKA", "Kafka disabled, moderation messages will not be streamed")
	}

	eventHandler := event_api.NewHandler(eventService, venueDB, logger)
	submissionHandler := submission_api.NewHandler(submissionService, logger)
	reportHandler := report_api.NewHandler(reportService, logger)
	adminHandler := admin_api.NewHandler(eventService, submissionService, reportService, logger)

	logger.Info("HTTP", "Setting up router and middleware")
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		// --- Public Routes ---
		r.Get("/events", eventHandler.ListEvents)
		r.Get("/events/{eventId}/qr", eventHandler.TicketLinkQR)
		r.Get("/venues", eventHandler.ListVenues)
		r.Post("/submissions", submissionHandler.SubmitEvent)
		r.Post("/reports", reportHandler.ReportIssue)
		logger.Info("ROUTER", "Public routes registered under /api")

		// --- Admin Routes ---
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(cfg.Admin.Password))
			adminHandler.RegisterRoutes(r)
			logger.Info("ROUTER", "Admin routes registered under /api/admin")
		})
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP", fmt.Sprintf("🚀 gigboard running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	logger.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	logger.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("HTTP", fmt.Sprintf("Server Shutdown Failed: %v", err))
	} else {
		logger.Info("HTTP", "✅ gigboard shutdown complete")
	}
}
