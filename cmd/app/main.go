package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"taproom/cmd"
	httpin "taproom/internal/adapters/in/http"
	"taproom/internal/adapters/out/kafka"
	"taproom/internal/adapters/out/postgres/orderrepo"
	"taproom/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultFreight        = "10.00"
	defaultSessionTTL     = 2 * time.Hour
	defaultRelayBatchSize = 50
	shutdownTimeout       = 10 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	writer := kafka.NewWriter(strings.Split(configs.KafkaHost, ",")...)
	defer func() { _ = writer.Close() }()

	app, err := cmd.NewCompositionRoot(configs, gormDB, writer, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager := app.JobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using the process environment: %v", err)
	}

	freight, err := kernel.ParseMoney(envOr("FREIGHT", defaultFreight))
	if err != nil {
		log.Fatalf("Invalid FREIGHT: %v", err)
	}
	sessionTTL, err := time.ParseDuration(envOr("SESSION_TTL", defaultSessionTTL.String()))
	if err != nil {
		log.Fatalf("Invalid SESSION_TTL: %v", err)
	}
	batchSize, err := strconv.Atoi(envOr("RELAY_BATCH_SIZE", strconv.Itoa(defaultRelayBatchSize)))
	if err != nil {
		log.Fatalf("Invalid RELAY_BATCH_SIZE: %v", err)
	}

	return cmd.Config{
		HTTPPort:                 os.Getenv("HTTP_PORT"),
		DBHost:                   os.Getenv("DB_HOST"),
		DBPort:                   os.Getenv("DB_PORT"),
		DBUser:                   os.Getenv("DB_USER"),
		DBPassword:               os.Getenv("DB_PASSWORD"),
		DBName:                   os.Getenv("DB_NAME"),
		DBSslMode:                os.Getenv("DB_SSLMODE"),
		KafkaHost:                os.Getenv("KAFKA_HOST"),
		KafkaOrderSubmittedTopic: os.Getenv("KAFKA_ORDER_SUBMITTED_TOPIC"),
		Freight:                  freight,
		SessionTTL:               sessionTTL,
		SessionExpirySchedule:    os.Getenv("SESSION_EXPIRY_SCHEDULE"),
		OrderRelaySchedule:       os.Getenv("ORDER_RELAY_SCHEDULE"),
		RelayBatchSize:           batchSize,
		WhatsAppNumbers: map[kernel.Location]string{
			kernel.MarechalCandidoRondon: os.Getenv("WHATSAPP_MARECHAL_CANDIDO_RONDON"),
			kernel.FozDoIguacu:           os.Getenv("WHATSAPP_FOZ_DO_IGUACU"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	server := httpin.NewServer(app.HTTPHandlers(), time.Now)
	e, err := httpin.NewRouter(ctx, server, logger)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.ErrorContext(shutdownCtx, "HTTP server shutdown failed", "error", err)
	}
	logger.InfoContext(shutdownCtx, "Shutdown complete")
}
