package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"net/http"

	"github.com/joho/godotenv"
	"github.com/oplata-app/escrow-service/internal/config"
	"github.com/oplata-app/escrow-service/internal/delivery/httpapi"
	"github.com/oplata-app/escrow-service/internal/delivery/httpapi/handlers"
	"github.com/oplata-app/escrow-service/internal/infrastructure/kafka"
	"github.com/oplata-app/escrow-service/internal/infrastructure/metrics"
	"github.com/oplata-app/escrow-service/internal/infrastructure/migrate"
	"github.com/oplata-app/escrow-service/internal/infrastructure/postgres"
	"github.com/oplata-app/escrow-service/internal/infrastructure/postgres/repository"
	"github.com/oplata-app/escrow-service/internal/infrastructure/yookassa"
	"github.com/oplata-app/escrow-service/internal/usecase"
)

const checkoutURL = "https://yookassa.ru/checkout"

func setupLogger(cfg config.LogConfig) {
	level := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		level = slog.LevelDebug
	}
	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg.LogConfig)
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.EscrowDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.EscrowDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init repos
	userRepo := repository.NewDefaultUserRepository(db)
	orderRepo := repository.NewDefaultOrderRepository(db)
	disputeRepo := repository.NewDefaultDisputeRepository(db)
	transactionRepo := repository.NewDefaultTransactionRepository(db)
	auditRepo := repository.NewDefaultAuditLogRepository(db)

	// Init payment gateway client (mock mode without credentials)
	gateway, err := yookassa.NewClient(cfg.YooKassa, cfg.Escrow.Currency)
	if err != nil {
		log.Fatalf("failed to init yookassa client: %v", err)
	}

	// Init kafka publisher when brokers are configured
	var eventPublisher *kafka.DefaultKafkaPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		eventPublisher = kafka.NewDefaultKafkaPublisher(cfg.Kafka.Brokers)
	}

	escrowMetrics := metrics.NewEscrowMetrics()

	// Init usecases
	identityUc := usecase.NewDefaultIdentityUsecase(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TelegramBotToken)
	var orderPublisher usecase.OrderEventPublisher
	var disputePublisher usecase.DisputeEventPublisher
	if eventPublisher != nil {
		orderPublisher = eventPublisher
		disputePublisher = eventPublisher
	}
	orderUc := usecase.NewDefaultOrderUsecase(
		orderRepo,
		orderPublisher,
		escrowMetrics,
		cfg.Kafka.Topic,
		cfg.Escrow.CommissionPercent,
		cfg.Escrow.Currency,
	)
	disputeUc := usecase.NewDefaultDisputeUsecase(
		disputeRepo,
		orderRepo,
		disputePublisher,
		escrowMetrics,
		cfg.Kafka.Topic,
	)
	paymentUc := usecase.NewDefaultPaymentUsecase(orderRepo, gateway, escrowMetrics)
	ledgerUc := usecase.NewDefaultLedgerUsecase(transactionRepo, auditRepo)

	// HTTP handlers
	healthHandler := handlers.NewHealthHandler(orderUc)
	authHandler := handlers.NewAuthHandler(identityUc)
	orderHandler := handlers.NewOrderHandler(orderUc, disputeUc, ledgerUc, checkoutURL)
	paymentHandler := handlers.NewPaymentHandler(paymentUc)

	router := httpapi.NewRouter(healthHandler, authHandler, orderHandler, paymentHandler)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
