package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/charile1/golf-reservation/config"
	"github.com/charile1/golf-reservation/internal/cache"
	"github.com/charile1/golf-reservation/internal/database"
	"github.com/charile1/golf-reservation/internal/handler"
	"github.com/charile1/golf-reservation/internal/middleware"
	"github.com/charile1/golf-reservation/internal/queue"
	"github.com/charile1/golf-reservation/internal/repository"
	"github.com/charile1/golf-reservation/internal/service"
	"github.com/charile1/golf-reservation/internal/sms"
	"github.com/charile1/golf-reservation/internal/worker"
	"github.com/charile1/golf-reservation/pkg/auth"
	"github.com/charile1/golf-reservation/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	defer logger.Sync()

	// .env 不存在時直接使用環境變數
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.L.Fatal("Failed to load config", zap.Error(err))
	}
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		logger.L.Warn("Invalid log level, keeping default", zap.String("level", cfg.Log.Level))
	}

	pool, err := database.InitDatabase(context.Background(), &cfg.Database)
	if err != nil {
		logger.L.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(context.Background(), pool); err != nil {
			logger.L.Fatal("Failed to apply migrations", zap.Error(err))
		}
		logger.L.Info("Migrations applied")
	}

	rdb, err := database.InitRedis(context.Background(), &cfg.Redis)
	if err != nil {
		logger.L.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var retries queue.LedgerQueue
	if cfg.Ledger.RetryEnabled {
		retries, err = queue.NewRedisStreamLedgerQueue(ctx, rdb, "", queue.RedisStreamConfig{
			ClaimMinIdleTime: cfg.Ledger.RetryClaimIdle,
			MaxRetryCount:    cfg.Ledger.RetryMaxAttempts,
		})
		if err != nil {
			logger.L.Fatal("Failed to initialize ledger retry queue", zap.Error(err))
		}
	}

	gin.SetMode(cfg.Server.Mode)
	router, transactionService := setupRouter(cfg, pool, rdb, retries)

	if retries != nil {
		if err := worker.NewLedgerWorker(transactionService, retries).Start(ctx); err != nil {
			logger.L.Fatal("Failed to start ledger worker", zap.Error(err))
		}
		logger.L.Info("Ledger worker started")
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.L.Info("Shutdown signal received")
	case err := <-errCh:
		logger.L.Error("HTTP server failed", zap.Error(err))
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L.Error("HTTP server shutdown failed", zap.Error(err))
	}
	logger.L.Info("Server stopped")
}

func setupRouter(cfg *config.Config, pool *pgxpool.Pool, rdb *redis.Client, retries queue.LedgerQueue) (*gin.Engine, service.TransactionService) {
	teeTimeRepo := repository.NewTeeTimeRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	transactionRepo := repository.NewTransactionRepository(pool)

	transactionService := service.NewTransactionService(transactionRepo, bookingRepo, cfg.Ledger)
	bookingService := service.NewBookingService(bookingRepo, teeTimeRepo, transactionService, retries)
	teeTimeService := service.NewTeeTimeService(teeTimeRepo, bookingRepo, transactionService)
	customerService := service.NewCustomerService(customerRepo)
	webhookService := service.NewPaymentWebhookService(
		bookingService,
		cache.NewRedisWebhookDeduplicator(rdb, cfg.Toss.DedupTTL),
		cfg.Toss,
	)
	smsService := service.NewSMSService(sms.NewAligoClient(cfg.Aligo))

	router := gin.New()
	router.Use(middleware.RequestLogger(), middleware.Recovery())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	handler.NewWebhookHandler(webhookService).RegisterRoutes(router)

	api := router.Group("/api/v1", middleware.JWTAuth(auth.NewTokenParser(cfg.Auth.JWTSecret)))
	handler.NewTeeTimeHandler(teeTimeService).RegisterRoutes(api)
	handler.NewBookingHandler(bookingService).RegisterRoutes(api)
	handler.NewCustomerHandler(customerService).RegisterRoutes(api)
	handler.NewTransactionHandler(transactionService).RegisterRoutes(api)
	handler.NewSMSHandler(smsService).RegisterRoutes(api)

	return router, transactionService
}
