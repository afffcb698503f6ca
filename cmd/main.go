package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m04kA/SMC-RideSlotService/internal/api"
	"github.com/m04kA/SMC-RideSlotService/internal/api/middleware"
	"github.com/m04kA/SMC-RideSlotService/internal/config"
	"github.com/m04kA/SMC-RideSlotService/internal/infra/scheduler"
	"github.com/m04kA/SMC-RideSlotService/internal/service/page"
	"github.com/m04kA/SMC-RideSlotService/internal/service/sessions"
	generateSlotsUC "github.com/m04kA/SMC-RideSlotService/internal/usecase/generate_slots"
	"github.com/m04kA/SMC-RideSlotService/pkg/logger"
	"github.com/m04kA/SMC-RideSlotService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-RideSlotService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем use cases
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		generateSlotsUC.Options{
			BatchSize: cfg.Slots.BatchSize,
			Step:      cfg.Slots.Step(),
		},
		log,
	)

	// Каждая сессия получает свою страницу со своим таймером перегенерации
	pageOpts := page.Options{
		RefreshInterval: cfg.Slots.RefreshInterval(),
		Location:        cfg.Slots.Location(),
	}
	newPage := func() *page.Page {
		return page.New(
			generateSlotsUseCase,
			scheduler.New("regenerate-slots", log),
			metricsCollector,
			log,
			pageOpts,
		)
	}

	registry := sessions.NewRegistry(newPage, cfg.Sessions.IdleTimeout(), metricsCollector, log)
	log.Info("Sessions initialized (cookie=%s, idle_timeout=%s)",
		cfg.Sessions.CookieName, cfg.Sessions.IdleTimeout())

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerMinute,
			cfg.RateLimit.Burst,
			cfg.RateLimit.TrustForwardedFor,
			log,
		)
		log.Info("Rate limit enabled: %d req/min, burst=%d, trust_forwarded_for=%t",
			cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.TrustForwardedFor)
	}

	// Очистка простаивающих сессий и лимитеров
	sweeper := scheduler.New("sweep-sessions", log)
	sweeper.Start(cfg.Sessions.SweepInterval(), func() {
		registry.Sweep()
		if limiter != nil {
			limiter.Sweep(cfg.Sessions.IdleTimeout())
		}
	})

	// Настраиваем роутер
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	router := api.NewRouter(registry, metricsCollector, log, api.Options{
		CookieName:  cfg.Sessions.CookieName,
		SessionTTL:  cfg.Sessions.IdleTimeout(),
		MetricsPath: metricsPath,
		RateLimiter: limiter,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем таймеры страниц
	sweeper.Stop()
	registry.Close()

	log.Info("Server stopped gracefully")
}
