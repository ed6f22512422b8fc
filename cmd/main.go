package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/onerilhan/bookkeeping-api/internal/auth"
	"github.com/onerilhan/bookkeeping-api/internal/config"
	"github.com/onerilhan/bookkeeping-api/internal/db"
	"github.com/onerilhan/bookkeeping-api/internal/handlers"
	"github.com/onerilhan/bookkeeping-api/internal/logger"
	"github.com/onerilhan/bookkeeping-api/internal/middleware"
	"github.com/onerilhan/bookkeeping-api/internal/migration"
	"github.com/onerilhan/bookkeeping-api/internal/repository"
	"github.com/onerilhan/bookkeeping-api/internal/router"
	"github.com/onerilhan/bookkeeping-api/internal/services"
	"github.com/onerilhan/bookkeeping-api/internal/validation"
)

func main() {
	// .env dosyasını yükle
	if err := godotenv.Load(); err != nil {
		stdlog.Println(".env dosyası bulunamadı, ortam değişkenlerinden okunacak.")
	}

	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv, cfg.LogLevel)

	log.Info().
		Str("environment", cfg.AppEnv).
		Str("port", cfg.Port).
		Bool("auth", cfg.AuthEnabled()).
		Msg("🚀 Bookkeeping API başlatıldı")

	if cfg.MigrateOnStart {
		if err := migrateUp(cfg.GetDSN()); err != nil {
			log.Fatal().Err(err).Msg("❌ Migration başarısız")
		}
	}

	database, err := db.Connect(cfg.GetDSN(), db.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Veritabanı bağlantısı başarısız")
	}
	defer database.Close()

	// Repository, Service, Handler katmanları
	bankRepo := repository.NewBankRepository(database)
	cardRepo := repository.NewCardRepository(database)
	clientRepo := repository.NewClientRepository(database)
	transactionRepo := repository.NewTransactionRepository(database)
	profilerBankRepo := repository.NewProfilerBankRepository(database)
	profilerClientRepo := repository.NewProfilerClientRepository(database)
	profileRepo := repository.NewProfileRepository(database)
	finkedaRepo := repository.NewFinkedaRepository(database)

	v := validation.New()
	h := &router.Handlers{
		Bank:           handlers.NewBankHandler(services.NewBankService(bankRepo), v),
		Card:           handlers.NewCardHandler(services.NewCardService(cardRepo), v),
		Client:         handlers.NewClientHandler(services.NewClientService(clientRepo), v),
		Transaction:    handlers.NewTransactionHandler(services.NewTransactionService(transactionRepo), v),
		ProfilerBank:   handlers.NewProfilerBankHandler(services.NewProfilerBankService(profilerBankRepo), v),
		ProfilerClient: handlers.NewProfilerClientHandler(services.NewProfilerClientService(profilerClientRepo), v),
		Profile:        handlers.NewProfileHandler(services.NewProfileService(profileRepo), v),
		Finkeda:        handlers.NewFinkedaHandler(services.NewFinkedaService(finkedaRepo), v),
		Calculator:     handlers.NewCalculatorHandler(services.NewCalculatorService(finkedaRepo), v),
		Report:         handlers.NewReportHandler(services.NewReportService(transactionRepo), v),
		Health:         handlers.NewHealthHandler(database),
	}

	opts := router.Options{
		Env:         cfg.AppEnv,
		CORSOrigins: cfg.CORSAllowedOrigins,
		RateLimit: &middleware.RateLimitConfig{
			RequestsPerMinute: cfg.RateLimitRPM,
			Burst:             cfg.RateLimitBurst,
			SkipPaths:         []string{"/health"},
			TrustedProxies:    cfg.TrustedProxies,
		},
	}
	if cfg.AuthEnabled() {
		opts.TokenValidator = auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	}

	serverAddr := ":" + cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router.New(h, opts),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second, // PDF üretimi için biraz daha uzun
		IdleTimeout:  60 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().
			Str("addr", serverAddr).
			Msg("🌐 HTTP Server (Gorilla Mux) başlatıldı")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("❌ Server başlatma hatası")
		}
	}()

	<-shutdown
	log.Info().Msg("🛑 Shutdown signal alındı, server kapatılıyor...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("❌ HTTP Server kapatma hatası")
	} else {
		log.Info().Msg("✅ HTTP Server başarıyla kapatıldı")
	}

	log.Info().Msg("👋 Bookkeeping API kapatıldı")
}

// migrateUp bekleyen tüm migration'ları uygular
func migrateUp(dsn string) error {
	runner, err := migration.NewRunner(dsn)
	if err != nil {
		return err
	}
	defer runner.Close()
	return runner.Up(0)
}
