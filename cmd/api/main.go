package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/healthlab/portal-api/internal/config"
	"github.com/healthlab/portal-api/internal/email"
	"github.com/healthlab/portal-api/internal/handler"
	bookingHandler "github.com/healthlab/portal-api/internal/handler/booking"
	catalogHandler "github.com/healthlab/portal-api/internal/handler/catalog"
	patientHandler "github.com/healthlab/portal-api/internal/handler/patient"
	"github.com/healthlab/portal-api/internal/middleware"
	"github.com/healthlab/portal-api/internal/repository"
	"github.com/healthlab/portal-api/internal/repository/memory"
	"github.com/healthlab/portal-api/internal/repository/postgres"
	"github.com/healthlab/portal-api/internal/router"
	bookingService "github.com/healthlab/portal-api/internal/service/booking"
	catalogService "github.com/healthlab/portal-api/internal/service/catalog"
	patientService "github.com/healthlab/portal-api/internal/service/patient"
	"github.com/healthlab/portal-api/pkg/logger"
	"github.com/healthlab/portal-api/pkg/messaging"
	redisBroker "github.com/healthlab/portal-api/pkg/messaging/redis"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(&logger.Config{
		Level:      parseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Pretty:     cfg.Log.Pretty,
		Output:     os.Stdout,
	})

	// Initialize repositories
	var (
		db          *sqlx.DB
		patientRepo repository.PatientRepository
		bookingRepo repository.BookingRepository
	)
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err = postgres.NewDB(cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()
		patientRepo = postgres.NewPatientRepository(db)
		bookingRepo = postgres.NewBookingRepository(db)
	default:
		patientRepo = memory.NewPatientRepository()
		bookingRepo = memory.NewBookingRepository()
	}

	// Initialize message broker
	var broker messaging.Broker = messaging.NewNoopBroker()
	if cfg.Redis.URL != "" {
		broker, err = redisBroker.NewRedisBroker(redisBroker.Config{URL: cfg.Redis.URL}, appLogger.Zerolog())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
	}
	defer broker.Close()

	// Initialize services
	emailSvc := email.NewService(cfg.Email)
	catalogSvc := catalogService.NewService()
	patientSvc := patientService.NewService(patientRepo, broker, appLogger)
	bookingSvc := bookingService.NewService(bookingRepo, patientRepo, catalogSvc, emailSvc, broker, appLogger)

	// Initialize handlers
	h := handler.NewHandler(db)
	patientH := patientHandler.NewHandler(patientSvc)
	catalogH := catalogHandler.NewHandler(catalogSvc)
	bookingH := bookingHandler.NewHandler(bookingSvc, patientSvc)

	// Setup router
	r := router.NewRouter(patientH, catalogH, bookingH, h, router.Config{
		RateLimit:     rate.Limit(cfg.Server.RateLimit),
		RateBurst:     cfg.Server.RateBurst,
		CORSConfig:    middleware.DefaultCORSConfig(),
		MetricsPrefix: "healthlab_portal",
		ReleaseMode:   true,
	})
	r.Setup()

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	// Start server
	go func() {
		log.Info().Int("port", cfg.Server.Port).Str("storage", cfg.Storage.Driver).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

func parseLevel(level string) logger.Level {
	switch level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}
