package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/skipro_backend/internal/app"
	"github.com/Freeeeeet/skipro_backend/internal/config"
	"github.com/Freeeeeet/skipro_backend/internal/controller"
	"github.com/Freeeeeet/skipro_backend/internal/controller/handlers"
	"github.com/Freeeeeet/skipro_backend/internal/repository"
	"github.com/Freeeeeet/skipro_backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, "migrations")
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	if err := migrator.Close(); err != nil {
		logger.Warn("Failed to close migrator", zap.Error(err))
	}

	lessonRepo := repository.NewLessonRepository(pool)
	clientRepo := repository.NewClientRepository(pool)
	instructorRepo := repository.NewInstructorRepository(pool)
	ratingRepo := repository.NewRatingRepository(pool)
	equipmentRepo := repository.NewEquipmentRepository(pool)
	rentalRepo := repository.NewRentalRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)

	// one lock set shared by every service that mutates lessons
	locks := service.NewLessonLocks()

	lessonService := service.NewLessonService(lessonRepo, clientRepo, instructorRepo, locks, logger)
	ratingService := service.NewRatingService(lessonRepo, clientRepo, instructorRepo, ratingRepo, locks, logger)
	instructorService := service.NewInstructorService(instructorRepo, logger)
	clientService := service.NewClientService(clientRepo, cfg.JWTSecret, logger)
	rentalService := service.NewRentalService(equipmentRepo, rentalRepo, clientRepo, employeeRepo, logger)
	employeeService := service.NewEmployeeService(employeeRepo, instructorRepo, logger)

	scheduler := app.NewScheduler(rentalService, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	h := handlers.New(
		lessonService,
		ratingService,
		instructorService,
		clientService,
		rentalService,
		employeeService,
		logger,
	)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: controller.NewRouter(h),
	}

	go func() {
		logger.Info("Starting HTTP server",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("environment", cfg.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
}
