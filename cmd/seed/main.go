package main

import (
	"context"
	"log"
	"time"

	"github.com/Freeeeeet/skipro_backend/internal/app"
	"github.com/Freeeeeet/skipro_backend/internal/config"
	"github.com/Freeeeeet/skipro_backend/internal/model"
	"github.com/Freeeeeet/skipro_backend/internal/repository"
	"github.com/Freeeeeet/skipro_backend/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Seeds a development database with a couple of instructors, clients,
// lessons and rental gear, and plays one lesson through to a rating so the
// instructor list shows a non-zero average.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, "migrations")
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	lessonRepo := repository.NewLessonRepository(pool)
	clientRepo := repository.NewClientRepository(pool)
	instructorRepo := repository.NewInstructorRepository(pool)
	ratingRepo := repository.NewRatingRepository(pool)
	equipmentRepo := repository.NewEquipmentRepository(pool)
	rentalRepo := repository.NewRentalRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)

	locks := service.NewLessonLocks()
	lessons := service.NewLessonService(lessonRepo, clientRepo, instructorRepo, locks, logger)
	ratings := service.NewRatingService(lessonRepo, clientRepo, instructorRepo, ratingRepo, locks, logger)
	instructors := service.NewInstructorService(instructorRepo, logger)
	clients := service.NewClientService(clientRepo, cfg.JWTSecret, logger)
	rentals := service.NewRentalService(equipmentRepo, rentalRepo, clientRepo, employeeRepo, logger)
	employees := service.NewEmployeeService(employeeRepo, instructorRepo, logger)

	john, err := instructors.CreateInstructor(ctx, "John", "Smith",
		time.Date(1985, 3, 15, 0, 0, 0, 0, time.UTC), 8, "Level 3")
	if err != nil {
		logger.Fatal("Seed instructor", zap.Error(err))
	}
	maria, err := instructors.CreateInstructor(ctx, "Maria", "Keller",
		time.Date(1992, 11, 2, 0, 0, 0, 0, time.UTC), 4, "Level 2")
	if err != nil {
		logger.Fatal("Seed instructor", zap.Error(err))
	}

	alice, _, err := clients.Register(ctx, "Alice", "Adams",
		time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC), model.ExperienceBeginner, "password1")
	if err != nil {
		logger.Fatal("Seed client", zap.Error(err))
	}
	bob, _, err := clients.Register(ctx, "Bob", "Brown",
		time.Date(1988, 9, 23, 0, 0, 0, 0, time.UTC), model.ExperienceIntermediate, "password2")
	if err != nil {
		logger.Fatal("Seed client", zap.Error(err))
	}

	clerk := &model.Employee{
		Role:              model.RoleRentalClerk,
		FirstName:         "Rita",
		LastName:          "Reyes",
		BirthDate:         time.Date(1990, 1, 20, 0, 0, 0, 0, time.UTC),
		YearsOfExperience: 3,
	}
	if err := employees.RegisterEmployee(ctx, clerk); err != nil {
		logger.Fatal("Seed clerk", zap.Error(err))
	}

	for _, item := range []struct {
		name, size string
		cost       int
	}{
		{"Atomic Bent 100", "172cm", 45},
		{"Burton Custom", "158cm", 40},
		{"Giro Ledge Helmet", "M", 12},
	} {
		if _, err := rentals.AddEquipment(ctx, item.name, item.size, item.cost); err != nil {
			logger.Fatal("Seed equipment", zap.Error(err))
		}
	}

	// upcoming lessons, open for enrollment
	if _, err := lessons.CreateLesson(ctx, time.Now().Add(48*time.Hour), time.Hour, john.ID, 5); err != nil {
		logger.Fatal("Seed lesson", zap.Error(err))
	}
	if _, err := lessons.CreateLesson(ctx, time.Now().Add(72*time.Hour), 90*time.Minute, maria.ID, 3); err != nil {
		logger.Fatal("Seed lesson", zap.Error(err))
	}

	// one lesson played through to finished and rated
	past, err := lessons.CreateLesson(ctx, time.Now().Add(-24*time.Hour), time.Hour, john.ID, 5)
	if err != nil {
		logger.Fatal("Seed lesson", zap.Error(err))
	}
	if err := lessons.EnrollClient(ctx, past.ID, alice.ID); err != nil {
		logger.Fatal("Seed enroll", zap.Error(err))
	}
	if err := lessons.EnrollClient(ctx, past.ID, bob.ID); err != nil {
		logger.Fatal("Seed enroll", zap.Error(err))
	}
	if err := lessons.StartLesson(ctx, past.ID); err != nil {
		logger.Fatal("Seed start", zap.Error(err))
	}
	if err := lessons.FinishLesson(ctx, past.ID); err != nil {
		logger.Fatal("Seed finish", zap.Error(err))
	}
	if _, err := ratings.RateInstructor(ctx, past.ID, alice.ID, 5); err != nil {
		logger.Fatal("Seed rating", zap.Error(err))
	}
	if _, err := ratings.RateInstructor(ctx, past.ID, bob.ID, 4); err != nil {
		logger.Fatal("Seed rating", zap.Error(err))
	}

	logger.Info("Seed data created",
		zap.String("instructor_john", john.ID.String()),
		zap.String("instructor_maria", maria.ID.String()),
		zap.String("clerk", clerk.ID.String()),
	)
}
