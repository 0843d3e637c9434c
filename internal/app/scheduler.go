package app

import (
	"context"
	"time"

	"github.com/Freeeeeet/skipro_backend/internal/service"
	"go.uber.org/zap"
)

const overdueCheckInterval = time.Hour

// Scheduler runs background maintenance tasks. The only task for now walks
// the active rentals and logs the ones past their planned return date so
// the rental desk can chase them up.
type Scheduler struct {
	rentalService *service.RentalService
	logger        *zap.Logger
	stopChan      chan struct{}
}

func NewScheduler(rentalService *service.RentalService, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		rentalService: rentalService,
		logger:        logger,
		stopChan:      make(chan struct{}),
	}
}

// Start launches the background tasks.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler")
	go s.runOverdueRentalTask(ctx)
}

// Stop stops the background tasks.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

func (s *Scheduler) runOverdueRentalTask(ctx context.Context) {
	// first check right at startup
	s.reportOverdueRentals(ctx)

	ticker := time.NewTicker(overdueCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.reportOverdueRentals(ctx)
		case <-s.stopChan:
			s.logger.Info("Overdue rental task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Overdue rental task cancelled")
			return
		}
	}
}

func (s *Scheduler) reportOverdueRentals(ctx context.Context) {
	rentals, err := s.rentalService.GetOverdueRentals(ctx)
	if err != nil {
		s.logger.Error("Failed to check overdue rentals", zap.Error(err))
		return
	}

	for _, rental := range rentals {
		s.logger.Warn("Rental overdue",
			zap.String("rental_id", rental.ID.String()),
			zap.String("equipment_id", rental.EquipmentID.String()),
			zap.String("client_id", rental.ClientID.String()),
			zap.Time("planned_return_at", rental.PlannedReturnAt),
		)
	}
}
