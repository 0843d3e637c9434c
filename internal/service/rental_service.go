package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/skipro_backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EquipmentStore is the persistence contract for the equipment catalog.
// SetInUse reports false when the flag already had the requested value,
// which is how a concurrent double-rent loses.
type EquipmentStore interface {
	Create(ctx context.Context, equipment *model.Equipment) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Equipment, error)
	GetAll(ctx context.Context) ([]*model.Equipment, error)
	SetInUse(ctx context.Context, id uuid.UUID, inUse bool) (bool, error)
}

// RentalStore is the persistence contract for rentals.
type RentalStore interface {
	Create(ctx context.Context, rental *model.Rental) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Rental, error)
	GetActiveByClient(ctx context.Context, clientID uuid.UUID) ([]*model.Rental, error)
	GetOverdue(ctx context.Context, now time.Time) ([]*model.Rental, error)
	MarkReturned(ctx context.Context, id uuid.UUID, returnedAt time.Time) (bool, error)
}

// EmployeeStore is the staff roster contract.
type EmployeeStore interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	GetByRole(ctx context.Context, role model.EmployeeRole) ([]*model.Employee, error)
	GetAll(ctx context.Context) ([]*model.Employee, error)
	IncrementRentalsHandled(ctx context.Context, id uuid.UUID) error
}

// RentalService manages equipment checkout and return.
type RentalService struct {
	equipment EquipmentStore
	rentals   RentalStore
	clients   ClientStore
	employees EmployeeStore
	logger    *zap.Logger
}

func NewRentalService(
	equipment EquipmentStore,
	rentals RentalStore,
	clients ClientStore,
	employees EmployeeStore,
	logger *zap.Logger,
) *RentalService {
	return &RentalService{
		equipment: equipment,
		rentals:   rentals,
		clients:   clients,
		employees: employees,
		logger:    logger,
	}
}

// RentEquipment checks out a free equipment item to a client until the
// planned return date. When a clerk processes the rental their handled
// counter goes up.
func (s *RentalService) RentEquipment(ctx context.Context, clientID, equipmentID uuid.UUID, plannedReturnAt time.Time, clerkID *uuid.UUID) (*model.Rental, error) {
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	equipment, err := s.equipment.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("get equipment: %w", err)
	}
	if equipment == nil {
		return nil, ErrEquipmentNotFound
	}

	if clerkID != nil {
		clerk, err := s.employees.GetByID(ctx, *clerkID)
		if err != nil {
			return nil, fmt.Errorf("get clerk: %w", err)
		}
		if clerk == nil || clerk.Role != model.RoleRentalClerk {
			return nil, ErrClerkNotFound
		}
	}

	// the busy flag flips only if it was free, so a concurrent rent of the
	// same item fails here instead of double-booking
	reserved, err := s.equipment.SetInUse(ctx, equipmentID, true)
	if err != nil {
		return nil, fmt.Errorf("reserve equipment: %w", err)
	}
	if !reserved {
		return nil, model.ErrEquipmentInUse
	}

	rental := &model.Rental{
		ID:              uuid.New(),
		EquipmentID:     equipmentID,
		ClientID:        clientID,
		ClerkID:         clerkID,
		Status:          model.RentalStatusActive,
		Cost:            equipment.Cost,
		PlannedReturnAt: plannedReturnAt,
	}

	if err := s.rentals.Create(ctx, rental); err != nil {
		// release the item so a failed insert does not strand it as busy
		if _, freeErr := s.equipment.SetInUse(ctx, equipmentID, false); freeErr != nil {
			s.logger.Error("Failed to release equipment after rental error",
				zap.String("equipment_id", equipmentID.String()),
				zap.Error(freeErr),
			)
		}
		return nil, fmt.Errorf("create rental: %w", err)
	}

	if clerkID != nil {
		if err := s.employees.IncrementRentalsHandled(ctx, *clerkID); err != nil {
			return nil, fmt.Errorf("increment rentals handled: %w", err)
		}
	}

	s.logger.Info("Equipment rented",
		zap.String("rental_id", rental.ID.String()),
		zap.String("equipment_id", equipmentID.String()),
		zap.String("client_id", clientID.String()),
	)

	return rental, nil
}

// ReturnEquipment closes an active rental and frees the equipment.
func (s *RentalService) ReturnEquipment(ctx context.Context, rentalID uuid.UUID) error {
	rental, err := s.rentals.GetByID(ctx, rentalID)
	if err != nil {
		return fmt.Errorf("get rental: %w", err)
	}
	if rental == nil {
		return ErrRentalNotFound
	}

	returned, err := s.rentals.MarkReturned(ctx, rentalID, time.Now())
	if err != nil {
		return fmt.Errorf("mark returned: %w", err)
	}
	if !returned {
		return model.ErrRentalNotActive
	}

	if _, err := s.equipment.SetInUse(ctx, rental.EquipmentID, false); err != nil {
		return fmt.Errorf("release equipment: %w", err)
	}

	s.logger.Info("Equipment returned",
		zap.String("rental_id", rentalID.String()),
		zap.String("equipment_id", rental.EquipmentID.String()),
	)

	return nil
}

// GetActiveRentalsForClient lists the client's open rentals.
func (s *RentalService) GetActiveRentalsForClient(ctx context.Context, clientID uuid.UUID) ([]*model.Rental, error) {
	return s.rentals.GetActiveByClient(ctx, clientID)
}

// GetOverdueRentals lists active rentals whose planned return date has
// passed.
func (s *RentalService) GetOverdueRentals(ctx context.Context) ([]*model.Rental, error) {
	return s.rentals.GetOverdue(ctx, time.Now())
}

// AddEquipment adds an item to the catalog.
func (s *RentalService) AddEquipment(ctx context.Context, name, size string, cost int) (*model.Equipment, error) {
	equipment := &model.Equipment{
		ID:   uuid.New(),
		Name: name,
		Size: size,
		Cost: cost,
	}

	if err := s.equipment.Create(ctx, equipment); err != nil {
		return nil, fmt.Errorf("create equipment: %w", err)
	}

	return equipment, nil
}

// GetAllEquipment lists the catalog.
func (s *RentalService) GetAllEquipment(ctx context.Context) ([]*model.Equipment, error) {
	return s.equipment.GetAll(ctx)
}
