package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type RentalStatus string

const (
	RentalStatusActive   RentalStatus = "active"
	RentalStatusReturned RentalStatus = "returned"
)

var (
	ErrEquipmentInUse  = errors.New("equipment is already rented out")
	ErrRentalNotActive = errors.New("rental is not active")
)

// Rental is one equipment checkout by a client, optionally processed by a
// rental clerk.
type Rental struct {
	ID              uuid.UUID    `json:"id"`
	EquipmentID     uuid.UUID    `json:"equipment_id"`
	ClientID        uuid.UUID    `json:"client_id"`
	ClerkID         *uuid.UUID   `json:"clerk_id,omitempty"`
	Status          RentalStatus `json:"status"`
	Cost            int          `json:"cost"`
	RentedAt        time.Time    `json:"rented_at"`
	PlannedReturnAt time.Time    `json:"planned_return_at"`
	ReturnedAt      *time.Time   `json:"returned_at,omitempty"`
}

// Return closes an active rental. Returning twice is an error.
func (r *Rental) Return(at time.Time) error {
	if r.Status != RentalStatusActive {
		return ErrRentalNotActive
	}
	r.Status = RentalStatusReturned
	r.ReturnedAt = &at
	return nil
}
