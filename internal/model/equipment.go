package model

import (
	"time"

	"github.com/google/uuid"
)

// Equipment is a single rentable item (skis, snowboard, helmet). InUse is
// the busy/free flag toggled by the rental service.
type Equipment struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Size      string    `json:"size"`
	Cost      int       `json:"cost"`
	InUse     bool      `json:"in_use"`
	CreatedAt time.Time `json:"created_at"`
}
