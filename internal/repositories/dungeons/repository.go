// Package dungeons provides storage for generated dungeon layouts
package dungeons

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dungeonsmock github.com/KirkDiggler/rpg-dungeon/internal/repositories/dungeons Repository

// DefaultTTL is how long a layout lives when SaveInput.TTL is zero
const DefaultTTL = 24 * time.Hour

// Record is a stored layout
type Record struct {
	ID        string          `json:"id"`
	Layout    *dungeon.Layout `json:"layout"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// SaveInput contains parameters for storing a layout
type SaveInput struct {
	ID     string
	Layout *dungeon.Layout
	TTL    time.Duration
}

// SaveOutput contains the stored record
type SaveOutput struct {
	Record *Record
}

// GetInput contains parameters for retrieving a layout
type GetInput struct {
	ID string
}

// GetOutput contains the retrieved record
type GetOutput struct {
	Record *Record
}

// DeleteInput contains parameters for deleting a layout
type DeleteInput struct {
	ID string
}

// DeleteOutput reports whether anything was removed
type DeleteOutput struct {
	Deleted bool
}

// Repository defines the interface for layout storage
type Repository interface {
	// Save stores a layout under ID, replacing any previous one
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a layout. Expired layouts are reported as not found.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a layout. Deleting a missing id is not an error.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

const (
	errIDEmpty   = "dungeon ID cannot be empty"
	errLayoutNil = "layout cannot be nil"
)

func validateSave(input SaveInput) error {
	if input.ID == "" {
		return errors.InvalidArgument(errIDEmpty)
	}
	if input.Layout == nil {
		return errors.InvalidArgument(errLayoutNil)
	}
	if input.TTL < 0 {
		return errors.InvalidArgument("ttl must not be negative")
	}
	return nil
}
