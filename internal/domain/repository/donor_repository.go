// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"lifeline/internal/domain/entity"
)

// ErrDonorNotFound is a domain-specific error returned when a donor record is not found.
var ErrDonorNotFound = errors.New("donor record not found")

// DonorUpdate is a partial update of a donor record. Nil fields are left
// untouched; only name, blood group and mobile are editable after creation.
type DonorUpdate struct {
	Name       *string
	BloodGroup *string
	Mobile     *string
}

// DonorRepository defines the standard operations for donor record persistence.
// The application layer will depend on this interface, not the concrete implementation.
type DonorRepository interface {
	// Create persists a new donor record, assigning its ID and creation
	// timestamp. The assigned values are written back into the entity and
	// the new ID is returned. Field contents are not validated here.
	Create(ctx context.Context, donor *entity.Donor) (string, error)

	// FindByID retrieves a single donor record by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Donor, error)

	// ListByOwner retrieves every record created by the given owner,
	// ordered by creation time descending.
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Donor, error)

	// WatchByOwner subscribes to the owner's records. Each emission is a
	// full snapshot in creation-time-descending order; consumers must
	// replace their view with it, never merge. The channel is closed when
	// ctx ends or the underlying listener dies.
	WatchByOwner(ctx context.Context, ownerID string) (<-chan []*entity.Donor, error)

	// ListAll retrieves the full record set ordered by name ascending.
	// It feeds the aggregator and the search scan; no owner filter.
	ListAll(ctx context.Context) ([]*entity.Donor, error)

	// Update merges the given fields into an existing record.
	// Returns ErrDonorNotFound if no record has the given ID.
	Update(ctx context.Context, id string, update DonorUpdate) error

	// Delete removes a single record by ID.
	Delete(ctx context.Context, id string) error

	// DeleteByOwner removes every record created by the given owner in one
	// batch and reports how many were deleted. Zero records is a success
	// with a zero count, never an error.
	DeleteByOwner(ctx context.Context, ownerID string) (int, error)
}
