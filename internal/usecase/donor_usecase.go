// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"lifeline/internal/domain/entity"
)

// DonorUsecase defines the interface for donor-record business operations.
type DonorUsecase interface {
	// Register creates a donor record owned by ownerID. Input contents are
	// expected to be validated at the delivery boundary before this call.
	Register(ctx context.Context, ownerID string, input *RegisterDonorInput) (*entity.Donor, error)

	// History returns the owner's records, newest first.
	History(ctx context.Context, ownerID string) ([]*entity.Donor, error)

	// WatchHistory subscribes to the owner's records; each emission is a
	// full snapshot that replaces the previous one.
	WatchHistory(ctx context.Context, ownerID string) (<-chan []*entity.Donor, error)

	// Update merges the provided fields into an existing record.
	Update(ctx context.Context, id string, input *UpdateDonorInput) error

	// Delete removes a single record.
	Delete(ctx context.Context, id string) error

	// PurgeHistory deletes every record owned by ownerID and reports the
	// count. An empty history purges zero records successfully.
	PurgeHistory(ctx context.Context, ownerID string) (int, error)

	// ContactQR renders a donor's contact card as a QR code PNG.
	ContactQR(ctx context.Context, id string) ([]byte, error)
}

// --- Input DTOs ---

// RegisterDonorInput defines the data required to register a donor.
type RegisterDonorInput struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	Mobile     string `json:"mobile"`
	Age        string `json:"age"`
	BloodGroup string `json:"blood_group"`
}

// UpdateDonorInput defines the editable fields of a donor record.
type UpdateDonorInput struct {
	Name       *string `json:"name,omitempty"`
	BloodGroup *string `json:"blood_group,omitempty"`
	Mobile     *string `json:"mobile,omitempty"`
}
