// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	"lifeline/internal/usecase"

	"github.com/pkg/errors"
)

// donorService implements the DonorUsecase interface.
type donorService struct {
	donorRepo repository.DonorRepository
	qrSvc     service.QRCodeService
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewDonorService is the constructor for donorService.
func NewDonorService(
	donorRepo repository.DonorRepository,
	qrSvc service.QRCodeService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.DonorUsecase {
	return &donorService{
		donorRepo: donorRepo,
		qrSvc:     qrSvc,
		publisher: publisher,
		logger:    logger,
	}
}

func (srv *donorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new donor record owned by ownerID. The record store
// assigns the ID and creation timestamp; contents were validated upstream.
func (srv *donorService) Register(ctx context.Context, ownerID string, input *usecase.RegisterDonorInput) (*entity.Donor, error) {
	srv.log(ctx).Info("Registering donor", "ownerID", ownerID, "bloodGroup", input.BloodGroup)

	donor := &entity.Donor{
		Name:       input.Name,
		Address:    input.Address,
		Mobile:     input.Mobile,
		Age:        input.Age,
		BloodGroup: input.BloodGroup,
		OwnerID:    ownerID,
	}

	id, err := srv.donorRepo.Create(ctx, donor)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "creating donor record")
	}

	srv.publish(ctx, &service.DonorEvent{
		Type:       service.EventDonorRegistered,
		DonorID:    id,
		OwnerID:    ownerID,
		BloodGroup: donor.BloodGroup,
	})

	return donor, nil
}

// History returns the owner's donor records, newest first.
func (srv *donorService) History(ctx context.Context, ownerID string) ([]*entity.Donor, error) {
	srv.log(ctx).Debug("Listing donor history", "ownerID", ownerID)

	donors, err := srv.donorRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "listing donor history")
	}

	return donors, nil
}

// WatchHistory subscribes to the owner's records. Each emission is a full
// snapshot; consumers replace their state with it.
func (srv *donorService) WatchHistory(ctx context.Context, ownerID string) (<-chan []*entity.Donor, error) {
	srv.log(ctx).Debug("Watching donor history", "ownerID", ownerID)

	snapshots, err := srv.donorRepo.WatchByOwner(ctx, ownerID)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "watching donor history")
	}

	return snapshots, nil
}

// Update merges the provided fields into an existing record.
func (srv *donorService) Update(ctx context.Context, id string, input *usecase.UpdateDonorInput) error {
	srv.log(ctx).Info("Updating donor record", "id", id)

	update := repository.DonorUpdate{
		Name:       input.Name,
		BloodGroup: input.BloodGroup,
		Mobile:     input.Mobile,
	}

	if err := srv.donorRepo.Update(ctx, id, update); err != nil {
		if errors.Is(err, repository.ErrDonorNotFound) {
			return errors.Wrap(domainerrors.ErrDonorNotFound, "update target missing")
		}

		return domainerrors.NewStoreExecuteError(err, "updating donor record")
	}

	return nil
}

// Delete removes a single donor record.
func (srv *donorService) Delete(ctx context.Context, id string) error {
	srv.log(ctx).Info("Deleting donor record", "id", id)

	if err := srv.donorRepo.Delete(ctx, id); err != nil {
		return domainerrors.NewStoreExecuteError(err, "deleting donor record")
	}

	return nil
}

// PurgeHistory deletes every record owned by ownerID. Zero records is a
// successful no-op, reported as such.
func (srv *donorService) PurgeHistory(ctx context.Context, ownerID string) (int, error) {
	srv.log(ctx).Info("Purging donor history", "ownerID", ownerID)

	deleted, err := srv.donorRepo.DeleteByOwner(ctx, ownerID)
	if err != nil {
		return deleted, domainerrors.NewStoreExecuteError(err, "purging donor history")
	}

	if deleted > 0 {
		srv.publish(ctx, &service.DonorEvent{
			Type:    service.EventHistoryPurged,
			OwnerID: ownerID,
			Deleted: deleted,
		})
	}

	return deleted, nil
}

// ContactQR renders a donor's contact card as a QR code PNG.
func (srv *donorService) ContactQR(ctx context.Context, id string) ([]byte, error) {
	donor, err := srv.donorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDonorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDonorNotFound, "contact card target missing")
		}

		return nil, domainerrors.NewStoreExecuteError(err, "loading donor record")
	}

	png, err := srv.qrSvc.GenerateContactQR(donor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate contact QR")
	}

	return png, nil
}

// publish sends a registry event. Publishing is ancillary to the store
// write: failures are logged, never surfaced to the caller.
func (srv *donorService) publish(ctx context.Context, event *service.DonorEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.publisher.PublishDonorEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("failed to publish donor event",
			"type", event.Type,
			"error", err,
		)
	}
}
