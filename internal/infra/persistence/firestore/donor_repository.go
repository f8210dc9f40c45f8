package firestore

import (
	"context"
	"log/slog"
	"time"

	"lifeline/config"
	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/errors"
	"lifeline/internal/infra/persistence/model"

	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cloud.google.com/go/firestore"
)

type donorRepository struct {
	client     *firestore.Client
	collection string
	logger     *slog.Logger
}

// NewDonorRepository creates a Firestore-backed DonorRepository.
func NewDonorRepository(client *firestore.Client, cfg *config.Config, logger *slog.Logger) repository.DonorRepository {
	return &donorRepository{
		client:     client,
		collection: cfg.Firebase.Collection,
		logger:     logger,
	}
}

func (r *donorRepository) records() *firestore.CollectionRef {
	return r.client.Collection(r.collection)
}

// Create assigns a fresh document ID and creation timestamp, then writes the
// record. The assigned values are written back into the entity.
func (r *donorRepository) Create(ctx context.Context, donor *entity.Donor) (string, error) {
	ref := r.records().NewDoc()
	donor.ID = ref.ID
	donor.CreatedAt = time.Now().UTC()

	if _, err := ref.Create(ctx, model.FromDonorEntity(donor)); err != nil {
		return "", errors.Wrap(err, "failed to create donor record")
	}

	return ref.ID, nil
}

func (r *donorRepository) FindByID(ctx context.Context, id string) (*entity.Donor, error) {
	doc, err := r.records().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrDonorNotFound
		}

		return nil, errors.Wrapf(err, "failed to get donor record %s", id)
	}

	return decodeDonor(doc)
}

func (r *donorRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Donor, error) {
	query := r.records().
		Where("userId", "==", ownerID).
		OrderBy("timestamp", firestore.Desc)

	return collectDonors(query.Documents(ctx))
}

// WatchByOwner attaches a snapshot listener to the owner's records and
// forwards each full result set. The goroutine exits when ctx ends or the
// listener reports an error; either way the channel is closed so consumers
// can range over it.
func (r *donorRepository) WatchByOwner(ctx context.Context, ownerID string) (<-chan []*entity.Donor, error) {
	query := r.records().
		Where("userId", "==", ownerID).
		OrderBy("timestamp", firestore.Desc)

	snapshots := query.Snapshots(ctx)
	out := make(chan []*entity.Donor, 1)

	go func() {
		defer close(out)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					r.logger.Error("donor snapshot listener failed",
						slog.String("owner_id", ownerID),
						slog.Any("error", err),
					)
				}

				return
			}

			donors, err := collectDonors(snap.Documents)
			if err != nil {
				r.logger.Error("failed to decode donor snapshot",
					slog.String("owner_id", ownerID),
					slog.Any("error", err),
				)

				continue
			}

			select {
			case out <- donors:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (r *donorRepository) ListAll(ctx context.Context) ([]*entity.Donor, error) {
	query := r.records().OrderBy("name", firestore.Asc)

	return collectDonors(query.Documents(ctx))
}

// Update merges only the provided fields into the stored document.
func (r *donorRepository) Update(ctx context.Context, id string, update repository.DonorUpdate) error {
	var updates []firestore.Update
	if update.Name != nil {
		updates = append(updates, firestore.Update{Path: "name", Value: *update.Name})
	}
	if update.BloodGroup != nil {
		updates = append(updates, firestore.Update{Path: "bloodGroup", Value: *update.BloodGroup})
	}
	if update.Mobile != nil {
		updates = append(updates, firestore.Update{Path: "mobile", Value: *update.Mobile})
	}
	if len(updates) == 0 {
		return nil
	}

	if _, err := r.records().Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrDonorNotFound
		}

		return errors.Wrapf(err, "failed to update donor record %s", id)
	}

	return nil
}

func (r *donorRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.records().Doc(id).Delete(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete donor record %s", id)
	}

	return nil
}

// DeleteByOwner batches the delete of every record owned by ownerID.
// An owner with no records is a successful no-op.
func (r *donorRepository) DeleteByOwner(ctx context.Context, ownerID string) (int, error) {
	docs := r.records().
		Where("userId", "==", ownerID).
		Select().
		Documents(ctx)

	var refs []*firestore.DocumentRef
	for {
		doc, err := docs.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return 0, errors.Wrap(err, "failed to list donor records for delete")
		}
		refs = append(refs, doc.Ref)
	}

	if len(refs) == 0 {
		return 0, nil
	}

	writer := r.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(refs))
	for _, ref := range refs {
		job, err := writer.Delete(ref)
		if err != nil {
			writer.End()

			return 0, errors.Wrap(err, "failed to enqueue donor record delete")
		}
		jobs = append(jobs, job)
	}
	writer.End()

	deleted := 0
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return deleted, errors.Wrap(err, "failed to delete donor records")
		}
		deleted++
	}

	return deleted, nil
}

func decodeDonor(doc *firestore.DocumentSnapshot) (*entity.Donor, error) {
	var m model.DonorModel
	if err := doc.DataTo(&m); err != nil {
		return nil, errors.Wrapf(err, "failed to decode donor record %s", doc.Ref.ID)
	}

	return m.ToEntity(doc.Ref.ID), nil
}

func collectDonors(docs *firestore.DocumentIterator) ([]*entity.Donor, error) {
	defer docs.Stop()

	var donors []*entity.Donor
	for {
		doc, err := docs.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate donor records")
		}

		donor, err := decodeDonor(doc)
		if err != nil {
			return nil, err
		}
		donors = append(donors, donor)
	}

	return donors, nil
}
