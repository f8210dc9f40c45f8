package impl

import (
	"context"
	"log/slog"

	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/usecase"
)

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	donorRepo repository.DonorRepository
	logger    *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(donorRepo repository.DonorRepository, logger *slog.Logger) usecase.InventoryUsecase {
	return &inventoryService{
		donorRepo: donorRepo,
		logger:    logger,
	}
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BloodStock aggregates donor counts per blood group across all records.
// Every canonical blood group appears in the result, zero when absent, so
// dashboards render a stable grid. Non-canonical labels found in stored
// records are reported under their own key rather than discarded.
func (srv *inventoryService) BloodStock(ctx context.Context) (*usecase.BloodStock, error) {
	srv.log(ctx).Debug("Aggregating blood stock")

	donors, err := srv.donorRepo.ListAll(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "listing donors for aggregation")
	}

	counts := countByBloodGroup(donors)

	stock := &usecase.BloodStock{Units: make(map[string]int, len(entity.BloodGroups))}
	for _, group := range entity.BloodGroups {
		stock.Units[group] = counts[group]
	}

	for group, count := range counts {
		stock.Units[group] = count
		stock.Total += count
	}

	return stock, nil
}

// countByBloodGroup tallies donors per blood group label. Records with an
// empty label are skipped; they carry no aggregable information.
func countByBloodGroup(donors []*entity.Donor) map[string]int {
	counts := make(map[string]int)
	for _, donor := range donors {
		if donor.BloodGroup == "" {
			continue
		}

		counts[donor.BloodGroup]++
	}

	return counts
}
