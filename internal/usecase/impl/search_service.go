package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/usecase"
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	donorRepo repository.DonorRepository
	logger    *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(donorRepo repository.DonorRepository, logger *slog.Logger) usecase.SearchUsecase {
	return &searchService{
		donorRepo: donorRepo,
		logger:    logger,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search matches donors across name, blood group, and mobile. A blank
// query short-circuits to an empty result without touching the store.
func (srv *searchService) Search(ctx context.Context, query string) ([]*entity.Donor, error) {
	if strings.TrimSpace(query) == "" {
		return []*entity.Donor{}, nil
	}

	srv.log(ctx).Debug("Searching donors", "query", query)

	donors, err := srv.donorRepo.ListAll(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "listing donors for search")
	}

	return matchDonors(query, donors), nil
}

// matchDonors filters donors against the query. A donor matches when the
// name contains the query ignoring case, the blood group equals the query
// ignoring case, or the mobile contains the query exactly. Input order is
// preserved.
func matchDonors(query string, donors []*entity.Donor) []*entity.Donor {
	matched := make([]*entity.Donor, 0, len(donors))
	lowered := strings.ToLower(query)

	for _, donor := range donors {
		switch {
		case strings.Contains(strings.ToLower(donor.Name), lowered):
			matched = append(matched, donor)
		case strings.EqualFold(donor.BloodGroup, query):
			matched = append(matched, donor)
		case strings.Contains(donor.Mobile, query):
			matched = append(matched, donor)
		}
	}

	return matched
}
