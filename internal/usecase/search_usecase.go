package usecase

import (
	"context"

	"lifeline/internal/domain/entity"
)

// SearchUsecase defines the interface for donor search.
type SearchUsecase interface {
	// Search scans the full record set for the query. A blank query means
	// "no search performed" and returns an empty result, not all records.
	Search(ctx context.Context, query string) ([]*entity.Donor, error)
}
