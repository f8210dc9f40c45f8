package impl

import (
	"context"
	"testing"

	"lifeline/internal/domain/entity"
	mockRepo "lifeline/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixtures() []*entity.Donor {
	return []*entity.Donor{
		{ID: "doc-1", Name: "Asha", BloodGroup: "A+", Mobile: "9876543210"},
		{ID: "doc-2", Name: "Rahul", BloodGroup: "B-", Mobile: "8765432109"},
	}
}

func TestMatchDonors(t *testing.T) {
	donors := searchFixtures()

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "blood group ignoring case", query: "a+", wantIDs: []string{"doc-1"}},
		{name: "name ignoring case", query: "asha", wantIDs: []string{"doc-1"}},
		{name: "mobile substring", query: "987", wantIDs: []string{"doc-1"}},
		{name: "uppercase name", query: "RAHUL", wantIDs: []string{"doc-2"}},
		{name: "shared name fragment", query: "a", wantIDs: []string{"doc-1", "doc-2"}},
		{name: "no match", query: "O-", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := matchDonors(tt.query, donors)

			ids := make([]string, 0, len(matched))
			for _, donor := range matched {
				ids = append(ids, donor.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestMatchDonors_PreservesInputOrder(t *testing.T) {
	donors := []*entity.Donor{
		{ID: "doc-3", Name: "Anita"},
		{ID: "doc-1", Name: "Asha"},
		{ID: "doc-2", Name: "Aruna"},
	}

	matched := matchDonors("a", donors)
	require.Len(t, matched, 3)
	assert.Equal(t, "doc-3", matched[0].ID)
	assert.Equal(t, "doc-1", matched[1].ID)
	assert.Equal(t, "doc-2", matched[2].ID)
}

func TestSearchService_Search(t *testing.T) {
	donorRepo := mockRepo.NewMockDonorRepository(t)
	service := NewSearchService(donorRepo, newDiscardLogger())

	ctx := context.Background()
	donorRepo.EXPECT().
		ListAll(ctx).
		Return(searchFixtures(), nil)

	donors, err := service.Search(ctx, "asha")
	require.NoError(t, err)
	require.Len(t, donors, 1)
	assert.Equal(t, "Asha", donors[0].Name)
}

func TestSearchService_Search_BlankQuery(t *testing.T) {
	donorRepo := mockRepo.NewMockDonorRepository(t)
	service := NewSearchService(donorRepo, newDiscardLogger())

	ctx := context.Background()

	for _, query := range []string{"", "   ", "\t"} {
		donors, err := service.Search(ctx, query)
		require.NoError(t, err)
		assert.Empty(t, donors)
	}

	// A blank query never reaches the store.
	donorRepo.AssertNotCalled(t, "ListAll", ctx)
}

func TestSearchService_Search_ListError(t *testing.T) {
	donorRepo := mockRepo.NewMockDonorRepository(t)
	service := NewSearchService(donorRepo, newDiscardLogger())

	ctx := context.Background()
	donorRepo.EXPECT().
		ListAll(ctx).
		Return(nil, errors.New("query failed"))

	donors, err := service.Search(ctx, "asha")
	assert.Error(t, err)
	assert.Nil(t, donors)
}
