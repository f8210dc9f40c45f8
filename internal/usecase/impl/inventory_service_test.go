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

func TestCountByBloodGroup(t *testing.T) {
	donors := []*entity.Donor{
		{Name: "Asha", BloodGroup: "A+"},
		{Name: "Rahul", BloodGroup: "B-"},
		{Name: "Meera", BloodGroup: "A+"},
		{Name: "Old Record", BloodGroup: ""},
	}

	counts := countByBloodGroup(donors)

	assert.Equal(t, map[string]int{"A+": 2, "B-": 1}, counts)

	total := 0
	for _, count := range counts {
		total += count
	}
	assert.Equal(t, 3, total, "counts sum to the number of labelled records")
}

func TestCountByBloodGroup_Empty(t *testing.T) {
	assert.Empty(t, countByBloodGroup(nil))
	assert.Empty(t, countByBloodGroup([]*entity.Donor{}))
}

func TestCountByBloodGroup_LegacyLabelKeptAsIs(t *testing.T) {
	donors := []*entity.Donor{
		{Name: "Legacy", BloodGroup: "a positive"},
	}

	counts := countByBloodGroup(donors)
	assert.Equal(t, map[string]int{"a positive": 1}, counts)
}

func TestInventoryService_BloodStock(t *testing.T) {
	donorRepo := mockRepo.NewMockDonorRepository(t)
	service := NewInventoryService(donorRepo, newDiscardLogger())

	ctx := context.Background()
	donorRepo.EXPECT().
		ListAll(ctx).
		Return([]*entity.Donor{
			{Name: "Asha", BloodGroup: "A+"},
			{Name: "Rahul", BloodGroup: "B-"},
			{Name: "Meera", BloodGroup: "A+"},
			{Name: "Unlabelled", BloodGroup: ""},
		}, nil)

	stock, err := service.BloodStock(ctx)
	require.NoError(t, err)
	require.NotNil(t, stock)

	assert.Equal(t, 3, stock.Total)
	assert.Equal(t, 2, stock.Units["A+"])
	assert.Equal(t, 1, stock.Units["B-"])

	// Dashboard grid stays stable: every canonical group is present.
	for _, group := range entity.BloodGroups {
		_, ok := stock.Units[group]
		assert.True(t, ok, "missing canonical group %s", group)
	}
	assert.Zero(t, stock.Units["AB-"])
}

func TestInventoryService_BloodStock_ListError(t *testing.T) {
	donorRepo := mockRepo.NewMockDonorRepository(t)
	service := NewInventoryService(donorRepo, newDiscardLogger())

	ctx := context.Background()
	donorRepo.EXPECT().
		ListAll(ctx).
		Return(nil, errors.New("query failed"))

	stock, err := service.BloodStock(ctx)
	assert.Error(t, err)
	assert.Nil(t, stock)
}
