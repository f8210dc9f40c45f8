package report

import (
	"testing"
	"time"

	"lifeline/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFService_Generate(t *testing.T) {
	svc := NewPDFService()

	donors := []*entity.Donor{
		{
			ID:         "d1",
			Name:       "Asha",
			Address:    "12 Lake Road",
			Mobile:     "9876543210",
			Age:        "29",
			BloodGroup: "A+",
			CreatedAt:  time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:         "d2",
			Name:       "Rahul",
			Mobile:     "1234567890",
			Age:        "41",
			BloodGroup: "B+",
			CreatedAt:  time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC),
		},
	}

	data, err := svc.Generate(donors, "Jane")

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFService_Generate_EmptyHistory(t *testing.T) {
	svc := NewPDFService()

	// Title and attribution only, no per-record blocks.
	data, err := svc.Generate(nil, "Jane")

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))

	withRecords, err := svc.Generate([]*entity.Donor{{Name: "Asha", CreatedAt: time.Now()}}, "Jane")
	require.NoError(t, err)
	assert.Less(t, len(data), len(withRecords))
}
