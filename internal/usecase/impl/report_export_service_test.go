package impl

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/errors"
	mockRepo "lifeline/internal/mocks/repository"
	mockSvc "lifeline/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportExportService_ExportHistory(t *testing.T) {
	donorRepo := mockRepo.NewMockDonorRepository(t)
	reportSvc := mockSvc.NewMockReportService(t)
	outputDir := t.TempDir()
	service := NewReportExportService(donorRepo, reportSvc, outputDir, newDiscardLogger())

	ctx := context.Background()
	account := &entity.Account{UID: "user-1", Email: "asha@example.com", DisplayName: "Asha"}
	records := []*entity.Donor{{ID: "doc-1", Name: "Asha"}}

	donorRepo.EXPECT().
		ListByOwner(ctx, "user-1").
		Return(records, nil)

	reportSvc.EXPECT().
		Generate(records, "Asha").
		Return([]byte("%PDF-1.4 fake"), nil)

	result, err := service.ExportHistory(ctx, account)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 1, result.Records)
	assert.Equal(t, int64(len("%PDF-1.4 fake")), result.Size)

	base := filepath.Base(result.FilePath)
	assert.True(t, strings.HasPrefix(base, "DonorHistory_"))
	assert.True(t, strings.HasSuffix(base, ".pdf"))

	written, err := os.ReadFile(result.FilePath)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), written)

	// No temp files left behind.
	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestReportExportService_ExportHistory_Empty(t *testing.T) {
	donorRepo := mockRepo.NewMockDonorRepository(t)
	reportSvc := mockSvc.NewMockReportService(t)
	service := NewReportExportService(donorRepo, reportSvc, t.TempDir(), newDiscardLogger())

	ctx := context.Background()
	account := &entity.Account{UID: "user-1"}

	donorRepo.EXPECT().
		ListByOwner(ctx, "user-1").
		Return([]*entity.Donor{}, nil)

	result, err := service.ExportHistory(ctx, account)
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrReportEmpty))
	reportSvc.AssertNotCalled(t, "Generate")
}

func TestReportExportService_ExportHistory_ListError(t *testing.T) {
	donorRepo := mockRepo.NewMockDonorRepository(t)
	reportSvc := mockSvc.NewMockReportService(t)
	service := NewReportExportService(donorRepo, reportSvc, t.TempDir(), newDiscardLogger())

	ctx := context.Background()

	donorRepo.EXPECT().
		ListByOwner(ctx, "user-1").
		Return(nil, errors.New("query failed"))

	result, err := service.ExportHistory(ctx, &entity.Account{UID: "user-1"})
	assert.Error(t, err)
	assert.Nil(t, result)

	var storeErr *domainerrors.StoreExecuteError
	assert.True(t, errors.As(err, &storeErr))
}

func TestReportExportService_ExportHistory_GenerateError(t *testing.T) {
	donorRepo := mockRepo.NewMockDonorRepository(t)
	reportSvc := mockSvc.NewMockReportService(t)
	service := NewReportExportService(donorRepo, reportSvc, t.TempDir(), newDiscardLogger())

	ctx := context.Background()
	account := &entity.Account{UID: "user-1", DisplayName: "Asha"}
	records := []*entity.Donor{{ID: "doc-1"}}

	donorRepo.EXPECT().
		ListByOwner(ctx, "user-1").
		Return(records, nil)

	reportSvc.EXPECT().
		Generate(records, "Asha").
		Return(nil, errors.New("render failed"))

	result, err := service.ExportHistory(ctx, account)
	assert.Error(t, err)
	assert.Nil(t, result)

	var reportErr *domainerrors.ReportGenerateError
	assert.True(t, errors.As(err, &reportErr))
}
