package impl

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	"lifeline/internal/usecase"

	"github.com/pkg/errors"
)

// reportExportService implements the ReportUsecase interface.
type reportExportService struct {
	donorRepo repository.DonorRepository
	reportSvc service.ReportService
	outputDir string
	logger    *slog.Logger
}

// NewReportExportService is the constructor for reportExportService.
func NewReportExportService(
	donorRepo repository.DonorRepository,
	reportSvc service.ReportService,
	outputDir string,
	logger *slog.Logger,
) usecase.ReportUsecase {
	return &reportExportService{
		donorRepo: donorRepo,
		reportSvc: reportSvc,
		outputDir: outputDir,
		logger:    logger,
	}
}

func (srv *reportExportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ExportHistory renders the account's donor history as a PDF file in the
// configured output directory. An empty history is an error, not an empty
// document. The file lands atomically via a temp file and rename.
func (srv *reportExportService) ExportHistory(ctx context.Context, account *entity.Account) (*usecase.ExportResult, error) {
	srv.log(ctx).Info("Exporting donor history report", "uid", account.UID)

	donors, err := srv.donorRepo.ListByOwner(ctx, account.UID)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "listing donor history for report")
	}

	if len(donors) == 0 {
		return nil, errors.Wrap(domainerrors.ErrReportEmpty, "no records for report")
	}

	pdf, err := srv.reportSvc.Generate(donors, account.ReportName())
	if err != nil {
		return nil, domainerrors.NewReportGenerateError(err, "rendering history PDF")
	}

	path, err := srv.writeReport(pdf)
	if err != nil {
		return nil, domainerrors.NewReportGenerateError(err, "writing history PDF")
	}

	srv.log(ctx).Info("Report written", "path", path, "records", len(donors), "size", len(pdf))

	return &usecase.ExportResult{
		FilePath: path,
		Records:  len(donors),
		Size:     int64(len(pdf)),
	}, nil
}

func (srv *reportExportService) writeReport(pdf []byte) (string, error) {
	if err := os.MkdirAll(srv.outputDir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create report directory")
	}

	name := fmt.Sprintf("DonorHistory_%d.pdf", time.Now().UnixMilli())
	path := filepath.Join(srv.outputDir, name)

	tmp, err := os.CreateTemp(srv.outputDir, name+".tmp*")
	if err != nil {
		return "", errors.Wrap(err, "failed to create temp report file")
	}

	if _, err := tmp.Write(pdf); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return "", errors.Wrap(err, "failed to write temp report file")
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return "", errors.Wrap(err, "failed to close temp report file")
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())

		return "", errors.Wrap(err, "failed to move report into place")
	}

	return path, nil
}
