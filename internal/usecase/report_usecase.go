package usecase

import (
	"context"

	"lifeline/internal/domain/entity"
)

// ExportResult describes a history report written to local storage.
type ExportResult struct {
	FilePath string `json:"file_path"`
	Records  int    `json:"records"`
	Size     int64  `json:"size"`
}

// ReportUsecase defines the interface for exporting donor history reports.
type ReportUsecase interface {
	// ExportHistory renders the account's donor history as a document and
	// writes it to local storage. An account with no records is refused
	// rather than producing an empty report.
	ExportHistory(ctx context.Context, account *entity.Account) (*ExportResult, error)
}
