package service

import "lifeline/internal/domain/entity"

// ReportService renders a donor record list into a static paginated
// document: a title block, an attribution line, then one fixed block per
// record in input order. An empty list yields just the title and
// attribution.
type ReportService interface {
	// Generate serializes the records into document bytes attributed to
	// generatedBy. It performs no I/O of its own.
	Generate(donors []*entity.Donor, generatedBy string) ([]byte, error)
}
