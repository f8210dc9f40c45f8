// Package report renders donor history exports as PDF documents.
package report

import (
	"bytes"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/service"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const timeLayout = "2006-01-02 15:04:05"

type pdfService struct{}

// NewPDFService creates the PDF report renderer.
func NewPDFService() service.ReportService {
	return &pdfService{}
}

// Generate produces the linear history document: title, attribution, then a
// fixed six-line block plus separator per record, in input order. Pagination
// is whatever the renderer does on its own.
func (s *pdfService) Generate(donors []*entity.Donor, generatedBy string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.MultiCell(0, 10, "People Details History", "", "L", false)

	pdf.SetFont("Helvetica", "", 14)
	pdf.MultiCell(0, 8, "Generated by: "+generatedBy, "", "L", false)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	for _, donor := range donors {
		pdf.MultiCell(0, 6, "Name: "+donor.Name, "", "L", false)
		pdf.MultiCell(0, 6, "Address: "+donor.Address, "", "L", false)
		pdf.MultiCell(0, 6, "Mobile: "+donor.Mobile, "", "L", false)
		pdf.MultiCell(0, 6, "Age: "+donor.Age, "", "L", false)
		pdf.MultiCell(0, 6, "Blood Group: "+donor.BloodGroup, "", "L", false)
		pdf.MultiCell(0, 6, "Added On: "+donor.CreatedAt.Format(timeLayout), "", "L", false)
		pdf.MultiCell(0, 6, "----------------------", "", "L", false)
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to render history PDF")
	}

	return buf.Bytes(), nil
}
