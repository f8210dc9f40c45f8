package service

import "lifeline/internal/domain/entity"

// ContactCard is the payload encoded into a donor contact QR code.
type ContactCard struct {
	DonorID    string `json:"donor_id"`
	Name       string `json:"name"`
	BloodGroup string `json:"blood_group"`
	Mobile     string `json:"mobile"`
	Type       string `json:"type"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateContactQR generates a QR code image for a donor's contact card.
	GenerateContactQR(donor *entity.Donor) ([]byte, error)

	// ParseContactQR parses QR code data back into a contact card.
	ParseContactQR(qrData string) (*ContactCard, error)
}
