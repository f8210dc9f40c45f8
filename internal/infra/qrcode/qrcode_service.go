// Package qrcode renders donor contact cards as QR code images.
package qrcode

import (
	"encoding/json"
	"fmt"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const contactCardType = "donor-contact"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateContactQR generates a QR code PNG carrying the donor's contact card.
func (s *qrcodeService) GenerateContactQR(donor *entity.Donor) ([]byte, error) {
	card := service.ContactCard{
		DonorID:    donor.ID,
		Name:       donor.Name,
		BloodGroup: donor.BloodGroup,
		Mobile:     donor.Mobile,
		Type:       contactCardType,
	}

	jsonData, err := json.Marshal(card)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contact card: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseContactQR parses QR code data back into a contact card.
func (s *qrcodeService) ParseContactQR(qrData string) (*service.ContactCard, error) {
	var card service.ContactCard
	if err := json.Unmarshal([]byte(qrData), &card); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contact card: %w", err)
	}

	if card.Type != contactCardType {
		return nil, fmt.Errorf("invalid QR code type: %s", card.Type)
	}

	return &card, nil
}
