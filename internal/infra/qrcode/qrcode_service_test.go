package qrcode

import (
	"encoding/json"
	"testing"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_GenerateContactQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	donor := &entity.Donor{
		ID:         "donor-1",
		Name:       "Asha",
		BloodGroup: "A+",
		Mobile:     "9876543210",
	}

	qrBytes, err := svc.GenerateContactQR(donor)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseContactQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	card := service.ContactCard{
		DonorID:    "donor-1",
		Name:       "Asha",
		BloodGroup: "A+",
		Mobile:     "9876543210",
		Type:       "donor-contact",
	}
	jsonData, err := json.Marshal(card)
	require.NoError(t, err)

	parsed, err := svc.ParseContactQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, &card, parsed)
}

func TestQRCodeService_ParseContactQR_InvalidJSON(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.ParseContactQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal contact card")
}

func TestQRCodeService_ParseContactQR_InvalidType(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	card := service.ContactCard{
		DonorID: "donor-1",
		Type:    "invalid_type",
	}
	jsonData, err := json.Marshal(card)
	require.NoError(t, err)

	_, err = svc.ParseContactQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}
