package qrcode

import (
	"encoding/json"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		level     string
		wantSize  int
		wantLevel qrcode.RecoveryLevel
	}{
		{"low", 128, "L", 128, qrcode.Low},
		{"lower case quartile", 256, "q", 256, qrcode.High},
		{"highest", 256, "H", 256, qrcode.Highest},
		{"unknown level falls back to medium", 256, "X", 256, qrcode.Medium},
		{"non-positive size falls back", 0, "M", defaultSize, qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.level).(*qrcodeService)

			assert.Equal(t, tt.wantSize, svc.size)
			assert.Equal(t, tt.wantLevel, svc.level)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	svc := NewFromConfig(&config.Config{}).(*qrcodeService)
	assert.Equal(t, defaultSize, svc.size)

	svc = NewFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 512, ErrorCorrectionLevel: "H"}}).(*qrcodeService)
	assert.Equal(t, 512, svc.size)
	assert.Equal(t, qrcode.Highest, svc.level)
}

func TestQRCodeService_GenerateOrderQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateOrderQR(entity.NewID())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParseOrderQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	orderID := entity.NewID()

	payload, err := json.Marshal(QRCodeData{OrderID: orderID, Type: "order"})
	require.NoError(t, err)

	parsed, err := service.ParseOrderQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, orderID, parsed)
}

func TestQRCodeService_ParseOrderQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name string
		data string
	}{
		{"not json", "plain text"},
		{"wrong type", `{"order_id":"507f1f77bcf86cd799439011","type":"subscription"}`},
		{"bad id", `{"order_id":"123","type":"order"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseOrderQR(tt.data)
			assert.Error(t, err)
		})
	}
}
