package qrcode

import (
	"encoding/json"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	orderQRType = "order"
	defaultSize = 256
)

//nolint:gochecknoglobals
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// QRCodeData is the JSON document encoded in an order QR code.
type QRCodeData struct {
	OrderID string `json:"order_id"`
	Type    string `json:"type"`
}

// NewQRCodeService renders size pixel codes. Unknown levels fall back to M.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	level, ok := recoveryLevels[strings.ToUpper(errorCorrectionLevel)]
	if !ok {
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{size: size, level: level}
}

// NewFromConfig applies the qrcode section, which is optional.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func (s *qrcodeService) GenerateOrderQR(orderID string) ([]byte, error) {
	payload, err := OrderPayload(orderID)
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(payload, s.level, s.size)
	if err != nil {
		return nil, errors.Wrapf(err, "encode QR for order %s", orderID)
	}

	return png, nil
}

// OrderPayload is the text encoded into an order QR code.
func OrderPayload(orderID string) (string, error) {
	data, err := json.Marshal(QRCodeData{OrderID: orderID, Type: orderQRType})
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(data), nil
}

func (s *qrcodeService) ParseOrderQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "QR payload is not JSON")
	}

	if data.Type != orderQRType {
		return "", errors.Errorf("QR payload type %q is not an order", data.Type)
	}

	if !entity.IsValidID(data.OrderID) {
		return "", errors.Errorf("QR payload order id %q is malformed", data.OrderID)
	}

	return data.OrderID, nil
}
