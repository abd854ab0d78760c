package service

// QRCodeService encodes an order reference as a scannable PNG and reads it back.
type QRCodeService interface {
	GenerateOrderQR(orderID string) ([]byte, error)

	// ParseOrderQR returns the order id carried by scanned data.
	// It fails for payloads this service did not produce.
	ParseOrderQR(qrData string) (string, error)
}
