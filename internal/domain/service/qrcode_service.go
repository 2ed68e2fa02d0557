package service

// QRCodeService renders QR images.
type QRCodeService interface {
	// GenerateRedeemCodeQR renders code as a PNG.
	GenerateRedeemCodeQR(code string) ([]byte, error)
}
