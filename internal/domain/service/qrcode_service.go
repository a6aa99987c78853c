package service

// QRCodeService generates QR code images for order email drafts so a
// customer can move the prepared mailto link onto their phone.
type QRCodeService interface {
	// GenerateMailtoQR encodes the given mailto URI as a PNG image.
	GenerateMailtoQR(mailtoURI string) ([]byte, error)
}
