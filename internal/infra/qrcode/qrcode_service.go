// Package qrcode renders order-request mailto links as scannable PNG codes,
// so a visitor on a desktop without a mail client can finish the request
// from their phone.
package qrcode

import (
	"fmt"
	"strings"

	"light3d/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

// GenerateMailtoQR encodes a mailto URI as a PNG image.
func (s *qrcodeService) GenerateMailtoQR(mailtoURI string) ([]byte, error) {
	if !strings.HasPrefix(mailtoURI, "mailto:") {
		return nil, fmt.Errorf("not a mailto URI: %q", truncate(mailtoURI, 32))
	}

	qrCode, err := qrcode.New(mailtoURI, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n] + "..."
}
