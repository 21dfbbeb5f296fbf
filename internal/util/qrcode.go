package util

import (
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"
)

// GenerateQRCodePNG encodes link as a PNG of size x size pixels.
func GenerateQRCodePNG(link string, size int) ([]byte, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}

// VerificationURL is the public page that verifies the given certificate number.
func VerificationURL(frontendURL, certificateNumber string) string {
	return frontendURL + "/?certificateNumber=" + url.QueryEscape(certificateNumber)
}
