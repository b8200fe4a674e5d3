package utils

import "github.com/skip2/go-qrcode"

// GenerateQRCode renders content as a size x size PNG QR code.
func GenerateQRCode(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
