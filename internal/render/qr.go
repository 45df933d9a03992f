package render

import (
	"errors"

	qrcode "github.com/skip2/go-qrcode"
)

// QRCodePNG returns PNG bytes of a size x size QR code encoding text.
func QRCodePNG(text string, size int) ([]byte, error) {
	if text == "" {
		return nil, errors.New("qr: empty content")
	}
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(text, qrcode.Medium, size)
}
