package traceability

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

const qrSizePx = 256

// DataURL encodes the payload as a QR PNG wrapped in a data URL, ready to
// embed in an <img> tag or print on a label.
func DataURL(payload string) (string, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, qrSizePx)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
