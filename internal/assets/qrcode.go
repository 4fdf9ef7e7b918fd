package assets

import (
	"bytes"
	"errors"
	"image"

	"github.com/skip2/go-qrcode"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

const defaultQRCodeSizePx = 256

var errEmptyPayload = errors.New("qr code: empty payload")

// GenerateQRCodeImage returns a QR code image for the given payload.
// If payload is empty, it returns (nil, nil).
func GenerateQRCodeImage(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}

	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	return qrCode.Image(sizePx), nil
}

// QRCodeBMP renders payload as a QR code and encodes it as a 24-bit BMP
// that the bitmap element can draw.
func QRCodeBMP(payload string, sizePx int) ([]byte, error) {
	img, err := GenerateQRCodeImage(payload, sizePx)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, errEmptyPayload
	}
	return EncodeBMP(img)
}

// EncodeBMP flattens img onto white and encodes it as an uncompressed
// 24-bit bottom-up BMP.
func EncodeBMP(img image.Image) ([]byte, error) {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
