// Package preview renders the dialog into ordinary images for host tools.
package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/rook-computer/teeui/internal/assets"
	"github.com/rook-computer/teeui/internal/dialog"
	"github.com/rook-computer/teeui/internal/display"
	"github.com/rook-computer/teeui/internal/params"
	"github.com/rook-computer/teeui/internal/render"
)

// Image renders the dialog at the device resolution and scales the result
// by zoom. The image is returned even when rendering reports an error.
func Image(d *dialog.Dialog, dev params.DeviceInfo, opts dialog.Options, zoom float64) (image.Image, render.Error) {
	frame := display.NewFrame(dev.WidthPx, dev.HeightPx)
	rerr := d.Render(0, 0, frame.Width, frame.Height, frame.Stride, frame.Pix, dev, opts)
	if zoom <= 0 || zoom == 1 {
		return frame, rerr
	}
	w := int(float64(frame.Width) * zoom)
	h := int(float64(frame.Height) * zoom)
	dst := image.NewNRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), frame, frame.Bounds(), xdraw.Src, nil)
	return dst, rerr
}

// FormatFromPath returns "png" or "bmp" from the file extension. Paths
// without an extension are PNG.
func FormatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "png"
	}
	return ext
}

// Encode writes img as "png" or "bmp".
func Encode(img image.Image, format string) ([]byte, error) {
	switch format {
	case "bmp":
		return assets.EncodeBMP(img)
	case "png":
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unsupported image format %q", format)
}

// ContentType returns the MIME type of format.
func ContentType(format string) string {
	if format == "bmp" {
		return "image/bmp"
	}
	return "image/png"
}
