// Package display presents rendered dialog frames on the Linux framebuffer.
package display

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"

	"github.com/rook-computer/teeui/internal/logging"
)

// DefaultDevice is the framebuffer used on device.
const DefaultDevice = "/dev/fb0"

// Frame is a rendered ARGB buffer viewed as an image.
type Frame struct {
	Pix    []uint32
	Width  uint32
	Height uint32
	Stride uint32
}

// NewFrame allocates a w x h frame with no row padding.
func NewFrame(w, h uint32) *Frame {
	return &Frame{Pix: make([]uint32, int(w)*int(h)), Width: w, Height: h, Stride: w}
}

func (f *Frame) ColorModel() color.Model { return color.NRGBAModel }

func (f *Frame) Bounds() image.Rectangle { return image.Rect(0, 0, int(f.Width), int(f.Height)) }

func (f *Frame) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(f.Bounds()) {
		return color.NRGBA{}
	}
	i := y*int(f.Stride) + x
	if i >= len(f.Pix) {
		return color.NRGBA{}
	}
	p := f.Pix[i]
	return color.NRGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: uint8(p >> 24)}
}

// Blit copies frame onto dst. A frame whose size differs from dst is scaled
// with nearest-neighbor sampling.
func Blit(dst draw.Image, frame *Frame) {
	db := dst.Bounds()
	if db.Dx() == int(frame.Width) && db.Dy() == int(frame.Height) {
		for y := 0; y < db.Dy(); y++ {
			for x := 0; x < db.Dx(); x++ {
				dst.Set(db.Min.X+x, db.Min.Y+y, frame.At(x, y))
			}
		}
		return
	}
	xdraw.NearestNeighbor.Scale(dst, db, frame, frame.Bounds(), xdraw.Src, nil)
}

// Framebuffer is an open framebuffer device.
type Framebuffer struct {
	dev    *fb.Device
	Logger logging.Logger
}

// Open opens the framebuffer at path.
func Open(path string, logger logging.Logger) (*Framebuffer, error) {
	dev, err := fb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open framebuffer %s: %w", path, err)
	}
	log := logging.OrNoop(logger)
	bounds := dev.Bounds()
	log.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	return &Framebuffer{dev: dev, Logger: logger}, nil
}

// Size returns the visible resolution in pixels.
func (f *Framebuffer) Size() (w, h uint32) {
	b := f.dev.Bounds()
	return uint32(b.Dx()), uint32(b.Dy())
}

// Present shows frame on the screen.
func (f *Framebuffer) Present(frame *Frame) {
	Blit(f.dev, frame)
	w, h := f.Size()
	logging.OrNoop(f.Logger).Infof("fb", "presented %dx%d frame on %dx%d", frame.Width, frame.Height, w, h)
}

func (f *Framebuffer) Close() error {
	f.dev.Close()
	return nil
}
