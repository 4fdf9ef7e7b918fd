package render

import "image/color"

// Color is a 32-bit ARGB value, 0xAARRGGBB.
type Color uint32

const (
	White       Color = 0xffffffff
	Black       Color = 0xff000000
	Transparent Color = 0x00000000
)

// ARGB packs the four channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color { return c&0x00ffffff | Color(a)<<24 }

// RGBA implements color.Color (non-premultiplied ARGB converted to the
// premultiplied form the interface expects).
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

var _ color.Color = Color(0)

// blendChannel computes alpha*src + (1-alpha)*dst for one 8-bit channel,
// rounded to nearest and saturated to [0, 255].
func blendChannel(alpha, src, dst uint32) uint32 {
	acc := (alpha*src + (255-alpha)*dst + 127) / 255
	if acc > 255 {
		return 255
	}
	return acc
}

// Blend composites src over dst. Each color channel is blended
// independently by src's alpha; the result is always opaque.
func Blend(src, dst Color) Color {
	alpha := uint32(src.A())
	r := blendChannel(alpha, uint32(src.R()), uint32(dst.R()))
	g := blendChannel(alpha, uint32(src.G()), uint32(dst.G()))
	b := blendChannel(alpha, uint32(src.B()), uint32(dst.B()))
	return Color(0xff000000 | r<<16 | g<<8 | b)
}
