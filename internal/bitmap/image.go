package bitmap

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// maxScaledBytes bounds the buffer a single Scale call may allocate.
const maxScaledBytes = 64 << 20

// Image is a decoded bitmap. Rows are stored bottom-up, pixels as B, G, R
// (and an ignored fourth byte at 32 bits per pixel).
//
// An Image returned by Decode borrows the asset bytes. An Image returned by
// Scale owns a freshly allocated buffer that is never shared with another
// Image; it is released with the last reference to it.
type Image struct {
	hdr    Header
	width  int
	height int
	bpp    int
	stride int
	pix    []byte
	owned  bool
}

var _ image.Image = (*Image)(nil)

// Decode parses data and returns an Image addressing its pixel rows in place.
func Decode(data []byte) (*Image, error) {
	h, err := Parse(data)
	if err != nil {
		return nil, err
	}
	end := h.PixelOffset + h.RowStride*h.Height()
	return &Image{
		hdr:    h,
		width:  h.Width(),
		height: h.Height(),
		bpp:    h.BytesPerPixel(),
		stride: h.RowStride,
		pix:    data[h.PixelOffset:end:end],
	}, nil
}

func (m *Image) Header() Header { return m.hdr }
func (m *Image) Width() int     { return m.width }
func (m *Image) Height() int    { return m.height }

// Owned reports whether the pixel buffer was allocated by this package
// rather than borrowed from an asset.
func (m *Image) Owned() bool { return m.owned }

// offset returns the byte offset of pixel (x, y), with y counted from the
// top of the image.
func (m *Image) offset(x, y int) (int, error) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfRange, x, y, m.width, m.height)
	}
	off := (m.height-1-y)*m.stride + x*m.bpp
	if off+3 > len(m.pix) {
		return 0, fmt.Errorf("%w: pixel (%d,%d) past end of data", ErrReadFailed, x, y)
	}
	return off, nil
}

// ColorAt returns the color of pixel (x, y), y counted from the top.
func (m *Image) ColorAt(x, y int) (r, g, b uint8, err error) {
	off, err := m.offset(x, y)
	if err != nil {
		return 0, 0, 0, err
	}
	return m.pix[off+2], m.pix[off+1], m.pix[off], nil
}

func (m *Image) ColorModel() color.Model { return color.RGBAModel }
func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.width, m.height) }

// At implements image.Image. Pixels outside the image are transparent.
func (m *Image) At(x, y int) color.Color {
	r, g, b, err := m.ColorAt(x, y)
	if err != nil {
		return color.RGBA{}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Scale returns the image resampled to factor times its width and height.
// A factor of exactly 1 returns m itself; no pixels are copied.
func (m *Image) Scale(factor float64) (*Image, error) {
	if factor == 1 {
		return m, nil
	}
	if !(factor > 0) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("%w: scale factor %v", ErrReadFailed, factor)
	}
	fw, fh := factor*float64(m.width), factor*float64(m.height)
	if fw > maxScaledBytes || fh > maxScaledBytes {
		return nil, fmt.Errorf("%w: scaled size %.0fx%.0f too large", ErrReadFailed, fw, fh)
	}
	sw, sh := int(fw), int(fh)
	if sw <= 0 || sh <= 0 {
		return nil, fmt.Errorf("%w: scaled size %dx%d", ErrReadFailed, sw, sh)
	}
	stride := RowStride(sw, m.bpp*8)
	if stride > maxScaledBytes || sh > maxScaledBytes/stride {
		return nil, fmt.Errorf("%w: scaled size %dx%d too large", ErrReadFailed, sw, sh)
	}

	pix := make([]byte, stride*sh)
	for y := 0; y < sh; y++ {
		fy := float64(y) * float64(m.height) / float64(sh)
		y0 := int(fy)
		dy := fy - float64(y0)
		y1 := min(y0+1, m.height-1)

		for x := 0; x < sw; x++ {
			fx := float64(x) * float64(m.width) / float64(sw)
			x0 := int(fx)
			dx := fx - float64(x0)
			x1 := min(x0+1, m.width-1)

			tl := (m.height-1-y0)*m.stride + x0*m.bpp
			tr := (m.height-1-y0)*m.stride + x1*m.bpp
			bl := (m.height-1-y1)*m.stride + x0*m.bpp
			br := (m.height-1-y1)*m.stride + x1*m.bpp

			dst := (sh-1-y)*stride + x*m.bpp
			for c := 0; c < 3; c++ {
				v := float64(m.pix[tl+c])*(1-dx)*(1-dy) +
					float64(m.pix[tr+c])*dx*(1-dy) +
					float64(m.pix[bl+c])*(1-dx)*dy +
					float64(m.pix[br+c])*dx*dy
				pix[dst+c] = clampByte(v)
			}
			if m.bpp == 4 {
				pix[dst+3] = m.pix[tl+3]
			}
		}
	}

	hdr := m.hdr
	hdr.Info.Width = int32(sw)
	hdr.Info.Height = int32(sh)
	hdr.Info.SizeImage = uint32(stride * sh)
	hdr.PixelOffset = 0
	hdr.RowStride = stride

	return &Image{
		hdr:    hdr,
		width:  sw,
		height: sh,
		bpp:    m.bpp,
		stride: stride,
		pix:    pix,
		owned:  true,
	}, nil
}

func clampByte(v float64) uint8 {
	v = math.Round(v)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
