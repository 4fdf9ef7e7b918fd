package render

import "math/bits"

// PixelDrawer receives the pixels an element produces, in screen
// coordinates relative to the rendered region.
type PixelDrawer func(x, y uint32, c Color) Error

// FrameBuffer describes caller-owned pixel memory: the rendered region starts
// at (Left, Top), is Width x Height pixels, and consecutive rows are
// LineStride pixels apart. len(Pixels) is the capacity; no write ever
// reaches past it.
type FrameBuffer struct {
	Left       uint32
	Top        uint32
	Width      uint32
	Height     uint32
	LineStride uint32
	Pixels     []uint32
}

// Capacity is the number of addressable pixels.
func (fb *FrameBuffer) Capacity() int { return len(fb.Pixels) }

// DrawPixel blends c into the pixel at (x, y) of the region. Addresses at or
// past the capacity fail with OutOfBoundsDrawing and write nothing. Pixels
// outside the region's width and height are clipped.
func (fb *FrameBuffer) DrawPixel(x, y uint32, c Color) Error {
	pos := (uint64(fb.Top)+uint64(y))*uint64(fb.LineStride) + uint64(x) + uint64(fb.Left)
	if pos >= uint64(len(fb.Pixels)) {
		return OutOfBoundsDrawing
	}
	if x >= fb.Width || y >= fb.Height {
		return OK
	}
	fb.Pixels[pos] = uint32(Blend(c, Color(fb.Pixels[pos])))
	return OK
}

// Drawer returns DrawPixel as a PixelDrawer.
func (fb *FrameBuffer) Drawer() PixelDrawer { return fb.DrawPixel }

// Clear overwrites every pixel of the region with c, without blending.
// Callers validate the region with CheckRegion first.
func (fb *FrameBuffer) Clear(c Color) {
	for y := uint32(0); y < fb.Height; y++ {
		row := uint64(fb.Top+y)*uint64(fb.LineStride) + uint64(fb.Left)
		for x := uint32(0); x < fb.Width; x++ {
			fb.Pixels[row+uint64(x)] = uint32(c)
		}
	}
}

// CheckRegion verifies that a region of w x h pixels at (x, y) with the given
// line stride fits in capacity pixels. The end offset (y+h-1)*lineStride+x+w
// is computed in 32-bit arithmetic; any overflow fails.
func CheckRegion(x, y, w, h, lineStride uint32, capacity int) Error {
	end, carry := bits.Add32(y, h, 0)
	if carry != 0 || end == 0 {
		return OutOfBoundsDrawing
	}
	end--
	hi, end := bits.Mul32(end, lineStride)
	if hi != 0 {
		return OutOfBoundsDrawing
	}
	if end, carry = bits.Add32(end, x, 0); carry != 0 {
		return OutOfBoundsDrawing
	}
	if end, carry = bits.Add32(end, w, 0); carry != 0 {
		return OutOfBoundsDrawing
	}
	if capacity < 0 || uint64(end) > uint64(capacity) {
		return OutOfBoundsDrawing
	}
	return OK
}
