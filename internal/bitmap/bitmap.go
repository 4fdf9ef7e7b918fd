// Package bitmap decodes uncompressed packed-DIB (.bmp) assets and resamples
// them with bilinear interpolation.
//
// The decoder never copies the asset: an Image borrows the caller's byte
// slice and addresses pixel rows inside it. Every access is range checked, so
// truncated or malicious assets fail with ErrReadFailed instead of reading
// past the end of the buffer.
package bitmap

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	FileHeaderSize = 14
	InfoHeaderSize = 40

	compressionRGB       = 0
	compressionBitfields = 3
)

var (
	// ErrReadFailed reports a malformed or unsupported asset.
	ErrReadFailed = errors.New("bitmap read failed")
	// ErrOutOfRange reports a color lookup outside the image.
	ErrOutOfRange = errors.New("bitmap coordinate out of range")
)

// FileHeader is the 14 byte BITMAPFILEHEADER.
type FileHeader struct {
	Magic      [2]byte
	FileSize   uint32
	Reserved1  uint16
	Reserved2  uint16
	DataOffset uint32
}

// InfoHeader is the 40 byte BITMAPINFOHEADER. Larger header versions share
// this prefix.
type InfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

// Header is the parsed, validated header of an asset.
type Header struct {
	File FileHeader
	Info InfoHeader

	// PixelOffset is the byte offset of the first stored (bottom) row.
	PixelOffset int
	// RowStride is the padded byte width of one stored row.
	RowStride int
}

func (h Header) Width() int         { return int(h.Info.Width) }
func (h Header) Height() int        { return int(h.Info.Height) }
func (h Header) BytesPerPixel() int { return int(h.Info.BitCount) / 8 }

// RowStride returns the byte width of a row of width pixels at bitCount bits
// per pixel, padded up to a multiple of 4 bytes.
func RowStride(width, bitCount int) int {
	return ((width*bitCount + 31) / 32) * 4
}

// Parse reads and validates the file and info headers of a packed DIB.
func Parse(data []byte) (Header, error) {
	var h Header
	if len(data) < FileHeaderSize+InfoHeaderSize {
		return h, fmt.Errorf("%w: %d bytes is shorter than the headers", ErrReadFailed, len(data))
	}

	h.File = FileHeader{
		Magic:      [2]byte{data[0], data[1]},
		FileSize:   binary.LittleEndian.Uint32(data[2:6]),
		Reserved1:  binary.LittleEndian.Uint16(data[6:8]),
		Reserved2:  binary.LittleEndian.Uint16(data[8:10]),
		DataOffset: binary.LittleEndian.Uint32(data[10:14]),
	}
	if h.File.Magic != [2]byte{'B', 'M'} {
		return h, fmt.Errorf("%w: not a bitmap (magic %q)", ErrReadFailed, h.File.Magic[:])
	}

	info := data[FileHeaderSize:]
	h.Info = InfoHeader{
		Size:          binary.LittleEndian.Uint32(info[0:4]),
		Width:         int32(binary.LittleEndian.Uint32(info[4:8])),
		Height:        int32(binary.LittleEndian.Uint32(info[8:12])),
		Planes:        binary.LittleEndian.Uint16(info[12:14]),
		BitCount:      binary.LittleEndian.Uint16(info[14:16]),
		Compression:   binary.LittleEndian.Uint32(info[16:20]),
		SizeImage:     binary.LittleEndian.Uint32(info[20:24]),
		XPelsPerMeter: int32(binary.LittleEndian.Uint32(info[24:28])),
		YPelsPerMeter: int32(binary.LittleEndian.Uint32(info[28:32])),
		ClrUsed:       binary.LittleEndian.Uint32(info[32:36]),
		ClrImportant:  binary.LittleEndian.Uint32(info[36:40]),
	}

	if h.Info.BitCount < 24 {
		return h, fmt.Errorf("%w: %d bits per pixel, need at least 24", ErrReadFailed, h.Info.BitCount)
	}
	if h.Info.BitCount%8 != 0 || h.Info.BitCount > 32 {
		return h, fmt.Errorf("%w: unsupported bit count %d", ErrReadFailed, h.Info.BitCount)
	}
	if h.Info.Compression != compressionRGB && h.Info.Compression != compressionBitfields {
		return h, fmt.Errorf("%w: unsupported compression %d", ErrReadFailed, h.Info.Compression)
	}
	if h.Info.Compression == compressionBitfields {
		if err := checkBGRMasks(data); err != nil {
			return h, err
		}
	}
	if h.Info.Width <= 0 || h.Info.Height <= 0 {
		return h, fmt.Errorf("%w: unsupported dimensions %dx%d", ErrReadFailed, h.Info.Width, h.Info.Height)
	}
	if h.Info.Size < InfoHeaderSize {
		return h, fmt.Errorf("%w: info header size %d", ErrReadFailed, h.Info.Size)
	}

	// Pixel rows follow the headers unless the file header says otherwise.
	offset := uint64(FileHeaderSize) + uint64(h.Info.Size)
	if h.File.DataOffset != 0 {
		offset = uint64(h.File.DataOffset)
	}
	if offset < FileHeaderSize+InfoHeaderSize {
		return h, fmt.Errorf("%w: pixel data offset %d overlaps the headers", ErrReadFailed, offset)
	}

	stride := uint64(RowStride(int(h.Info.Width), int(h.Info.BitCount)))
	end := offset + stride*uint64(h.Info.Height)
	if end > uint64(len(data)) {
		return h, fmt.Errorf("%w: pixel data needs %d bytes, asset has %d", ErrReadFailed, end, len(data))
	}

	h.PixelOffset = int(offset)
	h.RowStride = int(stride)
	return h, nil
}

// Channel masks of BI_BITFIELDS assets. They follow the 40 byte info header,
// inside the larger header versions or right after the basic one.
const (
	maskRed   = 0x00ff0000
	maskGreen = 0x0000ff00
	maskBlue  = 0x000000ff
)

// checkBGRMasks accepts bitfield assets whose masks describe the same B,G,R
// byte order as uncompressed pixels.
func checkBGRMasks(data []byte) error {
	masks := FileHeaderSize + InfoHeaderSize
	if len(data) < masks+12 {
		return fmt.Errorf("%w: bitfield masks missing", ErrReadFailed)
	}
	r := binary.LittleEndian.Uint32(data[masks:])
	g := binary.LittleEndian.Uint32(data[masks+4:])
	b := binary.LittleEndian.Uint32(data[masks+8:])
	if r != maskRed || g != maskGreen || b != maskBlue {
		return fmt.Errorf("%w: unsupported channel masks %#x/%#x/%#x", ErrReadFailed, r, g, b)
	}
	return nil
}
