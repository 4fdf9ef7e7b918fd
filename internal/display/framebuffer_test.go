package display

import (
	"image"
	"image/color"
	"testing"
)

func TestFrameAt(t *testing.T) {
	f := &Frame{Pix: []uint32{0xff102030, 0x80ffffff, 0, 0xff000000, 0xffabcdef, 0}, Width: 2, Height: 2, Stride: 3}

	type tc struct {
		x, y int
		want color.NRGBA
	}
	tests := map[string]tc{
		"first":       {x: 0, y: 0, want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}},
		"translucent": {x: 1, y: 0, want: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}},
		"second row":  {x: 1, y: 1, want: color.NRGBA{R: 0xab, G: 0xcd, B: 0xef, A: 0xff}},
		"padding":     {x: 2, y: 0, want: color.NRGBA{}},
		"negative":    {x: -1, y: 0, want: color.NRGBA{}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := f.At(tt.x, tt.y); got != tt.want {
				t.Fatalf("At(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestBlit(t *testing.T) {
	f := NewFrame(2, 2)
	copy(f.Pix, []uint32{0xffff0000, 0xff00ff00, 0xff0000ff, 0xffffffff})

	same := image.NewRGBA(image.Rect(0, 0, 2, 2))
	Blit(same, f)
	if got := same.RGBAAt(1, 0); got != (color.RGBA{G: 0xff, A: 0xff}) {
		t.Fatalf("same size (1,0) = %v", got)
	}

	zoomed := image.NewRGBA(image.Rect(0, 0, 4, 4))
	Blit(zoomed, f)
	for _, p := range []image.Point{{0, 0}, {1, 1}} {
		if got := zoomed.RGBAAt(p.X, p.Y); got != (color.RGBA{R: 0xff, A: 0xff}) {
			t.Fatalf("zoomed %v = %v", p, got)
		}
	}
	if got := zoomed.RGBAAt(3, 3); got != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Fatalf("zoomed (3,3) = %v", got)
	}
}
