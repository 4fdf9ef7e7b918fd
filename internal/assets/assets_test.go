package assets

import (
	"image"
	"image/color"
	"reflect"
	"testing"

	"github.com/rook-computer/teeui/internal/bitmap"
	"github.com/rook-computer/teeui/internal/text"
)

func TestShieldDecodes(t *testing.T) {
	img, err := bitmap.Decode(ShieldBMP)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Width() != 24 || img.Height() != 28 {
		t.Fatalf("size = %dx%d, want 24x28", img.Width(), img.Height())
	}
	if r, g, b, _ := img.ColorAt(0, 0); r != 0xff || g != 0xff || b != 0xff {
		t.Fatalf("corner = %02x%02x%02x, want white", r, g, b)
	}
	if r, g, b, _ := img.ColorAt(3, 5); r != 0xf4 || g != 0x85 || b != 0x42 {
		t.Fatalf("body = %02x%02x%02x, want f48542", r, g, b)
	}
}

func TestDefaultTable(t *testing.T) {
	tbl := Default()
	if _, ok := tbl.Bitmap(Shield); !ok {
		t.Fatalf("shield missing")
	}
	if _, ok := tbl.Bitmap("nope"); ok {
		t.Fatalf("unknown bitmap found")
	}
	if got, want := tbl.FontNames(), []string{FontMedium, FontRegular}; !reflect.DeepEqual(got, want) {
		t.Fatalf("FontNames = %v, want %v", got, want)
	}

	fonts := text.NewFonts(text.EngineOpenType)
	if err := tbl.RegisterFonts(fonts); err != nil {
		t.Fatalf("RegisterFonts: %v", err)
	}
	if _, err := fonts.Face(FontRegular, 14); err != nil {
		t.Fatalf("Face: %v", err)
	}
}

func TestWithDoesNotModify(t *testing.T) {
	base := Default()
	extended := base.With("extra", []byte{1})
	if _, ok := base.Bitmap("extra"); ok {
		t.Fatalf("With modified the receiver")
	}
	if _, ok := extended.Bitmap("extra"); !ok {
		t.Fatalf("With lost the new bitmap")
	}
	if _, ok := extended.Bitmap(Shield); !ok {
		t.Fatalf("With lost existing bitmaps")
	}
}

func TestQRCodeBMP(t *testing.T) {
	data, err := QRCodeBMP("confirm:4711", 64)
	if err != nil {
		t.Fatalf("QRCodeBMP: %v", err)
	}
	img, err := bitmap.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Width() != 64 || img.Height() != 64 {
		t.Fatalf("size = %dx%d", img.Width(), img.Height())
	}
	var dark, light int
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			r, _, _, _ := img.ColorAt(x, y)
			switch r {
			case 0:
				dark++
			case 0xff:
				light++
			}
		}
	}
	if dark == 0 || light == 0 || dark+light != 64*64 {
		t.Fatalf("dark=%d light=%d, want a two-tone image", dark, light)
	}

	if _, err := QRCodeBMP("", 64); err == nil {
		t.Fatalf("empty payload accepted")
	}
	if img, err := GenerateQRCodeImage("", 64); img != nil || err != nil {
		t.Fatalf("GenerateQRCodeImage(\"\") = %v, %v", img, err)
	}
}

func TestEncodeBMPFlattensAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	src.SetNRGBA(5, 5, color.NRGBA{R: 0xff, A: 0xff})
	data, err := EncodeBMP(src)
	if err != nil {
		t.Fatalf("EncodeBMP: %v", err)
	}
	img, err := bitmap.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Header().Info.BitCount != 24 {
		t.Fatalf("bit count = %d", img.Header().Info.BitCount)
	}
	if r, g, b, _ := img.ColorAt(0, 0); r != 0xff || g != 0 || b != 0 {
		t.Fatalf("opaque pixel = %02x%02x%02x", r, g, b)
	}
	if r, g, b, _ := img.ColorAt(1, 0); r != 0xff || g != 0xff || b != 0xff {
		t.Fatalf("transparent pixel = %02x%02x%02x, want white", r, g, b)
	}
}
