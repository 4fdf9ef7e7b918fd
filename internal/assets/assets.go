// Package assets holds the embedded resources of the confirmation UI: the
// fonts and bitmaps elements refer to by name.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/rook-computer/teeui/internal/text"
)

//go:embed shield.bmp
var ShieldBMP []byte

// Asset names of the default table.
const (
	Shield      = "shield"
	FontRegular = "regular"
	FontMedium  = "medium"
)

// Table maps symbolic names to immutable asset bytes.
type Table struct {
	bitmaps map[string][]byte
	fonts   map[string][]byte
}

func NewTable() *Table {
	return &Table{bitmaps: map[string][]byte{}, fonts: map[string][]byte{}}
}

// Default returns the table compiled into the binary.
func Default() *Table {
	return NewTable().
		AddBitmap(Shield, ShieldBMP).
		AddFont(FontRegular, goregular.TTF).
		AddFont(FontMedium, gomedium.TTF)
}

func (t *Table) AddBitmap(name string, data []byte) *Table {
	t.bitmaps[name] = data
	return t
}

func (t *Table) AddFont(name string, data []byte) *Table {
	t.fonts[name] = data
	return t
}

// With returns a copy of t with one more bitmap. t is not modified.
func (t *Table) With(name string, data []byte) *Table {
	return (&Table{bitmaps: maps.Clone(t.bitmaps), fonts: t.fonts}).AddBitmap(name, data)
}

func (t *Table) Bitmap(name string) ([]byte, bool) {
	b, ok := t.bitmaps[name]
	return b, ok
}

func (t *Table) Font(name string) ([]byte, bool) {
	b, ok := t.fonts[name]
	return b, ok
}

// FontNames returns the registered font names, sorted.
func (t *Table) FontNames() []string {
	return slices.Sorted(maps.Keys(t.fonts))
}

// RegisterFonts parses every font of the table into f.
func (t *Table) RegisterFonts(f *text.Fonts) error {
	var errs []error
	for _, name := range t.FontNames() {
		if err := f.Register(name, t.fonts[name]); err != nil {
			errs = append(errs, fmt.Errorf("font %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
