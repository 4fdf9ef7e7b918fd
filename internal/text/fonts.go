// Package text provides the collaborators the renderer consumes for labels:
// font faces for glyph rasterization and the translation lookup of text ids.
package text

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"github.com/rook-computer/teeui/internal/logging"
	"github.com/rook-computer/teeui/internal/units"
)

// Basic is the font reference of the built-in 7x13 bitmap face. It is always
// available and ignores the requested size.
const Basic = "basic"

var (
	ErrUnknownFont   = errors.New("unknown font")
	ErrFaceNotLoaded = errors.New("font face not loaded")
)

// Engine selects the rasterizer used for scalable fonts.
type Engine int

const (
	EngineOpenType Engine = iota // golang.org/x/image/font/opentype
	EngineFreeType               // github.com/golang/freetype/truetype
)

func (e Engine) String() string {
	if e == EngineFreeType {
		return "freetype"
	}
	return "opentype"
}

// ParseEngine parses "opentype" or "freetype".
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "opentype", "otf":
		return EngineOpenType, nil
	case "freetype", "truetype", "ttf":
		return EngineFreeType, nil
	default:
		return 0, fmt.Errorf("unknown font engine %q", s)
	}
}

// MaxFaceSize is the largest face size in pixels Face will create.
const MaxFaceSize units.Px = 1024

type faceKey struct {
	ref  string
	size units.Px
}

// Fonts is a registry of font sources by reference name, producing sized
// faces on demand. Faces are cached per (reference, size).
type Fonts struct {
	Logger logging.Logger

	engine Engine

	mu    sync.Mutex
	otf   map[string]*opentype.Font
	ttf   map[string]*truetype.Font
	faces map[faceKey]font.Face
}

func NewFonts(engine Engine) *Fonts {
	return &Fonts{
		engine: engine,
		otf:    map[string]*opentype.Font{},
		ttf:    map[string]*truetype.Font{},
		faces:  map[faceKey]font.Face{},
	}
}

func (f *Fonts) Engine() Engine { return f.engine }

// Register parses data as a scalable font and makes it available as ref.
func (f *Fonts) Register(ref string, data []byte) error {
	if ref == "" || ref == Basic {
		return fmt.Errorf("register font: reserved reference %q", ref)
	}
	log := logging.OrNoop(f.Logger)

	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.engine {
	case EngineFreeType:
		tt, err := truetype.Parse(data)
		if err != nil {
			log.Errorf("font", "truetype parse of %s failed: %v", ref, err)
			return fmt.Errorf("register font %s: %w", ref, err)
		}
		f.ttf[ref] = tt
	default:
		fnt, err := opentype.Parse(data)
		if err != nil {
			log.Errorf("font", "opentype parse of %s failed: %v", ref, err)
			return fmt.Errorf("register font %s: %w", ref, err)
		}
		f.otf[ref] = fnt
	}
	log.Infof("font", "registered %s (%s)", ref, f.engine)
	return nil
}

// Face returns a face for ref at size pixels.
func (f *Fonts) Face(ref string, size units.Px) (font.Face, error) {
	if ref == Basic {
		return basicfont.Face7x13, nil
	}
	if !(size > 0) || size > MaxFaceSize {
		return nil, fmt.Errorf("%w: %s at size %v", ErrFaceNotLoaded, ref, size)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	key := faceKey{ref: ref, size: size}
	if face, ok := f.faces[key]; ok {
		return face, nil
	}

	var (
		face font.Face
		err  error
	)
	// DPI 72 makes one point one pixel.
	switch f.engine {
	case EngineFreeType:
		tt, ok := f.ttf[ref]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFont, ref)
		}
		face = truetype.NewFace(tt, &truetype.Options{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
	default:
		fnt, ok := f.otf[ref]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFont, ref)
		}
		face, err = opentype.NewFace(fnt, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFaceNotLoaded, ref, err)
		}
	}
	f.faces[key] = face
	return face, nil
}

// Close releases all cached faces.
func (f *Fonts) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var errs []error
	for key, face := range f.faces {
		if err := face.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(f.faces, key)
	}
	return errors.Join(errs...)
}
