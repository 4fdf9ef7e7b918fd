package render

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/teeui/internal/params"
	"github.com/rook-computer/teeui/internal/render/layout"
	"github.com/rook-computer/teeui/internal/text"
	"github.com/rook-computer/teeui/internal/units"
)

// LabelSpec describes a block of text.
type LabelSpec struct {
	Name string
	// TextID selects the string from the translator; DefaultText is used
	// when no translation is available.
	TextID      text.TextID
	DefaultText string

	Font     string
	FontSize params.Expr
	// LineHeight defaults to FontSize.
	LineHeight params.Expr
	// Lines limits wrapping; 0 means one line.
	Lines int

	Position params.PointExpr
	// Dimension.Y defaults to Lines * LineHeight.
	Dimension params.PointExpr

	Justification      layout.Justification
	VerticallyCentered bool
	TextColor          Color
}

func (s LabelSpec) DescriptorName() string { return s.Name }

func (s LabelSpec) lines() int { return max(1, s.Lines) }

func (s LabelSpec) instantiate(ctx *params.Context, env *Env, clip image.Rectangle) (Element, error) {
	if s.FontSize == nil {
		return nil, errNoDimension
	}
	size, err := ctx.Eval(s.FontSize)
	if err != nil {
		return nil, err
	}
	lineHeightExpr := s.LineHeight
	if lineHeightExpr == nil {
		lineHeightExpr = s.FontSize
	}
	lineHeight, err := ctx.Eval(lineHeightExpr)
	if err != nil {
		return nil, err
	}
	box, err := resolveBox(ctx, s.Position, s.Dimension, map[string]params.Expr{
		params.SelfX: params.Px(0),
		params.SelfY: params.Px(0),
		params.SelfH: params.Px(float64(lineHeight) * float64(s.lines())),
	})
	if err != nil {
		return nil, err
	}

	l := &Label{
		base:       base{name: s.Name, bounds: box, clip: clip},
		spec:       s,
		lineHeight: lineHeight,
	}
	log := env.log()

	l.text = s.DefaultText
	if env.Translator != nil {
		str, terr := env.Translator.Lookup(s.TextID, env.Language)
		switch {
		case terr == nil:
			l.text = str
		case s.DefaultText == "":
			log.Errorf("label", "%s: text %d: %v", s.Name, s.TextID, terr)
			l.err = Localization
		default:
			log.Infof("label", "%s: text %d not translated to %q, using default", s.Name, s.TextID, env.Language)
		}
	}

	if env.Fonts == nil {
		l.err = l.err.Or(FaceNotLoaded)
		return l, nil
	}
	face, ferr := env.Fonts.Face(s.Font, size)
	if ferr != nil {
		log.Errorf("label", "%s: %v", s.Name, ferr)
		l.err = l.err.Or(FaceNotLoaded)
		return l, nil
	}
	l.face = face
	l.wrapped = layout.Wrap(l.text, box.W, s.lines(), l.measure)
	return l, nil
}

// Label is an instantiated LabelSpec with its text already wrapped.
type Label struct {
	base
	spec       LabelSpec
	lineHeight units.Px
	text       string
	face       font.Face
	wrapped    []string
	err        Error
}

// Text returns the resolved string.
func (l *Label) Text() string { return l.text }

// Lines returns the wrapped lines that will be drawn.
func (l *Label) Lines() []string { return l.wrapped }

func (l *Label) measure(s string) units.Px {
	return units.Px(float64(font.MeasureString(l.face, s)) / 64)
}

// LineOrigin returns the pen position of line i: the left edge after
// justification and the baseline. The glyph box of a line is centered in its
// line height.
func (l *Label) LineOrigin(i int) units.Point {
	top := layout.BlockTop(l.bounds, len(l.wrapped), l.lineHeight, l.spec.VerticallyCentered)
	m := l.face.Metrics()
	ascent := units.Px(float64(m.Ascent) / 64)
	descent := units.Px(float64(m.Descent) / 64)
	baseline := top + units.Px(i)*l.lineHeight + (l.lineHeight+ascent-descent)/2
	x := layout.LineX(l.bounds, l.measure(l.wrapped[i]), l.spec.Justification)
	return units.Point{X: x, Y: baseline}
}

func toFixed(p units.Px) fixed.Int26_6 { return fixed.Int26_6(math.Round(float64(p) * 64)) }

func (l *Label) Draw(d PixelDrawer) Error {
	if l.face == nil {
		return l.err
	}
	err := l.err
	for i, line := range l.wrapped {
		o := l.LineOrigin(i)
		err = err.Or(l.drawLine(d, line, fixed.Point26_6{X: toFixed(o.X), Y: toFixed(o.Y)}))
	}
	return err
}

func (l *Label) drawLine(d PixelDrawer, line string, dot fixed.Point26_6) Error {
	err := OK
	prev := rune(-1)
	for _, r := range line {
		if prev >= 0 {
			dot.X += l.face.Kern(prev, r)
		}
		dr, mask, maskp, advance, ok := l.face.Glyph(dot, r)
		if !ok {
			err = err.Or(GlyphNotLoaded)
			prev = r
			continue
		}
		err = err.Or(l.drawGlyph(d, dr, mask, maskp))
		dot.X += advance
		prev = r
	}
	return err
}

func (l *Label) drawGlyph(d PixelDrawer, dr image.Rectangle, mask image.Image, maskp image.Point) Error {
	err := OK
	c := l.spec.TextColor
	alpha := uint32(c.A())
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		for x := dr.Min.X; x < dr.Max.X; x++ {
			_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
			cov := (a >> 8) * alpha / 255
			if cov == 0 {
				continue
			}
			err = err.Or(l.put(d, x, y, c.WithAlpha(uint8(cov))))
		}
	}
	return err
}
