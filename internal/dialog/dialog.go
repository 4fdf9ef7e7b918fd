// Package dialog is the trusted confirmation dialog: its parameters, its
// element layout, its strings and the entry point that renders it into a
// caller-supplied buffer.
package dialog

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/rook-computer/teeui/internal/assets"
	"github.com/rook-computer/teeui/internal/logging"
	"github.com/rook-computer/teeui/internal/params"
	"github.com/rook-computer/teeui/internal/render"
	"github.com/rook-computer/teeui/internal/text"
)

// Options are the per-request inputs of a render.
type Options struct {
	// Language selects the translation; unknown languages fall back to
	// DefaultLanguage.
	Language string
	// Prompt is the message being confirmed.
	Prompt string
	// QRPayload, when set, adds a QR code next to the shield.
	QRPayload string
}

// Dialog binds the layout to its collaborators. Renders share cached font
// faces, so a Dialog must not render from several goroutines at once.
type Dialog struct {
	Fonts   *text.Fonts
	Assets  *assets.Table
	Catalog *text.Catalog
	Logger  logging.Logger
}

// New returns a dialog using the embedded assets with fonts parsed by
// engine.
func New(engine text.Engine, logger logging.Logger) (*Dialog, error) {
	fonts := text.NewFonts(engine)
	fonts.Logger = logger
	table := assets.Default()
	if err := table.RegisterFonts(fonts); err != nil {
		return nil, fmt.Errorf("dialog fonts: %w", err)
	}
	return &Dialog{Fonts: fonts, Assets: table, Catalog: Catalog, Logger: logger}, nil
}

// Render draws the dialog for dev into the w x h region at (x, y) of
// buffer. See render.Renderer.Render for the buffer contract.
func (d *Dialog) Render(x, y, w, h, lineStride uint32, buffer []uint32, dev params.DeviceInfo, opts Options) render.Error {
	log := logging.OrNoop(d.Logger)

	env := render.Env{
		Fonts:      d.Fonts,
		Assets:     d.Assets,
		Translator: d.Catalog,
		Language:   opts.Language,
		Logger:     d.Logger,
	}
	if opts.Prompt != "" {
		env.Translator = text.Overlay{Base: d.Catalog, Values: map[text.TextID]string{TextPrompt: opts.Prompt}}
	}

	descriptors := Layout
	if opts.QRPayload != "" && dev.Validate() == nil {
		size := math.Round(QRSizeDp * dev.Dp2Px)
		if size > float64(min(dev.WidthPx, dev.HeightPx)) {
			// Left without an asset, the QR element reports BitmapReadFailed.
			log.Errorf("dialog", "qr code of %.0fpx does not fit the screen", size)
		} else if data, err := assets.QRCodeBMP(opts.QRPayload, int(size)); err != nil {
			log.Errorf("dialog", "qr code: %v", err)
		} else {
			env.Assets = d.Assets.With(QRAsset, data)
		}
		descriptors = append(slices.Clip(Layout), QRCodeSpec)
	}

	r := render.NewRenderer(Parameters, descriptors, env)
	return r.Render(x, y, w, h, lineStride, buffer, dev)
}

var defaultDialog = sync.OnceValues(func() (*Dialog, error) {
	return New(text.EngineOpenType, nil)
})

// Render draws the dialog with the embedded assets and the OpenType engine.
// Calls must not overlap.
func Render(x, y, w, h, lineStride uint32, buffer []uint32, dev params.DeviceInfo, opts Options) render.Error {
	d, err := defaultDialog()
	if err != nil {
		return render.FaceNotLoaded
	}
	return d.Render(x, y, w, h, lineStride, buffer, dev, opts)
}
