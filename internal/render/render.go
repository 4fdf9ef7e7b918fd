// Package render composites dialog elements into a caller-owned pixel
// buffer. Drawing never writes outside the buffer, and element failures are
// collected rather than aborting the frame.
package render

import (
	"github.com/rook-computer/teeui/internal/logging"
	"github.com/rook-computer/teeui/internal/params"
)

// Renderer draws one static layout description for any device.
type Renderer struct {
	Params     *params.Set
	Layout     []Descriptor
	Env        Env
	Background Color
	// Setup supplies leaf parameters before the layout is resolved.
	Setup func(ctx *params.Context) error
}

// NewRenderer returns a renderer on the default background.
func NewRenderer(set *params.Set, descriptors []Descriptor, env Env) *Renderer {
	return &Renderer{Params: set, Layout: descriptors, Env: env, Background: DefaultBackground}
}

// Render draws the layout for dev into the w x h region at (x, y) of buffer,
// whose rows are lineStride pixels apart.
//
// The region is validated first; if it does not fit the buffer, or its end
// offset overflows, OutOfBoundsDrawing is returned and nothing is written.
// Otherwise the region is cleared and every element is drawn in order. The
// first element failure is returned, but later elements are still drawn and
// pixels already written stay.
func (r *Renderer) Render(x, y, w, h, lineStride uint32, buffer []uint32, dev params.DeviceInfo) Error {
	log := logging.OrNoop(r.Env.Logger)

	if err := CheckRegion(x, y, w, h, lineStride, len(buffer)); err != OK {
		log.Errorf("render", "region %dx%d+%d+%d stride %d does not fit %d pixels", w, h, x, y, lineStride, len(buffer))
		return err
	}
	if err := dev.Validate(); err != nil {
		log.Errorf("render", "%v", err)
		return InvalidDeviceInfo
	}

	fb := &FrameBuffer{Left: x, Top: y, Width: w, Height: h, LineStride: lineStride, Pixels: buffer}
	fb.Clear(r.Background)

	ctx := params.NewContext(r.Params, dev)
	if r.Setup != nil {
		if err := r.Setup(ctx); err != nil {
			log.Errorf("render", "setup: %v", err)
			return ErrorFrom(err)
		}
	}

	elements, result := Instantiate(ctx, r.Layout, r.Env)
	for _, e := range elements {
		err := e.Draw(fb.DrawPixel)
		if err != OK {
			name := "element"
			if n, ok := e.(Named); ok && n.Name() != "" {
				name = n.Name()
			}
			log.Errorf("render", "draw %s: %s", name, err)
		}
		result = result.Or(err)
	}
	if result == OK {
		log.Infof("render", "drew %d elements into %dx%d", len(elements), w, h)
	}
	return result
}
