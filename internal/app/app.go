// Package app runs one confirmation session: it renders the dialog, shows
// it and waits for the user to press a hardware button.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rook-computer/teeui/internal/buttons"
	"github.com/rook-computer/teeui/internal/dialog"
	"github.com/rook-computer/teeui/internal/display"
	"github.com/rook-computer/teeui/internal/logging"
	"github.com/rook-computer/teeui/internal/params"
	"github.com/rook-computer/teeui/internal/render"
	"github.com/rook-computer/teeui/internal/system"
)

// Result is the outcome of a session.
type Result int

const (
	Aborted Result = iota
	Confirmed
	Cancelled
)

func (r Result) String() string {
	switch r {
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	}
	return "aborted"
}

// Presenter shows a frame. *display.Framebuffer implements it.
type Presenter interface {
	Present(frame *display.Frame)
}

type App struct {
	Dialog  *dialog.Dialog
	Display Presenter
	Buttons buttons.Buttons
	Device  params.DeviceInfo
	Options dialog.Options
	Logger  logging.Logger
	// Console switches the virtual terminal to graphics mode while the
	// dialog is shown.
	Console bool

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(d *dialog.Dialog, presenter Presenter, buttonDriver buttons.Buttons, dev params.DeviceInfo, opts dialog.Options) *App {
	return &App{Dialog: d, Display: presenter, Buttons: buttonDriver, Device: dev, Options: opts, Logger: logging.NoopLogger{}, exitCh: make(chan error, 1)}
}

// Exit ends a running session with err.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Run renders and presents the dialog and blocks until the user decides, a
// key requests exit, Exit is called or ctx is done. A dialog that does not
// render completely is never presented.
func (app *App) Run(ctx context.Context) (Result, error) {
	log := logging.OrNoop(app.Logger)
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	app.exitOnce.Store(false)

	frame := display.NewFrame(app.Device.WidthPx, app.Device.HeightPx)
	if rerr := app.Dialog.Render(0, 0, frame.Width, frame.Height, frame.Stride, frame.Pix, app.Device, app.Options); rerr != render.OK {
		log.Errorf("app", "render failed: %s", rerr)
		return Aborted, fmt.Errorf("render dialog: %w", rerr.Err())
	}

	if app.Console {
		_ = system.SetGraphicsMode(app.Logger)
		defer func() { _ = system.RestoreTextMode(app.Logger) }()
	}
	app.Display.Present(frame)

	if err := app.Buttons.Start(ctx); err != nil {
		log.Errorf("app", "buttons start error: %v", err)
		return Aborted, err
	}
	defer app.Buttons.Stop()

	for {
		select {
		case <-ctx.Done():
			return Aborted, ctx.Err()
		case err := <-app.exitCh:
			return Aborted, err
		case ev := <-app.Buttons.Events():
			switch ev {
			case buttons.Confirm:
				log.Infof("app", "user confirmed")
				return Confirmed, nil
			case buttons.Cancel:
				log.Infof("app", "user cancelled")
				return Cancelled, nil
			case buttons.Exit:
				return Aborted, ErrExit
			}
		}
	}
}

// ErrExit is returned when the exit key ends a session.
var ErrExit = errors.New("exit requested")
