package app

import (
	"context"
	"errors"
	"testing"

	"github.com/rook-computer/teeui/internal/buttons"
	"github.com/rook-computer/teeui/internal/dialog"
	"github.com/rook-computer/teeui/internal/display"
	"github.com/rook-computer/teeui/internal/render"
	"github.com/rook-computer/teeui/internal/text"
)

type recorder struct{ frames []*display.Frame }

func (r *recorder) Present(f *display.Frame) { r.frames = append(r.frames, f) }

func newApp(t *testing.T, opts dialog.Options) (*App, *recorder, *buttons.ChannelButtons) {
	t.Helper()
	d, err := dialog.New(text.EngineOpenType, nil)
	if err != nil {
		t.Fatalf("dialog.New: %v", err)
	}
	dev, err := dialog.LookupProfile("phone-small", false)
	if err != nil {
		t.Fatalf("LookupProfile: %v", err)
	}
	rec := &recorder{}
	btns := buttons.NewChannelButtons()
	return New(d, rec, btns, dev, opts), rec, btns
}

func TestRunResults(t *testing.T) {
	type tc struct {
		press   buttons.Event
		want    Result
		wantErr error
	}
	tests := map[string]tc{
		"confirm": {press: buttons.Confirm, want: Confirmed},
		"cancel":  {press: buttons.Cancel, want: Cancelled},
		"exit":    {press: buttons.Exit, want: Aborted, wantErr: ErrExit},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a, rec, btns := newApp(t, dialog.Options{Prompt: "Pay 5 EUR?"})
			btns.Press(tt.press)
			got, err := a.Run(context.Background())
			if got != tt.want || !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run = %s, %v; want %s, %v", got, err, tt.want, tt.wantErr)
			}
			if len(rec.frames) != 1 {
				t.Fatalf("presented %d frames", len(rec.frames))
			}
			if p := rec.frames[0].Pix[0]; p != uint32(render.White) {
				t.Fatalf("first pixel = %#08x", p)
			}
		})
	}
}

func TestRunIncompleteDialogNotPresented(t *testing.T) {
	a, rec, btns := newApp(t, dialog.Options{})
	btns.Press(buttons.Confirm)
	got, err := a.Run(context.Background())
	if got != Aborted || err == nil {
		t.Fatalf("Run = %s, %v; want aborted with error", got, err)
	}
	if len(rec.frames) != 0 {
		t.Fatalf("incomplete dialog presented")
	}
}

func TestRunExitAndContext(t *testing.T) {
	a, _, _ := newApp(t, dialog.Options{Prompt: "x"})
	stop := errors.New("stop")
	a.Exit(stop)
	if got, err := a.Run(context.Background()); got != Aborted || err == nil {
		t.Fatalf("Run = %s, %v", got, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if got, err := a.Run(ctx); got != Aborted || !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %s, %v; want context canceled", got, err)
	}
}
