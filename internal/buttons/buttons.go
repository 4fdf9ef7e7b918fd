// Package buttons turns hardware key presses into dialog decisions.
package buttons

import (
	"context"

	"github.com/rook-computer/teeui/internal/logging"
	"github.com/rook-computer/teeui/internal/system"
)

type Event string

const (
	Confirm Event = "confirm"
	Cancel  Event = "cancel"
	Exit    Event = "exit"
)

type Buttons interface {
	Start(ctx context.Context) error
	Stop() error
	Events() <-chan Event
}

// EventForKey maps an evdev key code to its event. The power button confirms
// and volume up cancels.
func EventForKey(code uint16) (Event, bool) {
	switch code {
	case system.KeyPower:
		return Confirm, true
	case system.KeyVolumeUp:
		return Cancel, true
	case system.KeyF4, system.KeyEsc:
		return Exit, true
	}
	return "", false
}

// EvdevButtons reads the Linux input devices.
type EvdevButtons struct {
	Logger logging.Logger

	ch     chan Event
	cancel context.CancelFunc
}

func NewEvdevButtons(logger logging.Logger) *EvdevButtons {
	return &EvdevButtons{Logger: logger, ch: make(chan Event, 8)}
}

func (b *EvdevButtons) Start(ctx context.Context) error {
	ctx, b.cancel = context.WithCancel(ctx)
	err := system.WatchKeys(ctx, b.Logger, func(code uint16) {
		ev, ok := EventForKey(code)
		if !ok {
			return
		}
		logging.OrNoop(b.Logger).Infof("buttons", "key %d: %s", code, ev)
		select {
		case b.ch <- ev:
		default:
		}
	})
	if err != nil {
		b.cancel()
	}
	return err
}

func (b *EvdevButtons) Stop() error {
	if b.cancel != nil {
		b.cancel()
	}
	return nil
}

func (b *EvdevButtons) Events() <-chan Event { return b.ch }

// ChannelButtons delivers events pushed with Press.
type ChannelButtons struct{ ch chan Event }

func NewChannelButtons() *ChannelButtons { return &ChannelButtons{ch: make(chan Event, 8)} }

func (c *ChannelButtons) Start(ctx context.Context) error { return nil }
func (c *ChannelButtons) Stop() error                     { return nil }
func (c *ChannelButtons) Events() <-chan Event            { return c.ch }

// Press queues ev, dropping it if the queue is full.
func (c *ChannelButtons) Press(ev Event) {
	select {
	case c.ch <- ev:
	default:
	}
}
