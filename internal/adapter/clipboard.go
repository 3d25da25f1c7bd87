package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// ErrClipboardUnavailable is returned when no clipboard backend can accept text.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Clipboard modes accepted by NewClipboard.
const (
	ClipboardAuto   = "auto"
	ClipboardSystem = "system"
	ClipboardOSC52  = "osc52"
	ClipboardNone   = "none"
)

// Clipboard writes UTF-8 text to a clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// NewClipboard builds the clipboard for mode. OSC 52 sequences are written to
// term, which should be the controlling terminal.
func NewClipboard(mode string, term io.Writer) (Clipboard, error) {
	switch strings.ToLower(mode) {
	case ClipboardSystem:
		return NewSystemClipboard(), nil
	case ClipboardOSC52:
		return NewOSC52Clipboard(term), nil
	case ClipboardNone:
		return DiscardClipboard{}, nil
	case "", ClipboardAuto:
		return FallbackClipboard{NewSystemClipboard(), NewOSC52Clipboard(term)}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard mode %q", mode)
	}
}

// SystemClipboard uses the platform clipboard (pbcopy, xclip, wl-copy, ...).
type SystemClipboard struct {
	write       func(string) error
	unsupported bool
}

// NewSystemClipboard creates a SystemClipboard.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{write: clipboard.WriteAll, unsupported: clipboard.Unsupported}
}

// WriteText copies text to the platform clipboard.
func (c *SystemClipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if c.unsupported {
		return fmt.Errorf("system clipboard: %w", ErrClipboardUnavailable)
	}

	if err := c.write(text); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}

	return nil
}

// OSC52Clipboard asks the terminal emulator to set the clipboard through an
// OSC 52 escape sequence. It works over SSH where no system clipboard exists.
type OSC52Clipboard struct {
	out    io.Writer
	tmux   bool
	screen bool
}

// NewOSC52Clipboard creates an OSC52Clipboard writing to out. Tmux and screen
// passthrough is enabled from the environment.
func NewOSC52Clipboard(out io.Writer) *OSC52Clipboard {
	return &OSC52Clipboard{
		out:    out,
		tmux:   os.Getenv("TMUX") != "",
		screen: strings.HasPrefix(os.Getenv("TERM"), "screen"),
	}
}

// WriteText emits the OSC 52 sequence for text.
func (c *OSC52Clipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if c.out == nil {
		return fmt.Errorf("osc52: %w", ErrClipboardUnavailable)
	}

	seq := osc52.New(text)

	switch {
	case c.tmux:
		seq = seq.Tmux()
	case c.screen:
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(c.out); err != nil {
		return fmt.Errorf("osc52: %w", err)
	}

	return nil
}

// FallbackClipboard tries each clipboard in order until one succeeds.
type FallbackClipboard []Clipboard

// WriteText writes to the first clipboard that accepts text.
func (f FallbackClipboard) WriteText(ctx context.Context, text string) error {
	if len(f) == 0 {
		return ErrClipboardUnavailable
	}

	var errs []error

	for _, c := range f {
		err := c.WriteText(ctx, text)
		if err == nil {
			return nil
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// DiscardClipboard accepts and drops every write.
type DiscardClipboard struct{}

// WriteText does nothing.
func (DiscardClipboard) WriteText(_ context.Context, _ string) error {
	return nil
}
