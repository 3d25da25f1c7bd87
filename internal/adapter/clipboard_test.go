package adapter

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingClipboard struct {
	err   error
	texts []string
}

func (r *recordingClipboard) WriteText(_ context.Context, text string) error {
	if r.err != nil {
		return r.err
	}

	r.texts = append(r.texts, text)

	return nil
}

func TestSystemClipboard_WriteText(t *testing.T) {
	t.Run("writes through", func(t *testing.T) {
		var got string
		c := &SystemClipboard{write: func(s string) error { got = s; return nil }}

		require.NoError(t, c.WriteText(context.Background(), "{{ x }}"))
		assert.Equal(t, "{{ x }}", got)
	})

	t.Run("unsupported platform", func(t *testing.T) {
		c := &SystemClipboard{unsupported: true, write: func(string) error { return nil }}

		err := c.WriteText(context.Background(), "x")
		assert.ErrorIs(t, err, ErrClipboardUnavailable)
	})

	t.Run("wraps backend error", func(t *testing.T) {
		boom := errors.New("xclip missing")
		c := &SystemClipboard{write: func(string) error { return boom }}

		err := c.WriteText(context.Background(), "x")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("cancelled context", func(t *testing.T) {
		called := false
		c := &SystemClipboard{write: func(string) error { called = true; return nil }}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, c.WriteText(ctx, "x"), context.Canceled)
		assert.False(t, called)
	})
}

func TestOSC52Clipboard_WriteText(t *testing.T) {
	var buf bytes.Buffer
	c := &OSC52Clipboard{out: &buf}

	require.NoError(t, c.WriteText(context.Background(), "hello"))

	out := buf.String()
	assert.Contains(t, out, "]52;")
	assert.Contains(t, out, base64.StdEncoding.EncodeToString([]byte("hello")))
}

func TestOSC52Clipboard_NoTerminal(t *testing.T) {
	c := &OSC52Clipboard{}

	assert.ErrorIs(t, c.WriteText(context.Background(), "x"), ErrClipboardUnavailable)
}

func TestFallbackClipboard_WriteText(t *testing.T) {
	failing := &recordingClipboard{err: errors.New("nope")}
	working := &recordingClipboard{}

	f := FallbackClipboard{failing, working}
	require.NoError(t, f.WriteText(context.Background(), "payload"))
	assert.Equal(t, []string{"payload"}, working.texts)

	f = FallbackClipboard{failing, &recordingClipboard{err: errors.New("also nope")}}
	err := f.WriteText(context.Background(), "payload")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
	assert.Contains(t, err.Error(), "also nope")

	assert.ErrorIs(t, FallbackClipboard{}.WriteText(context.Background(), "x"), ErrClipboardUnavailable)
}

func TestNewClipboard(t *testing.T) {
	var buf bytes.Buffer

	for mode, want := range map[string]any{
		"":              FallbackClipboard{},
		ClipboardAuto:   FallbackClipboard{},
		ClipboardSystem: &SystemClipboard{},
		ClipboardOSC52:  &OSC52Clipboard{},
		ClipboardNone:   DiscardClipboard{},
		"SYSTEM":        &SystemClipboard{},
	} {
		c, err := NewClipboard(mode, &buf)
		require.NoError(t, err, mode)
		assert.IsType(t, want, c, mode)
	}

	_, err := NewClipboard("carrier-pigeon", &buf)
	assert.Error(t, err)
}
