// Package controller provides the user interfaces of linemark: an interactive
// Bubble Tea annotator and plain text output for pipes.
package controller

import (
	"context"
	"log/slog"

	"github.com/mouse-blink/linemark/internal/adapter"
	m "github.com/mouse-blink/linemark/internal/model"
)

// Annotations is the annotation state the interactive UI drives.
type Annotations interface {
	// Attach is called once the editor exists (mount callback).
	Attach(editor adapter.Editor)
	Remove(ch m.Channel, line int) bool
	Lines(ch m.Channel) []int
	Filename() string
	SetFilename(name string)
	Session() m.Session
}

// ExportFunc renders the payload for session and copies it to the clipboard.
type ExportFunc func(ctx context.Context, session m.Session) (string, error)

// RenderFunc renders the payload for session without side effects.
type RenderFunc func(session m.Session) (string, error)

// SaveFunc persists session.
type SaveFunc func(session m.Session) error

// AnnotateOptions configures an interactive annotation session.
type AnnotateOptions struct {
	Document    m.Document
	Annotations Annotations
	Export      ExportFunc
	Render      RenderFunc
	Save        SaveFunc // nil when the session is not persisted
	Theme       string   // chroma style name
	Notice      string   // status line message shown at start-up
	Logger      *slog.Logger
}

// SessionReport is a session prepared for display.
type SessionReport struct {
	Source    string
	Session   m.Session
	InTokens  []m.Token
	OutTokens []m.Token
}

// PayloadResult is the outcome of a non-interactive export.
type PayloadResult struct {
	Text    string
	Copied  bool
	CopyErr error // set when the clipboard write failed
}

// UI defines how linemark talks to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Annotate runs the annotator until the user quits.
	Annotate(ctx context.Context, opts AnnotateOptions) error
	DisplaySessions(reports []SessionReport) error
	DisplayPayload(result PayloadResult) error
}
