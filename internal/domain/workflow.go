package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/linemark/internal/adapter"
	"github.com/mouse-blink/linemark/internal/controller"
	m "github.com/mouse-blink/linemark/internal/model"
)

const staleSessionNotice = "file changed since the session was saved; marked lines may be stale"

// AnnotateArgs holds the arguments for an interactive annotation session.
type AnnotateArgs struct {
	Source   m.Path // file to open; empty opens the scratch buffer
	Filename string // overrides the exported filename
	Session  m.Path // session file; empty derives one from the session dir
	Format   Format
}

// ExportArgs holds the arguments for a non-interactive export.
type ExportArgs struct {
	Filename string
	In       string // line spec, e.g. "4-6,9"
	Out      string
	Session  m.Path // optional session to start from
	Format   Format
	Copy     bool
}

// DecodeArgs holds the arguments for decoding an exported payload.
type DecodeArgs struct {
	Payload string
}

// ShowArgs holds the arguments for displaying saved sessions.
type ShowArgs struct {
	Sessions []m.Path
	Parallel int
}

// Workflow defines the operations behind each command.
type Workflow interface {
	Annotate(ctx context.Context, args AnnotateArgs) error
	Export(ctx context.Context, args ExportArgs) error
	Decode(args DecodeArgs) error
	Show(ctx context.Context, args ShowArgs) error
}

// WorkflowOption configures a Workflow.
type WorkflowOption func(*workflow)

// WithLogger sets the workflow logger.
func WithLogger(logger *slog.Logger) WorkflowOption {
	return func(w *workflow) {
		w.log = logger
	}
}

// WithSessionDir stores sessions for opened files under dir.
func WithSessionDir(dir m.Path) WorkflowOption {
	return func(w *workflow) {
		w.sessionDir = dir
	}
}

// WithTheme selects the syntax highlighting style of the editor.
func WithTheme(theme string) WorkflowOption {
	return func(w *workflow) {
		w.theme = theme
	}
}

type workflow struct {
	reader     adapter.SourceReader
	store      adapter.SessionStore
	exporter   Exporter
	ui         controller.UI
	log        *slog.Logger
	sessionDir m.Path
	theme      string
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	reader adapter.SourceReader,
	store adapter.SessionStore,
	exporter Exporter,
	ui controller.UI,
	opts ...WorkflowOption,
) Workflow {
	w := &workflow{
		reader:   reader,
		store:    store,
		exporter: exporter,
		ui:       ui,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Annotate opens the source in the interactive annotator. When a session
// path is known the session is restored before and saved after.
func (w *workflow) Annotate(ctx context.Context, args AnnotateArgs) error {
	doc, err := w.reader.Read(args.Source)
	if err != nil {
		return err
	}

	sessionPath := args.Session
	if sessionPath == "" && w.sessionDir != "" && args.Source != "" {
		sessionPath = adapter.SessionPath(w.sessionDir, args.Source)
	}

	session, err := w.restoreSession(sessionPath)
	if err != nil {
		return err
	}

	var notice string
	if session.SourceHash != "" && doc.Hash != "" && session.SourceHash != doc.Hash {
		notice = staleSessionNotice
		w.log.Warn("session source changed", "session", sessionPath, "source", args.Source)
	}

	switch {
	case args.Filename != "":
		session.Filename = args.Filename
	case session.Filename == "":
		session.Filename = doc.Name
	}

	session.SourceHash = doc.Hash

	annotations := NewAnnotator(session)
	opts := controller.AnnotateOptions{
		Document:    doc,
		Annotations: annotations,
		Export: func(ctx context.Context, s m.Session) (string, error) {
			return w.exporter.Export(ctx, s, args.Format)
		},
		Render: func(s m.Session) (string, error) {
			return w.exporter.Render(s, args.Format)
		},
		Theme:  w.theme,
		Notice: notice,
		Logger: w.log,
	}

	if sessionPath != "" {
		opts.Save = func(s m.Session) error {
			return w.store.Save(sessionPath, s)
		}
	}

	w.log.Info("annotating", "source", args.Source, "lines", doc.LineCount(), "language", doc.Language)

	if err := w.ui.Annotate(ctx, opts); err != nil {
		return err
	}

	if opts.Save == nil {
		return nil
	}

	if err := opts.Save(annotations.Session()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	w.log.Info("session saved", "session", sessionPath)

	return nil
}

// Export renders the payload for the given session and line specs.
func (w *workflow) Export(ctx context.Context, args ExportArgs) error {
	var session m.Session

	if args.Session != "" {
		loaded, err := w.store.Load(args.Session)
		if err != nil {
			return err
		}

		session = loaded
	}

	if args.Filename != "" {
		session.Filename = args.Filename
	}

	in, err := ParseLineSpec(args.In)
	if err != nil {
		return fmt.Errorf("--in: %w", err)
	}

	out, err := ParseLineSpec(args.Out)
	if err != nil {
		return fmt.Errorf("--out: %w", err)
	}

	session.In = MergeLines(session.In, in...)
	session.Out = MergeLines(session.Out, out...)

	w.log.Info("exporting", "filename", session.Filename, "in", FormatLineSpec(session.In), "out", FormatLineSpec(session.Out))

	if !args.Copy {
		text, err := w.exporter.Render(session, args.Format)
		if err != nil {
			return err
		}

		return w.ui.DisplayPayload(controller.PayloadResult{Text: text})
	}

	text, copyErr := w.exporter.Export(ctx, session, args.Format)
	if copyErr != nil {
		if text == "" {
			return copyErr
		}

		w.log.Warn("clipboard write failed", "error", copyErr)
	}

	return w.ui.DisplayPayload(controller.PayloadResult{Text: text, Copied: copyErr == nil, CopyErr: copyErr})
}

// Decode parses an exported payload and displays its line sets.
func (w *workflow) Decode(args DecodeArgs) error {
	session, err := DecodePayload(args.Payload)
	if err != nil {
		return err
	}

	return w.ui.DisplaySessions([]controller.SessionReport{newSessionReport("payload", session)})
}

// Show loads the session files concurrently and displays them in order.
func (w *workflow) Show(ctx context.Context, args ShowArgs) error {
	reports := make([]controller.SessionReport, len(args.Sessions))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(args.Parallel, 1))

	for i, path := range args.Sessions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			session, err := w.store.Load(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}

			reports[i] = newSessionReport(string(path), session)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return w.ui.DisplaySessions(reports)
}

func (w *workflow) restoreSession(path m.Path) (m.Session, error) {
	if path == "" {
		return m.Session{}, nil
	}

	session, err := w.store.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return m.Session{}, nil
	}

	if err != nil {
		return m.Session{}, err
	}

	w.log.Info("session restored", "session", path, "in", len(session.In), "out", len(session.Out))

	return session, nil
}

func newSessionReport(source string, session m.Session) controller.SessionReport {
	session.In = NormalizeLines(session.In)
	session.Out = NormalizeLines(session.Out)

	return controller.SessionReport{
		Source:    source,
		Session:   session,
		InTokens:  EncodeRanges(session.In),
		OutTokens: EncodeRanges(session.Out),
	}
}
