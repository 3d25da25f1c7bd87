package domain

import (
	"slices"

	"github.com/mouse-blink/linemark/internal/adapter"
	m "github.com/mouse-blink/linemark/internal/model"
)

// Context-menu command identifiers registered on the editor.
const (
	CommandMarkIn  = "mark-in"
	CommandMarkOut = "mark-out"
)

// Annotator owns the marked-line sets of one session and keeps the editor's
// decorations in sync with them. It is driven from a single UI event loop and
// is not safe for concurrent use.
type Annotator interface {
	// Attach is the editor mount callback: it registers the mark commands
	// and applies the current decorations.
	Attach(editor adapter.Editor)
	// MarkSelection unions every line of the editor's current selections
	// into the channel's set.
	MarkSelection(ch m.Channel) bool
	Mark(ch m.Channel, ranges ...m.SelectionRange) bool
	Remove(ch m.Channel, line int) bool
	Lines(ch m.Channel) []int
	Filename() string
	SetFilename(name string)
	Decorations() []m.Decoration
	Session() m.Session
}

type annotator struct {
	session m.Session
	editor  adapter.Editor
}

// NewAnnotator creates an Annotator seeded with session. The session's line
// sets are normalized.
func NewAnnotator(session m.Session) Annotator {
	session.In = NormalizeLines(session.In)
	session.Out = NormalizeLines(session.Out)

	return &annotator{session: session}
}

func (a *annotator) Attach(editor adapter.Editor) {
	a.editor = editor

	editor.RegisterCommand(m.Command{
		ID:    CommandMarkIn,
		Label: "Mark selection in",
		Keys:  []string{"i"},
		Run:   func() { a.MarkSelection(m.ChannelIn) },
	})
	editor.RegisterCommand(m.Command{
		ID:    CommandMarkOut,
		Label: "Mark selection out",
		Keys:  []string{"o"},
		Run:   func() { a.MarkSelection(m.ChannelOut) },
	})

	a.refresh()
}

func (a *annotator) MarkSelection(ch m.Channel) bool {
	if a.editor == nil {
		return false
	}

	return a.Mark(ch, a.editor.Selections()...)
}

func (a *annotator) Mark(ch m.Channel, ranges ...m.SelectionRange) bool {
	var selected []int
	for _, r := range ranges {
		selected = append(selected, r.Lines()...)
	}

	if len(selected) == 0 {
		return false
	}

	current := a.Lines(ch)
	merged := MergeLines(current, selected...)
	changed := !slices.Equal(current, merged)

	a.set(ch, merged)
	a.refresh()

	return changed
}

func (a *annotator) Remove(ch m.Channel, line int) bool {
	remaining, removed := RemoveLine(a.Lines(ch), line)
	if !removed {
		return false
	}

	a.set(ch, remaining)
	a.refresh()

	return true
}

func (a *annotator) Lines(ch m.Channel) []int {
	return a.session.Lines(ch)
}

func (a *annotator) Filename() string {
	return a.session.Filename
}

func (a *annotator) SetFilename(name string) {
	a.session.Filename = name
}

// Decorations derives one decoration per marked line, "in" lines first.
func (a *annotator) Decorations() []m.Decoration {
	decorations := make([]m.Decoration, 0, len(a.session.In)+len(a.session.Out))

	for _, ch := range m.Channels {
		style := m.StyleFor(ch)
		for _, line := range a.Lines(ch) {
			decorations = append(decorations, m.Decoration{
				Range: m.SelectionRange{StartLine: line, EndLine: line},
				Style: style,
			})
		}
	}

	return decorations
}

// Session returns a snapshot that later mutations do not affect.
func (a *annotator) Session() m.Session {
	s := a.session
	s.In = slices.Clone(s.In)
	s.Out = slices.Clone(s.Out)

	return s
}

func (a *annotator) set(ch m.Channel, lines []int) {
	if ch == m.ChannelOut {
		a.session.Out = lines
	} else {
		a.session.In = lines
	}
}

func (a *annotator) refresh() {
	if a.editor != nil {
		a.editor.ReplaceDecorations(a.Decorations())
	}
}
