package controller

import (
	"slices"

	"github.com/mouse-blink/linemark/internal/adapter"
	m "github.com/mouse-blink/linemark/internal/model"
)

// fakeAnnotations is a minimal Annotations that marks every selected line.
type fakeAnnotations struct {
	filename string
	in       []int
	out      []int
	editor   adapter.Editor
}

func (f *fakeAnnotations) Attach(editor adapter.Editor) {
	f.editor = editor

	editor.RegisterCommand(m.Command{ID: "mark-in", Label: "Mark selection in", Keys: []string{"i"}, Run: func() { f.mark(m.ChannelIn) }})
	editor.RegisterCommand(m.Command{ID: "mark-out", Label: "Mark selection out", Keys: []string{"o"}, Run: func() { f.mark(m.ChannelOut) }})
	f.refresh()
}

func (f *fakeAnnotations) mark(ch m.Channel) {
	set := f.ptr(ch)
	for _, sel := range f.editor.Selections() {
		*set = append(*set, sel.Lines()...)
	}

	slices.Sort(*set)
	*set = slices.Compact(*set)
	f.refresh()
}

func (f *fakeAnnotations) Remove(ch m.Channel, line int) bool {
	set := f.ptr(ch)

	idx := slices.Index(*set, line)
	if idx < 0 {
		return false
	}

	*set = slices.Delete(*set, idx, idx+1)
	f.refresh()

	return true
}

func (f *fakeAnnotations) Lines(ch m.Channel) []int {
	return *f.ptr(ch)
}

func (f *fakeAnnotations) Filename() string {
	return f.filename
}

func (f *fakeAnnotations) SetFilename(name string) {
	f.filename = name
}

func (f *fakeAnnotations) Session() m.Session {
	return m.Session{Filename: f.filename, In: slices.Clone(f.in), Out: slices.Clone(f.out)}
}

func (f *fakeAnnotations) ptr(ch m.Channel) *[]int {
	if ch == m.ChannelOut {
		return &f.out
	}

	return &f.in
}

func (f *fakeAnnotations) refresh() {
	if f.editor == nil {
		return
	}

	var decorations []m.Decoration
	for _, ch := range m.Channels {
		for _, line := range f.Lines(ch) {
			decorations = append(decorations, m.Decoration{
				Range: m.SelectionRange{StartLine: line, EndLine: line},
				Style: m.StyleFor(ch),
			})
		}
	}

	f.editor.ReplaceDecorations(decorations)
}
