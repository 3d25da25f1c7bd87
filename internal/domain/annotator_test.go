package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/linemark/internal/model"
)

type fakeEditor struct {
	commands    []m.Command
	selections  []m.SelectionRange
	decorations []m.Decoration
	replaced    int
}

func (e *fakeEditor) RegisterCommand(cmd m.Command) {
	e.commands = append(e.commands, cmd)
}

func (e *fakeEditor) Selections() []m.SelectionRange {
	return e.selections
}

func (e *fakeEditor) ReplaceDecorations(decorations []m.Decoration) {
	e.decorations = decorations
	e.replaced++
}

func (e *fakeEditor) run(t *testing.T, id string) {
	t.Helper()

	for _, cmd := range e.commands {
		if cmd.ID == id {
			cmd.Run()
			return
		}
	}

	t.Fatalf("command %q not registered", id)
}

func lineDecoration(line int, style m.DecorationStyle) m.Decoration {
	return m.Decoration{Range: m.SelectionRange{StartLine: line, EndLine: line}, Style: style}
}

func TestAnnotator_AttachRegistersCommands(t *testing.T) {
	editor := &fakeEditor{}
	a := NewAnnotator(m.Session{In: []int{2}})

	a.Attach(editor)

	require.Len(t, editor.commands, 2)
	assert.Equal(t, CommandMarkIn, editor.commands[0].ID)
	assert.Equal(t, []string{"i"}, editor.commands[0].Keys)
	assert.Equal(t, CommandMarkOut, editor.commands[1].ID)
	assert.Equal(t, []string{"o"}, editor.commands[1].Keys)
	assert.Equal(t, []m.Decoration{lineDecoration(2, m.StyleIn)}, editor.decorations)
}

func TestAnnotator_MarkSelectionThroughCommand(t *testing.T) {
	editor := &fakeEditor{}
	a := NewAnnotator(m.Session{})
	a.Attach(editor)

	editor.selections = []m.SelectionRange{{StartLine: 4, EndLine: 6}}
	editor.run(t, CommandMarkIn)

	editor.selections = []m.SelectionRange{{StartLine: 6, EndLine: 6}}
	editor.run(t, CommandMarkIn)

	assert.Equal(t, []int{4, 5, 6}, a.Lines(m.ChannelIn))
	assert.Empty(t, a.Lines(m.ChannelOut))
	assert.Len(t, editor.decorations, 3)
}

func TestAnnotator_MarkMultiSelection(t *testing.T) {
	editor := &fakeEditor{selections: []m.SelectionRange{
		{StartLine: 9, EndLine: 7},
		{StartLine: 2, EndLine: 2},
	}}
	a := NewAnnotator(m.Session{})
	a.Attach(editor)

	changed := a.MarkSelection(m.ChannelOut)

	assert.True(t, changed)
	assert.Equal(t, []int{2, 7, 8, 9}, a.Lines(m.ChannelOut))
}

func TestAnnotator_MarkEmptySelectionIsNoop(t *testing.T) {
	editor := &fakeEditor{}
	a := NewAnnotator(m.Session{In: []int{1}})
	a.Attach(editor)
	before := editor.replaced

	assert.False(t, a.MarkSelection(m.ChannelIn))
	assert.Equal(t, before, editor.replaced)
	assert.Equal(t, []int{1}, a.Lines(m.ChannelIn))
}

func TestAnnotator_MarkWithoutEditor(t *testing.T) {
	a := NewAnnotator(m.Session{})

	assert.False(t, a.MarkSelection(m.ChannelIn))
	assert.True(t, a.Mark(m.ChannelIn, m.SelectionRange{StartLine: 3, EndLine: 4}))
	assert.False(t, a.Mark(m.ChannelIn, m.SelectionRange{StartLine: 4, EndLine: 4}))
	assert.Equal(t, []int{3, 4}, a.Lines(m.ChannelIn))
}

func TestAnnotator_Remove(t *testing.T) {
	editor := &fakeEditor{}
	a := NewAnnotator(m.Session{In: []int{4, 5, 6}, Out: []int{9}})
	a.Attach(editor)

	assert.True(t, a.Remove(m.ChannelIn, 5))
	assert.Equal(t, []int{4, 6}, a.Lines(m.ChannelIn))
	assert.Equal(t, []m.Decoration{
		lineDecoration(4, m.StyleIn),
		lineDecoration(6, m.StyleIn),
		lineDecoration(9, m.StyleOut),
	}, editor.decorations)
}

func TestAnnotator_RemoveAbsentLineIsNoop(t *testing.T) {
	editor := &fakeEditor{}
	a := NewAnnotator(m.Session{In: []int{4, 5, 6}})
	a.Attach(editor)
	before := editor.replaced

	assert.False(t, a.Remove(m.ChannelIn, 7))
	assert.False(t, a.Remove(m.ChannelOut, 4))
	assert.Equal(t, []int{4, 5, 6}, a.Lines(m.ChannelIn))
	assert.Equal(t, before, editor.replaced)
}

func TestAnnotator_DecorationsLineInBothSets(t *testing.T) {
	a := NewAnnotator(m.Session{In: []int{3}, Out: []int{3, 1}})

	assert.Equal(t, []m.Decoration{
		lineDecoration(3, m.StyleIn),
		lineDecoration(1, m.StyleOut),
		lineDecoration(3, m.StyleOut),
	}, a.Decorations())
}

func TestAnnotator_NormalizesSeedSession(t *testing.T) {
	a := NewAnnotator(m.Session{Filename: "a.js", In: []int{6, 4, 4, 0}})

	assert.Equal(t, []int{4, 6}, a.Lines(m.ChannelIn))
	assert.Equal(t, "a.js", a.Filename())
}

func TestAnnotator_SessionIsSnapshot(t *testing.T) {
	a := NewAnnotator(m.Session{In: []int{1, 2}})
	a.SetFilename("b.go")

	snapshot := a.Session()
	a.Mark(m.ChannelIn, m.SelectionRange{StartLine: 3, EndLine: 3})
	snapshot.In[0] = 99

	assert.Equal(t, "b.go", snapshot.Filename)
	assert.Equal(t, []int{1, 2, 3}, a.Lines(m.ChannelIn))
}
