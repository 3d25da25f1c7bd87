package controller

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	m "github.com/mouse-blink/linemark/internal/model"
)

const minGutterDigits = 3

// editorModel is a read-only code view with cursor, multi-selection, line
// decorations and custom commands. It implements adapter.Editor.
type editorModel struct {
	lines    [][]span
	cursor   int // 0-based line index
	anchor   int // start of the range being extended, -1 when none
	pinned   []m.SelectionRange
	top      int
	width    int
	height   int
	commands []m.Command
	// decorations maps a 1-based line to the styles applied to it.
	decorations map[int][]m.DecorationStyle
}

func newEditorModel(doc m.Document, theme string) *editorModel {
	lines := highlightDocument(doc, theme)
	if len(lines) == 0 {
		lines = [][]span{{}}
	}

	return &editorModel{
		lines:       lines,
		anchor:      -1,
		width:       80,
		height:      20,
		decorations: make(map[int][]m.DecorationStyle),
	}
}

// RegisterCommand adds cmd, replacing a command with the same ID.
func (e *editorModel) RegisterCommand(cmd m.Command) {
	for i, existing := range e.commands {
		if existing.ID == cmd.ID {
			e.commands[i] = cmd
			return
		}
	}

	e.commands = append(e.commands, cmd)
}

// Selections returns the pinned selections followed by the live one. With no
// range being extended the live selection is the cursor line.
func (e *editorModel) Selections() []m.SelectionRange {
	selections := slices.Clone(e.pinned)

	return append(selections, e.currentSelection())
}

// ReplaceDecorations drops all decorations and applies the given ones.
func (e *editorModel) ReplaceDecorations(decorations []m.Decoration) {
	e.decorations = make(map[int][]m.DecorationStyle, len(decorations))

	for _, d := range decorations {
		for _, line := range d.Range.Lines() {
			e.decorations[line] = append(e.decorations[line], d.Style)
		}
	}
}

func (e *editorModel) currentSelection() m.SelectionRange {
	start := e.cursor
	if e.anchor >= 0 {
		start = e.anchor
	}

	return m.SelectionRange{StartLine: start + 1, EndLine: e.cursor + 1}.Ordered()
}

func (e *editorModel) commandForKey(k string) (m.Command, bool) {
	for _, cmd := range e.commands {
		if slices.Contains(cmd.Keys, k) {
			return cmd, true
		}
	}

	return m.Command{}, false
}

func (e *editorModel) lineCount() int {
	return len(e.lines)
}

func (e *editorModel) setSize(width, height int) {
	e.width = max(width, 1)
	e.height = max(height, 1)
	e.ensureVisible()
}

// setCursor moves the cursor to the 0-based line. When extend is true the
// previous cursor becomes the anchor of a range selection.
func (e *editorModel) setCursor(line int, extend bool) {
	line = min(max(line, 0), e.lineCount()-1)

	switch {
	case extend && e.anchor < 0:
		e.anchor = e.cursor
	case !extend:
		e.anchor = -1
	}

	e.cursor = line
	e.ensureVisible()
}

func (e *editorModel) moveCursor(delta int, extend bool) {
	e.setCursor(e.cursor+delta, extend)
}

// pinSelection keeps the live selection and starts a new one at the cursor.
func (e *editorModel) pinSelection() {
	sel := e.currentSelection()
	if !slices.Contains(e.pinned, sel) {
		e.pinned = append(e.pinned, sel)
	}

	e.anchor = -1
}

func (e *editorModel) clearSelection() {
	e.pinned = nil
	e.anchor = -1
}

func (e *editorModel) scrollBy(delta int) {
	maxTop := max(e.lineCount()-e.height, 0)
	e.top = min(max(e.top+delta, 0), maxTop)
}

func (e *editorModel) ensureVisible() {
	if e.cursor < e.top {
		e.top = e.cursor
	}

	if e.cursor >= e.top+e.height {
		e.top = e.cursor - e.height + 1
	}
}

// lineAt maps a row of the editor view to a 0-based line.
func (e *editorModel) lineAt(row int) (int, bool) {
	line := e.top + row
	if row < 0 || row >= e.height || line >= e.lineCount() {
		return 0, false
	}

	return line, true
}

func (e *editorModel) isSelected(line int) bool {
	for _, sel := range e.Selections() {
		if sel.Contains(line + 1) {
			return true
		}
	}

	return false
}

// handleKey applies navigation keys and reports whether msg was consumed.
func (e *editorModel) handleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "k":
		e.moveCursor(-1, false)
	case "down", "j":
		e.moveCursor(1, false)
	case "shift+up", "K":
		e.moveCursor(-1, true)
	case "shift+down", "J":
		e.moveCursor(1, true)
	case "pgup":
		e.moveCursor(-e.height, false)
	case "pgdown":
		e.moveCursor(e.height, false)
	case "home", "g":
		e.setCursor(0, false)
	case "end", "G":
		e.setCursor(e.lineCount()-1, false)
	case "a":
		e.pinSelection()
	case "esc":
		e.clearSelection()
	default:
		return false
	}

	return true
}

func (e *editorModel) gutterDigits() int {
	return max(len(strconv.Itoa(e.lineCount())), minGutterDigits)
}

func (e *editorModel) View() string {
	digits := e.gutterDigits()
	contentWidth := max(e.width-digits-2, 0)

	numberStyle := lipgloss.NewStyle().Foreground(mutedColor)
	cursorNumberStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	blank := strings.Repeat(" ", e.width)

	rows := make([]string, 0, e.height)

	for row := range e.height {
		line := e.top + row
		if line >= e.lineCount() {
			rows = append(rows, blank)
			continue
		}

		styles := e.decorations[line+1]

		var bg lipgloss.TerminalColor
		switch {
		case len(styles) > 0:
			bg = decorationBackground(styles[0])
		case e.isSelected(line):
			bg = selectionColor
		}

		number := numberStyle
		if line == e.cursor {
			number = cursorNumberStyle
		}

		gutter := number.Render(fmt.Sprintf("%*d", digits, line+1)) + gutterMarker(styles) + " "
		rows = append(rows, gutter+renderSpans(e.lines[line], contentWidth, bg))
	}

	return strings.Join(rows, "\n")
}

// renderSpans clips spans to width cells and pads the rest of the line with
// the background colour.
func renderSpans(spans []span, width int, bg lipgloss.TerminalColor) string {
	var b strings.Builder

	remaining := width

	for _, sp := range spans {
		if remaining <= 0 {
			break
		}

		text := sp.text
		if runewidth.StringWidth(text) > remaining {
			text = runewidth.Truncate(text, remaining, "")
		}

		remaining -= runewidth.StringWidth(text)
		sp.text = text
		b.WriteString(sp.render(bg))
	}

	if remaining > 0 {
		b.WriteString(span{text: strings.Repeat(" ", remaining)}.render(bg))
	}

	return b.String()
}
