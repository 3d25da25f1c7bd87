package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/linemark/internal/model"
)

const (
	panelWidth    = 32
	chromeHeight  = 2 // status line + help line
	defaultWidth  = 100
	defaultHeight = 30
	wheelStep     = 3
)

type focusArea int

const (
	focusEditor focusArea = iota
	focusFilename
	focusIn
	focusOut
	focusCount
)

// annotateModel is the root Bubble Tea model of the annotator: the editor on
// the left, the annotation panel on the right.
type annotateModel struct {
	ctx       context.Context
	opts      AnnotateOptions
	log       *slog.Logger
	editor    *editorModel
	panel     panelModel
	menu      contextMenu
	help      help.Model
	keys      keyMap
	focus     focusArea
	width     int
	height    int
	status    string
	statusErr bool
}

func newAnnotateModel(ctx context.Context, opts AnnotateOptions) annotateModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	editor := newEditorModel(opts.Document, opts.Theme)
	opts.Annotations.Attach(editor)

	model := annotateModel{
		ctx:       ctx,
		opts:      opts,
		log:       logger,
		editor:    editor,
		panel:     newPanelModel(opts.Annotations.Filename()),
		help:      help.New(),
		keys:      newKeyMap(),
		status:    opts.Notice,
		statusErr: opts.Notice != "",
	}

	model.syncPanel()
	model.panel.setFocus(focusEditor)

	return model.resize(defaultWidth, defaultHeight)
}

func (a annotateModel) Init() tea.Cmd {
	return nil
}

func (a annotateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a = a.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		a, cmd = a.handleKeyMsg(msg)

	case tea.MouseMsg:
		a = a.handleMouseMsg(msg)

	case exportedMsg:
		a = a.handleExported(msg)

	case savedMsg:
		if msg.err != nil {
			a.setStatus(fmt.Sprintf("save failed: %v", msg.err), true)
		} else {
			a.setStatus("session saved", false)
		}
	}

	return a, cmd
}

func (a annotateModel) handleKeyMsg(msg tea.KeyMsg) (annotateModel, tea.Cmd) {
	if a.menu.open {
		if cmd, ok := a.menu.handleKey(msg); ok {
			a.runCommand(cmd)
		}

		return a, nil
	}

	switch {
	case msg.String() == "ctrl+c":
		return a, tea.Quit
	case key.Matches(msg, a.keys.Export):
		return a, a.exportCmd()
	case key.Matches(msg, a.keys.Save):
		cmd := a.saveCmd()
		return a, cmd
	case msg.String() == "tab":
		a.setFocus((a.focus + 1) % focusCount)
		return a, nil
	case msg.String() == "shift+tab":
		a.setFocus((a.focus + focusCount - 1) % focusCount)
		return a, nil
	}

	switch a.focus {
	case focusFilename:
		return a.handleFilenameKey(msg)
	case focusIn:
		return a.handleListKey(m.ChannelIn, msg)
	case focusOut:
		return a.handleListKey(m.ChannelOut, msg)
	default:
		return a.handleEditorKey(msg)
	}
}

func (a annotateModel) handleEditorKey(msg tea.KeyMsg) (annotateModel, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}

	if key.Matches(msg, a.keys.Menu) {
		a.menu.show(a.editor.commands, a.editor.cursor+1)
		return a, nil
	}

	if cmd, ok := a.editor.commandForKey(msg.String()); ok {
		a.runCommand(cmd)
		return a, nil
	}

	a.editor.handleKey(msg)

	return a, nil
}

func (a annotateModel) handleFilenameKey(msg tea.KeyMsg) (annotateModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		a.setFocus(focusEditor)
		return a, nil
	}

	var cmd tea.Cmd

	a.panel.filename, cmd = a.panel.filename.Update(msg)
	a.opts.Annotations.SetFilename(a.panel.filename.Value())

	return a, cmd
}

func (a annotateModel) handleListKey(ch m.Channel, msg tea.KeyMsg) (annotateModel, tea.Cmd) {
	l := a.panel.list(ch)

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Remove):
		if line, ok := a.panel.selected(ch); ok && a.opts.Annotations.Remove(ch, line) {
			a.log.Debug("line removed", "channel", ch, "line", line)
			a.syncPanel()
		}
	case msg.String() == "esc":
		a.setFocus(focusEditor)
	case msg.String() == "up" || msg.String() == "k":
		l.CursorUp()
	case msg.String() == "down" || msg.String() == "j":
		l.CursorDown()
	}

	return a, nil
}

func (a annotateModel) handleMouseMsg(msg tea.MouseMsg) annotateModel {
	inEditor := msg.X < a.editor.width

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		a.editor.scrollBy(-wheelStep)
	case msg.Button == tea.MouseButtonWheelDown:
		a.editor.scrollBy(wheelStep)
	case msg.Action != tea.MouseActionPress:
	case a.menu.open:
		a.menu.close()
	case !inEditor:
	case msg.Button == tea.MouseButtonRight:
		line, ok := a.editor.lineAt(msg.Y)
		if !ok {
			break
		}

		// Like most editors, right clicking outside the selection moves the
		// cursor there first.
		if !a.editor.isSelected(line) {
			a.editor.clearSelection()
			a.editor.setCursor(line, false)
		}

		a.setFocus(focusEditor)
		a.menu.show(a.editor.commands, line+1)
	case msg.Button == tea.MouseButtonLeft:
		if line, ok := a.editor.lineAt(msg.Y); ok {
			a.editor.setCursor(line, msg.Shift)
			a.setFocus(focusEditor)
		}
	}

	return a
}

func (a annotateModel) handleExported(msg exportedMsg) annotateModel {
	switch {
	case msg.err != nil && msg.text == "":
		a.log.Error("export failed", "error", msg.err)
		a.setStatus(fmt.Sprintf("export failed: %v", msg.err), true)
	case msg.err != nil:
		a.log.Warn("clipboard write failed", "error", msg.err)
		a.setStatus(fmt.Sprintf("clipboard unavailable (%v): %s", msg.err, msg.text), true)
	default:
		a.log.Info("payload copied", "bytes", len(msg.text))
		a.setStatus("copied "+msg.text, false)
	}

	return a
}

func (a *annotateModel) runCommand(cmd m.Command) {
	if cmd.Run == nil {
		return
	}

	cmd.Run()
	a.log.Debug("command run", "command", cmd.ID, "selections", len(a.editor.Selections()))
	a.editor.clearSelection()
	a.syncPanel()
}

// exportCmd snapshots the session now and writes the clipboard off the
// update loop.
func (a annotateModel) exportCmd() tea.Cmd {
	if a.opts.Export == nil {
		return nil
	}

	ctx := a.ctx
	export := a.opts.Export
	session := a.opts.Annotations.Session()

	return func() tea.Msg {
		text, err := export(ctx, session)
		return exportedMsg{text: text, err: err}
	}
}

func (a *annotateModel) saveCmd() tea.Cmd {
	if a.opts.Save == nil {
		a.setStatus("no session file configured (use --session)", true)
		return nil
	}

	save := a.opts.Save
	session := a.opts.Annotations.Session()

	return func() tea.Msg {
		return savedMsg{err: save(session)}
	}
}

func (a *annotateModel) syncPanel() {
	for _, ch := range m.Channels {
		a.panel.setLines(ch, a.opts.Annotations.Lines(ch))
	}
}

func (a *annotateModel) setFocus(focus focusArea) {
	a.focus = focus
	a.panel.setFocus(focus)
}

func (a *annotateModel) setStatus(status string, isErr bool) {
	a.status = status
	a.statusErr = isErr
}

func (a annotateModel) resize(width, height int) annotateModel {
	a.width = width
	a.height = height

	side := min(panelWidth, width/2)
	bodyHeight := max(height-chromeHeight, 1)

	a.editor.setSize(width-side-1, bodyHeight)
	a.panel.setSize(side, bodyHeight)
	a.help.Width = width

	return a
}

func (a annotateModel) View() string {
	side := a.panel.View(a.focus)
	if a.menu.open {
		side = lipgloss.JoinVertical(lipgloss.Left, a.menu.View(a.panel.width), side)
		side = lipgloss.NewStyle().MaxHeight(a.panel.height).Render(side)
	}

	separator := lipgloss.NewStyle().
		Foreground(mutedColor).
		Render(repeatLines("│", a.editor.height))

	body := lipgloss.JoinHorizontal(lipgloss.Top, a.editor.View(), separator, side)

	return lipgloss.JoinVertical(lipgloss.Left, body, a.statusView(), a.help.ShortHelpView(a.keys.shortHelp(a.focus)))
}

func (a annotateModel) statusView() string {
	style := lipgloss.NewStyle().Foreground(mutedColor).MaxWidth(a.width)
	if a.statusErr {
		style = style.Foreground(errorColor)
	}

	summary := fmt.Sprintf("%s  %s  in:%d out:%d",
		displayName(a.opts.Document),
		a.opts.Document.Language,
		len(a.opts.Annotations.Lines(m.ChannelIn)),
		len(a.opts.Annotations.Lines(m.ChannelOut)),
	)

	if a.status != "" {
		summary += "  " + a.status
	}

	return style.Render(summary)
}

func repeatLines(s string, n int) string {
	lines := make([]byte, 0, n*(len(s)+1))
	for i := range n {
		if i > 0 {
			lines = append(lines, '\n')
		}

		lines = append(lines, s...)
	}

	return string(lines)
}
