package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/linemark/internal/model"
)

// lineDelegate renders one marked line per row.
type lineDelegate struct {
	focused bool
}

func (d lineDelegate) Height() int  { return 1 }
func (d lineDelegate) Spacing() int { return 0 }
func (d lineDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d lineDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	li, ok := item.(lineItem)
	if !ok {
		return
	}

	marker := gutterMarker([]m.DecorationStyle{m.StyleFor(li.channel)})
	text := fmt.Sprintf(" %s line %d", marker, li.line)

	style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	if d.focused && index == lm.Index() {
		style = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(accentColor).
			Bold(true)
		text += "  ✕"
	}

	_, _ = fmt.Fprint(w, style.Width(lm.Width()).Render(text))
}

// panelModel is the annotation side panel: filename input plus the removable
// "in" and "out" line lists.
type panelModel struct {
	filename textinput.Model
	in       list.Model
	out      list.Model
	width    int
	height   int
}

func newPanelModel(filename string) panelModel {
	input := textinput.New()
	input.Placeholder = "Enter filename"
	input.Prompt = ""
	input.SetValue(filename)

	return panelModel{
		filename: input,
		in:       newLineList("In"),
		out:      newLineList("Out"),
	}
}

func newLineList(title string) list.Model {
	l := list.New([]list.Item{}, lineDelegate{}, 30, 10)
	l.Title = title
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.DisableQuitKeybindings()

	return l
}

func (p *panelModel) list(ch m.Channel) *list.Model {
	if ch == m.ChannelOut {
		return &p.out
	}

	return &p.in
}

// setLines replaces the items of the channel's list, keeping the cursor in
// range.
func (p *panelModel) setLines(ch m.Channel, lines []int) {
	l := p.list(ch)
	index := l.Index()

	items := make([]list.Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, lineItem{channel: ch, line: line})
	}

	l.SetItems(items)

	if len(items) > 0 {
		l.Select(min(index, len(items)-1))
	}
}

// selected returns the line under the list cursor.
func (p *panelModel) selected(ch m.Channel) (int, bool) {
	item, ok := p.list(ch).SelectedItem().(lineItem)
	if !ok {
		return 0, false
	}

	return item.line, true
}

func (p *panelModel) setFocus(focus focusArea) {
	p.in.SetDelegate(lineDelegate{focused: focus == focusIn})
	p.out.SetDelegate(lineDelegate{focused: focus == focusOut})

	if focus == focusFilename {
		p.filename.Focus()
	} else {
		p.filename.Blur()
	}
}

func (p *panelModel) setSize(width, height int) {
	p.width = width
	p.height = height
	p.filename.Width = max(width-2, 1)

	listHeight := max((height-3)/2, 3)
	p.in.SetSize(width, listHeight)
	p.out.SetSize(width, listHeight)
}

func (p panelModel) View(focus focusArea) string {
	label := lipgloss.NewStyle().Foreground(mutedColor)
	if focus == focusFilename {
		label = label.Foreground(accentColor).Bold(true)
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		label.Render("Filename"),
		p.filename.View(),
		"",
	)

	return lipgloss.NewStyle().
		Width(p.width).
		Height(p.height).
		MaxHeight(p.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, p.in.View(), p.out.View()))
}
