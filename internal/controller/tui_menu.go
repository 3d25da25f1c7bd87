package controller

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/linemark/internal/model"
)

// contextMenu lists the editor's registered commands.
type contextMenu struct {
	open  bool
	items []m.Command
	index int
	line  int // 1-based line the menu was opened on
}

func (c *contextMenu) show(items []m.Command, line int) {
	c.open = len(items) > 0
	c.items = items
	c.index = 0
	c.line = line
}

func (c *contextMenu) close() {
	c.open = false
}

// handleKey returns the chosen command, if any. Any key that is not menu
// navigation closes the menu.
func (c *contextMenu) handleKey(msg tea.KeyMsg) (m.Command, bool) {
	switch msg.String() {
	case "up", "k":
		c.index = (c.index - 1 + len(c.items)) % len(c.items)
	case "down", "j":
		c.index = (c.index + 1) % len(c.items)
	case "enter", " ":
		c.close()
		return c.items[c.index], true
	default:
		c.close()
	}

	return m.Command{}, false
}

func (c contextMenu) View(width int) string {
	selected := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(accentColor).
		Bold(true)
	normal := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	rows := make([]string, 0, len(c.items)+1)
	rows = append(rows, lipgloss.NewStyle().Foreground(mutedColor).Render(fmt.Sprintf("line %d", c.line)))

	for i, item := range c.items {
		label := item.Label
		if len(item.Keys) > 0 {
			label = fmt.Sprintf("%s (%s)", label, strings.Join(item.Keys, ","))
		}

		if i == c.index {
			rows = append(rows, selected.Render(label))
		} else {
			rows = append(rows, normal.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1).
		Width(max(width-2, 1)).
		Render(strings.Join(rows, "\n"))
}
