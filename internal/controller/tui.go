package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/linemark/internal/adapter"
	m "github.com/mouse-blink/linemark/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	input          io.Reader
	output         io.Writer
	programOptions []tea.ProgramOption
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{input: input, output: output}
}

// Annotate runs the annotator full screen until the user quits or ctx is
// cancelled.
func (t *TUI) Annotate(ctx context.Context, opts AnnotateOptions) error {
	model := newAnnotateModel(ctx, opts)

	if width, height, ok := adapter.TerminalSize(t.output); ok {
		model = model.resize(width, height)
	}

	options := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
	options = append(options, t.programOptions...)

	if _, err := tea.NewProgram(model, options...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}

		return fmt.Errorf("run annotator: %w", err)
	}

	return nil
}

// DisplaySessions prints each session with its encoded tokens.
func (t *TUI) DisplaySessions(reports []SessionReport) error {
	if len(reports) == 0 {
		_, err := fmt.Fprintln(t.output, lipgloss.NewStyle().Foreground(mutedColor).Render("No sessions"))
		return err
	}

	title := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	label := lipgloss.NewStyle().Width(5)

	var b strings.Builder

	for _, r := range reports {
		b.WriteString(title.Render(r.Source))

		if r.Session.Filename != "" {
			b.WriteString("  " + lipgloss.NewStyle().Foreground(accentColor).Render(r.Session.Filename))
		}

		b.WriteString("\n")

		for _, ch := range m.Channels {
			lines := r.Session.Lines(ch)
			name := label.Foreground(channelColor(ch)).Bold(true).Render(string(ch))
			fmt.Fprintf(&b, "  %s %3d  %s\n", name, len(lines), formatTokens(tokensFor(r, ch), lines))
		}
	}

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// DisplayPayload prints the payload followed by a clipboard status line.
func (t *TUI) DisplayPayload(result PayloadResult) error {
	var status string

	switch {
	case result.CopyErr != nil:
		status = lipgloss.NewStyle().Foreground(errorColor).Render(fmt.Sprintf("clipboard: %v", result.CopyErr))
	case result.Copied:
		status = lipgloss.NewStyle().Foreground(accentColor).Render("copied to clipboard")
	}

	if status == "" {
		_, err := fmt.Fprintln(t.output, result.Text)
		return err
	}

	_, err := fmt.Fprintf(t.output, "%s\n%s\n", result.Text, status)

	return err
}
