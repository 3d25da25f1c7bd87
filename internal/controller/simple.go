package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/linemark/internal/model"
)

// SimpleUI implements UI using cobra Command's output writers.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Annotate cannot run interactively without a terminal, so it prints the
// current state of the session and its payload instead. The clipboard is
// left alone.
func (s *SimpleUI) Annotate(_ context.Context, opts AnnotateOptions) error {
	session := opts.Annotations.Session()

	s.printf("%s: %d lines (%s), interactive annotation needs a terminal\n",
		displayName(opts.Document), opts.Document.LineCount(), opts.Document.Language)

	if opts.Notice != "" {
		s.printf("warning: %s\n", opts.Notice)
	}

	s.renderTable([]SessionReport{{Source: displayName(opts.Document), Session: session}})

	if opts.Render == nil {
		return nil
	}

	text, err := opts.Render(session)
	if err != nil {
		return err
	}

	return s.DisplayPayload(PayloadResult{Text: text})
}

// DisplaySessions prints one table row per session and channel.
func (s *SimpleUI) DisplaySessions(reports []SessionReport) error {
	if len(reports) == 0 {
		s.printf("No sessions\n")
		return nil
	}

	s.renderTable(reports)

	return nil
}

// DisplayPayload prints the payload on its own line so it can be piped.
func (s *SimpleUI) DisplayPayload(result PayloadResult) error {
	s.printf("%s\n", result.Text)

	if result.CopyErr != nil {
		_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "clipboard: %v\n", result.CopyErr)
	}

	return nil
}

func (s *SimpleUI) renderTable(reports []SessionReport) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Source", "Filename", "Channel", "Lines", "Tokens"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	total := 0

	for _, r := range reports {
		for _, ch := range m.Channels {
			lines := r.Session.Lines(ch)
			total += len(lines)

			table.Append([]string{
				r.Source,
				r.Session.Filename,
				string(ch),
				fmt.Sprintf("%d", len(lines)),
				formatTokens(tokensFor(r, ch), lines),
			})
		}
	}

	table.SetFooter([]string{fmt.Sprintf("Sessions %d", len(reports)), "", "", fmt.Sprintf("%d", total), ""})
	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func tokensFor(r SessionReport, ch m.Channel) []m.Token {
	if ch == m.ChannelOut {
		return r.OutTokens
	}

	return r.InTokens
}

// formatTokens prints the encoded tokens, or the raw lines when the report
// carries no encoding.
func formatTokens(tokens []m.Token, lines []int) string {
	if len(tokens) == 0 {
		tokens = make([]m.Token, 0, len(lines))
		for _, line := range lines {
			tokens = append(tokens, m.Line(line))
		}
	}

	if len(tokens) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, t.String())
	}

	return strings.Join(parts, " ")
}

func displayName(doc m.Document) string {
	if doc.Path != "" {
		return string(doc.Path)
	}

	return "untitled"
}
