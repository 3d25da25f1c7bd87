package controller

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/linemark/internal/model"
)

const (
	defaultTheme = "monokai"
	tabWidth     = 4
)

// span is a run of text drawn with one foreground style.
type span struct {
	text string
	fg   lipgloss.Color
	bold bool
}

func (s span) render(bg lipgloss.TerminalColor) string {
	style := lipgloss.NewStyle().Bold(s.bold)
	if s.fg != "" {
		style = style.Foreground(s.fg)
	}

	if bg != nil {
		style = style.Background(bg)
	}

	return style.Render(s.text)
}

// highlightDocument tokenizes the whole document at once so the lexer sees
// full context, then splits the tokens back into one span list per line.
func highlightDocument(doc m.Document, theme string) [][]span {
	if len(doc.Lines) == 0 {
		return nil
	}

	text := strings.Join(doc.Lines, "\n") + "\n"

	lexer := lexerFor(doc, text)
	if lexer == nil {
		return plainSpans(doc)
	}

	if theme == "" {
		theme = defaultTheme
	}

	style := styles.Get(theme)

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, text)
	if err != nil {
		return plainSpans(doc)
	}

	tokenLines := chroma.SplitTokensIntoLines(iterator.Tokens())
	result := make([][]span, len(doc.Lines))

	for i := range result {
		if i >= len(tokenLines) {
			result[i] = []span{{text: expandTabs(doc.Lines[i])}}
			continue
		}

		for _, tok := range tokenLines[i] {
			value := expandTabs(strings.TrimRight(tok.Value, "\n"))
			if value == "" {
				continue
			}

			entry := style.Get(tok.Type)
			sp := span{text: value, bold: entry.Bold == chroma.Yes}

			if entry.Colour.IsSet() {
				sp.fg = lipgloss.Color(entry.Colour.String())
			}

			result[i] = append(result[i], sp)
		}
	}

	return result
}

func lexerFor(doc m.Document, text string) chroma.Lexer {
	if doc.Language != "" {
		if l := lexers.Get(doc.Language); l != nil {
			return l
		}
	}

	if doc.Name != "" {
		if l := lexers.Match(doc.Name); l != nil {
			return l
		}
	}

	return lexers.Analyse(text)
}

func plainSpans(doc m.Document) [][]span {
	result := make([][]span, len(doc.Lines))
	for i, line := range doc.Lines {
		result[i] = []span{{text: expandTabs(line)}}
	}

	return result
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
