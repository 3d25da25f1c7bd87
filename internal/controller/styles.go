package controller

import (
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/linemark/internal/model"
)

var (
	accentColor    = lipgloss.Color("6") // Cyan
	inColor        = lipgloss.Color("22")
	outColor       = lipgloss.Color("52")
	selectionColor = lipgloss.Color("237")
	mutedColor     = lipgloss.Color("8")
	errorColor     = lipgloss.Color("9")
)

// decorationBackground returns the line background for a decoration style.
func decorationBackground(style m.DecorationStyle) lipgloss.Color {
	if style == m.StyleOut {
		return outColor
	}

	return inColor
}

// gutterMarker returns the one-column marker drawn next to the line number.
func gutterMarker(styles []m.DecorationStyle) string {
	var in, out bool

	for _, s := range styles {
		switch s {
		case m.StyleIn:
			in = true
		case m.StyleOut:
			out = true
		}
	}

	switch {
	case in && out:
		return "±"
	case in:
		return "+"
	case out:
		return "-"
	default:
		return " "
	}
}

func channelColor(ch m.Channel) lipgloss.Color {
	return decorationBackground(m.StyleFor(ch))
}
