// Package adapter contains the editor capability and infrastructure adapters
// (filesystem, session files, clipboard, terminal) used by linemark.
package adapter

import (
	m "github.com/mouse-blink/linemark/internal/model"
)

// Editor is the narrow capability the annotation logic needs from an embedded
// text editor. The editor widget itself (rendering, cursor handling,
// highlighting) stays behind this interface.
type Editor interface {
	// RegisterCommand adds a custom action to the editor's context menu.
	RegisterCommand(cmd m.Command)

	// Selections returns the current multi-selection as inclusive, 1-based
	// line ranges.
	Selections() []m.SelectionRange

	// ReplaceDecorations discards every previously applied decoration and
	// applies the given ones.
	ReplaceDecorations(decorations []m.Decoration)
}
