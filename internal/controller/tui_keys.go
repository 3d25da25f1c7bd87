package controller

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	MarkIn  key.Binding
	MarkOut key.Binding
	Menu    key.Binding
	Pin     key.Binding
	Remove  key.Binding
	Focus   key.Binding
	Export  key.Binding
	Save    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		MarkIn:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "mark in")),
		MarkOut: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "mark out")),
		Menu:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m/right click", "menu")),
		Pin:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add selection")),
		Remove:  key.NewBinding(key.WithKeys("x", "delete", "backspace"), key.WithHelp("x", "remove")),
		Focus:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "focus")),
		Export:  key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "export")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// shortHelp returns the bindings relevant to the focused area.
func (k keyMap) shortHelp(focus focusArea) []key.Binding {
	switch focus {
	case focusFilename:
		return []key.Binding{k.Focus, k.Export, k.Save}
	case focusIn, focusOut:
		return []key.Binding{k.Remove, k.Focus, k.Export, k.Save, k.Quit}
	default:
		return []key.Binding{k.MarkIn, k.MarkOut, k.Menu, k.Pin, k.Focus, k.Export, k.Save, k.Quit}
	}
}
