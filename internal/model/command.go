package model

// Command is a custom editor action shown in the context menu.
type Command struct {
	ID    string
	Label string
	Keys  []string // optional direct key bindings, e.g. "i"
	Run   func()
}
