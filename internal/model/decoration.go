package model

// DecorationStyle names the visual treatment applied to a marked line.
type DecorationStyle string

const (
	// StyleIn highlights included lines.
	StyleIn DecorationStyle = "line-in"
	// StyleOut highlights excluded lines.
	StyleOut DecorationStyle = "line-out"
)

// StyleFor maps a channel to its decoration style.
func StyleFor(ch Channel) DecorationStyle {
	if ch == ChannelOut {
		return StyleOut
	}

	return StyleIn
}

// Decoration is a line-level style directive for the editor: a background
// highlight plus a gutter marker over Range.
type Decoration struct {
	Range SelectionRange
	Style DecorationStyle
}
