package model

import (
	"encoding/json"
	"fmt"
)

// Token is one unit of the range encoding: either a single line
// (Start == End) or a contiguous run written as [Start, End].
type Token struct {
	Start int
	End   int
}

// Line creates a scalar token.
func Line(n int) Token {
	return Token{Start: n, End: n}
}

// Run creates a pair token covering start..end.
func Run(start, end int) Token {
	return Token{Start: start, End: end}
}

// IsRun reports whether the token encodes as a [start, end] pair.
func (t Token) IsRun() bool {
	return t.End != t.Start
}

// Expand returns the lines represented by the token.
func (t Token) Expand() []int {
	return SelectionRange{StartLine: t.Start, EndLine: t.End}.Lines()
}

func (t Token) String() string {
	if t.IsRun() {
		return fmt.Sprintf("[%d,%d]", t.Start, t.End)
	}

	return fmt.Sprintf("%d", t.Start)
}

// MarshalJSON writes scalars as numbers and runs as two-element arrays.
func (t Token) MarshalJSON() ([]byte, error) {
	if t.IsRun() {
		return json.Marshal([2]int{t.Start, t.End})
	}

	return json.Marshal(t.Start)
}

// UnmarshalJSON accepts either a number or a two-element array.
func (t *Token) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*t = Line(n)
		return nil
	}

	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("token: %w", err)
	}

	if len(pair) != 2 {
		return fmt.Errorf("token: want 2 elements, got %d", len(pair))
	}

	*t = Run(pair[0], pair[1])

	return nil
}
