package model

// MaxLine is the highest line number accepted anywhere in linemark.
const MaxLine = 10_000_000

// SelectionRange is an inclusive, 1-based span of lines selected in the editor.
type SelectionRange struct {
	StartLine int
	EndLine   int
}

// Ordered returns the range with StartLine <= EndLine.
func (r SelectionRange) Ordered() SelectionRange {
	if r.StartLine > r.EndLine {
		return SelectionRange{StartLine: r.EndLine, EndLine: r.StartLine}
	}

	return r
}

// Lines returns every line covered by the range in ascending order.
// Lines outside 1..MaxLine are dropped.
func (r SelectionRange) Lines() []int {
	o := r.Ordered()
	start := max(o.StartLine, 1)
	end := min(o.EndLine, MaxLine)

	if end < start {
		return nil
	}

	lines := make([]int, 0, end-start+1)

	for line := start; line <= end; line++ {
		lines = append(lines, line)
	}

	return lines
}

// Contains reports whether line falls inside the range.
func (r SelectionRange) Contains(line int) bool {
	o := r.Ordered()

	return line >= o.StartLine && line <= o.EndLine
}
