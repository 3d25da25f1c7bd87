// Package domain holds the annotation logic: line sets, range encoding,
// payload export and the workflows behind each command.
package domain

import (
	"slices"

	m "github.com/mouse-blink/linemark/internal/model"
)

// shortRunLimit is the longest run that is still written line by line.
const shortRunLimit = 2

// EncodeRanges collapses an ascending list of distinct line numbers into
// tokens. A run of more than two consecutive lines becomes one [start, end]
// token; shorter runs are emitted as scalars. The input must already be
// sorted and free of duplicates (see NormalizeLines); the result for any
// other input is unspecified. The result is never nil.
func EncodeRanges(lines []int) []m.Token {
	tokens := make([]m.Token, 0, len(lines))

	for i := 0; i < len(lines); {
		start := i
		for i+1 < len(lines) && lines[i+1] == lines[i]+1 {
			i++
		}

		i++

		if i-start > shortRunLimit {
			tokens = append(tokens, m.Run(lines[start], lines[i-1]))
			continue
		}

		for _, line := range lines[start:i] {
			tokens = append(tokens, m.Line(line))
		}
	}

	return tokens
}

// ExpandTokens is the inverse of EncodeRanges.
func ExpandTokens(tokens []m.Token) []int {
	lines := make([]int, 0, len(tokens))
	for _, t := range tokens {
		lines = append(lines, t.Expand()...)
	}

	return lines
}

// NormalizeLines returns a sorted copy of lines without duplicates or
// non-positive entries.
func NormalizeLines(lines []int) []int {
	out := make([]int, 0, len(lines))
	for _, line := range lines {
		if line > 0 {
			out = append(out, line)
		}
	}

	slices.Sort(out)

	return slices.Compact(out)
}

// MergeLines returns the union of set and add as a new normalized slice.
func MergeLines(set []int, add ...int) []int {
	merged := make([]int, 0, len(set)+len(add))
	merged = append(merged, set...)
	merged = append(merged, add...)

	return NormalizeLines(merged)
}

// RemoveLine returns set without line. set must be normalized. The input
// slice is never modified.
func RemoveLine(set []int, line int) ([]int, bool) {
	idx, found := slices.BinarySearch(set, line)
	if !found {
		return set, false
	}

	return slices.Delete(slices.Clone(set), idx, idx+1), true
}
