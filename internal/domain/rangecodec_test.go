package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/linemark/internal/model"
)

func TestEncodeRanges(t *testing.T) {
	tests := []struct {
		name  string
		lines []int
		want  []m.Token
	}{
		{name: "empty", lines: []int{}, want: []m.Token{}},
		{name: "nil", lines: nil, want: []m.Token{}},
		{name: "single line", lines: []int{5}, want: []m.Token{m.Line(5)}},
		{name: "run of two stays scalar", lines: []int{5, 6}, want: []m.Token{m.Line(5), m.Line(6)}},
		{name: "run of three becomes pair", lines: []int{5, 6, 7}, want: []m.Token{m.Run(5, 7)}},
		{name: "gap", lines: []int{5, 7}, want: []m.Token{m.Line(5), m.Line(7)}},
		{
			name:  "mixed",
			lines: []int{1, 2, 3, 7, 9, 10, 11},
			want:  []m.Token{m.Run(1, 3), m.Line(7), m.Run(9, 11)},
		},
		{
			name:  "short runs between long runs",
			lines: []int{1, 2, 4, 5, 6, 7, 9, 10},
			want:  []m.Token{m.Line(1), m.Line(2), m.Run(4, 7), m.Line(9), m.Line(10)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeRanges(tt.lines)

			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeRanges_RoundTrip(t *testing.T) {
	inputs := [][]int{
		{},
		{1},
		{1, 2},
		{1, 2, 3},
		{2, 4, 6, 8},
		{1, 2, 3, 7, 9, 10, 11},
		{10, 11, 12, 13, 14, 15, 100, 101, 200},
	}

	for _, lines := range inputs {
		assert.Equal(t, lines, ExpandTokens(EncodeRanges(lines)), "lines %v", lines)
	}
}

// Every subset of 1..12 survives a round trip, and pairs are only used for
// maximal runs longer than two lines.
func TestEncodeRanges_RoundTripAllSubsets(t *testing.T) {
	const width = 12

	for mask := range 1 << width {
		lines := []int{}
		for bit := range width {
			if mask&(1<<bit) != 0 {
				lines = append(lines, bit+1)
			}
		}

		tokens := EncodeRanges(lines)
		require.Equal(t, lines, ExpandTokens(tokens), "lines %v", lines)

		for i, tok := range tokens {
			if tok.IsRun() {
				require.GreaterOrEqual(t, tok.End-tok.Start, shortRunLimit, "short pair %v in %v", tok, lines)
			}

			if i > 0 && (tok.IsRun() || tokens[i-1].IsRun()) {
				require.Greater(t, tok.Start, tokens[i-1].End+1, "tokens %v and %v touch in %v", tokens[i-1], tok, lines)
			}

			if i > 1 && !tok.IsRun() && !tokens[i-1].IsRun() && !tokens[i-2].IsRun() {
				require.False(t, tok.Start == tokens[i-2].Start+2 && tokens[i-1].Start == tok.Start-1,
					"run of three scalars %v in %v", tokens[i-2:i+1], lines)
			}
		}
	}
}

func TestEncodeRanges_NoAdjacentPairs(t *testing.T) {
	tokens := EncodeRanges([]int{1, 2, 3, 4, 5, 6, 8, 9, 10})

	for i := 1; i < len(tokens); i++ {
		assert.Greater(t, tokens[i].Start, tokens[i-1].End+1, "tokens %v and %v touch", tokens[i-1], tokens[i])
	}
}

func TestNormalizeLines(t *testing.T) {
	assert.Equal(t, []int{1, 3, 5}, NormalizeLines([]int{5, 3, 0, -2, 1, 3, 5}))
	assert.Empty(t, NormalizeLines(nil))
}

func TestMergeLines(t *testing.T) {
	set := []int{4, 5, 6}

	assert.Equal(t, []int{4, 5, 6}, MergeLines(set, 6))
	assert.Equal(t, []int{2, 4, 5, 6, 9}, MergeLines(set, 9, 2))
	assert.Equal(t, []int{4, 5, 6}, set)
}

func TestRemoveLine(t *testing.T) {
	set := []int{4, 5, 6}

	remaining, removed := RemoveLine(set, 5)
	assert.True(t, removed)
	assert.Equal(t, []int{4, 6}, remaining)
	assert.Equal(t, []int{4, 5, 6}, set)

	remaining, removed = RemoveLine(set, 7)
	assert.False(t, removed)
	assert.Equal(t, set, remaining)
}
