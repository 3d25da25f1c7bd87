package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	m "github.com/mouse-blink/linemark/internal/model"
)

// ErrInvalidLineSpec is returned for malformed line specifications.
var ErrInvalidLineSpec = errors.New("invalid line spec")

// ParseLineSpec parses a comma separated list of lines and inclusive ranges,
// e.g. "4-6,9". The result is normalized.
func ParseLineSpec(spec string) ([]int, error) {
	var lines []int

	for part := range strings.SplitSeq(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		r, err := parseLineRange(part)
		if err != nil {
			return nil, err
		}

		if len(lines)+r.EndLine-r.StartLine+1 > m.MaxLine {
			return nil, fmt.Errorf("%w: more than %d lines", ErrInvalidLineSpec, m.MaxLine)
		}

		lines = append(lines, r.Lines()...)
	}

	return NormalizeLines(lines), nil
}

func parseLineRange(part string) (m.SelectionRange, error) {
	from, to, isRange := strings.Cut(part, "-")

	start, err := parseLineNumber(from)
	if err != nil {
		return m.SelectionRange{}, fmt.Errorf("%w: %q: %w", ErrInvalidLineSpec, part, err)
	}

	if !isRange {
		return m.SelectionRange{StartLine: start, EndLine: start}, nil
	}

	end, err := parseLineNumber(to)
	if err != nil {
		return m.SelectionRange{}, fmt.Errorf("%w: %q: %w", ErrInvalidLineSpec, part, err)
	}

	if end < start {
		return m.SelectionRange{}, fmt.Errorf("%w: %q: range ends before it starts", ErrInvalidLineSpec, part)
	}

	return m.SelectionRange{StartLine: start, EndLine: end}, nil
}

func parseLineNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}

	if n < 1 || n > m.MaxLine {
		return 0, fmt.Errorf("line %d out of range 1-%d", n, m.MaxLine)
	}

	return n, nil
}

// FormatLineSpec renders lines in the syntax accepted by ParseLineSpec.
func FormatLineSpec(lines []int) string {
	tokens := EncodeRanges(NormalizeLines(lines))

	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.IsRun() {
			parts = append(parts, fmt.Sprintf("%d-%d", t.Start, t.End))
		} else {
			parts = append(parts, strconv.Itoa(t.Start))
		}
	}

	return strings.Join(parts, ",")
}
