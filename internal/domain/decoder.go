package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/gjson"

	m "github.com/mouse-blink/linemark/internal/model"
)

// ErrInvalidPayload is returned when text is not an exported payload.
var ErrInvalidPayload = errors.New("invalid payload")

// DecodePayload parses an exported payload back into a session. Both the
// `{{ ... }}` token and plain JSON are accepted.
func DecodePayload(text string) (m.Session, error) {
	body := strings.TrimSpace(text)
	if strings.HasPrefix(body, "{{") && strings.HasSuffix(body, "}}") {
		body = strings.TrimSpace(body[2 : len(body)-2])
	}

	if !gjson.Valid(body) {
		return m.Session{}, fmt.Errorf("%w: not JSON", ErrInvalidPayload)
	}

	doc := gjson.Parse(body)
	if !doc.IsObject() {
		return m.Session{}, fmt.Errorf("%w: not an object", ErrInvalidPayload)
	}

	filename := doc.Get("filename")
	if filename.Exists() && filename.Type != gjson.String {
		return m.Session{}, fmt.Errorf("%w: filename must be a string", ErrInvalidPayload)
	}

	ins, err := decodeTokens(doc.Get("ins"))
	if err != nil {
		return m.Session{}, fmt.Errorf("%w: ins: %w", ErrInvalidPayload, err)
	}

	del, err := decodeTokens(doc.Get("del"))
	if err != nil {
		return m.Session{}, fmt.Errorf("%w: del: %w", ErrInvalidPayload, err)
	}

	return m.Session{
		Filename: filename.String(),
		In:       NormalizeLines(ExpandTokens(ins)),
		Out:      NormalizeLines(ExpandTokens(del)),
	}, nil
}

func decodeTokens(value gjson.Result) ([]m.Token, error) {
	if !value.Exists() {
		return nil, nil
	}

	if !value.IsArray() {
		return nil, errors.New("not an array")
	}

	var tokens []m.Token

	covered := 0

	for i, item := range value.Array() {
		switch {
		case item.Type == gjson.Number:
			line, err := lineNumber(item)
			if err != nil {
				return nil, fmt.Errorf("token %d: %w", i, err)
			}

			covered++
			tokens = append(tokens, m.Line(line))
		case item.IsArray():
			pair := item.Array()
			if len(pair) != 2 {
				return nil, fmt.Errorf("token %d: want [start, end]", i)
			}

			start, err := lineNumber(pair[0])
			if err != nil {
				return nil, fmt.Errorf("token %d: %w", i, err)
			}

			end, err := lineNumber(pair[1])
			if err != nil {
				return nil, fmt.Errorf("token %d: %w", i, err)
			}

			if end < start {
				return nil, fmt.Errorf("token %d: range ends before it starts", i)
			}

			covered += end - start + 1
			tokens = append(tokens, m.Run(start, end))
		default:
			return nil, fmt.Errorf("token %d: unexpected %s", i, item.Type)
		}

		if covered > m.MaxLine {
			return nil, fmt.Errorf("more than %d lines", m.MaxLine)
		}
	}

	return tokens, nil
}

// lineNumber accepts whole numbers in 1..MaxLine.
func lineNumber(item gjson.Result) (int, error) {
	if item.Type != gjson.Number {
		return 0, fmt.Errorf("want a line number, got %s", item.Type)
	}

	if item.Num != math.Trunc(item.Num) || item.Num < 1 || item.Num > m.MaxLine {
		return 0, fmt.Errorf("line %s out of range 1-%d", item.Raw, m.MaxLine)
	}

	return int(item.Num), nil
}
