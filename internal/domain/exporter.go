package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/mouse-blink/linemark/internal/adapter"
	m "github.com/mouse-blink/linemark/internal/model"
)

// Format selects how a payload is rendered.
type Format string

const (
	// FormatTemplate is the `{{ ... }}` clipboard token.
	FormatTemplate Format = "template"
	// FormatJSON is an indented JSON document.
	FormatJSON Format = "json"
)

const (
	templateOpen  = "{{ "
	templateClose = " }}"
)

// ParseFormat validates a format name. The empty string selects FormatTemplate.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatTemplate:
		return FormatTemplate, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q", s)
	}
}

// Exporter turns a session into the range-encoded payload.
type Exporter interface {
	Payload(session m.Session) m.Payload
	Render(session m.Session, format Format) (string, error)
	// Export renders the payload and writes it to the clipboard. The rendered
	// text is returned even when the clipboard write fails.
	Export(ctx context.Context, session m.Session, format Format) (string, error)
}

type exporter struct {
	clipboard adapter.Clipboard
}

// NewExporter creates an Exporter that copies to clipboard.
func NewExporter(clipboard adapter.Clipboard) Exporter {
	return &exporter{clipboard: clipboard}
}

// Payload encodes both line sets. Sessions may come from hand-edited files,
// so the sets are normalized before encoding.
func (e *exporter) Payload(session m.Session) m.Payload {
	return m.Payload{
		Filename: session.Filename,
		Ins:      EncodeRanges(NormalizeLines(session.In)),
		Del:      EncodeRanges(NormalizeLines(session.Out)),
	}
}

func (e *exporter) Render(session m.Session, format Format) (string, error) {
	payload := e.Payload(session)

	switch format {
	case "", FormatTemplate:
		return renderTemplate(payload)
	case FormatJSON:
		return renderJSON(payload)
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

func (e *exporter) Export(ctx context.Context, session m.Session, format Format) (string, error) {
	text, err := e.Render(session, format)
	if err != nil {
		return "", err
	}

	if err := e.clipboard.WriteText(ctx, text); err != nil {
		return text, fmt.Errorf("copy to clipboard: %w", err)
	}

	return text, nil
}

// renderTemplate produces
//
//	{{ {"filename":  "a.js",  "ins":  [[4, 6]],  "del":  []} }}
//
// Object members are joined with ", " and ": " before the spacing pass adds
// one more space after every separator.
func renderTemplate(p m.Payload) (string, error) {
	filename, err := marshalCompact(p.Filename)
	if err != nil {
		return "", err
	}

	ins, err := marshalCompact(p.Ins)
	if err != nil {
		return "", err
	}

	del, err := marshalCompact(p.Del)
	if err != nil {
		return "", err
	}

	raw := fmt.Sprintf(`{"filename": %s, "ins": %s, "del": %s}`, filename, ins, del)

	return templateOpen + spaceSeparators(raw) + templateClose, nil
}

func renderJSON(p m.Payload) (string, error) {
	doc := "{}"

	var err error
	for _, field := range []struct {
		key   string
		value any
	}{
		{"filename", p.Filename},
		{"ins", p.Ins},
		{"del", p.Del},
	} {
		doc, err = sjson.Set(doc, field.key, field.value)
		if err != nil {
			return "", fmt.Errorf("render %s: %w", field.key, err)
		}
	}

	return string(pretty.Pretty([]byte(doc))), nil
}

// marshalCompact encodes v without HTML escaping and without the trailing
// newline json.Encoder adds.
func marshalCompact(v any) (string, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// spaceSeparators inserts a space after every ':' and ',' of raw JSON text.
// Characters inside string literals are left alone.
func spaceSeparators(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + len(raw)/4)

	inString := false
	escaped := false

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		b.WriteByte(c)

		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case !inString && (c == ':' || c == ','):
			b.WriteByte(' ')
		}
	}

	return b.String()
}
