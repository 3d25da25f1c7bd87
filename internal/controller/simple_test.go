package controller

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/linemark/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return NewSimpleUI(cmd), &out, &errOut
}

func TestSimpleUI_DisplaySessions_PrintsTable(t *testing.T) {
	ui, out, _ := newTestSimpleUI()

	err := ui.DisplaySessions([]SessionReport{{
		Source:    "a.yaml",
		Session:   m.Session{Filename: "a.js", In: []int{1, 2, 3, 7}, Out: []int{9}},
		InTokens:  []m.Token{m.Run(1, 3), m.Line(7)},
		OutTokens: []m.Token{m.Line(9)},
	}})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "SOURCE")
	assert.Contains(t, output, "a.yaml")
	assert.Contains(t, output, "a.js")
	assert.Contains(t, output, "[1,3] 7")
	assert.Contains(t, output, "SESSIONS 1")
}

func TestSimpleUI_DisplaySessions_Empty(t *testing.T) {
	ui, out, _ := newTestSimpleUI()

	require.NoError(t, ui.DisplaySessions(nil))
	assert.Equal(t, "No sessions\n", out.String())
}

func TestSimpleUI_DisplayPayload(t *testing.T) {
	ui, out, errOut := newTestSimpleUI()

	require.NoError(t, ui.DisplayPayload(PayloadResult{Text: "{{ {} }}", CopyErr: errors.New("no xclip")}))

	assert.Equal(t, "{{ {} }}\n", out.String())
	assert.Contains(t, errOut.String(), "no xclip")
}

func TestSimpleUI_Annotate_PrintsSummaryAndPayload(t *testing.T) {
	ui, out, _ := newTestSimpleUI()
	annotations := &fakeAnnotations{filename: "a.js", in: []int{4, 5, 6}}

	err := ui.Annotate(context.Background(), AnnotateOptions{
		Document:    numberedDocument(6),
		Annotations: annotations,
		Notice:      "stale",
		Export: func(context.Context, m.Session) (string, error) {
			t.Error("clipboard export must not run without a terminal")
			return "", nil
		},
		Render: func(s m.Session) (string, error) {
			assert.Equal(t, []int{4, 5, 6}, s.In)
			return "payload", nil
		},
	})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "a.js: 6 lines (JavaScript)")
	assert.Contains(t, output, "warning: stale")
	assert.Contains(t, output, "4 5 6")
	assert.Contains(t, output, "payload\n")
}

func TestSimpleUI_Annotate_RenderError(t *testing.T) {
	ui, _, _ := newTestSimpleUI()
	boom := errors.New("boom")

	err := ui.Annotate(context.Background(), AnnotateOptions{
		Document:    m.Document{Lines: []string{m.DefaultContent}},
		Annotations: &fakeAnnotations{},
		Render: func(m.Session) (string, error) {
			return "", boom
		},
	})

	assert.ErrorIs(t, err, boom)
}

func TestFormatTokens(t *testing.T) {
	assert.Equal(t, "-", formatTokens(nil, nil))
	assert.Equal(t, "2 3", formatTokens(nil, []int{2, 3}))
	assert.Equal(t, "[1,3]", formatTokens([]m.Token{m.Run(1, 3)}, []int{1, 2, 3}))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "untitled", displayName(m.Document{}))
	assert.Equal(t, "src/a.go", displayName(m.Document{Path: "src/a.go"}))
}
