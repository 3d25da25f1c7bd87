package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"

	m "github.com/mouse-blink/linemark/internal/model"
)

// SourceReader loads documents into the editor. It hides direct `os` access
// so the workflow can be tested without touching the disk.
type SourceReader interface {
	// Read loads the file at path. An empty path yields the scratch document.
	Read(path m.Path) (m.Document, error)
}

// LocalSourceReader reads documents from the local filesystem.
type LocalSourceReader struct{}

// NewLocalSourceReader constructs a LocalSourceReader.
func NewLocalSourceReader() *LocalSourceReader {
	return &LocalSourceReader{}
}

// Read loads path, splits it into lines and detects its language.
func (r *LocalSourceReader) Read(path m.Path) (m.Document, error) {
	if path == "" {
		return m.Document{
			Language: m.DefaultLanguage,
			Lines:    []string{m.DefaultContent},
		}, nil
	}

	info, err := os.Stat(string(path))
	if err != nil {
		return m.Document{}, fmt.Errorf("open source: %w", err)
	}

	if info.IsDir() {
		return m.Document{}, fmt.Errorf("open source: %s is a directory", path)
	}

	content, err := os.ReadFile(string(path))
	if err != nil {
		return m.Document{}, fmt.Errorf("open source: %w", err)
	}

	name := filepath.Base(string(path))

	return m.Document{
		Path:     path,
		Name:     name,
		Language: DetectLanguage(name, content),
		Hash:     fmt.Sprintf("%x", sha256.Sum256(content)),
		Lines:    SplitLines(string(content)),
	}, nil
}

// DetectLanguage guesses the language of a file from its name and contents.
func DetectLanguage(name string, content []byte) string {
	if enry.IsBinary(content) {
		return ""
	}

	if lang := enry.GetLanguage(name, content); lang != "" {
		return lang
	}

	return m.DefaultLanguage
}

// SplitLines splits text on LF or CRLF. A trailing newline does not start an
// extra line, and empty text is a single empty line.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")

	return strings.Split(text, "\n")
}
