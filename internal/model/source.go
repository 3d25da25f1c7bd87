// Package model defines the data structures for line annotation.
package model

// Path represents a file system path.
type Path string

// DefaultLanguage is used when no language can be detected for a document.
const DefaultLanguage = "JavaScript"

// DefaultContent is shown when the annotator is started without a file.
const DefaultContent = "// Start coding here"

// Document is a source file loaded into the editor.
type Document struct {
	Path     Path
	Name     string // base name, used as the default export filename
	Language string // detected language name, e.g. "Go"
	Hash     string // SHA-256 of the file contents, empty for the scratch buffer
	Lines    []string
}

// LineCount returns the number of lines in the document.
func (d Document) LineCount() int {
	return len(d.Lines)
}
