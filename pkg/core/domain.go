// Document is the central entity of the domain.
package core

import (
	"mime"
	"path/filepath"
	"strings"
)

// Format describes how a document's content should be presented.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// MarkdownExt is the suffix that marks a document as markdown.
const MarkdownExt = ".md"

// Document is a named file in the store root.
// The name carries the extension and is unique within the store.
type Document struct {
	Name    string
	Content []byte
	Format  Format
}

// FormatOf infers the document format from the name's suffix.
func FormatOf(name string) Format {
	if strings.EqualFold(filepath.Ext(name), MarkdownExt) {
		return FormatMarkdown
	}
	return FormatText
}

// ContentType returns the MIME type used when serving a document verbatim.
func ContentType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".txt", "":
		return "text/plain; charset=utf-8"
	case MarkdownExt:
		return "text/markdown; charset=utf-8"
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// EventType represents the type of change in the store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change in the store root.
type Event struct {
	Type      EventType
	Name      string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return string(e.Type) + " " + e.Name
}
