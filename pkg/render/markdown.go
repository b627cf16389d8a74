// Package render turns documents and page models into HTML.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Markdown converts markdown documents to HTML.
// The engine is stateless, so one instance can serve every request.
type Markdown struct {
	engine goldmark.Markdown
}

// MarkdownOptions tunes the converter.
type MarkdownOptions struct {
	HardWraps bool
	// Unsafe lets raw HTML embedded in documents through to the output.
	Unsafe bool
}

// NewMarkdown builds a converter with GFM extensions enabled.
func NewMarkdown(opts MarkdownOptions) *Markdown {
	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if opts.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.TaskList),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}

	return &Markdown{engine: goldmark.New(engineOptions...)}
}

// ToHTML renders source as an HTML fragment.
func (m *Markdown) ToHTML(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := m.engine.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("markdown convert: %w", err)
	}
	return buf.Bytes(), nil
}
