package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names accepted by Pages.Render.
const (
	PageIndex    = "index"
	PageDocument = "document"
	PageEdit     = "edit"
	PageNew      = "new"
	PageSignIn   = "signin"
)

var pageNames = []string{PageIndex, PageDocument, PageEdit, PageNew, PageSignIn}

// Page is the model shared by every rendered page.
type Page struct {
	Title   string
	Flashes []string
	User    string // signed-in username, empty when anonymous
	Data    any
}

// IndexData lists the documents in the store.
type IndexData struct {
	Names []string
}

// DocumentData carries an already rendered document body.
type DocumentData struct {
	Name string
	Body template.HTML
}

// EditData pre-fills the edit form.
type EditData struct {
	Name    string
	Content string
}

// NewData pre-fills the creation form after a rejected submission.
type NewData struct {
	Filename string
}

// SignInData pre-fills the sign-in form after a rejected submission.
type SignInData struct {
	Username string
}

// Pages holds one parsed template set per page, each wrapped in the shared layout.
type Pages struct {
	templates map[string]*template.Template
}

// NewPages parses the embedded templates.
func NewPages() (*Pages, error) {
	p := &Pages{templates: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		p.templates[name] = t
	}
	return p, nil
}

// Render executes the named page into w. Output is buffered so a template
// error never leaves a half-written page.
func (p *Pages) Render(w io.Writer, name string, page Page) error {
	t, ok := p.templates[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
