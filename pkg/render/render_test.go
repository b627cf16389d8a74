package render_test

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/flatcms/pkg/render"
)

func TestMarkdown_ToHTML(t *testing.T) {
	md := render.NewMarkdown(render.MarkdownOptions{})

	out, err := md.ToHTML([]byte("A journey into the mind of a python developer"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<p>A journey into the mind of a python developer</p>")

	out, err = md.ToHTML([]byte("# Title\n\n- [x] done"))
	require.NoError(t, err)
	assert.Contains(t, string(out), `<h1 id="title">Title</h1>`)
	assert.Contains(t, string(out), `type="checkbox"`)
}

func TestMarkdown_RawHTMLOmittedByDefault(t *testing.T) {
	out, err := render.NewMarkdown(render.MarkdownOptions{}).ToHTML([]byte("<script>alert(1)</script>"))
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")

	out, err = render.NewMarkdown(render.MarkdownOptions{Unsafe: true}).ToHTML([]byte("<b>bold</b>"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<b>bold</b>")
}

func TestPages_Render(t *testing.T) {
	pages, err := render.NewPages()
	require.NoError(t, err)

	tests := []struct {
		name string
		page render.Page
		want []string
	}{
		{render.PageIndex, render.Page{Data: render.IndexData{Names: []string{"about.md"}}}, []string{`href="/about.md"`, "Sign In"}},
		{render.PageEdit, render.Page{User: "admin", Data: render.EditData{Name: "a.txt", Content: "x < y"}}, []string{"<textarea", `<button type="submit"`, "x &lt; y", "Signed in as admin"}},
		{render.PageNew, render.Page{Data: render.NewData{}}, []string{`<textarea name="filename"`, `<button type="submit"`}},
		{render.PageSignIn, render.Page{Data: render.SignInData{Username: "guest"}}, []string{"<input", `value="guest"`}},
		{render.PageDocument, render.Page{Data: render.DocumentData{Body: template.HTML("<p>hi</p>")}}, []string{"<p>hi</p>"}},
		{render.PageIndex, render.Page{Flashes: []string{"test.txt has been created."}, Data: render.IndexData{}}, []string{"test.txt has been created."}},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		require.NoError(t, pages.Render(&buf, tt.name, tt.page), tt.name)
		for _, w := range tt.want {
			assert.Contains(t, buf.String(), w, tt.name)
		}
	}
}

func TestPages_UnknownPage(t *testing.T) {
	pages, err := render.NewPages()
	require.NoError(t, err)

	assert.Error(t, pages.Render(&bytes.Buffer{}, "missing", render.Page{}))
}
