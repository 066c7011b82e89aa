// Package view renders pages. Handlers depend on the Renderer interface
// only; the shipped implementation wraps html/template over a small set of
// embedded files, one per page plus a shared layout.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
)

//go:embed templates
var templatesFS embed.FS

type Renderer interface {
	Render(w io.Writer, page string, data any) error
}

type TemplateRenderer struct {
	tmpl map[string]*template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	pages, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	// Post bodies and comments are rich text that has already been run
	// through the sanitizer, so pages may opt out of escaping for them.
	funcs := template.FuncMap{
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
	}

	templates := map[string]*template.Template{}
	for _, page := range pages {
		if filepath.Base(page) == "layout.html" {
			continue
		}
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", page)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(page), ".html")
		templates[name] = t
	}

	return &TemplateRenderer{tmpl: templates}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.tmpl[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
