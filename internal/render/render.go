// Package render turns a loaded portfolio into the HTML page.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/model"
)

// PageTemplate is the template executed for the page.
const PageTemplate = "page.html"

// navSections are the section anchors linked from the navigation bar.
var navSections = []string{"research", "publications", "projects", "teaching", "seminars", "experience"}

//go:embed templates/*.html
var embedded embed.FS

type Renderer struct {
	tpl *template.Template
	md  goldmark.Markdown
}

// New parses the page templates. When layoutsDir holds a page.html, every
// .html file there is used instead of the built-in templates.
func New(layoutsDir string) (*Renderer, error) {
	r := &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				gmhtml.WithHardWraps(),
			),
		),
	}

	var source fs.FS = embedded
	pattern := "templates/*.html"
	if layoutsDir != "" {
		if _, err := os.Stat(filepath.Join(layoutsDir, PageTemplate)); err == nil {
			source = os.DirFS(layoutsDir)
			pattern = "*.html"
		}
	}

	tpl, err := template.New(PageTemplate).Funcs(r.funcs()).ParseFS(source, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	if tpl.Lookup(PageTemplate) == nil {
		return nil, fmt.Errorf("template %s not found", PageTemplate)
	}
	r.tpl = tpl
	return r, nil
}

// Render writes the page for data to w.
func (r *Renderer) Render(w io.Writer, data model.PageData) error {
	// Render into a buffer so a template error never leaves a half-written page.
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, PageTemplate, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", PageTemplate, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Markdown converts a markdown body to HTML.
func (r *Renderer) Markdown(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"markdown": r.Markdown,
		"join":     strings.Join,
		"heading":  heading,
		"deref": func(n *int) int {
			if n == nil {
				return 0
			}
			return *n
		},
		"statuses": func() []model.PublicationStatus { return model.PublicationStatuses },
		"nav":      func() []string { return navSections },
	}
}

// heading turns a key such as "regular_seminars" into "Regular Seminars".
func heading(key string) string {
	words := strings.NewReplacer("_", " ", "-", " ").Replace(key)
	return cases.Title(language.English).String(words)
}
