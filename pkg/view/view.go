// Package view renders the portfolio pages. Data driven views follow a small
// state machine (loading, success, empty, error, not found) driven by a
// Loader, static views render straight from their templates.
package view

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name identifies a view in logs and metrics
type Name string

const (
	NameCategory Name = "category"
	NameDetail   Name = "detail"
	NameAbout    Name = "about"
	NameNotFound Name = "not_found"
)

const (
	// SiteName suffix of every page title
	SiteName = "Cory Fitzpatrick"
	// PlaceholderImage replaces list thumbnails that fail to load
	PlaceholderImage = "/images/placeholder.jpg"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var (
	templates = template.Must(template.New("").ParseFS(templateFS, "templates/*.gohtml"))
	titler    = cases.Title(language.English)
)

// PageTitle title for a page showing the given view or category
func PageTitle(name string) string {
	if name == "" {
		return SiteName
	}
	return titler.String(name) + " | " + SiteName
}

// component renders the named template with data
func component(name string, data interface{}) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := templates.ExecuteTemplate(w, name, data); err != nil {
			return errors.Wrapf(err, "failed to render %s", name)
		}
		return nil
	})
}

// renderHTML renders c into trusted markup for embedding into another template
func renderHTML(ctx context.Context, c templ.Component) (template.HTML, error) {
	buf := &bytes.Buffer{}
	if err := c.Render(ctx, buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil //nolint:gosec
}
