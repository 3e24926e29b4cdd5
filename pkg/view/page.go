package view

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

type (
	// Page the document shell around a view: header, main content and footer
	Page struct {
		Title       string
		Header      *Header
		Footer      *Footer
		Document    *Document
		Progressive bool
	}

	pageData struct {
		Title       string
		BodyClass   string
		Header      template.HTML
		Main        template.HTML
		Footer      template.HTML
		Progressive bool
	}
)

// Component renders the full document with main as content. Document classes
// are read at render time, views must still be mounted.
func (p *Page) Component(main templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		data := &pageData{
			Title:       p.Title,
			Progressive: p.Progressive,
		}
		if p.Document != nil {
			data.BodyClass = p.Document.ClassAttr()
		}
		var err error
		if p.Header != nil {
			if data.Header, err = renderHTML(ctx, p.Header.Component()); err != nil {
				return err
			}
		}
		if data.Main, err = renderHTML(ctx, main); err != nil {
			return err
		}
		if p.Footer != nil {
			if data.Footer, err = renderHTML(ctx, p.Footer.Component()); err != nil {
				return err
			}
		}
		return component("page", data).Render(ctx, w)
	})
}
