package view

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/about.md
var aboutSource []byte

// aboutHTML is converted once, the copy is part of the binary and trusted
var aboutHTML = mustConvertMarkdown(aboutSource)

// About static about page
type About struct{}

func NewAbout() *About {
	return &About{}
}

func (v *About) Component() templ.Component {
	return component("about", aboutHTML)
}

func mustConvertMarkdown(source []byte) template.HTML {
	md := goldmark.New(
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)
	buf := &bytes.Buffer{}
	if err := md.Convert(source, buf); err != nil {
		panic(err)
	}
	return template.HTML(buf.String()) //nolint:gosec
}
