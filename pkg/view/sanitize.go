package view

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

// descriptionPolicy item descriptions come from the content api and are
// user generated content as far as the page is concerned
var descriptionPolicy = bluemonday.UGCPolicy()

// TrustedHTML sanitizes an html fragment from the content api and marks the
// result safe for rendering
func TrustedHTML(fragment string) template.HTML {
	if fragment == "" {
		return ""
	}
	return template.HTML(descriptionPolicy.Sanitize(fragment)) //nolint:gosec
}
