package view

import (
	"net/url"

	"github.com/a-h/templ"
)

const (
	// NavQueryParam carries the mobile navigation state without client script
	NavQueryParam = "nav"
	// NavOpen value of NavQueryParam for an open mobile navigation
	NavOpen = "open"
	// LogoText logo link label
	LogoText = "Cory Fitzpatrick | Software Tech Lead"
)

type (
	// Header site header with logo, navigation and the mobile navigation toggle
	Header struct {
		path string
		open bool
	}
	// NavLink a header link, Href already encodes the navigation state after following it
	NavLink struct {
		Label  string
		Href   string
		Active bool
	}

	headerData struct {
		Open       bool
		Logo       NavLink
		Links      []NavLink
		ToggleHref string
	}
)

var navigation = []struct {
	label string
	path  string
}{
	{label: "Dev", path: "/dev"},
	{label: "Design", path: "/design"},
	{label: "Photo", path: "/photo"},
	{label: "About", path: "/about"},
}

// NewHeader header for a page at path, open is the mobile navigation state
func NewHeader(path string, open bool) *Header {
	return &Header{path: path, open: open}
}

// Open is the mobile navigation open
func (h *Header) Open() bool {
	return h.open
}

// Toggle flips the mobile navigation
func (h *Header) Toggle() {
	h.open = !h.open
}

// Close closes the mobile navigation, no-op when already closed
func (h *Header) Close() {
	if h.open {
		h.open = false
	}
}

// Logo the logo link, following it closes the mobile navigation
func (h *Header) Logo() NavLink {
	return h.link(LogoText, "/dev")
}

// Links navigation links, following one closes the mobile navigation
func (h *Header) Links() []NavLink {
	links := make([]NavLink, 0, len(navigation))
	for _, n := range navigation {
		links = append(links, h.link(n.label, n.path))
	}
	return links
}

// ToggleHref the current page with the mobile navigation flipped
func (h *Header) ToggleHref() string {
	next := *h
	next.Toggle()
	return next.href(h.path)
}

func (h *Header) Component() templ.Component {
	return component("header", &headerData{
		Open:       h.open,
		Logo:       h.Logo(),
		Links:      h.Links(),
		ToggleHref: h.ToggleHref(),
	})
}

func (h *Header) link(label, path string) NavLink {
	next := *h
	next.Close()
	return NavLink{
		Label:  label,
		Href:   next.href(path),
		Active: h.path == path,
	}
}

func (h *Header) href(path string) string {
	if !h.open {
		return path
	}
	return path + "?" + url.Values{NavQueryParam: []string{NavOpen}}.Encode()
}
