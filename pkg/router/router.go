// Package router maps request paths onto the pages of the site. Resolution is
// a pure function of the path.
package router

import (
	"path"
	"strings"

	"github.com/fitzmx6/portfolio/content"
)

// Kind what a resolved path renders
type Kind string

const (
	KindCategory Kind = "category"
	KindAbout    Kind = "about"
	KindDetail   Kind = "detail"
	KindRedirect Kind = "redirect"
	KindNotFound Kind = "not_found"
	// KindReserved paths of the content api, never rendered as pages
	KindReserved Kind = "reserved"
)

const (
	// DefaultPath landing page, the root and legacy paths redirect here
	DefaultPath = "/dev"
	// ReservedPath prefix of the content api when it shares the origin of the site
	ReservedPath = "/content"
)

type (
	// Route one entry of a route table. Pattern segments starting with ":"
	// match any single non empty segment, "*" matches everything.
	Route struct {
		Pattern  string
		Kind     Kind
		Redirect string
	}
	// Match the result of resolving a path
	Match struct {
		Route  Route
		Path   string
		Params map[string]string
	}
	// Table ordered routes, the first matching route wins
	Table []Route
)

// Routes the site routes
var Routes = Table{
	{Pattern: "/dev", Kind: KindCategory},
	{Pattern: "/design", Kind: KindCategory},
	{Pattern: "/photo", Kind: KindCategory},
	{Pattern: "/about", Kind: KindAbout},
	{Pattern: "/:category/:slug", Kind: KindDetail},
	{Pattern: "/", Kind: KindRedirect, Redirect: DefaultPath},
	{Pattern: "/web", Kind: KindRedirect, Redirect: DefaultPath},
	{Pattern: "*", Kind: KindNotFound},
}

// Resolve resolves p against the site routes
func Resolve(p string) Match {
	return Routes.Resolve(p)
}

// Resolve returns the first route matching p. A table without catch all
// resolves unknown paths to KindNotFound.
func (t Table) Resolve(p string) Match {
	p = Normalize(p)
	if IsReserved(p) {
		return Match{Route: Route{Pattern: ReservedPath + "/*", Kind: KindReserved}, Path: p}
	}
	segments := split(p)
	for _, r := range t {
		if params, ok := r.match(segments); ok {
			return Match{Route: r, Path: p, Params: params}
		}
	}
	return Match{Route: Route{Pattern: "*", Kind: KindNotFound}, Path: p}
}

// IsReserved is p below ReservedPath
func IsReserved(p string) bool {
	p = Normalize(p)
	return p == ReservedPath || strings.HasPrefix(p, ReservedPath+content.PathSeparator)
}

// Normalize cleans p, ensures a leading separator and drops a trailing one
func Normalize(p string) string {
	if p == "" {
		return content.PathSeparator
	}
	if !strings.HasPrefix(p, content.PathSeparator) {
		p = content.PathSeparator + p
	}
	return path.Clean(p)
}

// Param named path parameter
func (m Match) Param(name string) string {
	return m.Params[name]
}

func (r Route) match(segments []string) (map[string]string, bool) {
	if r.Pattern == "*" {
		return nil, true
	}
	pattern := split(r.Pattern)
	if len(pattern) != len(segments) {
		return nil, false
	}
	var params map[string]string
	for i, s := range pattern {
		if name, ok := strings.CutPrefix(s, ":"); ok {
			if segments[i] == "" {
				return nil, false
			}
			if params == nil {
				params = map[string]string{}
			}
			params[name] = segments[i]
			continue
		}
		if s != segments[i] {
			return nil, false
		}
	}
	return params, true
}

func split(p string) []string {
	p = strings.Trim(p, content.PathSeparator)
	if p == "" {
		return nil
	}
	return strings.Split(p, content.PathSeparator)
}
