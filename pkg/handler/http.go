package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/fitzmx6/portfolio/client"
	"github.com/fitzmx6/portfolio/pkg/assets"
	"github.com/fitzmx6/portfolio/pkg/metrics"
	"github.com/fitzmx6/portfolio/pkg/router"
	"github.com/fitzmx6/portfolio/pkg/view"
	httputils "github.com/foomo/keel/utils/net/http"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// HeaderHXRequest set by htmx on requests it initiates
const HeaderHXRequest = "HX-Request"

type (
	HTTP struct {
		l           *zap.Logger
		client      *client.Client
		assets      http.Handler
		progressive bool
		now         func() time.Time
	}
	HTTPOption func(*HTTP)

	// page everything needed to render one response
	page struct {
		name   view.Name
		title  string
		main   templ.Component
		state  view.State
		status int
	}
)

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

// NewHTTP returns the site handler, content is fetched with c
func NewHTTP(l *zap.Logger, c *client.Client, opts ...HTTPOption) http.Handler {
	inst := &HTTP{
		l:      l.Named("http"),
		client: c,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

// WithAssets serves asset paths with v
func WithAssets(v http.Handler) HTTPOption {
	return func(o *HTTP) {
		o.assets = v
	}
}

// WithProgressive renders category pages in their loading state first and
// lets htmx fetch the settled fragment
func WithProgressive(v bool) HTTPOption {
	return func(o *HTTP) {
		o.progressive = v
	}
}

// WithNow clock used for the footer
func WithNow(v func() time.Time) HTTPOption {
	return func(o *HTTP) {
		o.now = v
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.assets != nil && assets.Match(r.URL.Path) {
		h.assets.ServeHTTP(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		httputils.ServerError(h.l, w, r, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	match := router.Resolve(r.URL.Path)
	if match.Route.Kind == router.KindReserved {
		// content api requests must never be answered with pages, a same
		// origin client would fetch from itself
		httputils.ServerError(h.l, w, r, http.StatusNotFound, errors.Errorf("content api is not served here: %s", match.Path))
		return
	}
	if match.Route.Kind == router.KindRedirect {
		http.Redirect(w, r, match.Route.Redirect, http.StatusFound)
		return
	}

	var (
		doc     = view.NewDocument()
		fetcher = h.client.ForOrigin(requestOrigin(r))
		p       *page
	)
	switch match.Route.Kind {
	case router.KindCategory:
		v := view.NewCategory(h.l, fetcher, view.CategoryWithOnNavigate(view.NavigateScrollTop), view.CategoryWithRefresh(match.Path))
		defer v.Unmount()
		if IsHTMXRequest(r) {
			// fragments always settle, htmx only swaps 2xx responses
			state := v.Load(r.Context(), match.Path)
			h.observe(view.NameCategory, state)
			templ.Handler(v.Component()).ServeHTTP(w, r)
			return
		}
		p = h.category(r, v, match)
	case router.KindDetail:
		v := view.NewDetail(h.l, fetcher, doc)
		defer v.Unmount()
		p = h.detail(r, v, match)
	case router.KindAbout:
		p = &page{name: view.NameAbout, title: view.PageTitle("about"), main: view.NewAbout().Component(), state: view.StateSuccess, status: http.StatusOK}
	default:
		v := view.NewNotFound(doc)
		v.Mount()
		defer v.Unmount()
		p = notFound(v)
	}

	h.observe(p.name, p.state)
	shell := &view.Page{
		Title:       p.title,
		Header:      view.NewHeader(match.Path, r.URL.Query().Get(view.NavQueryParam) == view.NavOpen),
		Footer:      view.NewFooter(h.now()),
		Document:    doc,
		Progressive: h.progressive,
	}
	templ.Handler(shell.Component(p.main), templ.WithStatus(p.status)).ServeHTTP(w, r)
}

// IsHTMXRequest reports whether the request was initiated by htmx
func IsHTMXRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(HeaderHXRequest), "true")
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (h *HTTP) category(r *http.Request, v *view.Category, match router.Match) *page {
	var state view.State
	if h.progressive {
		v.Pending(match.Path)
		state = view.StateLoading
	} else {
		state = v.Load(r.Context(), match.Path)
	}
	return &page{
		name:   view.NameCategory,
		title:  view.PageTitle(view.CategoryFromPath(match.Path)),
		main:   v.Component(),
		state:  state,
		status: statusOf(state),
	}
}

func (h *HTTP) detail(r *http.Request, v *view.Detail, match router.Match) *page {
	state := v.Load(r.Context(), match.Path)
	if state == view.StateNotFound {
		h.l.Debug("item not found", zap.String("path", match.Path))
		return &page{
			name:   view.NameNotFound,
			title:  view.PageTitle("not found"),
			main:   v.Component(),
			state:  state,
			status: http.StatusNotFound,
		}
	}
	return &page{
		name:   view.NameDetail,
		title:  view.PageTitle(match.Param("category")),
		main:   v.Component(),
		state:  state,
		status: statusOf(state),
	}
}

func (h *HTTP) observe(name view.Name, state view.State) {
	metrics.ViewRenderCounter.WithLabelValues(string(name), state.String()).Inc()
}

func notFound(v *view.NotFound) *page {
	return &page{
		name:   view.NameNotFound,
		title:  view.PageTitle("not found"),
		main:   v.Component(),
		state:  view.StateNotFound,
		status: http.StatusNotFound,
	}
}

// statusOf response status for a view state, upstream failures are reported
// as bad gateway
func statusOf(state view.State) int {
	switch state {
	case view.StateError:
		return http.StatusBadGateway
	case view.StateNotFound:
		return http.StatusNotFound
	default:
		return http.StatusOK
	}
}

// requestOrigin scheme and host the page was requested from
func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
