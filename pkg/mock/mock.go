package mock

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/fitzmx6/portfolio/content"
	"github.com/fitzmx6/portfolio/responses"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type (
	// ContentAPI an in memory content api, serving /content/category and /content/item
	ContentAPI struct {
		mu       sync.Mutex
		items    []*content.Item
		failures map[string]failure
		requests []string
		delay    time.Duration
	}
	failure struct {
		status int
		body   *responses.Error
	}
)

// NewContentAPI content api serving the given items
func NewContentAPI(items ...*content.Item) *ContentAPI {
	return &ContentAPI{
		items:    items,
		failures: map[string]failure{},
	}
}

// GetMockContentAPI starts a test server for a content api with the default items
func GetMockContentAPI(tb testing.TB) (*httptest.Server, *ContentAPI) {
	tb.Helper()
	api := NewContentAPI(MakeItems()...)
	server := httptest.NewServer(api)
	tb.Cleanup(server.Close)
	return server, api
}

// Fail lets requests for the given category or item url fail with status.
// message is sent as json error body unless empty.
func (a *ContentAPI) Fail(key string, status int, message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	f := failure{status: status}
	if message != "" {
		f.body = &responses.Error{Message: message}
	}
	a.failures[key] = f
}

// SetItems replaces the served items
func (a *ContentAPI) SetItems(items ...*content.Item) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.items = items
}

// SetDelay delays every reply
func (a *ContentAPI) SetDelay(d time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.delay = d
}

// Requests raw request uris received so far
func (a *ContentAPI) Requests() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string{}, a.requests...)
}

func (a *ContentAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	a.requests = append(a.requests, r.RequestURI)
	delay := a.delay
	a.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	switch r.URL.Path {
	case "/content/category":
		category := r.URL.Query().Get("category")
		if a.fail(w, category) {
			return
		}
		writeJSON(w, http.StatusOK, a.byCategory(category))
	case "/content/item":
		url := r.URL.Query().Get("url")
		if a.fail(w, url) {
			return
		}
		item := a.byURL(url)
		if item == nil {
			writeJSON(w, http.StatusNotFound, &responses.Error{Err: "no such item"})
			return
		}
		writeJSON(w, http.StatusOK, item)
	default:
		http.NotFound(w, r)
	}
}

func (a *ContentAPI) fail(w http.ResponseWriter, key string) bool {
	a.mu.Lock()
	f, ok := a.failures[key]
	a.mu.Unlock()
	if !ok {
		return false
	}
	if f.body == nil {
		w.WriteHeader(f.status)
		return true
	}
	writeJSON(w, f.status, f.body)
	return true
}

func (a *ContentAPI) byCategory(category string) []*content.Item {
	a.mu.Lock()
	defer a.mu.Unlock()
	items := []*content.Item{}
	for _, item := range a.items {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items
}

func (a *ContentAPI) byURL(url string) *content.Item {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, item := range a.items {
		if item.URL == url {
			return item
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// MakeItems a small catalog across all categories
func MakeItems() []*content.Item {
	return []*content.Item{
		{
			ID:             1,
			Category:       "dev",
			Name:           "Hero Dashboard",
			Description:    "Cool <strong>superhero</strong> project",
			URL:            "/dev/hero-dashboard",
			ThumbnailImage: "/images/hero1.jpg",
			VideoURL:       "hero-dashboard",
		},
		{
			ID:             2,
			Category:       "dev",
			Name:           "Power Tracker",
			Description:    "Track amazing abilities",
			URL:            "/dev/power-tracker",
			ThumbnailImage: "/images/hero2.jpg",
			Images:         []string{"/images/power-1.jpg", "/images/power-2.jpg"},
		},
		{
			ID:             1,
			Category:       "design",
			Name:           "Cape Catalog",
			URL:            "/design/cape-catalog",
			ThumbnailImage: "/images/cape.jpg",
			Images:         []string{"/images/cape-1.jpg"},
		},
		{
			ID:             1,
			Category:       "photo",
			Name:           "Super Hero Academy",
			Description:    "Class photos",
			URL:            "/photo/super hero academy",
			ThumbnailImage: "/images/academy.jpg",
		},
	}
}
