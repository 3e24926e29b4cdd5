package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fitzmx6/portfolio/content"
	"github.com/fitzmx6/portfolio/pkg/metrics"
	"github.com/fitzmx6/portfolio/responses"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Route content api endpoint
type Route string

const (
	// RouteCategory list the items of a category
	RouteCategory Route = "/content/category"
	// RouteItem look up a single item by its url
	RouteItem Route = "/content/item"
)

type (
	// Client a content api client. Every call issues exactly one request,
	// there are no retries and nothing is cached.
	Client struct {
		l          *zap.Logger
		baseURL    string
		httpClient *http.Client
	}
	Option func(*Client)
)

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

// New returns a client for the content api at baseURL. An empty baseURL
// means same origin, see ForOrigin.
func New(l *zap.Logger, baseURL string, opts ...Option) *Client {
	inst := &Client{
		l:          l.Named("client"),
		baseURL:    strings.TrimSuffix(baseURL, content.PathSeparator),
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

func WithHTTPClient(v *http.Client) Option {
	return func(o *Client) {
		o.httpClient = v
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Getter
// ------------------------------------------------------------------------------------------------

func (c *Client) BaseURL() string {
	return c.baseURL
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

// ForOrigin binds a same origin client to the given origin (scheme://host).
// Clients with a configured base url are returned unchanged.
func (c *Client) ForOrigin(origin string) *Client {
	if c.baseURL != "" || origin == "" {
		return c
	}
	return &Client{
		l:          c.l,
		baseURL:    strings.TrimSuffix(origin, content.PathSeparator),
		httpClient: c.httpClient,
	}
}

// FetchByCategory lists the items of the given category
func (c *Client) FetchByCategory(ctx context.Context, category string) ([]*content.Item, error) {
	var items []*content.Item
	found, err := c.get(ctx, RouteCategory, "category="+EncodeURIComponent(category), false, &items)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return items, nil
}

// FetchByURL looks up a single item by its canonical path. A 404 reply is a
// valid absence and yields (nil, nil).
func (c *Client) FetchByURL(ctx context.Context, path string) (*content.Item, error) {
	var item *content.Item
	found, err := c.get(ctx, RouteItem, "url="+EncodeURIComponent(path), true, &item)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	// a null reply is an absence as well
	return item, nil
}

// uriComponentUnescaper reverts query escaping for the characters
// encodeURIComponent leaves alone, spaces become %20 instead of +
var uriComponentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s for use as a query value with the character
// set of encodeURIComponent
func EncodeURIComponent(s string) string {
	return uriComponentUnescaper.Replace(url.QueryEscape(s))
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (c *Client) get(ctx context.Context, route Route, rawQuery string, allowNotFound bool, v interface{}) (found bool, err error) {
	var (
		start    = time.Now()
		endpoint = c.baseURL + string(route) + "?" + rawQuery
		l        = c.l.With(
			zap.String("fetch_id", uuid.New().String()),
			zap.String("route", string(route)),
		)
	)

	defer func() {
		result := "success"
		switch {
		case err != nil:
			result = "error"
		case !found:
			result = "not_found"
		}
		metrics.ContentFetchCounter.WithLabelValues(string(route), result).Inc()
		metrics.ContentFetchDuration.WithLabelValues(string(route), result).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, newNetworkFailure(errors.Wrap(err, "failed to create content request"))
	}
	req.Header.Set("Accept", "application/json")

	l.Debug("fetching content", zap.String("url", endpoint))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		l.Warn("content request failed", zap.Error(err))
		return false, newNetworkFailure(err)
	}
	defer resp.Body.Close()

	if allowNotFound && resp.StatusCode == http.StatusNotFound {
		l.Debug("content not found")
		return false, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, newNetworkFailure(errors.Wrap(err, "failed to read content reply"))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fetchErr := newHTTPFailure(resp.StatusCode, errorMessage(resp.StatusCode, body))
		l.Warn("content api replied with an error",
			zap.Int("status", resp.StatusCode),
			zap.String("message", fetchErr.Message),
		)
		return false, fetchErr
	}

	if err := json.Unmarshal(body, v); err != nil {
		l.Error("could not decode content reply", zap.Error(err))
		return false, newNetworkFailure(errors.Wrap(err, "failed to decode content reply"))
	}
	return true, nil
}

// errorMessage prefers a message from a json error body over the status line
func errorMessage(status int, body []byte) string {
	errBody := &responses.Error{}
	if len(body) > 0 && json.Unmarshal(body, errBody) == nil {
		if text := errBody.Text(); text != "" {
			return text
		}
	}
	return "HTTP error " + strconv.Itoa(status)
}
