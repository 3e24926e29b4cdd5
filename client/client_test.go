package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitzmx6/portfolio/client"
	"github.com/fitzmx6/portfolio/pkg/mock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestClient(t *testing.T) (*client.Client, *mock.ContentAPI) {
	t.Helper()
	server, api := mock.GetMockContentAPI(t)
	return client.New(zaptest.NewLogger(t), server.URL), api
}

func TestFetchByCategory(t *testing.T) {
	c, api := newTestClient(t)

	items, err := c.FetchByCategory(t.Context(), "dev")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Hero Dashboard", items[0].Name)
	assert.Equal(t, "/dev/hero-dashboard", items[0].URL)
	assert.Equal(t, []string{"/content/category?category=dev"}, api.Requests())
}

func TestFetchByCategoryEncodesCategory(t *testing.T) {
	c, api := newTestClient(t)

	items, err := c.FetchByCategory(t.Context(), "super hero powers")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, []string{"/content/category?category=super%20hero%20powers"}, api.Requests())
}

func TestFetchByCategoryErrorMessage(t *testing.T) {
	c, api := newTestClient(t)
	api.Fail("dev", http.StatusInternalServerError, "Heroes are busy saving the world")

	_, err := c.FetchByCategory(t.Context(), "dev")
	require.Error(t, err)
	assert.Equal(t, "Heroes are busy saving the world", err.Error())
	assert.True(t, client.IsHTTPFailure(err))

	var fetchErr *client.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
}

func TestFetchByCategoryStatusFallback(t *testing.T) {
	c, api := newTestClient(t)
	api.Fail("dev", http.StatusBadGateway, "")

	_, err := c.FetchByCategory(t.Context(), "dev")
	require.Error(t, err)
	assert.Equal(t, "HTTP error 502", err.Error())
}

func TestFetchByCategoryNotFoundIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()
	c := client.New(zaptest.NewLogger(t), server.URL)

	_, err := c.FetchByCategory(t.Context(), "dev")
	require.Error(t, err)
	assert.True(t, client.IsHTTPFailure(err))
	assert.Equal(t, "HTTP error 404", err.Error())
}

func TestFetchErrorFieldFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"Villain attack on servers"}`))
	}))
	defer server.Close()
	c := client.New(zaptest.NewLogger(t), server.URL)

	_, err := c.FetchByURL(t.Context(), "/dev/hero-base")
	require.Error(t, err)
	assert.Equal(t, "Villain attack on servers", err.Error())
}

func TestFetchByURL(t *testing.T) {
	c, api := newTestClient(t)

	item, err := c.FetchByURL(t.Context(), "/dev/power-tracker")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Power Tracker", item.Name)
	assert.Len(t, item.Images, 2)
	assert.Equal(t, []string{"/content/item?url=%2Fdev%2Fpower-tracker"}, api.Requests())
}

func TestFetchByURLEncodesSpaces(t *testing.T) {
	c, api := newTestClient(t)

	item, err := c.FetchByURL(t.Context(), "/photo/super hero academy")
	require.NoError(t, err)
	require.NotNil(t, item, "the server must decode the path it was sent")
	assert.Equal(t, "/photo/super hero academy", item.URL)
	assert.Equal(t, []string{"/content/item?url=%2Fphoto%2Fsuper%20hero%20academy"}, api.Requests())
}

func TestFetchByURLNotFound(t *testing.T) {
	c, _ := newTestClient(t)

	item, err := c.FetchByURL(t.Context(), "/dev/nope")
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestFetchNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	c := client.New(zaptest.NewLogger(t), server.URL)

	_, err := c.FetchByCategory(t.Context(), "dev")
	require.Error(t, err)
	assert.True(t, client.IsNetworkFailure(err))
	assert.NotContains(t, err.Error(), server.URL, "message should not carry the request line")

	_, err = c.FetchByURL(t.Context(), "/dev/hero-dashboard")
	require.Error(t, err)
	assert.True(t, client.IsNetworkFailure(err))
}

func TestFetchCanceledContext(t *testing.T) {
	c, _ := newTestClient(t)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := c.FetchByCategory(ctx, "dev")
	require.Error(t, err)
	assert.True(t, client.IsNetworkFailure(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestForOrigin(t *testing.T) {
	l := zaptest.NewLogger(t)

	configured := client.New(l, "http://api.example.com/")
	assert.Equal(t, "http://api.example.com", configured.BaseURL())
	assert.Same(t, configured, configured.ForOrigin("http://other.example.com"))

	sameOrigin := client.New(l, "")
	bound := sameOrigin.ForOrigin("https://portfolio.example.com")
	assert.Equal(t, "https://portfolio.example.com", bound.BaseURL())
	assert.Empty(t, sameOrigin.BaseURL(), "binding must not mutate the shared client")
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "%2Fdev%2Fsuper%20hero%20academy", client.EncodeURIComponent("/dev/super hero academy"))
	assert.Equal(t, "a%2Bb", client.EncodeURIComponent("a+b"))
	assert.Equal(t, "dev", client.EncodeURIComponent("dev"))
	assert.Equal(t, "it's!(a)*test~_.-", client.EncodeURIComponent("it's!(a)*test~_.-"))
	assert.Equal(t, "100%25%20%26%3D%3F", client.EncodeURIComponent("100% &=?"))
}

func TestFetchByURLNullBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("null"))
	}))
	t.Cleanup(server.Close)
	c := client.New(zaptest.NewLogger(t), server.URL)

	item, err := c.FetchByURL(t.Context(), "/dev/hero-dashboard")
	require.NoError(t, err)
	assert.Nil(t, item, "a null reply must be treated as absent")
}
