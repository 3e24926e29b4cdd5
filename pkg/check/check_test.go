package check_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/fitzmx6/portfolio/client"
	"github.com/fitzmx6/portfolio/content"
	"github.com/fitzmx6/portfolio/pkg/check"
	"github.com/fitzmx6/portfolio/pkg/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zaptest"
)

func newTestChecker(t *testing.T, opts ...check.Option) (*check.Checker, *mock.ContentAPI) {
	t.Helper()
	var (
		l           = zaptest.NewLogger(t)
		server, api = mock.GetMockContentAPI(t)
	)
	return check.New(l, client.New(l, server.URL), opts...), api
}

func TestRunClean(t *testing.T) {
	c, api := newTestChecker(t)

	report, err := c.Run(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Categories)
	assert.Equal(t, 4, report.Items)
	assert.Empty(t, report.Findings)
	assert.NoError(t, report.Err())
	// 3 listings and 4 lookups
	assert.Len(t, api.Requests(), 7)
}

func TestRunFindings(t *testing.T) {
	c, api := newTestChecker(t, check.WithLimit(1))
	api.SetItems(
		&content.Item{ID: 1, Category: "dev", Name: "Hero Dashboard", URL: "/dev/hero-dashboard"},
		&content.Item{ID: 1, Category: "dev", Name: "Clone", URL: "/dev/clone"},
		&content.Item{ID: 2, Category: "dev", Name: "Nested", URL: "/dev/a/b"},
	)
	api.Fail("design", http.StatusInternalServerError, "Heroes are busy saving the world")
	api.Fail("/dev/clone", http.StatusNotFound, "")

	report, err := c.Run(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Items)

	errs := multierr.Errors(report.Err())
	require.Len(t, errs, 4, report.Err())
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Error())
	}
	assert.Contains(t, messages, `category "design": Heroes are busy saving the world`)
	assert.Contains(t, messages, `item "/dev/clone": duplicate id 1 in "dev", also used by "/dev/hero-dashboard"`)
	assert.Contains(t, messages, `item "/dev/clone": listed in "dev" but not found by url`)
	assert.Contains(t, messages, `item "/dev/a/b": url is not a detail page`)
}

func TestRunCanceled(t *testing.T) {
	c, _ := newTestChecker(t, check.WithCategories(content.CategoryDev))
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := c.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
