package view

import (
	"context"
	"testing"

	"github.com/fitzmx6/portfolio/content"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func categoryFetcher(items []*content.Item, err error) *fetcherFunc {
	return &fetcherFunc{
		category: func(ctx context.Context, category string) ([]*content.Item, error) {
			return items, err
		},
	}
}

func TestCategoryFromPath(t *testing.T) {
	assert.Equal(t, "dev", CategoryFromPath("/dev"))
	assert.Equal(t, "photo", CategoryFromPath("photo"))
}

func TestCategorySuccess(t *testing.T) {
	items := []*content.Item{
		{ID: 1, Name: "Hero Dashboard", URL: "/dev/hero-dashboard", ThumbnailImage: "/images/hero1.jpg"},
		{ID: 2, Name: "Power Tracker", URL: "/dev/power-tracker", ThumbnailImage: "/images/hero2.jpg"},
	}
	v := NewCategory(zaptest.NewLogger(t), categoryFetcher(items, nil), CategoryWithOnNavigate(NavigateScrollTop))

	require.Equal(t, StateSuccess, v.Load(t.Context(), "/dev"))

	doc := render(t, v.Component())
	tiles := doc.Find(".grid-panel")
	require.Equal(t, 2, tiles.Length())

	link := tiles.First().Find("a")
	href, _ := link.Attr("href")
	assert.Equal(t, "/dev/hero-dashboard", href)
	onclick, _ := link.Attr("onclick")
	assert.Equal(t, string(NavigateScrollTop), onclick)

	img := tiles.First().Find("img")
	src, _ := img.Attr("src")
	assert.Equal(t, "/images/hero1.jpg", src)
	alt, _ := img.Attr("alt")
	assert.Equal(t, "Hero Dashboard", alt)
	onerror, _ := img.Attr("onerror")
	assert.Contains(t, onerror, "placeholder.jpg")

	assert.Equal(t, "Hero Dashboard", tiles.First().Find("figcaption h2").Text())
	assert.Equal(t, "View", tiles.First().Find("figcaption .view").Text())

	href, _ = tiles.Eq(1).Find("a").Attr("href")
	assert.Equal(t, "/dev/power-tracker", href)
}

func TestCategoryWithoutNavigateCallback(t *testing.T) {
	items := []*content.Item{{ID: 1, Name: "Cape Catalog", URL: "/design/cape-catalog"}}
	v := NewCategory(zaptest.NewLogger(t), categoryFetcher(items, nil))
	v.Load(t.Context(), "/design")

	_, ok := render(t, v.Component()).Find(".grid-panel a").Attr("onclick")
	assert.False(t, ok)
}

func TestCategoryEmpty(t *testing.T) {
	v := NewCategory(zaptest.NewLogger(t), categoryFetcher([]*content.Item{}, nil))

	assert.Equal(t, StateEmpty, v.Load(t.Context(), "/dev"))

	doc := render(t, v.Component())
	assert.Equal(t, 0, doc.Find(".grid-panel").Length())
	assert.Equal(t, `No content found for "dev".`, doc.Find(".empty").Text())
}

func TestCategoryError(t *testing.T) {
	v := NewCategory(zaptest.NewLogger(t), categoryFetcher(nil, errors.New("boom")))

	assert.Equal(t, StateError, v.Load(t.Context(), "/dev"))

	doc := render(t, v.Component())
	assert.Equal(t, "Error loading content: boom", doc.Find(".error").Text())
	assert.Equal(t, 0, doc.Find(".grid-panel").Length())
}

func TestCategoryLoading(t *testing.T) {
	var (
		release = make(chan struct{})
		fetcher = &fetcherFunc{
			category: func(ctx context.Context, category string) ([]*content.Item, error) {
				<-release
				return nil, nil
			},
		}
		v = NewCategory(zaptest.NewLogger(t), fetcher, CategoryWithRefresh("/dev"))
	)

	done := v.Mount(t.Context(), "/dev")
	assert.Equal(t, StateLoading, v.State())

	loading := render(t, v.Component()).Find(".loading")
	assert.Equal(t, "Loading dev content...", loading.Text())
	hxGet, _ := loading.Attr("hx-get")
	assert.Equal(t, "/dev", hxGet)

	close(release)
	<-done
	assert.Equal(t, StateEmpty, v.State())
}

func TestCategoryUnmountDiscardsPending(t *testing.T) {
	var (
		release = make(chan struct{})
		fetcher = &fetcherFunc{
			category: func(ctx context.Context, category string) ([]*content.Item, error) {
				<-release
				return []*content.Item{{Name: "late"}}, nil
			},
		}
		v = NewCategory(zaptest.NewLogger(t), fetcher)
	)

	done := v.Mount(t.Context(), "/dev")
	v.Unmount()
	close(release)
	<-done
	assert.Equal(t, StateLoading, v.State())
}

func TestCategoryPending(t *testing.T) {
	fetcher := &fetcherFunc{
		category: func(ctx context.Context, category string) ([]*content.Item, error) {
			t.Fatal("pending must not fetch")
			return nil, nil
		},
	}
	v := NewCategory(zaptest.NewLogger(t), fetcher, CategoryWithRefresh("/photo"))

	v.Pending("/photo")
	assert.Equal(t, StateLoading, v.State())
	assert.Equal(t, "Loading photo content...", render(t, v.Component()).Find(".loading").Text())
}
