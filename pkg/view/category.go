package view

import (
	"context"
	"html/template"
	"strings"

	"github.com/a-h/templ"
	"github.com/fitzmx6/portfolio/content"
	"go.uber.org/zap"
)

// NavigateScrollTop resets the scroll position when a tile is followed
const NavigateScrollTop template.JS = "window.scrollTo(0, 0)"

type (
	// CategoryFetcher lists the items of a category
	CategoryFetcher interface {
		FetchByCategory(ctx context.Context, category string) ([]*content.Item, error)
	}
	// Category grid of the items of one category
	Category struct {
		l          *zap.Logger
		loader     *Loader[string, []*content.Item]
		onNavigate template.JS
		refresh    string
	}
	CategoryOption func(*Category)

	categoryData struct {
		State       State
		Category    string
		Items       []*content.Item
		Err         string
		OnNavigate  template.JS
		Placeholder string
		Refresh     string
	}
)

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func NewCategory(l *zap.Logger, fetcher CategoryFetcher, opts ...CategoryOption) *Category {
	inst := &Category{
		l: l.Named("category"),
	}
	inst.loader = NewLoader(inst.l, fetcher.FetchByCategory)

	for _, opt := range opts {
		opt(inst)
	}

	return inst
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

// CategoryWithOnNavigate script run when a tile link is followed
func CategoryWithOnNavigate(v template.JS) CategoryOption {
	return func(o *Category) {
		o.onNavigate = v
	}
}

// CategoryWithRefresh lets the loading state fetch the settled fragment from path
func CategoryWithRefresh(path string) CategoryOption {
	return func(o *Category) {
		o.refresh = path
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

// CategoryFromPath strips the leading separator, /dev yields dev
func CategoryFromPath(path string) string {
	return strings.TrimPrefix(path, content.PathSeparator)
}

// Mount starts loading the category resolved from path
func (v *Category) Mount(ctx context.Context, path string) <-chan struct{} {
	return v.loader.Dispatch(ctx, CategoryFromPath(path))
}

// Pending mounts the loading state for path without fetching, the settled
// fragment is requested separately through the refresh path
func (v *Category) Pending(path string) {
	v.loader.Pending(CategoryFromPath(path))
}

// Load mounts and waits for the load to settle
func (v *Category) Load(ctx context.Context, path string) State {
	select {
	case <-v.Mount(ctx, path):
	case <-ctx.Done():
	}
	return v.State()
}

// Unmount drops any pending result
func (v *Category) Unmount() {
	v.loader.Close()
}

// State current rendering state, an empty result is rendered as StateEmpty
func (v *Category) State() State {
	return categoryState(v.loader.Snapshot())
}

// Component renders the current state
func (v *Category) Component() templ.Component {
	snapshot := v.loader.Snapshot()
	data := &categoryData{
		State:       categoryState(snapshot),
		Category:    snapshot.Key,
		Items:       snapshot.Value,
		OnNavigate:  v.onNavigate,
		Placeholder: PlaceholderImage,
		Refresh:     v.refresh,
	}
	if snapshot.Err != nil {
		data.Err = snapshot.Err.Error()
	}
	return component("category", data)
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func categoryState(snapshot Snapshot[string, []*content.Item]) State {
	if snapshot.State == StateSuccess && len(snapshot.Value) == 0 {
		return StateEmpty
	}
	return snapshot.State
}
