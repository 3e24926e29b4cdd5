package view

import (
	"context"
	"html/template"

	"github.com/a-h/templ"
	"github.com/fitzmx6/portfolio/content"
	"go.uber.org/zap"
)

type (
	// ItemFetcher looks up a single item by its url, (nil, nil) means absent
	ItemFetcher interface {
		FetchByURL(ctx context.Context, path string) (*content.Item, error)
	}
	// Detail a single item resolved from the full request path
	Detail struct {
		l        *zap.Logger
		loader   *Loader[string, *content.Item]
		notFound *NotFound
	}

	detailData struct {
		State       State
		Item        *content.Item
		Description template.HTML
		Err         string
	}
)

func NewDetail(l *zap.Logger, fetcher ItemFetcher, doc *Document) *Detail {
	inst := &Detail{
		l:        l.Named("detail"),
		notFound: NewNotFound(doc),
	}
	inst.loader = NewLoader(inst.l, fetcher.FetchByURL, LoaderWithOnCommit(inst.onCommit))
	return inst
}

// Mount starts loading the item whose url is path
func (v *Detail) Mount(ctx context.Context, path string) <-chan struct{} {
	return v.loader.Dispatch(ctx, path)
}

// Load mounts and waits for the load to settle
func (v *Detail) Load(ctx context.Context, path string) State {
	select {
	case <-v.Mount(ctx, path):
	case <-ctx.Done():
	}
	return v.State()
}

// Unmount drops any pending result and unmounts an embedded not found view
func (v *Detail) Unmount() {
	v.loader.Close()
	v.notFound.Unmount()
}

// State current rendering state, an absent record is rendered as StateNotFound
func (v *Detail) State() State {
	return detailState(v.loader.Snapshot())
}

// Component renders the current state, the not found view is rendered in place
func (v *Detail) Component() templ.Component {
	snapshot := v.loader.Snapshot()
	state := detailState(snapshot)
	if state == StateNotFound {
		return v.notFound.Component()
	}
	data := &detailData{
		State: state,
		Item:  snapshot.Value,
	}
	if snapshot.Err != nil {
		data.Err = snapshot.Err.Error()
	}
	if snapshot.Value != nil {
		data.Description = TrustedHTML(snapshot.Value.Description)
	}
	return component("detail", data)
}

func (v *Detail) onCommit(snapshot Snapshot[string, *content.Item]) {
	if detailState(snapshot) == StateNotFound {
		v.notFound.Mount()
		return
	}
	v.notFound.Unmount()
}

func detailState(snapshot Snapshot[string, *content.Item]) State {
	if snapshot.State == StateSuccess && snapshot.Value == nil {
		return StateNotFound
	}
	return snapshot.State
}
