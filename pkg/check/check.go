// Package check audits the content api the way the site consumes it: every
// category is listed and every listed item is looked up by its url.
package check

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/fitzmx6/portfolio/content"
	"github.com/fitzmx6/portfolio/pkg/router"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type (
	// Fetcher the content api operations the site depends on
	Fetcher interface {
		FetchByCategory(ctx context.Context, category string) ([]*content.Item, error)
		FetchByURL(ctx context.Context, path string) (*content.Item, error)
	}
	// Checker runs the audit
	Checker struct {
		l          *zap.Logger
		fetcher    Fetcher
		categories []content.Category
		limit      int
	}
	Option func(*Checker)
	// Report summary of one run
	Report struct {
		Categories int
		Items      int
		Findings   []error
	}
)

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func New(l *zap.Logger, fetcher Fetcher, opts ...Option) *Checker {
	inst := &Checker{
		l:          l.Named("check"),
		fetcher:    fetcher,
		categories: content.Categories,
		limit:      4,
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

// WithLimit number of concurrent requests
func WithLimit(v int) Option {
	return func(o *Checker) {
		o.limit = v
	}
}

// WithCategories categories to audit
func WithCategories(v ...content.Category) Option {
	return func(o *Checker) {
		o.categories = v
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

// Err all findings combined, nil for a clean report
func (r *Report) Err() error {
	return multierr.Combine(r.Findings...)
}

// Run audits all categories. The returned error is only set when ctx ended
// before the audit completed, findings are part of the report.
func (c *Checker) Run(ctx context.Context) (*Report, error) {
	var (
		mu     sync.Mutex
		report = &Report{Categories: len(c.categories)}
		find   = func(err error) {
			mu.Lock()
			defer mu.Unlock()
			report.Findings = append(report.Findings, err)
		}
		listed = make([][]*content.Item, len(c.categories))
	)

	g := &errgroup.Group{}
	g.SetLimit(c.limit)
	for i, category := range c.categories {
		g.Go(func() error {
			items, err := c.fetcher.FetchByCategory(ctx, string(category))
			if err != nil {
				find(errors.Wrapf(err, "category %q", category))
				return nil
			}
			if len(items) == 0 {
				c.l.Warn("empty category", zap.String("category", string(category)))
			}
			listed[i] = items
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, category := range c.categories {
		for _, err := range inspect(category, listed[i]) {
			find(err)
		}
		for _, item := range listed[i] {
			report.Items++
			if router.Resolve(item.URL).Route.Kind != router.KindDetail {
				continue
			}
			g.Go(func() error {
				find(c.lookup(ctx, category, item))
				return nil
			})
		}
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report.Findings = compact(report.Findings)
	sort.Slice(report.Findings, func(i, j int) bool {
		return report.Findings[i].Error() < report.Findings[j].Error()
	})
	c.l.Info("check done",
		zap.Int("categories", report.Categories),
		zap.Int("items", report.Items),
		zap.Int("findings", len(report.Findings)),
	)
	return report, nil
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (c *Checker) lookup(ctx context.Context, category content.Category, item *content.Item) error {
	found, err := c.fetcher.FetchByURL(ctx, item.URL)
	switch {
	case err != nil:
		return errors.Wrapf(err, "item %q", item.URL)
	case found == nil:
		return fmt.Errorf("item %q: listed in %q but not found by url", item.URL, category)
	case found.ID != item.ID || found.Name != item.Name:
		return fmt.Errorf("item %q: lookup returned %q (id %d) instead of %q (id %d)", item.URL, found.Name, found.ID, item.Name, item.ID)
	}
	return nil
}

// inspect static findings of one category listing
func inspect(category content.Category, items []*content.Item) []error {
	var (
		errs []error
		ids  = map[int]string{}
	)
	for _, item := range items {
		if item.Category != "" && item.Category != string(category) {
			errs = append(errs, fmt.Errorf("item %q: listed in %q but has category %q", item.URL, category, item.Category))
		}
		if router.Resolve(item.URL).Route.Kind != router.KindDetail {
			errs = append(errs, fmt.Errorf("item %q: url is not a detail page", item.URL))
		}
		if other, ok := ids[item.ID]; ok {
			errs = append(errs, fmt.Errorf("item %q: duplicate id %d in %q, also used by %q", item.URL, item.ID, category, other))
			continue
		}
		ids[item.ID] = item.URL
	}
	return errs
}

func compact(errs []error) []error {
	ret := errs[:0]
	for _, err := range errs {
		if err != nil {
			ret = append(ret, err)
		}
	}
	return ret
}
