package view

import (
	"context"
	"sync"

	"github.com/fitzmx6/portfolio/pkg/metrics"
	"go.uber.org/zap"
)

type (
	// FetchFunc fetches the value for a dependency key
	FetchFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

	// Snapshot the committed state of a Loader
	Snapshot[K comparable, V any] struct {
		Key   K
		State State
		Value V
		Err   error
	}

	// Loader runs one fetch per dispatch and commits its result only while
	// the dispatch is still the latest one. Every dispatch bumps a generation
	// counter, a settling fetch tagged with an older generation is dropped.
	Loader[K comparable, V any] struct {
		l        *zap.Logger
		fetch    FetchFunc[K, V]
		onCommit func(Snapshot[K, V])
		mu       sync.Mutex
		gen      uint64
		closed   bool
		snapshot Snapshot[K, V]
	}
	LoaderOption[K comparable, V any] func(*Loader[K, V])
)

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func NewLoader[K comparable, V any](l *zap.Logger, fetch FetchFunc[K, V], opts ...LoaderOption[K, V]) *Loader[K, V] {
	inst := &Loader[K, V]{
		l:        l.Named("loader"),
		fetch:    fetch,
		snapshot: Snapshot[K, V]{State: StateLoading},
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

// LoaderWithOnCommit is called with every committed snapshot, including the
// loading snapshot of a new dispatch. It runs while the loader is locked and
// must not call back into the loader.
func LoaderWithOnCommit[K comparable, V any](fn func(Snapshot[K, V])) LoaderOption[K, V] {
	return func(o *Loader[K, V]) {
		o.onCommit = fn
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

// Dispatch enters the loading state for key, clears any prior result and
// starts the fetch. The returned channel is closed once this dispatch has
// settled, whether its result was committed or discarded.
func (l *Loader[K, V]) Dispatch(ctx context.Context, key K) <-chan struct{} {
	done := make(chan struct{})

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		close(done)
		return done
	}
	l.gen++
	gen := l.gen
	l.snapshot = Snapshot[K, V]{Key: key, State: StateLoading}
	l.notify(l.snapshot)
	l.mu.Unlock()

	go func() {
		defer close(done)
		value, err := l.fetch(ctx, key)
		l.commit(gen, key, value, err)
	}()

	return done
}

// Pending enters the loading state for key without fetching. A pending
// dispatch is superseded like any other.
func (l *Loader[K, V]) Pending(key K) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.gen++
	l.snapshot = Snapshot[K, V]{Key: key, State: StateLoading}
	l.notify(l.snapshot)
}

// Load dispatches a fetch for key and waits until it settled or ctx is done
func (l *Loader[K, V]) Load(ctx context.Context, key K) Snapshot[K, V] {
	done := l.Dispatch(ctx, key)
	select {
	case <-done:
	case <-ctx.Done():
	}
	return l.Snapshot()
}

// Snapshot returns the currently committed state
func (l *Loader[K, V]) Snapshot() Snapshot[K, V] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot
}

// Close discards every pending result, later dispatches are ignored
func (l *Loader[K, V]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	l.gen++
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (l *Loader[K, V]) commit(gen uint64, key K, value V, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		l.l.Debug("discarding stale load", zap.Any("key", key), zap.Uint64("generation", gen))
		metrics.StaleLoadsDiscarded.WithLabelValues().Inc()
		return
	}
	snapshot := Snapshot[K, V]{Key: key, State: StateSuccess, Value: value}
	if err != nil {
		var zero V
		snapshot.State = StateError
		snapshot.Value = zero
		snapshot.Err = err
	}
	l.snapshot = snapshot
	l.notify(snapshot)
}

func (l *Loader[K, V]) notify(snapshot Snapshot[K, V]) {
	if l.onCommit != nil {
		l.onCommit(snapshot)
	}
}
