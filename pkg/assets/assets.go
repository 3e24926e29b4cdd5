// Package assets serves the static files of the site (images, videos,
// stylesheets and scripts) from a blob bucket.
package assets

import (
	"context"
	"net/http"
	"path"
	"strings"

	"github.com/fitzmx6/portfolio/pkg/metrics"
	httputils "github.com/foomo/keel/utils/net/http"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"

	// Import GCS driver for production use
	_ "gocloud.dev/blob/gcsblob"
)

// Prefixes request path prefixes served from the bucket
var Prefixes = []string{"/images/", "/video/", "/css/", "/js/"}

type (
	// Store serves request paths as keys of a blob bucket
	Store struct {
		l      *zap.Logger
		bucket *blob.Bucket
		prefix string
	}
	StoreOption func(*Store)
)

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

// Open opens the bucket at location. location is either a bucket url such as
// "gs://bucket-name" or a local directory.
func Open(ctx context.Context, l *zap.Logger, location string, opts ...StoreOption) (*Store, error) {
	var (
		bucket *blob.Bucket
		err    error
	)
	if strings.Contains(location, "://") {
		bucket, err = blob.OpenBucket(ctx, location)
	} else {
		bucket, err = fileblob.OpenBucket(location, nil)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open assets %q", location)
	}
	return New(l, bucket, opts...), nil
}

// New creates a store from an existing bucket
func New(l *zap.Logger, bucket *blob.Bucket, opts ...StoreOption) *Store {
	inst := &Store{
		l:      l.Named("assets"),
		bucket: bucket,
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

// WithPrefix key prefix of all assets in the bucket
func WithPrefix(v string) StoreOption {
	return func(o *Store) {
		// Normalize prefix: ensure trailing slash if non-empty
		if v != "" && !strings.HasSuffix(v, "/") {
			v += "/"
		}
		o.prefix = v
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

// Match is p an asset path
func Match(p string) bool {
	for _, prefix := range Prefixes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

func (s *Store) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		metrics.AssetRequestCounter.WithLabelValues("error").Inc()
		httputils.ServerError(s.l, w, r, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	key, ok := s.key(r.URL.Path)
	if !ok {
		metrics.AssetRequestCounter.WithLabelValues("not_found").Inc()
		http.NotFound(w, r)
		return
	}

	reader, err := s.bucket.NewReader(r.Context(), key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			metrics.AssetRequestCounter.WithLabelValues("not_found").Inc()
			http.NotFound(w, r)
			return
		}
		metrics.AssetRequestCounter.WithLabelValues("error").Inc()
		httputils.ServerError(s.l, w, r, http.StatusInternalServerError, errors.Wrapf(err, "failed to read asset %q", key))
		return
	}
	defer func() {
		if err := reader.Close(); err != nil {
			s.l.Warn("failed to close asset reader", zap.String("key", key), zap.Error(err))
		}
	}()

	metrics.AssetRequestCounter.WithLabelValues("success").Inc()
	if contentType := reader.ContentType(); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	http.ServeContent(w, r, path.Base(key), reader.ModTime(), reader)
}

// Healthz fails while the bucket is not accessible
func (s *Store) Healthz(ctx context.Context) error {
	ok, err := s.bucket.IsAccessible(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to access assets")
	}
	if !ok {
		return errors.New("assets not accessible")
	}
	return nil
}

func (s *Store) Close() error {
	return s.bucket.Close()
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

// key maps a request path onto a bucket key, paths escaping the asset
// prefixes are rejected
func (s *Store) key(p string) (string, bool) {
	clean := path.Clean(p)
	if !Match(clean) {
		return "", false
	}
	return s.prefix + strings.TrimPrefix(clean, "/"), true
}
