package content

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"
)

// Provider owns the lifecycle of a Catalog: it is built on first use,
// shared by every caller afterwards and replaced only by Reload.
//
// Concurrent first callers share a single load and never observe a partially
// built catalog.
type Provider struct {
	store   Store
	mode    Mode
	logger  *slog.Logger
	metrics *loadMetrics

	group    singleflight.Group
	current  atomic.Pointer[Catalog]
	loadedAt atomic.Int64 // unix nanos of the last successful load
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l *slog.Logger) ProviderOption {
	return func(p *Provider) {
		p.logger = l
	}
}

// WithRegisterer exports load metrics to reg.
func WithRegisterer(reg prometheus.Registerer) ProviderOption {
	return func(p *Provider) {
		p.metrics = newLoadMetrics(reg)
	}
}

// NewProvider creates a Provider over store. Nothing is read until the first
// call to Catalog or Reload.
func NewProvider(store Store, mode Mode, opts ...ProviderOption) *Provider {
	p := &Provider{
		store:  store,
		mode:   mode,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Mode returns the draft visibility of the catalogs this provider builds.
func (p *Provider) Mode() Mode {
	return p.mode
}

// Catalog returns the current catalog, loading it if this is the first call
// or every previous attempt failed. If ctx ends first its error is returned;
// the load itself keeps running and is memoized for the next caller.
func (p *Provider) Catalog(ctx context.Context) (*Catalog, error) {
	if c := p.current.Load(); c != nil {
		return c, nil
	}
	return p.do(ctx, "load", false)
}

// Reload rebuilds the catalog from the store and swaps it in. On failure the
// previous catalog stays in service and the error is returned.
func (p *Provider) Reload(ctx context.Context) (*Catalog, error) {
	return p.do(ctx, "reload", true)
}

// Loaded returns the current catalog without triggering a load.
func (p *Provider) Loaded() (*Catalog, bool) {
	c := p.current.Load()
	return c, c != nil
}

// LoadedAt returns when the current catalog was built.
func (p *Provider) LoadedAt() time.Time {
	ns := p.loadedAt.Load()
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}

func (p *Provider) do(ctx context.Context, key string, force bool) (*Catalog, error) {
	ch := p.group.DoChan(key, func() (any, error) {
		if !force {
			if c := p.current.Load(); c != nil {
				return c, nil
			}
		}
		return p.load()
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Catalog), nil
	}
}

func (p *Provider) load() (*Catalog, error) {
	start := time.Now()
	c, err := Load(p.store, p.mode, WithLoadLogger(p.logger))
	p.metrics.observe(c, time.Since(start).Seconds(), err)
	if err != nil {
		p.logger.Error("catalog load failed", "component", "catalog", "error", err)
		return nil, err
	}
	p.current.Store(c)
	p.loadedAt.Store(time.Now().UnixNano())
	return c, nil
}
