package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/cubetex/pkg/cache"
	"github.com/matzehuels/cubetex/pkg/core/render/cube"
	specio "github.com/matzehuels/cubetex/pkg/io"
	"github.com/matzehuels/cubetex/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is the lifetime of stored artifacts.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLArtifact,
	}
}

// Render runs the compose → render pipeline for spec with caching.
func (r *Runner) Render(ctx context.Context, spec *specio.Spec, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	specData, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("serialize spec for cache key: %w", err)
	}

	// Build before the cache lookup so kind and shape are known on a hit.
	effective := opts.Apply(spec)
	l, cells, err := compose(ctx, effective)
	if err != nil {
		return nil, err
	}
	result := &Result{
		Spec:     effective,
		SpecHash: cache.Hash(specData),
		Kind:     l.Kind,
		Shape:    l.Shape,
	}
	result.Stats.Cells = cells

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, hit := r.lookup(ctx, result.SpecHash, opts)
	if !hit {
		artifacts, err = r.encodeAndStore(ctx, result.SpecHash, l, opts)
	}
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = hit
	result.Stats.RenderTime = time.Since(start)

	opts.Logger.Info("rendered outputs",
		"kind", result.Kind,
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// specHash identifies the input spec; spec must already carry the option
// overrides.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, specHash string, spec *specio.Spec, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	if artifacts, hit := r.lookup(ctx, specHash, opts); hit {
		return artifacts, true, nil
	}
	l, _, err := compose(ctx, spec)
	if err != nil {
		return nil, false, err
	}
	artifacts, err := r.encodeAndStore(ctx, specHash, l, opts)
	return artifacts, false, err
}

// lookup returns the cached artifacts when every requested format is stored.
func (r *Runner) lookup(ctx context.Context, specHash string, opts Options) (map[string][]byte, bool) {
	if opts.Refresh {
		return nil, false
	}
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(specHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache lookup failed", "err", err)
		}
		if !hit {
			observability.Cache().OnCacheMiss(ctx, "artifact")
			return nil, false
		}
		observability.Cache().OnCacheHit(ctx, "artifact")
		artifacts[format] = data
	}
	return artifacts, true
}

// encodeAndStore writes l in every requested format and caches each result.
func (r *Runner) encodeAndStore(ctx context.Context, specHash string, l cube.Layout, opts Options) (map[string][]byte, error) {
	rendered, err := Encode(l, opts.Formats)
	if err != nil {
		return nil, err
	}
	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(specHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, r.ttl()); err != nil {
			r.Logger.Warn("cache store failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return rendered, nil
}

// Job is one entry of a batch render.
type Job struct {
	Name    string // used in errors and logs, typically the spec path
	Spec    *specio.Spec
	Options Options

	// OnDone, if set, is called after the job rendered successfully. It may
	// run concurrently with other jobs' callbacks.
	OnDone func(*Result)
}

// RenderBatch renders jobs concurrently, at most [DefaultConcurrency] at a
// time. Results are returned in job order. The first failure cancels the
// remaining jobs and is returned annotated with the job name.
func (r *Runner) RenderBatch(ctx context.Context, jobs []Job) ([]*Result, error) {
	results := make([]*Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultConcurrency)
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.Render(ctx, job.Spec, job.Options)
			if err != nil {
				return fmt.Errorf("%s: %w", job.Name, err)
			}
			results[i] = res
			if job.OnDone != nil {
				job.OnDone(res)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) ttl() time.Duration {
	if r.TTL <= 0 {
		return cache.TTLArtifact
	}
	return r.TTL
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
