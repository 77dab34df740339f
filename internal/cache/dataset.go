package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"
)

// LoadFunc fetches a fresh copy of a dataset.
type LoadFunc[T any] func(ctx context.Context) (T, error)

// Dataset caches the result of an expensive upstream fetch under one key.
// Concurrent misses share a single load; failed loads are never cached.
type Dataset[T any] struct {
	key    string
	ttl    time.Duration
	store  Store
	load   LoadFunc[T]
	group  singleflight.Group
	logger *slog.Logger
}

func NewDataset[T any](key string, ttl time.Duration, store Store, load LoadFunc[T], logger *slog.Logger) *Dataset[T] {
	return &Dataset[T]{
		key:    key,
		ttl:    ttl,
		store:  store,
		load:   load,
		logger: logger.With("component", "dataset-cache", "key", key),
	}
}

// Get returns the cached dataset, loading it when missing or expired.
func (d *Dataset[T]) Get(ctx context.Context) (T, error) {
	var zero T

	if v, ok := d.cached(ctx); ok {
		return v, nil
	}

	// The load is shared, so it must not die with the first caller's context
	ch := d.group.DoChan(d.key, func() (any, error) {
		return d.refresh(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

func (d *Dataset[T]) cached(ctx context.Context) (T, bool) {
	var zero T

	b, ok, err := d.store.Get(ctx, d.key)
	if err != nil {
		d.logger.Warn("cache read failed, loading from upstream", "error", err)
		return zero, false
	}
	if !ok {
		return zero, false
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		d.logger.Warn("discarding undecodable cache entry", "error", err)
		return zero, false
	}
	return v, true
}

func (d *Dataset[T]) refresh(ctx context.Context) (T, error) {
	var zero T

	d.logger.Debug("loading dataset")
	v, err := d.load(ctx)
	if err != nil {
		return zero, fmt.Errorf("failed to load %s: %w", d.key, err)
	}

	b, err := json.Marshal(v)
	if err != nil {
		d.logger.Warn("dataset not cached, encode failed", "error", err)
		return v, nil
	}
	if err := d.store.Set(ctx, d.key, b, d.ttl); err != nil {
		d.logger.Warn("dataset not cached, write failed", "error", err)
	}

	d.logger.Debug("dataset cached", "ttl", d.ttl, "bytes", len(b))
	return v, nil
}
