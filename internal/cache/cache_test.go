package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMemoryStore_Expiry(t *testing.T) {
	now := time.Date(2021, 9, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "cities", []byte(`[1]`), time.Hour))
	require.NoError(t, s.Set(ctx, "codes", []byte(`[2]`), 0))

	v, ok, err := s.Get(ctx, "cities")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[1]`), v)

	now = now.Add(time.Hour)

	_, ok, err = s.Get(ctx, "cities")
	require.NoError(t, err)
	assert.False(t, ok, "entry should expire once ttl has elapsed")

	v, ok, err = s.Get(ctx, "codes")
	require.NoError(t, err)
	assert.True(t, ok, "zero ttl never expires")
	assert.Equal(t, []byte(`[2]`), v)

	_, ok, err = s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

type city struct {
	Name       string `json:"name"`
	ActiveSick int    `json:"activeSick"`
}

func TestDataset_LoadsOnceAndCaches(t *testing.T) {
	var calls atomic.Int32
	load := func(ctx context.Context) ([]city, error) {
		calls.Add(1)
		return []city{{Name: "חיפה", ActiveSick: 12}}, nil
	}

	ds := NewDataset("cities", time.Hour, NewMemoryStore(), load, discardLogger())

	for i := 0; i < 3; i++ {
		got, err := ds.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []city{{Name: "חיפה", ActiveSick: 12}}, got)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestDataset_ReloadsAfterExpiry(t *testing.T) {
	now := time.Date(2021, 9, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	var calls atomic.Int32
	load := func(ctx context.Context) (int, error) {
		return int(calls.Add(1)), nil
	}
	ds := NewDataset("counter", 4*time.Hour, store, load, discardLogger())

	first, err := ds.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	now = now.Add(3 * time.Hour)
	again, err := ds.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, again)

	now = now.Add(2 * time.Hour)
	refreshed, err := ds.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, refreshed)
}

func TestDataset_ErrorsAreNotCached(t *testing.T) {
	var calls atomic.Int32
	load := func(ctx context.Context) (string, error) {
		if calls.Add(1) == 1 {
			return "", errors.New("upstream down")
		}
		return "ok", nil
	}
	ds := NewDataset("flaky", time.Hour, NewMemoryStore(), load, discardLogger())

	_, err := ds.Get(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load flaky")
	assert.Contains(t, err.Error(), "upstream down")

	got, err := ds.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, int32(2), calls.Load())
}

func TestDataset_ConcurrentMissesShareOneLoad(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	load := func(ctx context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "loaded", nil
	}
	ds := NewDataset("shared", time.Hour, NewMemoryStore(), load, discardLogger())

	const callers = 8
	var wg sync.WaitGroup
	results := make([]string, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = ds.Get(context.Background())
		}(i)
	}

	// Give the callers a moment to pile up behind the first load
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "loaded", results[i])
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestDataset_CallerCancellation(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	load := func(ctx context.Context) (string, error) {
		<-release
		return "late", nil
	}
	ds := NewDataset("slow", time.Hour, NewMemoryStore(), load, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ds.Get(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}

func TestDataset_StoreFailureFallsBackToLoader(t *testing.T) {
	ds := NewDataset("general", time.Hour, failingStore{}, func(ctx context.Context) (string, error) {
		return "fresh", nil
	}, discardLogger())

	got, err := ds.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", got)
}
