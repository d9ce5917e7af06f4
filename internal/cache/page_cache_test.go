package cache_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/inzzo/inzzo-landing/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingLoader(body string, calls *atomic.Int32) cache.PageLoader {
	return func(path string) ([]byte, error) {
		calls.Add(1)
		return []byte(body), nil
	}
}

func TestPageCache_HitAfterFirstLoad(t *testing.T) {
	var calls atomic.Int32
	pc := cache.NewPageCacheWithLoader(time.Minute, countingLoader("<html>landing</html>", &calls))

	for i := 0; i < 3; i++ {
		page, err := pc.Get("index.html")
		require.NoError(t, err)
		assert.Equal(t, "<html>landing</html>", string(page))
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestPageCache_ConcurrentMissLoadsOnce(t *testing.T) {
	var calls atomic.Int32
	pc := cache.NewPageCacheWithLoader(time.Minute, countingLoader("page", &calls))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := pc.Get("index.html")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestPageCache_ZeroTTLAlwaysLoads(t *testing.T) {
	var calls atomic.Int32
	pc := cache.NewPageCacheWithLoader(0, countingLoader("page", &calls))

	_, _ = pc.Get("index.html")
	_, _ = pc.Get("index.html")

	assert.Equal(t, int32(2), calls.Load())
}

func TestPageCache_LoadErrorNotCached(t *testing.T) {
	var calls atomic.Int32
	pc := cache.NewPageCacheWithLoader(time.Minute, func(path string) ([]byte, error) {
		calls.Add(1)
		return nil, os.ErrNotExist
	})

	_, err := pc.Get("missing.html")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = pc.Get("missing.html")
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestPageCache_InvalidateAndFilesystem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o600))

	pc := cache.NewPageCache(time.Hour)
	page, err := pc.Get(path)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(page))

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o600))
	page, err = pc.Get(path)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(page))

	pc.Invalidate()
	page, err = pc.Get(path)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(page))
}
