package cache

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/inzzo/inzzo-landing/pkg/logger"
	"github.com/inzzo/inzzo-landing/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	pageKeyPrefix    = "page:"
	pageCacheName    = "landing_page"
	cacheCheckPeriod = time.Minute
)

// PageLoader reads a page document from its backing store
type PageLoader func(path string) ([]byte, error)

// PageCache keeps landing page documents in memory for a fixed TTL.
// A zero TTL disables caching and reads the document on every request.
type PageCache struct {
	cache  *gocache.Cache
	loader PageLoader
	ttl    time.Duration
	mu     sync.Mutex
}

// NewPageCache creates a page cache backed by the filesystem
func NewPageCache(ttl time.Duration) *PageCache {
	return NewPageCacheWithLoader(ttl, os.ReadFile)
}

// NewPageCacheWithLoader creates a page cache with a custom loader
func NewPageCacheWithLoader(ttl time.Duration, loader PageLoader) *PageCache {
	return &PageCache{
		cache:  gocache.New(ttl, cacheCheckPeriod),
		loader: loader,
		ttl:    ttl,
	}
}

// Get returns the document at path, loading it on a cache miss
func (pc *PageCache) Get(path string) ([]byte, error) {
	if pc.ttl <= 0 {
		return pc.load(path)
	}

	key := pageKeyPrefix + path
	if data, found := pc.cache.Get(key); found {
		if page, ok := data.([]byte); ok {
			metrics.CacheHits.WithLabelValues(pageCacheName).Inc()
			return page, nil
		}
		logger.Error("Invalid page cache data type", zap.String("path", path))
		pc.cache.Delete(key)
	}

	// Serialize loads so a burst of misses reads the file once
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if data, found := pc.cache.Get(key); found {
		if page, ok := data.([]byte); ok {
			metrics.CacheHits.WithLabelValues(pageCacheName).Inc()
			return page, nil
		}
	}

	metrics.CacheMisses.WithLabelValues(pageCacheName).Inc()
	page, err := pc.load(path)
	if err != nil {
		return nil, err
	}

	pc.cache.SetDefault(key, page)
	logger.Debug("Page cached", zap.String("path", path), zap.Int("bytes", len(page)), zap.Duration("ttl", pc.ttl))
	return page, nil
}

// Invalidate drops every cached page
func (pc *PageCache) Invalidate() {
	pc.cache.Flush()
}

func (pc *PageCache) load(path string) ([]byte, error) {
	page, err := pc.loader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load page %s: %w", path, err)
	}
	return page, nil
}
