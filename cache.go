package kotoba

import (
	"sync"
	"time"

	"github.com/eringen/kotoba/content"
)

// PostCache is an in-memory, per-locale cache over the content Loader
// with a TTL. The Loader itself always reads the filesystem fresh;
// caching is strictly this serving-layer concern, and the content
// watcher invalidates it when files change.
type PostCache struct {
	mu      sync.RWMutex
	locales map[content.Locale]cacheEntry
	ttl     time.Duration
	loader  *content.Loader
}

type cacheEntry struct {
	posts   []content.Post
	fetched time.Time
}

// NewPostCache creates a PostCache backed by the given Loader.
func NewPostCache(loader *content.Loader, ttl time.Duration) *PostCache {
	return &PostCache{
		locales: make(map[content.Locale]cacheEntry),
		ttl:     ttl,
		loader:  loader,
	}
}

// Invalidate clears every locale so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.locales = make(map[content.Locale]cacheEntry)
	c.mu.Unlock()
}

// ListPosts returns the locale's posts, date-descending, loading them
// when the cached copy is missing or stale.
func (c *PostCache) ListPosts(locale content.Locale) ([]content.Post, error) {
	c.mu.RLock()
	entry, ok := c.locales[locale]
	c.mu.RUnlock()
	if ok && time.Since(entry.fetched) < c.ttl {
		return entry.posts, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another goroutine may have refreshed while we waited for the lock.
	if entry, ok := c.locales[locale]; ok && time.Since(entry.fetched) < c.ttl {
		return entry.posts, nil
	}
	posts, err := c.loader.ListPosts(locale)
	if err != nil {
		return nil, err
	}
	c.locales[locale] = cacheEntry{posts: posts, fetched: time.Now()}
	return posts, nil
}

// GetPost returns the post with the given slug, preferring the requested
// locale and falling back to the default. Absent everywhere returns nil.
func (c *PostCache) GetPost(slug string, locale content.Locale) (*content.Post, error) {
	locales := []content.Locale{locale}
	if locale != content.DefaultLocale {
		locales = append(locales, content.DefaultLocale)
	}
	for _, loc := range locales {
		posts, err := c.ListPosts(loc)
		if err != nil {
			return nil, err
		}
		for i := range posts {
			if posts[i].Slug == slug {
				p := posts[i]
				return &p, nil
			}
		}
	}
	return nil, nil
}
