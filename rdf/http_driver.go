package rdf

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/pquerna/cachecontrol"
)

// httpCacheEntry holds a previously fetched document body and the time
// after which it must be revalidated, as decided by cachecontrol's
// reading of the response's Cache-Control/Expires headers.
type httpCacheEntry struct {
	body    []byte
	expires time.Time
}

var (
	httpCacheMu sync.Mutex
	httpCache   = map[string]httpCacheEntry{}
)

// fetchDocument retrieves the bytes at url over HTTP, consulting and
// populating an in-memory cache keyed by URL and governed by the
// response's HTTP caching headers. A cache hit that hasn't expired
// skips the network entirely.
func fetchDocument(ctx context.Context, url string) ([]byte, error) {
	httpCacheMu.Lock()
	if entry, ok := httpCache[url]; ok && time.Now().Before(entry.expires) {
		httpCacheMu.Unlock()
		return entry.body, nil
	}
	httpCacheMu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/turtle, application/x-turtle;q=0.9, */*;q=0.1")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("rdf: fetching %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	reasons, expires, err := cachecontrol.CachableResponse(req, resp, cachecontrol.Options{})
	if err == nil && len(reasons) == 0 && expires.After(time.Now()) {
		httpCacheMu.Lock()
		httpCache[url] = httpCacheEntry{body: body, expires: expires}
		httpCacheMu.Unlock()
	}

	return body, nil
}
