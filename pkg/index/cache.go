package index

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

type cachedResult struct {
	offset int
	found  bool
}

// queryCache remembers recent Find results. Entries are stored both in a
// map for O(1) hits and in a patricia trie so related patterns can be
// listed by prefix. Evicts least-recently-used when full.
type queryCache struct {
	results     map[string]cachedResult
	trie        *patricia.Trie
	accessTime  map[string]int64
	accessCount int64
	hits        int64
	maxEntries  int
	mu          sync.RWMutex
}

func newQueryCache(maxEntries int) *queryCache {
	return &queryCache{
		results:    make(map[string]cachedResult, maxEntries),
		trie:       patricia.NewTrie(),
		accessTime: make(map[string]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

func (qc *queryCache) get(pattern string) (cachedResult, bool) {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	r, ok := qc.results[pattern]
	if !ok {
		return cachedResult{}, false
	}
	qc.hits++
	qc.markAccessed(pattern)
	return r, true
}

func (qc *queryCache) put(pattern string, r cachedResult) {
	// The empty pattern is answered without touching the tree; caching it
	// would only add a degenerate trie key.
	if pattern == "" {
		return
	}

	qc.mu.Lock()
	defer qc.mu.Unlock()

	if _, exists := qc.results[pattern]; !exists {
		if len(qc.results) >= qc.maxEntries {
			qc.evictLRU()
		}
		qc.trie.Insert(patricia.Prefix(pattern), r.found)
	}
	qc.results[pattern] = r
	qc.markAccessed(pattern)
}

// patternsUnder lists cached patterns extending prefix, most useful for
// inspecting what a client has been asking for.
func (qc *queryCache) patternsUnder(prefix string) []string {
	qc.mu.RLock()
	defer qc.mu.RUnlock()

	var patterns []string
	err := qc.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		patterns = append(patterns, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting cache trie subtree: %v", err)
	}
	return patterns
}

func (qc *queryCache) stats() map[string]int {
	qc.mu.RLock()
	defer qc.mu.RUnlock()

	return map[string]int{
		"cachedQueries": len(qc.results),
		"maxCached":     qc.maxEntries,
		"cacheHits":     int(qc.hits),
	}
}

func (qc *queryCache) markAccessed(pattern string) {
	qc.accessCount++
	qc.accessTime[pattern] = qc.accessCount
}

func (qc *queryCache) evictLRU() {
	var oldestPattern string
	oldestTime := int64(1<<63 - 1)

	for pattern, accessTime := range qc.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestPattern = pattern
		}
	}

	if oldestPattern != "" {
		delete(qc.results, oldestPattern)
		delete(qc.accessTime, oldestPattern)
		qc.trie.Delete(patricia.Prefix(oldestPattern))
		log.Debugf("Evicted pattern %q from query cache", oldestPattern)
	}
}
