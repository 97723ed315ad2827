// Package index wraps the suffix tree into a build-once, query-many text
// index with an optional cache for repeated patterns.
package index

import (
	"github.com/charmbracelet/log"

	"github.com/bastiangx/suffixserve/pkg/stree"
)

// Index owns a text and its suffix tree. The tree is immutable after New;
// the query cache is the only mutable state and is lock-guarded, so an
// Index may be queried from multiple goroutines.
type Index struct {
	text  string
	tree  *stree.Tree
	cache *queryCache // nil when caching is disabled
}

// New builds an index over text with caching disabled.
func New(text string) (*Index, error) {
	tree, err := stree.New(text)
	if err != nil {
		return nil, err
	}
	log.Debugf("Indexed %d bytes into %d nodes", len(text), tree.NodeCount())
	return &Index{text: text, tree: tree}, nil
}

// NewWithCache builds an index that remembers up to cacheSize recent Find
// results.
func NewWithCache(text string, cacheSize int) (*Index, error) {
	ix, err := New(text)
	if err != nil {
		return nil, err
	}
	if cacheSize > 0 {
		ix.cache = newQueryCache(cacheSize)
	}
	return ix, nil
}

// Text returns the indexed text.
func (ix *Index) Text() string { return ix.text }

// Find reports an occurrence offset of pattern in the text, consulting the
// cache first when one is configured. The empty pattern matches at offset
// zero by the tree's convention.
func (ix *Index) Find(pattern string) (int, bool) {
	if ix.cache != nil {
		if r, ok := ix.cache.get(pattern); ok {
			return r.offset, r.found
		}
	}
	off, found := ix.tree.Find(pattern)
	if ix.cache != nil {
		ix.cache.put(pattern, cachedResult{offset: off, found: found})
	}
	return off, found
}

// LongestRepeat returns the longest substring occurring at least twice.
func (ix *Index) LongestRepeat() string {
	return ix.tree.LongestRepeat()
}

// LongestRepeatingSubstring returns the historical repeat answer; see the
// stree method for the compatibility quirks it keeps.
func (ix *Index) LongestRepeatingSubstring() string {
	return ix.tree.LongestRepeatingSubstring()
}

// CachedPatterns lists cached patterns that extend prefix. Nil when
// caching is disabled.
func (ix *Index) CachedPatterns(prefix string) []string {
	if ix.cache == nil {
		return nil
	}
	return ix.cache.patternsUnder(prefix)
}

// Stats returns counters describing the index and its cache.
func (ix *Index) Stats() map[string]int {
	stats := map[string]int{
		"textLength": len(ix.text),
		"treeNodes":  ix.tree.NodeCount(),
	}
	if ix.cache != nil {
		for k, v := range ix.cache.stats() {
			stats[k] = v
		}
	}
	return stats
}
