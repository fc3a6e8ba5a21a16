package mocat

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// eotSeparator joins a context and a message id into one catalog key,
// per the gettext convention "context\004msgid".
const eotSeparator = 0x04

// maxKeyLen bounds the scratch buffer used to assemble context keys.
// Context queries whose key would not fit are answered with the input.
const maxKeyLen = 4096

// Catalog is one loaded MO file.
//
// A catalog owns the raw file bytes; every string it hands out is a view
// into that buffer and must not be retained past Close. The pair index
// and the search structures are read-only after Open, so any number of
// catalogs can be used concurrently — but a single catalog is
// single-writer: the result cache, the statistics counters and the
// scratch buffer for context keys are plain fields. With the cache and
// statistics disabled (WithoutCache, no WithStats), Translate, TranslateN
// and TranslatePlural may share one catalog between goroutines;
// TranslateContext and TranslateContextPlural still write the scratch
// buffer and are not safe for concurrent use on one catalog.
type Catalog struct {
	data    []byte
	pairs   []stringPair
	search  searcher
	method  SearchMethod
	cache   *resultCache
	stats   *Stats
	scratch [maxKeyLen]byte // context key assembly, see contextKey
}

// OpenFile reads the MO file at path and builds a catalog from it. The
// whole file is read up front; queries never touch the filesystem.
func OpenFile(path string, opts ...Option) (*Catalog, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidArgs)
	}
	o := makeOptions(opts)
	if o.fs == nil {
		o.fs = afero.NewOsFs()
	}
	data, err := afero.ReadFile(o.fs, path)
	if err != nil {
		var pathErr *os.PathError
		if errors.Is(err, os.ErrNotExist) || (errors.As(err, &pathErr) && pathErr.Op == "open") {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrIO, path, err)
	}
	return newCatalog(data, o)
}

// OpenBytes builds a catalog from an in-memory MO image. The input is
// copied; the caller keeps ownership of data.
func OpenBytes(data []byte, opts ...Option) (*Catalog, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: nil data", ErrInvalidArgs)
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return newCatalog(buf, makeOptions(opts))
}

// newCatalog takes ownership of data and derives all tables from it.
// Nothing is retained on error.
func newCatalog(data []byte, o options) (*Catalog, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is smaller than the %d byte header",
			ErrInvalidFormat, len(data), headerSize)
	}
	hdr, order, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	pairs, err := buildPairs(data, hdr, order)
	if err != nil {
		return nil, err
	}
	cat := &Catalog{
		data:   data,
		pairs:  pairs,
		method: o.method,
	}
	if o.stats {
		cat.stats = &Stats{}
	}
	switch o.method {
	case LinearSearch:
		cat.search = newLinearSearcher(pairs, cat.stats)
	case BinarySearch:
		cat.search = newBinarySearcher(pairs, cat.stats)
	case HashSearch:
		cat.search = newHashSearcher(pairs, cat.stats)
	default:
		return nil, fmt.Errorf("%w: unknown search method %d", ErrInvalidArgs, o.method)
	}
	if o.cache {
		cat.cache = newResultCache(o.method == HashSearch)
	}
	tracer().Infof("catalog loaded: %d strings, method=%s, revision=%d",
		hdr.numStrings, cat.method, hdr.revision)
	return cat, nil
}

// Close releases the buffer and all derived tables. It is idempotent and
// safe on a nil catalog. Queries on a closed catalog return their input.
func (c *Catalog) Close() {
	if c == nil || c.data == nil {
		return
	}
	if c.stats != nil {
		tracer().Debugf("closing catalog: lookups=%d, hits=%d, misses=%d, collisions=%d, comparisons=%d",
			c.stats.TotalLookups, c.stats.CacheHits, c.stats.CacheMisses,
			c.stats.HashCollisions, c.stats.Comparisons)
	}
	c.data = nil
	c.pairs = nil
	c.search = nil
	c.cache = nil
}

// StringCount returns the number of string pairs in the catalog.
func (c *Catalog) StringCount() uint32 {
	if c == nil {
		return 0
	}
	return uint32(len(c.pairs))
}

// SearchMethod names the active lookup strategy: "LINEAR", "BINARY" or
// "HASH".
func (c *Catalog) SearchMethod() string {
	if c == nil {
		return "INVALID"
	}
	return c.method.String()
}

// Translate returns the translation of s, or s itself when the catalog
// has none.
func (c *Catalog) Translate(s string) string {
	result, _ := c.lookupKey(s, true)
	return result
}

// TranslateN looks up the first n bytes of s. On a miss the whole of s
// is returned. n larger than len(s) is clamped.
func (c *Catalog) TranslateN(s string, n int) string {
	if n < 0 {
		return s
	}
	if n > len(s) {
		n = len(s)
	}
	result, found := c.lookupKey(s[:n], true)
	if !found {
		return s
	}
	return result
}

// TranslateContext looks up singular under the given message context,
// falling back to the bare singular when the context-qualified key has
// no translation.
func (c *Catalog) TranslateContext(ctx, singular string) string {
	return c.translateCP(ctx, true, singular, "", false, 1)
}

// TranslatePlural selects between singular and plural with the
// simplified rule n != 1 and returns the translation of the selected
// form, or the form itself on a miss.
func (c *Catalog) TranslatePlural(singular, plural string, n uint64) string {
	return c.translateCP("", false, singular, plural, true, n)
}

// TranslateContextPlural combines context qualification and plural
// selection.
func (c *Catalog) TranslateContextPlural(ctx, singular, plural string, n uint64) string {
	return c.translateCP(ctx, true, singular, plural, true, n)
}

// translateCP is the context/plural core. With a context it first tries
// "ctx\004msgid" and falls back to the bare msgid; with a plural and
// n != 1 it repeats the dance for the plural form and returns that
// result instead.
func (c *Catalog) translateCP(ctx string, hasCtx bool, singular, plural string, hasPlural bool, n uint64) string {
	if c == nil || c.search == nil {
		return singular
	}
	result := singular
	if hasCtx {
		key, ok := c.contextKey(ctx, singular)
		if !ok {
			return singular
		}
		if r, found := c.lookupKey(key, false); found {
			result = r
		} else {
			result = c.Translate(singular)
		}
	} else {
		if len(singular) >= maxKeyLen {
			return singular
		}
		result = c.Translate(singular)
	}
	if hasPlural && n != 1 {
		pluralResult := ""
		found := false
		if hasCtx {
			if key, ok := c.contextKey(ctx, plural); ok {
				pluralResult, found = c.lookupKey(key, false)
			}
		}
		if !found {
			pluralResult = c.Translate(plural)
		}
		result = pluralResult
	}
	return result
}

// contextKey assembles "ctx\004msg" in the catalog's scratch buffer and
// returns a view of it. ok is false when the key (plus a NUL) would not
// fit. The view aliases the scratch buffer, so context lookups bypass
// the pointer-keyed cache — the buffer address recurs across calls with
// different contents.
func (c *Catalog) contextKey(ctx, msg string) (key string, ok bool) {
	n := len(ctx) + 1 + len(msg)
	if n >= maxKeyLen {
		return "", false
	}
	buf := append(c.scratch[:0], ctx...)
	buf = append(buf, eotSeparator)
	buf = append(buf, msg...)
	assert(len(buf) == n, "context key length mismatch")
	return bufView(buf, 0, uint32(n)), true
}

// lookupKey is the primitive behind every query: consult the cache (for
// cacheable keys), else the active strategy. found is false when the
// catalog has no translation, in which case the key itself is returned.
func (c *Catalog) lookupKey(key string, cacheable bool) (string, bool) {
	if c == nil || c.search == nil {
		return key, false
	}
	if c.stats != nil {
		c.stats.TotalLookups++
	}
	var hash uint32
	if c.method == HashSearch {
		// Computed once per query, hit or miss.
		hash = djb2(key)
	}
	ptr := stringKey(key)
	cacheable = cacheable && c.cache != nil && ptr != 0
	if cacheable {
		if translation, ok := c.cache.lookup(ptr, hash); ok {
			if c.stats != nil {
				c.stats.CacheHits++
			}
			return translation, true
		}
		if c.stats != nil {
			c.stats.CacheMisses++
		}
	}
	translation, ok := c.search.find(key, hash)
	if !ok {
		return key, false
	}
	if cacheable {
		c.cache.store(ptr, hash, translation)
	}
	return translation, true
}
