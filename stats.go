package mocat

// Stats collects per-catalog performance counters. Counters only
// increase; they are plain fields, so a catalog with stats enabled is
// single-writer (see the concurrency note on Catalog).
type Stats struct {
	TotalLookups   uint64 // queries answered, cached or not
	CacheHits      uint64
	CacheMisses    uint64
	HashCollisions uint64 // occupied non-matching probe slots (HASH only)
	Comparisons    uint64 // pairs examined (LINEAR and BINARY only)
}

// Stats returns a snapshot of the counters. ok is false when the catalog
// was opened without WithStats.
func (c *Catalog) Stats() (stats Stats, ok bool) {
	if c == nil || c.stats == nil {
		return Stats{}, false
	}
	return *c.stats, true
}
