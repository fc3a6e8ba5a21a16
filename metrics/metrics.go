// Package metrics exposes a catalog's statistics counters as Prometheus
// metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tkoenig/mocat"
)

var (
	lookupsDesc = prometheus.NewDesc(
		"mocat_lookups_total",
		"Total number of translation lookups",
		[]string{"method"}, nil,
	)
	cacheHitsDesc = prometheus.NewDesc(
		"mocat_cache_hits_total",
		"Lookups answered from the result cache",
		[]string{"method"}, nil,
	)
	cacheMissesDesc = prometheus.NewDesc(
		"mocat_cache_misses_total",
		"Lookups that fell through the result cache",
		[]string{"method"}, nil,
	)
	collisionsDesc = prometheus.NewDesc(
		"mocat_hash_collisions_total",
		"Occupied non-matching slots probed during hash lookups",
		[]string{"method"}, nil,
	)
	comparisonsDesc = prometheus.NewDesc(
		"mocat_comparisons_total",
		"String pairs examined during linear and binary lookups",
		[]string{"method"}, nil,
	)
)

// CatalogCollector reads a catalog's counters on every scrape. The
// catalog must have been opened with mocat.WithStats; otherwise Collect
// emits nothing.
type CatalogCollector struct {
	cat *mocat.Catalog
}

var _ prometheus.Collector = (*CatalogCollector)(nil)

// NewCatalogCollector wraps cat for registration with a Prometheus
// registry.
func NewCatalogCollector(cat *mocat.Catalog) *CatalogCollector {
	return &CatalogCollector{cat: cat}
}

// Describe implements prometheus.Collector.
func (c *CatalogCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- lookupsDesc
	ch <- cacheHitsDesc
	ch <- cacheMissesDesc
	ch <- collisionsDesc
	ch <- comparisonsDesc
}

// Collect implements prometheus.Collector.
func (c *CatalogCollector) Collect(ch chan<- prometheus.Metric) {
	stats, ok := c.cat.Stats()
	if !ok {
		return
	}
	method := c.cat.SearchMethod()
	counter := func(desc *prometheus.Desc, v uint64) prometheus.Metric {
		return prometheus.MustNewConstMetric(desc, prometheus.CounterValue, float64(v), method)
	}
	ch <- counter(lookupsDesc, stats.TotalLookups)
	ch <- counter(cacheHitsDesc, stats.CacheHits)
	ch <- counter(cacheMissesDesc, stats.CacheMisses)
	ch <- counter(collisionsDesc, stats.HashCollisions)
	ch <- counter(comparisonsDesc, stats.Comparisons)
}
