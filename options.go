package mocat

import "github.com/spf13/afero"

type options struct {
	method SearchMethod
	stats  bool
	cache  bool
	fs     afero.Fs
}

// Option configures a catalog at open time.
type Option func(*options)

// WithSearchMethod selects the lookup strategy. The default is
// HashSearch.
func WithSearchMethod(m SearchMethod) Option {
	return func(o *options) { o.method = m }
}

// WithStats enables the performance counters reported by Stats.
func WithStats() Option {
	return func(o *options) { o.stats = true }
}

// WithoutCache disables the direct-mapped result cache. Results are
// unaffected; only lookup latency changes.
func WithoutCache() Option {
	return func(o *options) { o.cache = false }
}

// WithFS makes OpenFile read through fs instead of the OS filesystem.
func WithFS(fs afero.Fs) Option {
	return func(o *options) { o.fs = fs }
}

func makeOptions(opts []Option) options {
	o := options{method: HashSearch, cache: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
