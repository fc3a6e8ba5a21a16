package mocat

// linearSearcher scans the pair index front to back. No preprocessing
// beyond validation; worst case Θ(n) per query.
type linearSearcher struct {
	pairs []stringPair
	stats *Stats
}

func newLinearSearcher(pairs []stringPair, stats *Stats) *linearSearcher {
	return &linearSearcher{pairs: pairs, stats: stats}
}

func (s *linearSearcher) find(key string, _ uint32) (string, bool) {
	for i := range s.pairs {
		p := &s.pairs[i]
		if s.stats != nil {
			s.stats.Comparisons++
		}
		if len(p.original) != len(key) {
			continue
		}
		if p.original == key {
			return p.translation, true
		}
	}
	return "", false
}
