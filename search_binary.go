package mocat

import "sort"

// binarySearcher bisects a private copy of the pair index, sorted
// strictly ascending by (length, bytes). Well-formed catalogs carry no
// duplicate originals, so ties beyond byte equality do not occur.
type binarySearcher struct {
	pairs []stringPair
	stats *Stats
}

func newBinarySearcher(pairs []stringPair, stats *Stats) *binarySearcher {
	sorted := make([]stringPair, len(pairs))
	copy(sorted, pairs)
	sort.Slice(sorted, func(i, j int) bool {
		return comparePair(sorted[i].original, sorted[j].original) < 0
	})
	tracer().Debugf("sorted %d string pairs for binary search", len(sorted))
	return &binarySearcher{pairs: sorted, stats: stats}
}

func (s *binarySearcher) find(key string, _ uint32) (string, bool) {
	left, right := 0, len(s.pairs)-1
	for left <= right {
		mid := left + (right-left)/2
		p := &s.pairs[mid]
		if s.stats != nil {
			s.stats.Comparisons++
		}
		switch cmp := comparePair(p.original, key); {
		case cmp == 0:
			return p.translation, true
		case cmp < 0:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
	return "", false
}
