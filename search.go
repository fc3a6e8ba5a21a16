package mocat

// SearchMethod selects the lookup strategy a catalog is built with.
type SearchMethod uint8

const (
	// LinearSearch scans the pair index front to back.
	LinearSearch SearchMethod = iota
	// BinarySearch bisects a pair index sorted by length, then bytes.
	BinarySearch
	// HashSearch probes a djb2-keyed open-addressing table.
	HashSearch
)

func (m SearchMethod) String() string {
	switch m {
	case LinearSearch:
		return "LINEAR"
	case BinarySearch:
		return "BINARY"
	case HashSearch:
		return "HASH"
	}
	return "UNKNOWN"
}

// searcher is the internal backend abstraction shared by the three
// lookup strategies. hash is the precomputed djb2 of key; only the hash
// backend consults it.
type searcher interface {
	find(key string, hash uint32) (translation string, ok bool)
}

// djb2 hashes s with initial value 5381 and multiplier 33, wrapping at
// 32 bits.
func djb2(s string) uint32 {
	h := uint32(5381)
	for i := 0; i < len(s); i++ {
		h = h*33 + uint32(s[i])
	}
	return h
}
