package mocat

import "unsafe"

const cacheSlots = 64 // direct-mapped; slot = key & 63

// cacheSlot memoizes the last translation seen for its bucket. A slot is
// overwritten on every successful lookup that maps to it; queries without
// a translation never touch the cache.
type cacheSlot struct {
	key         uintptr // backing-array identity of the query string
	hash        uint32  // query hash, checked in hash mode only
	translation string
}

// resultCache is the fixed 64-slot memo shared by all strategies. In
// LINEAR and BINARY mode a hit requires pointer identity of the query —
// the common pattern is translating the same string literal repeatedly,
// which makes hits O(1) with no hash work. In HASH mode the slot is
// picked by the query hash and a hit requires pointer and hash to match.
type resultCache struct {
	slots  [cacheSlots]cacheSlot
	hashed bool
}

func newResultCache(hashed bool) *resultCache {
	return &resultCache{hashed: hashed}
}

func (rc *resultCache) index(key uintptr, hash uint32) uint32 {
	if rc.hashed {
		return hash & (cacheSlots - 1)
	}
	return uint32(key) & (cacheSlots - 1)
}

func (rc *resultCache) lookup(key uintptr, hash uint32) (string, bool) {
	slot := &rc.slots[rc.index(key, hash)]
	if slot.key != key {
		return "", false
	}
	if rc.hashed && slot.hash != hash {
		return "", false
	}
	return slot.translation, true
}

func (rc *resultCache) store(key uintptr, hash uint32, translation string) {
	rc.slots[rc.index(key, hash)] = cacheSlot{key: key, hash: hash, translation: translation}
}

// stringKey returns the identity of s's backing array, or 0 when s is
// empty (the backing pointer of an empty string is unspecified, so empty
// queries stay out of the cache).
func stringKey(s string) uintptr {
	if len(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.StringData(s)))
}
