package mocat

import (
	"encoding/binary"
	"fmt"
	"testing"
)

// Every loaded original must come back as its translation, under every
// strategy.
func TestRoundTripIdentity(t *testing.T) {
	for _, m := range allMethods() {
		cat := openTestCatalog(t, WithSearchMethod(m))
		for _, e := range testEntries() {
			if got := cat.Translate(e.id); got != e.str {
				t.Fatalf("%s: Translate(%q) = %q, want %q", m, e.id, got, e.str)
			}
		}
	}
}

// All three strategies must return byte-identical results for the same
// catalog and query set.
func TestStrategyEquivalence(t *testing.T) {
	entries := testEntries()
	for i := 0; i < 40; i++ {
		entries = append(entries, moEntry{
			id:  fmt.Sprintf("msg-%03d", i),
			str: fmt.Sprintf("nachricht-%03d", i),
		})
	}
	data := buildMO(binary.LittleEndian, entries)

	queries := []string{"", "Open", "Close", "Welcome", "msg-000", "msg-039", "msg-040", "%d files", "menu\x04Open"}
	var results [][]string
	for _, m := range allMethods() {
		cat, err := OpenBytes(data, WithSearchMethod(m))
		if err != nil {
			t.Fatalf("%s: %v", m, err)
		}
		answers := make([]string, len(queries))
		for i, q := range queries {
			answers[i] = cat.Translate(q)
		}
		results = append(results, answers)
		cat.Close()
	}
	for i := range queries {
		if results[0][i] != results[1][i] || results[0][i] != results[2][i] {
			t.Fatalf("query %q: LINEAR=%q BINARY=%q HASH=%q",
				queries[i], results[0][i], results[1][i], results[2][i])
		}
	}
}

func TestBinarySearcherOrdering(t *testing.T) {
	cat := openTestCatalog(t, WithSearchMethod(BinarySearch))
	bs, ok := cat.search.(*binarySearcher)
	if !ok {
		t.Fatalf("expected a binarySearcher, got %T", cat.search)
	}
	for i := 1; i < len(bs.pairs); i++ {
		if comparePair(bs.pairs[i-1].original, bs.pairs[i].original) >= 0 {
			t.Fatalf("pairs not strictly ascending at %d: %q vs %q",
				i, bs.pairs[i-1].original, bs.pairs[i].original)
		}
	}
}

// The hash table must be a power of two large enough to keep the load
// factor below 0.75.
func TestHashTableLoadBound(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 7, 12, 100, 1000} {
		entries := make([]moEntry, n)
		for i := range entries {
			entries[i] = moEntry{id: fmt.Sprintf("key-%d", i), str: fmt.Sprintf("val-%d", i)}
		}
		hs := newHashSearcher(buildPairsFixture(t, entries), nil)
		size := len(hs.slots)
		if size&(size-1) != 0 {
			t.Fatalf("n=%d: table size %d is not a power of two", n, size)
		}
		if float64(n) > float64(size)*hashLoadFactor {
			t.Fatalf("n=%d: table size %d exceeds load factor %.2f", n, size, hashLoadFactor)
		}
		if int(hs.count) != n {
			t.Fatalf("n=%d: table holds %d items", n, hs.count)
		}
	}
}

func buildPairsFixture(t *testing.T, entries []moEntry) []stringPair {
	t.Helper()
	if len(entries) == 0 {
		return nil
	}
	data := buildMO(binary.LittleEndian, entries)
	hdr, order, err := parseHeader(data)
	if err != nil {
		t.Fatal(err)
	}
	pairs, err := buildPairs(data, hdr, order)
	if err != nil {
		t.Fatal(err)
	}
	return pairs
}

func TestDjb2KnownValues(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
	}{
		{"", 5381},
		{"a", 5381*33 + 'a'},
		{"ab", (5381*33+'a')*33 + 'b'},
	}
	for _, c := range cases {
		if got := djb2(c.in); got != c.want {
			t.Fatalf("djb2(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[uint32]uint32{1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 100: 128, 1 << 20: 1 << 20}
	for in, want := range cases {
		if got := nextPowerOfTwo(in); got != want {
			t.Fatalf("nextPowerOfTwo(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestComparisonCounters(t *testing.T) {
	cat := openTestCatalog(t, WithSearchMethod(LinearSearch), WithStats(), WithoutCache())
	cat.Translate("Open")
	stats, ok := cat.Stats()
	if !ok {
		t.Fatal("stats should be enabled")
	}
	// "Open" is the fifth fixture entry, so the scan examines five pairs.
	if stats.Comparisons != 5 {
		t.Fatalf("linear comparisons = %d, want 5", stats.Comparisons)
	}
	if stats.TotalLookups != 1 {
		t.Fatalf("total lookups = %d, want 1", stats.TotalLookups)
	}
}
