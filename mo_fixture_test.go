package mocat

import (
	"encoding/binary"
)

// moEntry is one msgid/msgstr pair for a fixture catalog.
type moEntry struct {
	id  string
	str string
}

// testEntries is the canonical fixture: metadata, two plain messages, a
// plural pair stored as two separate originals, and one context-
// qualified message. Originals are kept sorted, as msgfmt emits them.
func testEntries() []moEntry {
	return []moEntry{
		{"", "Content-Type: text/plain; charset=UTF-8\n"},
		{"%d file", "%d fichier"},
		{"%d files", "%d fichiers"},
		{"Close", "Fermer"},
		{"Open", "Ouvrir"},
		{"menu\x04Open", "Ouvrir le menu"},
	}
}

// buildMO assembles a complete MO image in the given byte order: header,
// the two descriptor tables, then all payloads, each NUL-terminated.
// Writing the magic in the catalog's own order is what lets the parser
// detect that order on read.
func buildMO(order binary.ByteOrder, entries []moEntry) []byte {
	n := uint32(len(entries))
	origTab := uint32(headerSize)
	transTab := origTab + n*entrySize
	payloadStart := transTab + n*entrySize

	var payloads []byte
	descs := make([]uint32, 0, 4*n) // orig (len, off)… then trans (len, off)…
	off := payloadStart
	for _, e := range entries {
		descs = append(descs, uint32(len(e.id)), off)
		payloads = append(payloads, e.id...)
		payloads = append(payloads, 0)
		off += uint32(len(e.id)) + 1
	}
	for _, e := range entries {
		descs = append(descs, uint32(len(e.str)), off)
		payloads = append(payloads, e.str...)
		payloads = append(payloads, 0)
		off += uint32(len(e.str)) + 1
	}

	buf := make([]byte, 0, off)
	var tmp [4]byte
	w := func(v uint32) {
		order.PutUint32(tmp[:], v)
		buf = append(buf, tmp[:]...)
	}
	w(moMagic)   // magic
	w(0)         // revision
	w(n)         // number of strings
	w(origTab)   // original table offset
	w(transTab)  // translation table offset
	w(0)         // on-disk hash table size (unused)
	w(0)         // on-disk hash table offset (unused)
	for _, v := range descs {
		w(v)
	}
	return append(buf, payloads...)
}

func allMethods() []SearchMethod {
	return []SearchMethod{LinearSearch, BinarySearch, HashSearch}
}
