package mocat

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

const (
	moMagic    = 0x950412de // magic as stored by a same-endian producer
	moMagicRev = 0xde120495 // byte-reversed magic: swap every field

	headerSize = 28 // seven 32-bit words
	entrySize  = 8  // (length, offset) descriptor
)

// header is the fixed-size MO file preamble, decoded into host order.
type header struct {
	magic            uint32
	revision         uint32
	numStrings       uint32
	origTableOffset  uint32
	transTableOffset uint32
	hashTableSize    uint32 // on-disk hash table, read but not consulted
	hashTableOffset  uint32
}

// parseHeader decodes the preamble and determines the file's byte order
// from the magic word. The revision is read but otherwise ignored.
func parseHeader(data []byte) (header, binary.ByteOrder, error) {
	assert(len(data) >= headerSize, "header parse on short buffer")
	var order binary.ByteOrder
	switch binary.LittleEndian.Uint32(data[0:4]) {
	case moMagic:
		order = binary.LittleEndian
	case moMagicRev:
		order = binary.BigEndian
	default:
		return header{}, nil, fmt.Errorf("%w: bad magic 0x%08x",
			ErrInvalidFormat, binary.LittleEndian.Uint32(data[0:4]))
	}
	h := header{
		magic:            moMagic,
		revision:         order.Uint32(data[4:8]),
		numStrings:       order.Uint32(data[8:12]),
		origTableOffset:  order.Uint32(data[12:16]),
		transTableOffset: order.Uint32(data[16:20]),
		hashTableSize:    order.Uint32(data[20:24]),
		hashTableOffset:  order.Uint32(data[24:28]),
	}
	return h, order, nil
}

// buildPairs materializes the pair index from both string-descriptor
// tables. Every descriptor is bounds-checked against the buffer,
// including the trailing NUL the format promises after each payload.
func buildPairs(data []byte, h header, order binary.ByteOrder) ([]stringPair, error) {
	size := uint64(len(data))
	n := uint64(h.numStrings)
	if uint64(h.origTableOffset)+n*entrySize > size {
		return nil, fmt.Errorf("%w: original string table escapes file", ErrInvalidFormat)
	}
	if uint64(h.transTableOffset)+n*entrySize > size {
		return nil, fmt.Errorf("%w: translation string table escapes file", ErrInvalidFormat)
	}
	pairs := make([]stringPair, h.numStrings)
	for i := uint32(0); i < h.numStrings; i++ {
		origLen, origOff := readEntry(data, h.origTableOffset+i*entrySize, order)
		transLen, transOff := readEntry(data, h.transTableOffset+i*entrySize, order)
		if uint64(origOff)+uint64(origLen)+1 > size {
			return nil, fmt.Errorf("%w: original string %d escapes file", ErrInvalidFormat, i)
		}
		if uint64(transOff)+uint64(transLen)+1 > size {
			return nil, fmt.Errorf("%w: translation string %d escapes file", ErrInvalidFormat, i)
		}
		pairs[i] = stringPair{
			original:    bufView(data, origOff, origLen),
			translation: bufView(data, transOff, transLen),
		}
	}
	return pairs, nil
}

func readEntry(data []byte, off uint32, order binary.ByteOrder) (length, offset uint32) {
	return order.Uint32(data[off : off+4]), order.Uint32(data[off+4 : off+8])
}

// bufView aliases data[off:off+n] as a string without copying. The
// caller has already checked off+n+1 <= len(data), so off itself is in
// range even for empty strings.
func bufView(data []byte, off, n uint32) string {
	return unsafe.String(&data[off], int(n))
}
