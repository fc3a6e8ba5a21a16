// Package transcode converts between UTF-8 bytes, UTF-16 code units and
// Unicode codepoints. Invalid input is reported, never silently replaced
// with U+FFFD.
package transcode

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidData flags malformed UTF-8 or UTF-16 input.
var ErrInvalidData = errors.New("invalid data")

// ByteOrder selects the byte order of a UTF-16 byte stream.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
	Native // whatever the host uses
)

// NativeByteOrder reports the host byte order.
func NativeByteOrder() ByteOrder {
	var x uint16 = 1
	if *(*byte)(unsafe.Pointer(&x)) == 1 {
		return LittleEndian
	}
	return BigEndian
}

func (o ByteOrder) resolve() ByteOrder {
	if o == Native {
		return NativeByteOrder()
	}
	return o
}

func (o ByteOrder) encoding() encoding.Encoding {
	e := unicode.LittleEndian
	if o.resolve() == BigEndian {
		e = unicode.BigEndian
	}
	return unicode.UTF16(e, unicode.IgnoreBOM)
}

// ValidUTF8 reports whether b is well-formed UTF-8.
func ValidUTF8(b []byte) bool {
	return utf8.Valid(b)
}

// ValidUTF16 reports whether units is well-formed UTF-16, i.e. every
// surrogate code unit is part of a correctly ordered pair.
func ValidUTF16(units []uint16) bool {
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= 0xD800 && u <= 0xDBFF: // high surrogate, needs a low one
			if i+1 >= len(units) {
				return false
			}
			next := units[i+1]
			if next < 0xDC00 || next > 0xDFFF {
				return false
			}
			i++
		case u >= 0xDC00 && u <= 0xDFFF: // stray low surrogate
			return false
		}
	}
	return true
}

// UTF8ToCodepoints decodes b into a codepoint sequence.
func UTF8ToCodepoints(b []byte) ([]rune, error) {
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("%w: malformed UTF-8", ErrInvalidData)
	}
	return []rune(string(b)), nil
}

// CodepointsToUTF8 encodes a codepoint sequence as UTF-8. Surrogate
// codepoints and values beyond U+10FFFF are rejected.
func CodepointsToUTF8(cps []rune) ([]byte, error) {
	out := make([]byte, 0, len(cps))
	for _, cp := range cps {
		if !utf8.ValidRune(cp) {
			return nil, fmt.Errorf("%w: codepoint U+%04X", ErrInvalidData, cp)
		}
		out = utf8.AppendRune(out, cp)
	}
	return out, nil
}

// UTF16ToCodepoints decodes a code-unit sequence into codepoints.
func UTF16ToCodepoints(units []uint16) ([]rune, error) {
	if !ValidUTF16(units) {
		return nil, fmt.Errorf("%w: malformed UTF-16", ErrInvalidData)
	}
	return utf16.Decode(units), nil
}

// CodepointsToUTF16 encodes a codepoint sequence as UTF-16 code units.
func CodepointsToUTF16(cps []rune) ([]uint16, error) {
	for _, cp := range cps {
		if !utf8.ValidRune(cp) {
			return nil, fmt.Errorf("%w: codepoint U+%04X", ErrInvalidData, cp)
		}
	}
	return utf16.Encode(cps), nil
}

// UTF8ToUTF16 converts UTF-8 bytes to UTF-16 code units.
func UTF8ToUTF16(b []byte) ([]uint16, error) {
	cps, err := UTF8ToCodepoints(b)
	if err != nil {
		return nil, err
	}
	return utf16.Encode(cps), nil
}

// UTF16ToUTF8 converts UTF-16 code units to UTF-8 bytes.
func UTF16ToUTF8(units []uint16) ([]byte, error) {
	cps, err := UTF16ToCodepoints(units)
	if err != nil {
		return nil, err
	}
	return []byte(string(cps)), nil
}

// EncodeUTF16 serializes s as a UTF-16 byte stream in the given byte
// order.
func EncodeUTF16(s string, order ByteOrder) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: malformed UTF-8", ErrInvalidData)
	}
	return order.encoding().NewEncoder().Bytes([]byte(s))
}

// DecodeUTF16 parses a UTF-16 byte stream in the given byte order.
func DecodeUTF16(b []byte, order ByteOrder) (string, error) {
	if len(b)%2 != 0 {
		return "", fmt.Errorf("%w: odd byte count %d", ErrInvalidData, len(b))
	}
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i < len(b); i += 2 {
		if order.resolve() == BigEndian {
			units = append(units, uint16(b[i])<<8|uint16(b[i+1]))
		} else {
			units = append(units, uint16(b[i+1])<<8|uint16(b[i]))
		}
	}
	if !ValidUTF16(units) {
		return "", fmt.Errorf("%w: malformed UTF-16", ErrInvalidData)
	}
	out, err := order.encoding().NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return string(out), nil
}

// MaxUTF16Units returns an upper bound on the code units needed to hold
// b re-encoded as UTF-16. One unit per input byte is never exceeded.
func MaxUTF16Units(b []byte) int {
	return len(b)
}

// MaxUTF8Bytes returns an upper bound on the bytes needed to hold units
// re-encoded as UTF-8. Three bytes per code unit is never exceeded.
func MaxUTF8Bytes(units []uint16) int {
	return 3 * len(units)
}
