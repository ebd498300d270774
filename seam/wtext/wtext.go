package wtext

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/seamkit/internal/unsafecast"
)

var (
	// ErrOddLength indicates a wide-text buffer whose byte length is not a
	// multiple of the code unit size.
	ErrOddLength = errors.New("wtext: odd byte length")

	// ErrMisaligned indicates a buffer whose data does not start on a code
	// unit boundary, so no zero-copy []uint16 view of it exists.
	ErrMisaligned = errors.New("wtext: data not 2-byte aligned")
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Units returns b viewed as UTF-16 code units without copying. b must have
// even length and 2-byte aligned data. The view carries host byte order;
// carving and rejoining it does not depend on the order.
func Units(b []byte) ([]uint16, error) {
	if len(b)%2 != 0 {
		return nil, ErrOddLength
	}
	if len(b) == 0 {
		return []uint16{}, nil
	}
	if unsafecast.SliceAddr(b)%2 != 0 {
		return nil, ErrMisaligned
	}
	return unsafecast.Slice[byte, uint16](b), nil
}

// Decode converts UTF-16LE bytes to a string. One trailing NUL code unit
// is dropped when present. Invalid surrogates become the Unicode
// replacement character.
func Decode(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", ErrOddLength
	}
	if n := len(b); n >= 2 && b[n-2] == 0 && b[n-1] == 0 {
		b = b[:n-2]
	}
	if len(b) == 0 {
		return "", nil
	}
	if s, ok := decodeASCII(b); ok {
		return s, nil
	}
	out, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("wtext: decode utf-16le: %w", err)
	}
	return string(out), nil
}

// decodeASCII handles the common case of pure ASCII text, pairs of
// (byte, 0x00), without invoking the full decoder.
func decodeASCII(b []byte) (string, bool) {
	for i := 0; i < len(b); i += 2 {
		if b[i+1] != 0 || b[i] >= 0x80 {
			return "", false
		}
	}
	var sb strings.Builder
	sb.Grow(len(b) / 2)
	for i := 0; i < len(b); i += 2 {
		sb.WriteByte(b[i])
	}
	return sb.String(), true
}

// DecodeLatin1 converts Windows-1252 bytes to a string. Plain ASCII comes
// back unchanged without invoking the decoder.
func DecodeLatin1(b []byte) (string, error) {
	if isASCII(b) {
		return string(b), nil
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("wtext: decode windows-1252: %w", err)
	}
	return string(out), nil
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

// Encode converts s to UTF-16LE bytes, without a terminator.
func Encode(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, len(units)*2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(out[i*2:], u)
	}
	return out
}

// EncodeZ is Encode plus one trailing NUL code unit, the stored form of
// NUL-terminated formats. Decode drops the terminator again.
func EncodeZ(s string) []byte {
	b := Encode(s)
	return append(b, 0, 0)
}
