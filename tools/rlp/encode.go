// Package rlp implements the canonical RLP (Recursive Length Prefix) encoding
// used by Ethereum transactions.
//
// Two kinds of items exist: byte strings and lists of items. Integers are
// encoded as byte strings holding their minimal big-endian form, so zero is
// the empty string.
//
//	single byte < 0x80        the byte itself
//	string of 0-55 bytes      0x80+len, string
//	string of 56+ bytes       0xB7+len(len), len, string
//	list payload of 0-55      0xC0+len, payload
//	list payload of 56+       0xF7+len(len), len, payload
//
// where len(len) is the size of the minimal big-endian encoding of the length.
package rlp

import (
	"io"

	"github.com/holiman/uint256"
)

// RLP prefix bases.
const (
	StringOffset     = 0x80
	StringLongOffset = 0xB7
	ListOffset       = 0xC0
	ListLongOffset   = 0xF7

	// MaxShortLen is the largest payload encoded with a one byte header.
	MaxShortLen = 55
)

var (
	// EmptyString is the encoding of an empty byte string, also of integer zero.
	EmptyString = []byte{StringOffset}
	// EmptyList is the encoding of an empty list.
	EmptyList = []byte{ListOffset}
)

// AppendString appends the RLP encoding of byte string s to dst.
func AppendString(dst, s []byte) []byte {
	if len(s) == 1 && s[0] < StringOffset {
		return append(dst, s[0])
	}
	dst = appendHead(dst, StringOffset, StringLongOffset, uint64(len(s)))
	return append(dst, s...)
}

// AppendList appends a list header for payload followed by payload itself.
// payload must be the concatenation of already encoded items.
func AppendList(dst, payload []byte) []byte {
	dst = appendHead(dst, ListOffset, ListLongOffset, uint64(len(payload)))
	return append(dst, payload...)
}

// AppendUint256 appends i as a byte string holding its minimal big-endian
// representation. A nil i is encoded as zero.
func AppendUint256(dst []byte, i *uint256.Int) []byte {
	if i == nil || i.IsZero() {
		return append(dst, StringOffset)
	}
	if i.IsUint64() && i.Uint64() < StringOffset {
		return append(dst, byte(i.Uint64()))
	}
	buf := i.Bytes32()
	return AppendString(dst, buf[32-i.ByteLen():])
}

// AppendUint64 appends i in canonical integer form.
func AppendUint64(dst []byte, i uint64) []byte {
	if i == 0 {
		return append(dst, StringOffset)
	}
	if i < StringOffset {
		return append(dst, byte(i))
	}
	var buf [8]byte
	n := putint(buf[:], i)
	return AppendString(dst, buf[:n])
}

// HeadSize returns the size of a string or list header for a payload
// of the given size.
func HeadSize(size uint64) int {
	if size <= MaxShortLen {
		return 1
	}
	return 1 + intsize(size)
}

func appendHead(dst []byte, smalltag, largetag byte, size uint64) []byte {
	if size <= MaxShortLen {
		return append(dst, smalltag+byte(size))
	}
	var buf [9]byte
	sizesize := putint(buf[1:], size)
	buf[0] = largetag + byte(sizesize)
	return append(dst, buf[:sizesize+1]...)
}

// putint writes i to the beginning of b in big endian byte
// order, using the least number of bytes needed to represent i.
func putint(b []byte, i uint64) (size int) {
	size = intsize(i)
	for j := size - 1; j >= 0; j-- {
		b[j] = byte(i)
		i >>= 8
	}
	return size
}

// intsize computes the minimum number of bytes required to store i.
func intsize(i uint64) (size int) {
	for size = 1; ; size++ {
		if i >>= 8; i == 0 {
			return size
		}
	}
}

// EncoderBuffer accumulates RLP output. Lists are opened with List and
// closed with ListEnd, their headers are inserted once the payload size
// is known.
type EncoderBuffer struct {
	buf []byte
}

// NewEncoderBuffer creates an empty buffer.
func NewEncoderBuffer() *EncoderBuffer {
	return &EncoderBuffer{}
}

// WriteBytes encodes b as a byte string.
func (w *EncoderBuffer) WriteBytes(b []byte) {
	w.buf = AppendString(w.buf, b)
}

// WriteUint256 encodes i as a canonical integer.
func (w *EncoderBuffer) WriteUint256(i *uint256.Int) {
	w.buf = AppendUint256(w.buf, i)
}

// WriteUint64 encodes i as a canonical integer.
func (w *EncoderBuffer) WriteUint64(i uint64) {
	w.buf = AppendUint64(w.buf, i)
}

// List starts a list and returns its index, which must be passed to ListEnd.
func (w *EncoderBuffer) List() int {
	return len(w.buf)
}

// ListEnd finishes the list started at index.
func (w *EncoderBuffer) ListEnd(index int) {
	if index < 0 || index > len(w.buf) {
		panic("rlp: invalid list index")
	}
	size := uint64(len(w.buf) - index)
	head := appendHead(nil, ListOffset, ListLongOffset, size)
	w.buf = append(w.buf, head...)
	copy(w.buf[index+len(head):], w.buf[index:index+int(size)])
	copy(w.buf[index:], head)
}

// Size returns the number of bytes written so far.
func (w *EncoderBuffer) Size() int {
	return len(w.buf)
}

// ToBytes returns a copy of the encoded bytes.
func (w *EncoderBuffer) ToBytes() []byte {
	out := make([]byte, len(w.buf))
	copy(out, w.buf)
	return out
}

// WriteTo writes the encoded bytes to out.
func (w *EncoderBuffer) WriteTo(out io.Writer) (int64, error) {
	n, err := out.Write(w.buf)
	return int64(n), err
}

// Reset truncates the buffer for reuse.
func (w *EncoderBuffer) Reset() {
	w.buf = w.buf[:0]
}
