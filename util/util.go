package util

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"

	"github.com/xrrocha/nobocoder/bsearch"
)

// Key encodings ======================================================================

// Uint64ToKey encodes i big-endian so that byte order matches numeric order.
func Uint64ToKey(i uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, i)
	return b
}

func KeyToUint64(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

func Uint16To2Bytes(i uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, i)
	return b
}

// Comparators ======================================================================

// Compare orders a against b. NaN sorts before every other value and equal to
// itself, so float slices sorted with sort.Float64s search correctly.
func Compare[T constraints.Ordered](a, b T) bsearch.Ordering {
	aNaN := a != a
	bNaN := b != b
	switch {
	case aNaN && bNaN:
		return bsearch.Equal
	case aNaN || a < b:
		return bsearch.Less
	case bNaN || a > b:
		return bsearch.Greater
	}
	return bsearch.Equal
}

// FromInt turns a cmp.Compare / bytes.Compare style result into an Ordering.
func FromInt(c int) bsearch.Ordering {
	switch {
	case c < 0:
		return bsearch.Less
	case c > 0:
		return bsearch.Greater
	}
	return bsearch.Equal
}

func Reverse(o bsearch.Ordering) bsearch.Ordering {
	return -o
}

func CompareByteSlice(a, b []byte) bsearch.Ordering {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return bsearch.Less
		}
		if a[i] > b[i] {
			return bsearch.Greater
		}
	}

	// shared prefix is equal; the shorter one sorts first
	if len(a) < len(b) {
		return bsearch.Less
	}
	if len(a) > len(b) {
		return bsearch.Greater
	}

	return bsearch.Equal
}
