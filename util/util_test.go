package util

import (
	"bytes"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xrrocha/nobocoder/bsearch"
)

func TestUint64ToKeyAndKeyToUint64(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
	}{
		{"Zero", 0},
		{"Standard", 1234567890},
		{"MaxUint64", math.MaxUint64},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			key := Uint64ToKey(test.value)
			assert.Len(t, key, 8)
			assert.Equal(t, test.value, KeyToUint64(key))
		})
	}
}

func TestUint64ToKeyPreservesOrder(t *testing.T) {
	values := []uint64{0, 1, 255, 256, 65535, 1 << 40, math.MaxUint64}
	for i := 1; i < len(values); i++ {
		assert.Equal(t, bsearch.Less, CompareByteSlice(Uint64ToKey(values[i-1]), Uint64ToKey(values[i])),
			"%d vs %d", values[i-1], values[i])
	}
}

func TestUint16To2Bytes(t *testing.T) {
	assert.Equal(t, []byte{0, 0}, Uint16To2Bytes(0))
	assert.Equal(t, []byte{0xff, 0}, Uint16To2Bytes(255))
	assert.Equal(t, []byte{0xff, 0xff}, Uint16To2Bytes(math.MaxUint16))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, bsearch.Less, Compare(1, 2))
	assert.Equal(t, bsearch.Equal, Compare(2, 2))
	assert.Equal(t, bsearch.Greater, Compare(3, 2))
	assert.Equal(t, bsearch.Less, Compare("apple", "banana"))
	assert.Equal(t, bsearch.Greater, Compare(uint8(200), uint8(100)))
}

func TestCompareNaN(t *testing.T) {
	nan := math.NaN()
	assert.Equal(t, bsearch.Equal, Compare(nan, nan))
	assert.Equal(t, bsearch.Less, Compare(nan, math.Inf(-1)))
	assert.Equal(t, bsearch.Greater, Compare(0.0, nan))

	a := []float64{3, nan, 1, 2}
	sort.Float64s(a)
	index, ok := bsearch.Search(a, 2.0, Compare[float64])
	assert.True(t, ok)
	assert.Equal(t, 2, index)
}

func TestFromInt(t *testing.T) {
	assert.Equal(t, bsearch.Less, FromInt(-7))
	assert.Equal(t, bsearch.Equal, FromInt(0))
	assert.Equal(t, bsearch.Greater, FromInt(3))

	words := [][]byte{[]byte("ant"), []byte("bee"), []byte("cat")}
	index, ok := bsearch.Search(words, []byte("bee"), func(k, e []byte) bsearch.Ordering {
		return FromInt(bytes.Compare(k, e))
	})
	assert.True(t, ok)
	assert.Equal(t, 1, index)
}

func TestReverse(t *testing.T) {
	assert.Equal(t, bsearch.Greater, Reverse(bsearch.Less))
	assert.Equal(t, bsearch.Equal, Reverse(bsearch.Equal))
	assert.Equal(t, bsearch.Less, Reverse(bsearch.Greater))
}

func TestCompareByteSlice(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []byte
		expected bsearch.Ordering
	}{
		{"Equal", []byte("abc"), []byte("abc"), bsearch.Equal},
		{"ALess", []byte("abc"), []byte("abcd"), bsearch.Less},
		{"BGreater", []byte("abcd"), []byte("abc"), bsearch.Greater},
		{"NonEqualLess", []byte("abc"), []byte("abd"), bsearch.Less},
		{"NonEqualGreater", []byte("abd"), []byte("abc"), bsearch.Greater},
		{"Empty", nil, []byte{}, bsearch.Equal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := CompareByteSlice(test.a, test.b)
			assert.Equal(t, test.expected, result)
		})
	}
}
