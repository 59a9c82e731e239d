// Package page reads sorted runs of fixed-width records packed into a byte
// buffer. Each record begins with a fixed-length key and the records are kept
// in ascending key order, so lookups are a binary search over the run.
package page

import (
	"fmt"
	"log"
	"sort"

	"github.com/xrrocha/nobocoder/bsearch"
	"github.com/xrrocha/nobocoder/util"
)

/*
Page
	Record 0  ... width bytes
		Key     ... keyLen bytes
		Value   ... width - keyLen bytes
	Record 1  ... width bytes
	...
	Record n-1
*/

type Page struct {
	data   []byte // n * width bytes
	width  int    // bytes per record
	keyLen int    // leading key bytes of each record
}

// New wraps data without copying it. data must already be sorted by key.
func New(data []byte, width, keyLen int) (*Page, error) {
	if width <= 0 {
		return nil, fmt.Errorf("invalid record width: %d", width)
	}
	if keyLen <= 0 || keyLen > width {
		return nil, fmt.Errorf("invalid key length: got %d, want 1..%d", keyLen, width)
	}
	if len(data)%width != 0 {
		return nil, fmt.Errorf("invalid page size: %d bytes is not a multiple of record width %d", len(data), width)
	}

	return &Page{
		data:   data,
		width:  width,
		keyLen: keyLen,
	}, nil
}

// Build packs records into a new page ordered by key. Records are copied;
// the input is left untouched.
func Build(records [][]byte, width, keyLen int) (*Page, error) {
	for i, r := range records {
		if len(r) != width {
			return nil, fmt.Errorf("invalid record size at %d: got %d, want %d", i, len(r), width)
		}
	}

	data := make([]byte, 0, len(records)*width)
	for _, r := range records {
		data = append(data, r...)
	}

	p, err := New(data, width, keyLen)
	if err != nil {
		return nil, err
	}
	sort.Stable(byKey{p, make([]byte, width)})
	return p, nil
}

// Get ======================================================================

func (p *Page) Len() int {
	return len(p.data) / p.width
}

func (p *Page) Width() int {
	return p.width
}

// Record returns record i. The slice aliases the page.
func (p *Page) Record(index int) []byte {
	if index < 0 || index >= p.Len() {
		log.Panicf("record does not exist at index %d", index)
	}
	start := index * p.width
	return p.data[start : start+p.width : start+p.width]
}

func (p *Page) Key(index int) []byte {
	return p.Record(index)[:p.keyLen]
}

func (p *Page) Value(index int) []byte {
	return p.Record(index)[p.keyLen:]
}

// Search ======================================================================

// SearchKey returns the index of a record whose key equals key. With
// duplicate keys any one of them may be returned.
func (p *Page) SearchKey(key []byte) (int, bool) {
	return bsearch.SearchFunc(p.Len(), func(i int) bsearch.Ordering {
		start := i * p.width
		return util.CompareByteSlice(key, p.data[start:start+p.keyLen])
	})
}

func (p *Page) Lookup(key []byte) ([]byte, bool) {
	index, ok := p.SearchKey(key)
	if !ok {
		return nil, false
	}
	return p.Record(index), true
}

// Sorted reports whether the keys are in ascending order. SearchKey assumes
// this and never checks it.
func (p *Page) Sorted() bool {
	for i := 1; i < p.Len(); i++ {
		if util.CompareByteSlice(p.Key(i-1), p.Key(i)) == bsearch.Greater {
			return false
		}
	}
	return true
}

// ======================================================================

// byKey sorts the records of a page in place; tmp is a one-record swap buffer.
type byKey struct {
	p   *Page
	tmp []byte
}

func (b byKey) Len() int { return b.p.Len() }

func (b byKey) Less(i, j int) bool {
	return util.CompareByteSlice(b.p.Key(i), b.p.Key(j)) == bsearch.Less
}

func (b byKey) Swap(i, j int) {
	copy(b.tmp, b.p.Record(i))
	copy(b.p.Record(i), b.p.Record(j))
	copy(b.p.Record(j), b.tmp)
}
