// Package bsearch implements binary search over sorted sequences with a
// caller-supplied three-way comparator.
//
// The sequence must already be sorted in the order the comparator describes.
// That is not checked: an unsorted sequence or an inconsistent comparator
// gives a wrong answer (usually a false negative), never a memory fault.
// None of the functions here allocate or mutate the sequence, so concurrent
// searches over the same unchanging slice are fine.
package bsearch

// Ordering is the result of comparing a key against an element.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	}
	return "Ordering(?)"
}

// SearchFunc searches the n elements [0, n) of an indexed sequence. f(i)
// compares the key against element i. It returns the index of an element
// equal to the key and true, or -1 and false.
//
// When several elements are equal to the key any of them may be returned.
// For an even-sized range the lower of the two middle elements is probed.
func SearchFunc(n int, f func(i int) Ordering) (int, bool) {
	lo := 0
	for n > 0 {
		half := n / 2
		if half == 0 {
			// n == 1
			if f(lo) == Equal {
				return lo, true
			}
			return -1, false
		}

		mid := lo + half
		if n&1 == 0 {
			mid--
		}

		switch f(mid) {
		case Equal:
			return mid, true
		case Less:
			if n&1 == 0 {
				n = half - 1
			} else {
				n = half
			}
		default:
			lo = mid + 1
			n = half
		}
	}
	return -1, false
}

// Search looks for key in the sorted slice s. cmp(key, e) reports how key
// orders against element e.
func Search[S ~[]E, E, K any](s S, key K, cmp func(K, E) Ordering) (int, bool) {
	return SearchFunc(len(s), func(i int) Ordering {
		return cmp(key, s[i])
	})
}

// Find is Search returning a pointer into s, or nil when key is absent.
func Find[S ~[]E, E, K any](s S, key K, cmp func(K, E) Ordering) *E {
	if i, ok := Search(s, key, cmp); ok {
		return &s[i]
	}
	return nil
}

// EqualRange returns the half-open range [lo, hi) of the elements of s equal
// to key. If key is absent the range is empty and lo is where key would be
// inserted.
func EqualRange[S ~[]E, E, K any](s S, key K, cmp func(K, E) Ordering) (lo, hi int) {
	i, ok := Search(s, key, cmp)
	if !ok {
		p := lowerBound(s, 0, len(s), key, cmp)
		return p, p
	}
	return lowerBound(s, 0, i, key, cmp), upperBound(s, i+1, len(s), key, cmp)
}

// lowerBound returns the first index in [lo, hi) whose element is not below
// key, or hi.
func lowerBound[S ~[]E, E, K any](s S, lo, hi int, key K, cmp func(K, E) Ordering) int {
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		if cmp(key, s[m]) == Greater {
			lo = m + 1
		} else {
			hi = m
		}
	}
	return lo
}

// upperBound returns the first index in [lo, hi) whose element is above key,
// or hi.
func upperBound[S ~[]E, E, K any](s S, lo, hi int, key K, cmp func(K, E) Ordering) int {
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		if cmp(key, s[m]) == Less {
			hi = m
		} else {
			lo = m + 1
		}
	}
	return lo
}
