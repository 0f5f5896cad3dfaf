// Package ring is a generic adaption of `container/ring`
// for use as the backing store of ordered document collections.
package ring

import "iter"

// A Ring is an element of a circular list.
// A pointer to any element serves as a reference
// to the entire ring. The zero value is a one-element
// ring holding the zero Value.
type Ring[Value any] struct {
	next, prev *Ring[Value]
	Value      Value
}

func (r *Ring[Value]) init() *Ring[Value] {
	r.next = r
	r.prev = r
	return r
}

// Next returns the next ring element. r must not be nil.
func (r *Ring[Value]) Next() *Ring[Value] {
	if r.next == nil {
		return r.init()
	}
	return r.next
}

// Prev returns the previous ring element. r must not be nil.
func (r *Ring[Value]) Prev() *Ring[Value] {
	if r.next == nil {
		return r.init()
	}
	return r.prev
}

// Move returns the element n steps forward (n > 0)
// or backward (n < 0) from r. r must not be nil.
func (r *Ring[Value]) Move(n int) *Ring[Value] {
	if r.next == nil {
		return r.init()
	}
	for ; n < 0; n++ {
		r = r.prev
	}
	for ; n > 0; n-- {
		r = r.next
	}
	return r
}

// Link connects ring r with ring s such that r.Next()
// becomes s and returns the original value for r.Next().
//
// If r and s are in the same ring, the elements between
// them are removed and returned as a subring.
// Otherwise the elements of s are spliced in after r.
func (r *Ring[Value]) Link(s *Ring[Value]) *Ring[Value] {
	n := r.Next()
	if s != nil {
		p := s.Prev()
		// Separate assignments; LHS evaluation order is unspecified.
		r.next = s
		s.prev = r
		n.prev = p
		p.next = n
	}
	return n
}

// Unlink removes n elements from the ring, starting at r.Next(),
// and returns them as a subring.
// n must be less than the length of the ring.
func (r *Ring[Value]) Unlink(n int) *Ring[Value] {
	if n <= 0 {
		return nil
	}
	return r.Link(r.Move(n + 1))
}

// Len counts the elements in ring r in linear time.
func (r *Ring[Value]) Len() int {
	n := 0
	if r != nil {
		n = 1
		for p := r.Next(); p != r; p = p.next {
			n++
		}
	}
	return n
}

// After yields every element following r, in forward order,
// stopping before r itself. This treats r as a sentinel.
func (r *Ring[Value]) After() iter.Seq[*Ring[Value]] {
	return func(yield func(*Ring[Value]) bool) {
		if r == nil {
			return
		}
		for p := r.Next(); p != r; p = p.next {
			if !yield(p) {
				return
			}
		}
	}
}
