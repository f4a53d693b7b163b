package circlist

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Remove removes every element equal to v and returns the number of removed elements.
func Remove[T comparable](l *List[T], v T) int {
	return l.RemoveFunc(func(e T) bool {
		return e == v
	})
}

// RemoveFunc removes every element satisfying pred and returns the number of removed elements.
// The order of the remaining elements is preserved.
func (l *List[T]) RemoveFunc(pred func(v T) bool) int {
	r := l.ring()
	n := 0

	for h := r.head; !h.IsNil(); {
		next := r.step(h)

		if pred(*r.nodes.Value(h)) {
			r.remove(h)
			n++
		}

		h = next
	}

	return n
}

// Reverse reverses the order of the elements in place.
// Cursors keep referencing their elements.
func (l *List[T]) Reverse() {
	r := l.ring()
	if r.len < 2 {
		return
	}

	h := r.head
	for {
		r.nodes.Flip(h)
		// Flipped: prev is the old next.
		if h = r.nodes.Prev(h); h == r.head {
			break
		}
	}

	r.head = r.nodes.Next(r.head)
}

// Unique collapses every run of consecutive equal elements to its first element
// and returns the number of removed elements.
func Unique[T comparable](l *List[T]) int {
	return l.UniqueFunc(func(a, b T) bool {
		return a == b
	})
}

// UniqueFunc collapses every run of consecutive elements equivalent by eq to its first element
// and returns the number of removed elements.
//
// The back and the front elements are not adjacent unless the list was created with WithWrapUnique.
func (l *List[T]) UniqueFunc(eq func(a, b T) bool) int {
	r := l.ring()
	if r.len < 2 {
		return 0
	}

	n := 0

	cur := r.head
	for next := r.step(cur); !next.IsNil(); next = r.step(cur) {
		if eq(*r.nodes.Value(cur), *r.nodes.Value(next)) {
			r.remove(next)
			n++
		} else {
			cur = next
		}
	}

	if l.opts.wrapUnique {
		for r.len > 1 {
			back := r.tail()
			if !eq(*r.nodes.Value(r.head), *r.nodes.Value(back)) {
				break
			}
			r.remove(back)
			n++
		}
	}

	return n
}

// Sort sorts the list in ascending order.
func Sort[T constraints.Ordered](l *List[T]) {
	l.SortFunc(func(a, b T) bool {
		return a < b
	})
}

// SortFunc sorts the list by less. Equal elements keep their relative order.
//
// Values are sorted in an auxiliary buffer and written back in ring order,
// nodes are not reallocated.
func (l *List[T]) SortFunc(less func(a, b T) bool) {
	r := l.ring()
	if r.len < 2 {
		return
	}

	buf := make([]T, 0, r.len)
	for h := r.head; !h.IsNil(); h = r.step(h) {
		buf = append(buf, *r.nodes.Value(h))
	}

	slices.SortStableFunc(buf, less)

	i := 0
	for h := r.head; !h.IsNil(); h = r.step(h) {
		*r.nodes.Value(h) = buf[i]
		i++
	}
}

// Equal reports whether both lists hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool {
		return x == y
	})
}

// EqualFunc reports whether both lists hold elements equivalent by eq in the same order.
func EqualFunc[T1, T2 any](a *List[T1], b *List[T2], eq func(T1, T2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	c := b.CBegin()
	for v := range a.All() {
		w, err := c.Value()
		if err != nil || !eq(v, w) {
			return false
		}

		if c, err = c.Next(); err != nil {
			return false
		}
	}

	return true
}
