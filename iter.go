package circlist

import "iter"

// All returns an iterator over the elements of the list, in forward order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := l.CBegin(); !c.IsEnd(); {
			v, err := c.Value()
			if err != nil {
				return
			}

			if !yield(v) {
				return
			}

			if c, err = c.Next(); err != nil {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements of the list, in backward order.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		begin := l.CBegin()

		for c := l.CEnd(); !c.Equal(begin); {
			var err error
			if c, err = c.Prev(); err != nil {
				return
			}

			v, err := c.Value()
			if err != nil {
				return
			}

			if !yield(v) {
				return
			}
		}
	}
}

// Cursors returns an iterator over cursors to the elements of the list, in forward order.
// It is safe to erase the currently yielded element during iteration.
func (l *List[T]) Cursors() iter.Seq[Cursor[T]] {
	return func(yield func(Cursor[T]) bool) {
		r := l.ring()

		for h := r.head; !h.IsNil() && r.nodes.Valid(h); {
			next := r.step(h)

			if !yield(r.cursor(h)) {
				return
			}

			h = next
		}
	}
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[T]) Do(f func(v T) bool) {
	for v := range l.All() {
		if !f(v) {
			return
		}
	}
}

// Values returns the elements of the list as a slice.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.Len())
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}
