/*
Package circlist implements a generic circular doubly linked list with bidirectional cursors.

Nodes are kept in a slot table and linked by index, the first node is the list head and
the last node is always the predecessor of the head. Cursors present the ring as a linear
sequence that ends one past the last element.

A List is not safe for concurrent use. Callers sharing a list between goroutines must guard
every access with their own lock.
*/
package circlist

import (
	"iter"

	"github.com/google/uuid"
	"github.com/mgnsk/circlist/internal/arena"
	"github.com/sirkon/errors"
)

// List is a circular doubly linked list.
//
// The zero value is a ready to use empty list.
type List[T any] struct {
	r    *ring[T]
	opts listOptions
}

// New creates an empty list.
func New[T any](opts ...Option) *List[T] {
	l := &List[T]{
		opts: newDefaultListOptions(),
	}

	for _, opt := range opts {
		opt.apply(&l.opts)
	}

	l.r = newRing[T](l.opts.capacity)

	return l
}

// Of creates a list holding values in order.
func Of[T any](values ...T) *List[T] {
	l := New[T](WithCapacity(len(values)))
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// FromSeq creates a list holding the values yielded by seq.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	for v := range seq {
		l.PushBack(v)
	}
	return l
}

// FromRange creates a list holding copies of the values in the half-open range [first, last).
func FromRange[T any](first, last Position[T]) (*List[T], error) {
	l := New[T]()
	if _, err := l.InsertRange(l.End(), first, last); err != nil {
		return nil, errors.Wrap(err, "copy range")
	}
	return l, nil
}

// Move creates a list that takes over the nodes of src. src is left empty.
// Cursors obtained from src now belong to the returned list.
func Move[T any](src *List[T]) *List[T] {
	l := &List[T]{
		r:    src.ring(),
		opts: src.opts,
	}
	src.r = newRing[T](0)
	return l
}

// Clone returns a copy of the list. Values are copied by assignment.
func (l *List[T]) Clone() *List[T] {
	return l.CloneFunc(func(v T) T { return v })
}

// CloneFunc returns a copy of the list, copying every value with clone.
// If clone panics, the partial copy is released before the panic propagates.
func (l *List[T]) CloneFunc(clone func(T) T) *List[T] {
	dst := &List[T]{
		opts: l.opts,
		r:    newRing[T](l.Len()),
	}

	defer func() {
		if r := recover(); r != nil {
			dst.Clear()

			panic(r)
		}
	}()

	for v := range l.All() {
		dst.PushBack(clone(v))
	}

	return dst
}

// Assign replaces the contents of the list with a copy of src.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}

	tmp := src.Clone()
	l.Swap(tmp)
	tmp.Clear()
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	if l.r == nil {
		return 0
	}
	return l.r.len
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.Len() == 0
}

// MaxSize returns the maximum number of elements a list can hold.
func (l *List[T]) MaxSize() int {
	return maxSize
}

// Front returns the first element of the list.
func (l *List[T]) Front() (T, error) {
	p, err := l.FrontRef()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Back returns the last element of the list.
func (l *List[T]) Back() (T, error) {
	p, err := l.BackRef()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// FrontRef returns a pointer to the first element of the list.
func (l *List[T]) FrontRef() (*T, error) {
	if l.Empty() {
		return nil, errors.Wrap(ErrEmpty, "get front")
	}
	return l.r.nodes.Value(l.r.head), nil
}

// BackRef returns a pointer to the last element of the list.
func (l *List[T]) BackRef() (*T, error) {
	if l.Empty() {
		return nil, errors.Wrap(ErrEmpty, "get back")
	}
	return l.r.nodes.Value(l.r.tail()), nil
}

// PushFront inserts v at the front of the list and returns a cursor to it.
func (l *List[T]) PushFront(v T) Cursor[T] {
	r := l.ring()
	return r.cursor(r.insertBefore(r.head, r.nodes.Alloc(v)))
}

// PushBack inserts v at the back of the list and returns a cursor to it.
func (l *List[T]) PushBack(v T) Cursor[T] {
	r := l.ring()
	return r.cursor(r.insertBefore(arena.Nil, r.nodes.Alloc(v)))
}

// EmplaceFront initializes a new element in place with build, inserts it at the front of the list
// and returns a cursor to it. The list is left unchanged if build panics.
func (l *List[T]) EmplaceFront(build func(v *T)) Cursor[T] {
	r := l.ring()
	h := r.construct(build)
	return r.cursor(r.insertBefore(r.head, h))
}

// EmplaceBack initializes a new element in place with build, inserts it at the back of the list
// and returns a cursor to it. The list is left unchanged if build panics.
func (l *List[T]) EmplaceBack(build func(v *T)) Cursor[T] {
	r := l.ring()
	return r.cursor(r.insertBefore(arena.Nil, r.construct(build)))
}

// PopFront removes the first element of the list and returns it.
func (l *List[T]) PopFront() (T, error) {
	if l.Empty() {
		var zero T
		return zero, errors.Wrap(ErrEmpty, "pop front")
	}
	return l.r.remove(l.r.head), nil
}

// PopBack removes the last element of the list and returns it.
func (l *List[T]) PopBack() (T, error) {
	if l.Empty() {
		var zero T
		return zero, errors.Wrap(ErrEmpty, "pop back")
	}
	return l.r.remove(l.r.tail()), nil
}

// Insert inserts v before pos and returns a cursor to the new element.
// If pos is the end cursor, v is inserted at the back.
func (l *List[T]) Insert(pos Position[T], v T) (Cursor[T], error) {
	at, err := l.position(pos, "insert")
	if err != nil {
		return Cursor[T]{}, err
	}
	return l.r.cursor(l.r.insertBefore(at.h, l.r.nodes.Alloc(v))), nil
}

// Emplace initializes a new element in place with build, inserts it before pos
// and returns a cursor to it. The list is left unchanged if build panics.
func (l *List[T]) Emplace(pos Position[T], build func(v *T)) (Cursor[T], error) {
	at, err := l.position(pos, "emplace")
	if err != nil {
		return Cursor[T]{}, err
	}
	return l.r.cursor(l.r.insertBefore(at.h, l.r.construct(build))), nil
}

// InsertSeq inserts the values yielded by seq before pos, preserving their order.
// It returns a cursor to the first inserted element or pos if seq yields nothing.
func (l *List[T]) InsertSeq(pos Position[T], seq iter.Seq[T]) (Cursor[T], error) {
	at, err := l.position(pos, "insert sequence")
	if err != nil {
		return Cursor[T]{}, err
	}

	first := Cursor[T]{at}
	inserted := false

	for v := range seq {
		h := l.r.insertBefore(at.h, l.r.nodes.Alloc(v))
		if !inserted {
			first = l.r.cursor(h)
			inserted = true
		}
	}

	return first, nil
}

// InsertRange inserts copies of the values in the half-open range [first, last) before pos.
// The range must not belong to this list.
func (l *List[T]) InsertRange(pos, first, last Position[T]) (Cursor[T], error) {
	from, to := first.position(), last.position()

	if from.r == nil || from.r != to.r {
		return Cursor[T]{}, errors.Wrap(ErrInvalidPosition, "insert range").Str("reason", "range bounds belong to different lists")
	}

	if from.r == l.r {
		return Cursor[T]{}, errors.Wrap(ErrInvalidPosition, "insert range").Str("reason", "range belongs to the target list")
	}

	if _, err := from.r.distance(from, to); err != nil {
		return Cursor[T]{}, errors.Wrap(err, "insert range")
	}

	return l.InsertSeq(pos, func(yield func(T) bool) {
		for c := from; c.h != to.h; c.h = from.r.step(c.h) {
			if !yield(*from.r.nodes.Value(c.h)) {
				return
			}
		}
	})
}

// Erase removes the element at pos and returns a cursor to the element that followed it,
// or the end cursor if the removed element was the last one.
func (l *List[T]) Erase(pos Position[T]) (Cursor[T], error) {
	at, err := l.position(pos, "erase")
	if err != nil {
		return Cursor[T]{}, err
	}

	if l.r.len == 0 {
		return Cursor[T]{}, errors.Wrap(ErrInvalidPosition, "erase").Str("reason", "list is empty")
	}

	if at.h.IsNil() {
		return Cursor[T]{}, errors.Wrap(ErrInvalidPosition, "erase").Str("reason", "end cursor")
	}

	next := l.r.step(at.h)
	l.r.remove(at.h)

	return l.r.cursor(next), nil
}

// Clear removes all elements of the list.
func (l *List[T]) Clear() {
	if l.r == nil {
		return
	}
	l.r.clear()
}

// Resize changes the number of elements to n. Elements are removed from the back
// or zero values are appended.
func (l *List[T]) Resize(n int) {
	var zero T
	l.ResizeFill(n, zero)
}

// ResizeFill changes the number of elements to n. Elements are removed from the back
// or copies of fill are appended.
func (l *List[T]) ResizeFill(n int, fill T) {
	if n < 0 {
		panic("circlist: negative size")
	}

	r := l.ring()

	for r.len > n {
		r.remove(r.tail())
	}

	if n > r.len {
		r.nodes.Grow(n - r.len)
	}

	for r.len < n {
		r.insertBefore(arena.Nil, r.nodes.Alloc(fill))
	}
}

// Swap exchanges the elements of two lists.
// Cursors keep referencing their elements, which now belong to the other list.
func (l *List[T]) Swap(other *List[T]) {
	l.ring()
	other.ring()
	l.r, other.r = other.r, l.r
}

func (l *List[T]) ring() *ring[T] {
	if l.r == nil {
		l.r = newRing[T](l.opts.capacity)
	}
	return l.r
}

// position resolves pos against the list.
func (l *List[T]) position(pos Position[T], op string) (ReadCursor[T], error) {
	r := l.ring()
	c := pos.position()

	if c.r != r {
		return c, errors.Wrap(ErrForeignCursor, op).Stg("list-id", r.id)
	}

	if !c.h.IsNil() && !r.nodes.Valid(c.h) {
		return c, errors.Wrap(ErrStaleCursor, op).Stg("list-id", r.id).Stg("handle", c.h)
	}

	return c, nil
}

const maxSize = int(min(uint64(arena.MaxNodes), uint64(^uint(0)>>1)))

// ring is the node storage of a list. It moves between lists on Swap and Move.
type ring[T any] struct {
	id    uuid.UUID
	nodes *arena.Arena[T]
	head  arena.Handle
	len   int
}

func newRing[T any](capacity int) *ring[T] {
	return &ring[T]{
		id:    uuid.New(),
		nodes: arena.New[T](capacity),
	}
}

func (r *ring[T]) tail() arena.Handle {
	return r.nodes.Prev(r.head)
}

// step returns the node following h in linear order or the nil handle after the last node.
func (r *ring[T]) step(h arena.Handle) arena.Handle {
	if next := r.nodes.Next(h); next != r.head {
		return next
	}
	return arena.Nil
}

func (r *ring[T]) cursor(h arena.Handle) Cursor[T] {
	return Cursor[T]{ReadCursor[T]{r: r, h: h}}
}

// construct allocates an unlinked node and initializes its value with build.
// The node is released if build panics.
func (r *ring[T]) construct(build func(v *T)) arena.Handle {
	h := r.nodes.Alloc(*new(T))
	defer func() {
		if p := recover(); p != nil {
			r.nodes.Free(h)
			panic(p)
		}
	}()

	build(r.nodes.Value(h))
	return h
}

// insertBefore links the self linked node h before mark. A nil mark appends h.
// Inserting before the head makes h the new head.
func (r *ring[T]) insertBefore(mark, h arena.Handle) arena.Handle {
	switch {
	case r.len == 0:
		r.head = h

	case mark.IsNil():
		r.nodes.Link(r.tail(), h)

	default:
		r.nodes.Link(r.nodes.Prev(mark), h)
		if mark == r.head {
			r.head = h
		}
	}

	r.len++

	return h
}

// remove unlinks and frees h, returning its value.
func (r *ring[T]) remove(h arena.Handle) T {
	if r.len == 1 {
		r.head = arena.Nil
	} else if h == r.head {
		r.head = r.nodes.Next(h)
	}

	v := *r.nodes.Value(h)

	r.nodes.Unlink(h)
	r.nodes.Free(h)
	r.len--

	return v
}

func (r *ring[T]) clear() {
	for r.len > 0 {
		r.remove(r.head)
	}
}

// distance returns the number of steps from c to last in linear order.
func (r *ring[T]) distance(c, last ReadCursor[T]) (int, error) {
	for _, b := range []ReadCursor[T]{c, last} {
		if !b.h.IsNil() && !r.nodes.Valid(b.h) {
			return 0, errors.Wrap(ErrStaleCursor, "measure range").Stg("handle", b.h)
		}
	}

	n := 0
	for h := c.h; h != last.h; h = r.step(h) {
		if h.IsNil() {
			return 0, errors.Wrap(ErrInvalidPosition, "measure range").Str("reason", "range end is not reachable")
		}
		n++
	}

	return n, nil
}
