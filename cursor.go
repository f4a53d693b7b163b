package circlist

import (
	"github.com/mgnsk/circlist/internal/arena"
	"github.com/sirkon/errors"
)

// Position is a cursor passed to list operations. Both ReadCursor and Cursor are positions.
type Position[T any] interface {
	position() ReadCursor[T]
}

// ReadCursor is a read-only traversal position in a list.
// It references an element or the end position one past the last element.
//
// The zero value is not bound to any list.
type ReadCursor[T any] struct {
	r *ring[T]
	h arena.Handle
}

// IsEnd reports whether c is the end position.
func (c ReadCursor[T]) IsEnd() bool {
	return c.h.IsNil()
}

// Equal reports whether both cursors reference the same position of the same list.
func (c ReadCursor[T]) Equal(other ReadCursor[T]) bool {
	return c.r == other.r && c.h == other.h
}

// Value returns the referenced element.
func (c ReadCursor[T]) Value() (T, error) {
	p, err := c.ref("dereference cursor")
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Next returns a cursor to the following element or the end cursor after the last element.
func (c ReadCursor[T]) Next() (ReadCursor[T], error) {
	h, err := c.next()
	if err != nil {
		return c, err
	}
	return ReadCursor[T]{r: c.r, h: h}, nil
}

// Prev returns a cursor to the preceding element. The end cursor moves to the last element
// and the first element wraps around to the last one.
func (c ReadCursor[T]) Prev() (ReadCursor[T], error) {
	h, err := c.prev()
	if err != nil {
		return c, err
	}
	return ReadCursor[T]{r: c.r, h: h}, nil
}

func (c ReadCursor[T]) String() string {
	pos := "end"
	if !c.IsEnd() {
		pos = c.h.String()
	}
	if c.r == nil {
		return "cursor(" + pos + ")"
	}
	return "cursor(" + c.r.id.String() + ":" + pos + ")"
}

func (c ReadCursor[T]) position() ReadCursor[T] {
	return c
}

func (c ReadCursor[T]) ref(op string) (*T, error) {
	if c.h.IsNil() {
		return nil, errors.Wrap(ErrNotDereferenceable, op)
	}

	if err := c.valid(op); err != nil {
		return nil, err
	}

	return c.r.nodes.Value(c.h), nil
}

func (c ReadCursor[T]) next() (arena.Handle, error) {
	if c.h.IsNil() {
		return c.h, errors.Wrap(ErrNotDereferenceable, "advance cursor")
	}

	if err := c.valid("advance cursor"); err != nil {
		return c.h, err
	}

	return c.r.step(c.h), nil
}

func (c ReadCursor[T]) prev() (arena.Handle, error) {
	if c.h.IsNil() {
		if c.r == nil || c.r.len == 0 {
			return c.h, errors.Wrap(ErrNotDecrementable, "retreat cursor")
		}
		return c.r.tail(), nil
	}

	if err := c.valid("retreat cursor"); err != nil {
		return c.h, err
	}

	return c.r.nodes.Prev(c.h), nil
}

func (c ReadCursor[T]) valid(op string) error {
	if c.r == nil {
		return errors.Wrap(ErrStaleCursor, op).Stg("handle", c.h)
	}
	if !c.r.nodes.Valid(c.h) {
		return errors.Wrap(ErrStaleCursor, op).Stg("list-id", c.r.id).Stg("handle", c.h)
	}
	return nil
}

// Cursor is a traversal position that also allows modifying the referenced element.
type Cursor[T any] struct {
	ReadCursor[T]
}

// ReadOnly returns the read-only view of c.
func (c Cursor[T]) ReadOnly() ReadCursor[T] {
	return c.ReadCursor
}

// Equal reports whether both cursors reference the same position of the same list.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.ReadCursor.Equal(other.ReadCursor)
}

// Next returns a cursor to the following element or the end cursor after the last element.
func (c Cursor[T]) Next() (Cursor[T], error) {
	next, err := c.ReadCursor.Next()
	return Cursor[T]{next}, err
}

// Prev returns a cursor to the preceding element. The end cursor moves to the last element
// and the first element wraps around to the last one.
func (c Cursor[T]) Prev() (Cursor[T], error) {
	prev, err := c.ReadCursor.Prev()
	return Cursor[T]{prev}, err
}

// Ref returns a pointer to the referenced element.
// The pointer stays valid until the element is erased.
func (c Cursor[T]) Ref() (*T, error) {
	return c.ref("dereference cursor")
}

// Set replaces the referenced element with v.
func (c Cursor[T]) Set(v T) error {
	p, err := c.ref("set value")
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Begin returns a cursor to the first element or the end cursor if the list is empty.
func (l *List[T]) Begin() Cursor[T] {
	r := l.ring()
	return r.cursor(r.head)
}

// End returns the end cursor.
func (l *List[T]) End() Cursor[T] {
	return l.ring().cursor(arena.Nil)
}

// CBegin returns a read-only cursor to the first element.
func (l *List[T]) CBegin() ReadCursor[T] {
	return l.Begin().ReadOnly()
}

// CEnd returns the read-only end cursor.
func (l *List[T]) CEnd() ReadCursor[T] {
	return l.End().ReadOnly()
}
