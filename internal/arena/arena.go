/*
Package arena implements a slot table of doubly linked ring nodes.

Nodes are addressed by generation checked handles instead of pointers. Slots are stored in
fixed-size pages, so a pointer to a live value stays valid until the node is freed.
Freed slots are recycled through an intrusive free list.
*/
package arena

import "math"

const (
	pageBits = 6
	pageSize = 1 << pageBits
	pageMask = pageSize - 1

	noSlot = math.MaxUint32
)

// MaxNodes is the maximum number of simultaneously live nodes.
const MaxNodes = math.MaxUint32 - 1

// Arena is a node slot table. The zero value is a ready to use empty arena.
type Arena[T any] struct {
	pages [][]node[T]
	free  uint32 // first free slot + 1, 0 when the free list is empty
	size  uint32 // number of slots ever handed out
	len   int
}

// New creates an arena with room for capacity nodes.
func New[T any](capacity int) *Arena[T] {
	a := &Arena[T]{}
	a.Grow(capacity)
	return a
}

// Len returns the number of live nodes.
func (a *Arena[T]) Len() int {
	return a.len
}

// Cap returns the number of allocated slots.
func (a *Arena[T]) Cap() int {
	return len(a.pages) * pageSize
}

// Grow preallocates pages so that n more nodes fit without growth.
func (a *Arena[T]) Grow(n int) {
	for a.Cap()-a.len < n {
		a.pages = append(a.pages, make([]node[T], pageSize))
	}
}

// Alloc creates a self linked node holding v.
func (a *Arena[T]) Alloc(v T) Handle {
	idx := a.take()
	n := a.at(idx)
	n.value = v
	n.next = idx
	n.prev = idx
	n.live = true
	a.len++
	return Handle{idx: idx, gen: n.gen}
}

// Free releases a node. The node must be unlinked.
func (a *Arena[T]) Free(h Handle) {
	n := a.mustNode(h)
	if n.next != h.idx {
		panic("arena: freeing a linked node")
	}

	var zero T
	n.value = zero
	n.live = false
	n.gen = nextGen(n.gen)
	n.next = a.free
	n.prev = noSlot
	a.free = h.idx + 1
	a.len--
}

// Valid reports whether h references a live node.
func (a *Arena[T]) Valid(h Handle) bool {
	if h.gen == 0 || h.idx >= a.size {
		return false
	}
	n := a.at(h.idx)
	return n.live && n.gen == h.gen
}

// Value returns a pointer to the value of a live node.
func (a *Arena[T]) Value(h Handle) *T {
	return &a.mustNode(h).value
}

// Next returns the node following h.
func (a *Arena[T]) Next(h Handle) Handle {
	return a.handle(a.mustNode(h).next)
}

// Prev returns the node preceding h.
func (a *Arena[T]) Prev(h Handle) Handle {
	return a.handle(a.mustNode(h).prev)
}

// Link inserts s after at. s must be self linked.
func (a *Arena[T]) Link(at, s Handle) {
	e := a.mustNode(at)
	sn := a.mustNode(s)
	next := e.next

	e.next = s.idx
	sn.prev = at.idx
	a.at(next).prev = s.idx
	sn.next = next
}

// Unlink removes h from its ring and makes it self linked.
func (a *Arena[T]) Unlink(h Handle) {
	n := a.mustNode(h)
	a.at(n.prev).next = n.next
	a.at(n.next).prev = n.prev
	n.next = h.idx
	n.prev = h.idx
}

// Flip swaps the next and prev links of h.
func (a *Arena[T]) Flip(h Handle) {
	n := a.mustNode(h)
	n.next, n.prev = n.prev, n.next
}

func (a *Arena[T]) take() uint32 {
	if a.free != 0 {
		idx := a.free - 1
		a.free = a.at(idx).next
		return idx
	}

	if a.size == MaxNodes {
		panic("arena: slot table exhausted")
	}

	if int(a.size) == a.Cap() {
		a.pages = append(a.pages, make([]node[T], pageSize))
	}

	idx := a.size
	a.size++

	n := a.at(idx)
	n.gen = nextGen(n.gen)

	return idx
}

func (a *Arena[T]) handle(idx uint32) Handle {
	return Handle{idx: idx, gen: a.at(idx).gen}
}

func (a *Arena[T]) at(idx uint32) *node[T] {
	return &a.pages[idx>>pageBits][idx&pageMask]
}

func (a *Arena[T]) mustNode(h Handle) *node[T] {
	if !a.Valid(h) {
		panic("arena: invalid handle")
	}
	return a.at(h.idx)
}

func nextGen(gen uint32) uint32 {
	gen++
	if gen == 0 {
		gen = 1
	}
	return gen
}
