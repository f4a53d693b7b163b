package circlist

import "github.com/sirkon/errors"

// Error kinds. Returned errors wrap one of these, use errors.Is to match.
const (
	// ErrEmpty is returned when an element is requested from an empty list.
	ErrEmpty errors.Const = "list is empty"
	// ErrInvalidPosition is returned when a cursor does not denote a valid position for the operation.
	ErrInvalidPosition errors.Const = "invalid position"
	// ErrNotDereferenceable is returned when an end cursor is dereferenced or advanced.
	ErrNotDereferenceable errors.Const = "cursor not dereferenceable"
	// ErrNotDecrementable is returned when an end cursor of an empty list is moved backwards.
	ErrNotDecrementable errors.Const = "cursor not decrementable"
	// ErrStaleCursor is returned when the node a cursor references was erased.
	ErrStaleCursor errors.Const = "stale cursor"
	// ErrForeignCursor is returned when a cursor of another list is passed to a list.
	ErrForeignCursor errors.Const = "cursor belongs to another list"
)
