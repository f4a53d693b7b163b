package arena

import "strconv"

// Handle references a node slot. The zero value is the nil handle.
type Handle struct {
	idx uint32
	gen uint32
}

// Nil is the nil handle.
var Nil Handle

// IsNil reports whether h is the nil handle.
func (h Handle) IsNil() bool {
	return h.gen == 0
}

func (h Handle) String() string {
	if h.IsNil() {
		return "nil"
	}
	return strconv.FormatUint(uint64(h.idx), 10) + "@" + strconv.FormatUint(uint64(h.gen), 10)
}

type node[T any] struct {
	value      T
	next, prev uint32
	gen        uint32
	live       bool
}
