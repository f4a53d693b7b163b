package circlist

// Option is a list configuration option.
type Option interface {
	apply(*listOptions)
}

type listOptions struct {
	capacity   int
	wrapUnique bool
}

func newDefaultListOptions() listOptions {
	return listOptions{
		capacity:   0,
		wrapUnique: false,
	}
}

// WithCapacity option preallocates node storage for capacity elements.
//
// The zero value allocates storage on first insertion.
func WithCapacity(capacity int) Option {
	return funcOption(func(opts *listOptions) {
		if capacity < 0 {
			panic("circlist: negative capacity")
		}
		opts.capacity = capacity
	})
}

// WithWrapUnique option makes Unique and UniqueFunc treat the back and the front
// elements as adjacent. Trailing elements equivalent to the front are removed
// after the forward pass.
//
// By default the boundary between the back and the front is not considered.
func WithWrapUnique() Option {
	return funcOption(func(opts *listOptions) {
		opts.wrapUnique = true
	})
}

type funcOption func(*listOptions)

func (o funcOption) apply(opts *listOptions) {
	o(opts)
}
