package main

import (
	"github.com/alecthomas/kong"
	"github.com/mgnsk/circlist"
	"github.com/sirkon/errors"
	"github.com/sirkon/message"
)

type cli struct {
	Values  []int `arg:"" optional:"" help:"Values to load into the list."`
	Remove  []int `help:"Remove every occurrence of these values."`
	Unique  bool  `help:"Collapse runs of equal values."`
	Wrap    bool  `help:"Treat the back and the front as adjacent when collapsing runs."`
	Sort    bool  `help:"Sort values in ascending order."`
	Reverse bool  `help:"Reverse the list."`
	Rotate  int   `help:"Move this many values from the front to the back."`
}

func main() {
	var args cli
	kong.Parse(&args, kong.Description("Load values into a circular list and transform them."))

	var opts []circlist.Option
	if args.Wrap {
		opts = append(opts, circlist.WithWrapUnique())
	}

	l := circlist.New[int](opts...)
	for _, v := range args.Values {
		l.PushBack(v)
	}

	for _, v := range args.Remove {
		if n := circlist.Remove(l, v); n > 0 {
			message.Infof("removed %d occurrences of %d", n, v)
		}
	}

	if args.Unique {
		message.Infof("removed %d duplicates", circlist.Unique(l))
	}

	if args.Sort {
		circlist.Sort(l)
	}

	if args.Reverse {
		l.Reverse()
	}

	for i := 0; i < args.Rotate && !l.Empty(); i++ {
		v, err := l.PopFront()
		if err != nil {
			message.Critical(errors.Wrap(err, "rotate list"))
		}
		l.PushBack(v)
	}

	message.Infof("%d values: %v", l.Len(), l.Values())

	if back, err := l.Back(); err == nil {
		front, _ := l.Front()
		message.Infof("front %d, back %d", front, back)
	}
}
