package testing

import (
	"reflect"
	"testing"

	"github.com/mgnsk/circlist"
	"github.com/mgnsk/circlist/internal/tlog"
	"github.com/sirkon/deepequal"
	"github.com/sirkon/errors"
)

// AssertSuccess asserts that error did not occur.
func AssertSuccess(t testing.TB, err error) {
	t.Helper()
	tlog.Require(t, err)
}

// AssertErrorIs asserts that err matches target.
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error '%v'", target)
	}

	if !errors.Is(err, target) {
		tlog.Error(t, err)
		t.Fatalf("expected error '%v'", target)
	}
}

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// ExpectValues asserts that the list holds exactly values in forward order.
func ExpectValues[T any](t testing.TB, l *circlist.List[T], values ...T) {
	t.Helper()

	got := l.Values()
	if len(values) == 0 && len(got) == 0 {
		return
	}

	if !deepequal.Equal(values, got) {
		deepequal.SideBySide(t, "list values", values, got)
		t.FailNow()
	}
}

// ExpectValidRing walks the list in both directions and asserts the ring invariants.
func ExpectValidRing[T any](t testing.TB, l *circlist.List[T]) {
	t.Helper()

	begin, end := l.CBegin(), l.CEnd()

	if l.Empty() {
		AssertEqual(t, l.Len(), 0)
		AssertEqual(t, begin.Equal(end), true)
		return
	}

	forward := 0
	var last circlist.ReadCursor[T]
	for c := begin; !c.IsEnd(); {
		last = c

		var err error
		c, err = c.Next()
		AssertSuccess(t, err)

		if forward++; forward > l.Len() {
			t.Fatalf("forward walk exceeds list length %d", l.Len())
		}
	}
	AssertEqual(t, forward, l.Len())

	backward := 0
	for c := end; !c.Equal(begin); {
		var err error
		c, err = c.Prev()
		AssertSuccess(t, err)

		if backward == 0 && !c.Equal(last) {
			t.Fatalf("expected end to retreat to the last element")
		}

		if backward++; backward > l.Len() {
			t.Fatalf("backward walk exceeds list length %d", l.Len())
		}
	}
	AssertEqual(t, backward, l.Len())

	// The first element wraps around to the last one.
	wrapped, err := begin.Prev()
	AssertSuccess(t, err)
	AssertEqual(t, wrapped.Equal(last), true)
}
