package circlist_test

import (
	"strings"
	"testing"

	"github.com/mgnsk/circlist"
	. "github.com/mgnsk/circlist/internal/testing"
	. "github.com/onsi/gomega"
)

func TestRemove(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		l := circlist.Of(1, 2, 1, 3, 1)

		n := circlist.Remove(l, 1)

		AssertEqual(t, n, 3)
		ExpectValidRing(t, l)
		ExpectValues(t, l, 2, 3)
	})

	t.Run("all elements", func(t *testing.T) {
		l := circlist.Of(1, 1, 1)

		AssertEqual(t, circlist.Remove(l, 1), 3)
		AssertEqual(t, l.Empty(), true)
		ExpectValidRing(t, l)
	})

	t.Run("no match", func(t *testing.T) {
		l := circlist.Of(1, 2)

		AssertEqual(t, circlist.Remove(l, 3), 0)
		ExpectValues(t, l, 1, 2)
	})

	t.Run("predicate", func(t *testing.T) {
		l := circlist.Of(1, 2, 3, 4, 5, 6)

		n := l.RemoveFunc(func(v int) bool {
			return v%2 == 0
		})

		AssertEqual(t, n, 3)
		ExpectValidRing(t, l)
		ExpectValues(t, l, 1, 3, 5)
	})
}

func TestReverse(t *testing.T) {
	t.Run("three elements", func(t *testing.T) {
		l := circlist.Of(1, 2, 3)

		l.Reverse()

		ExpectValidRing(t, l)
		ExpectValues(t, l, 3, 2, 1)
	})

	t.Run("twice", func(t *testing.T) {
		l := circlist.Of(1, 2, 3, 4)

		l.Reverse()
		l.Reverse()

		ExpectValidRing(t, l)
		ExpectValues(t, l, 1, 2, 3, 4)
	})

	t.Run("single-element list", func(t *testing.T) {
		l := circlist.Of(1)

		l.Reverse()

		ExpectValidRing(t, l)
		ExpectValues(t, l, 1)
	})

	t.Run("empty list", func(t *testing.T) {
		l := circlist.New[int]()

		l.Reverse()

		ExpectValidRing(t, l)
	})
}

func TestUnique(t *testing.T) {
	t.Run("runs", func(t *testing.T) {
		l := circlist.Of(1, 1, 2, 3, 3, 3)

		AssertEqual(t, circlist.Unique(l), 3)
		ExpectValidRing(t, l)
		ExpectValues(t, l, 1, 2, 3)
	})

	t.Run("boundary is not adjacent", func(t *testing.T) {
		l := circlist.Of(1, 2, 1)

		AssertEqual(t, circlist.Unique(l), 0)
		ExpectValues(t, l, 1, 2, 1)
	})

	t.Run("boundary with wrap policy", func(t *testing.T) {
		l := circlist.New[int](circlist.WithWrapUnique())
		for _, v := range []int{1, 2, 1, 1} {
			l.PushBack(v)
		}

		AssertEqual(t, circlist.Unique(l), 2)
		ExpectValidRing(t, l)
		ExpectValues(t, l, 1, 2)
	})

	t.Run("wrap policy keeps a single element", func(t *testing.T) {
		l := circlist.New[int](circlist.WithWrapUnique())
		for range 3 {
			l.PushBack(5)
		}

		AssertEqual(t, circlist.Unique(l), 2)
		ExpectValues(t, l, 5)
	})

	t.Run("equivalence", func(t *testing.T) {
		l := circlist.Of("a", "A", "b", "B", "b", "c")

		n := l.UniqueFunc(strings.EqualFold)

		AssertEqual(t, n, 3)
		ExpectValues(t, l, "a", "b", "c")
	})

	t.Run("trailing run", func(t *testing.T) {
		l := circlist.Of(1, 2, 2)

		AssertEqual(t, circlist.Unique(l), 1)
		ExpectValidRing(t, l)
		ExpectValues(t, l, 1, 2)
	})
}

func TestSort(t *testing.T) {
	t.Run("ascending", func(t *testing.T) {
		l := circlist.Of(3, 1, 4, 2)

		circlist.Sort(l)

		AssertEqual(t, l.Len(), 4)
		ExpectValidRing(t, l)
		ExpectValues(t, l, 1, 2, 3, 4)
	})

	t.Run("already sorted", func(t *testing.T) {
		l := circlist.Of(1, 2, 3)

		circlist.Sort(l)

		ExpectValues(t, l, 1, 2, 3)
	})

	t.Run("comparator", func(t *testing.T) {
		l := circlist.Of(3, 1, 4, 2)

		l.SortFunc(func(a, b int) bool {
			return a > b
		})

		ExpectValues(t, l, 4, 3, 2, 1)
	})

	t.Run("stable", func(t *testing.T) {
		type item struct {
			key int
			tag string
		}

		l := circlist.Of(item{2, "a"}, item{1, "b"}, item{2, "c"}, item{1, "d"})

		l.SortFunc(func(a, b item) bool {
			return a.key < b.key
		})

		ExpectValues(t, l, item{1, "b"}, item{1, "d"}, item{2, "a"}, item{2, "c"})
	})

	t.Run("cursors keep their nodes", func(t *testing.T) {
		g := NewWithT(t)

		l := circlist.Of(2, 1)
		first := l.Begin()

		circlist.Sort(l)

		v, err := first.Value()
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(v).To(Equal(1))
		g.Expect(first.Equal(l.Begin())).To(BeTrue())
	})
}

func TestEqual(t *testing.T) {
	g := NewWithT(t)

	g.Expect(circlist.Equal(circlist.Of(1, 2), circlist.Of(1, 2))).To(BeTrue())
	g.Expect(circlist.Equal(circlist.Of(1, 2), circlist.Of(2, 1))).To(BeFalse())
	g.Expect(circlist.Equal(circlist.Of(1, 2), circlist.Of(1))).To(BeFalse())
	g.Expect(circlist.Equal(circlist.New[int](), circlist.New[int]())).To(BeTrue())

	g.Expect(circlist.EqualFunc(circlist.Of(1, 2), circlist.Of("1", "2"), func(a int, b string) bool {
		return string(rune('0'+a)) == b
	})).To(BeTrue())
}

func TestIteration(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		g := NewWithT(t)

		var got []int
		for v := range circlist.Of(1, 2, 3).All() {
			got = append(got, v)
		}

		g.Expect(got).To(Equal([]int{1, 2, 3}))
	})

	t.Run("backward", func(t *testing.T) {
		g := NewWithT(t)

		var got []int
		for v := range circlist.Of(1, 2, 3).Backward() {
			got = append(got, v)
		}

		g.Expect(got).To(Equal([]int{3, 2, 1}))
	})

	t.Run("break", func(t *testing.T) {
		g := NewWithT(t)

		var got []int
		for v := range circlist.Of(1, 2, 3).All() {
			if v == 2 {
				break
			}
			got = append(got, v)
		}

		g.Expect(got).To(Equal([]int{1}))
	})

	t.Run("erase while iterating cursors", func(t *testing.T) {
		l := circlist.Of(1, 2, 3, 4)

		for c := range l.Cursors() {
			if v, err := c.Value(); err == nil && v%2 == 1 {
				_, err := l.Erase(c)
				AssertSuccess(t, err)
			}
		}

		ExpectValidRing(t, l)
		ExpectValues(t, l, 2, 4)
	})

	t.Run("do", func(t *testing.T) {
		g := NewWithT(t)

		var got []string
		circlist.Of("one", "two", "three").Do(func(v string) bool {
			got = append(got, v)
			return v != "two"
		})

		g.Expect(got).To(Equal([]string{"one", "two"}))
	})
}
