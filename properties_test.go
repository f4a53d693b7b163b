package circlist_test

import (
	"slices"

	"github.com/mgnsk/circlist"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var sizes = []TableEntry{
	Entry("empty", 0),
	Entry("single element", 1),
	Entry("two elements", 2),
	Entry("many elements", 100),
}

var _ = Describe("traversal", func() {
	DescribeTable("size equals the number of elements reachable forward",
		func(n int) {
			l := circlist.Of(randomValues(n)...)

			count := 0
			for c := l.CBegin(); !c.IsEnd(); {
				var err error
				c, err = c.Next()
				Expect(err).NotTo(HaveOccurred())
				count++
			}

			Expect(count).To(Equal(l.Len()))
			Expect(l.Len()).To(Equal(n))
		},
		sizes...,
	)

	DescribeTable("walking forward then backward returns to begin",
		func(n int) {
			l := circlist.Of(randomValues(n)...)

			c := l.CBegin()
			for i := 0; i < n; i++ {
				var err error
				c, err = c.Next()
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(c.IsEnd()).To(BeTrue())

			for i := 0; i < n; i++ {
				var err error
				c, err = c.Prev()
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(c.Equal(l.CBegin())).To(BeTrue())
		},
		sizes[1:]...,
	)

	DescribeTable("backward iteration mirrors forward iteration",
		func(n int) {
			l := circlist.Of(randomValues(n)...)

			forward := slices.Collect(l.All())
			backward := slices.Collect(l.Backward())
			slices.Reverse(backward)

			Expect(backward).To(Equal(forward))
		},
		sizes[1:]...,
	)
})

var _ = Describe("modifiers", func() {
	DescribeTable("push back then pop front drains in insertion order",
		func(n int) {
			values := randomValues(n)

			l := circlist.New[int]()
			for _, v := range values {
				l.PushBack(v)
			}

			var drained []int
			for !l.Empty() {
				v, err := l.PopFront()
				Expect(err).NotTo(HaveOccurred())
				drained = append(drained, v)
			}

			Expect(drained).To(Equal(values))
			Expect(l.Len()).To(BeZero())
		},
		sizes[1:]...,
	)

	DescribeTable("insert then erase at the same position restores the list",
		func(n int) {
			values := randomValues(n)
			l := circlist.Of(values...)

			pos := l.Begin()
			for i := 0; i < n/2; i++ {
				var err error
				pos, err = pos.Next()
				Expect(err).NotTo(HaveOccurred())
			}

			c, err := l.Insert(pos, -1)
			Expect(err).NotTo(HaveOccurred())
			Expect(l.Len()).To(Equal(n + 1))

			next, err := l.Erase(c)
			Expect(err).NotTo(HaveOccurred())
			Expect(next.Equal(pos)).To(BeTrue())

			Expect(l.Len()).To(Equal(n))
			Expect(l.Values()).To(Equal(values))
		},
		sizes[1:]...,
	)

	It("fails front after erasing the only element", func() {
		l := circlist.Of(1)

		_, err := l.Erase(l.Begin())
		Expect(err).NotTo(HaveOccurred())
		Expect(l.Empty()).To(BeTrue())

		_, err = l.Front()
		Expect(err).To(MatchError(circlist.ErrEmpty))
	})

	It("leaves the list unchanged when an operation fails", func() {
		l := circlist.Of(1, 2, 3)
		other := circlist.Of(4)

		_, err := l.Erase(l.End())
		Expect(err).To(HaveOccurred())

		_, err = l.Insert(other.Begin(), 5)
		Expect(err).To(HaveOccurred())

		_, err = l.Erase(other.Begin())
		Expect(err).To(HaveOccurred())

		Expect(l.Values()).To(Equal([]int{1, 2, 3}))
		Expect(other.Values()).To(Equal([]int{4}))
	})
})

var _ = Describe("algorithms", func() {
	DescribeTable("reverse twice yields the original order",
		func(n int) {
			values := randomValues(n)
			l := circlist.Of(values...)

			l.Reverse()
			l.Reverse()

			Expect(l.Values()).To(Equal(values))
		},
		sizes[1:]...,
	)

	DescribeTable("unique",
		func(values, expected []int) {
			l := circlist.Of(values...)

			circlist.Unique(l)

			Expect(l.Values()).To(Equal(expected))
		},
		Entry("collapses runs", []int{1, 1, 2, 3, 3, 3}, []int{1, 2, 3}),
		Entry("keeps non-adjacent duplicates", []int{1, 2, 1}, []int{1, 2, 1}),
		Entry("single element", []int{7}, []int{7}),
	)

	DescribeTable("sort orders values without changing size",
		func(n int) {
			values := randomValues(n)
			l := circlist.Of(values...)

			circlist.Sort(l)

			slices.Sort(values)
			Expect(l.Len()).To(Equal(n))
			Expect(l.Values()).To(Equal(values))

			circlist.Sort(l)
			Expect(l.Values()).To(Equal(values))
		},
		sizes[1:]...,
	)

	It("sorts {3,1,4,2}", func() {
		l := circlist.Of(3, 1, 4, 2)

		circlist.Sort(l)

		Expect(l.Values()).To(Equal([]int{1, 2, 3, 4}))
	})
})

var _ = Describe("copy and move", func() {
	var src *circlist.List[int]

	BeforeEach(func() {
		src = circlist.Of(1, 2, 3)
	})

	Specify("mutating a copy does not affect the original", func() {
		dst := src.Clone()

		dst.PushBack(4)
		_, err := dst.PopFront()
		Expect(err).NotTo(HaveOccurred())
		Expect(dst.Begin().Set(20)).To(Succeed())

		Expect(src.Values()).To(Equal([]int{1, 2, 3}))
		Expect(dst.Values()).To(Equal([]int{20, 3, 4}))
	})

	Specify("moving empties the source", func() {
		dst := circlist.Move(src)

		Expect(src.Len()).To(BeZero())
		Expect(src.Empty()).To(BeTrue())
		Expect(dst.Len()).To(Equal(3))
		Expect(dst.Values()).To(Equal([]int{1, 2, 3}))
	})
})
