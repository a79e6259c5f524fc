package seq

import (
	"fmt"

	"github.com/npillmayer/primcoll"
)

// RandomAccess is the contract of lists which may be iterated by index.
type RandomAccess[T any] interface {
	Get(i int) T
	Len() int
}

// --- Index-based iteration -------------------------------------------------

// indexed walks the positions [from…to) of a random access list. If the list
// shrinks during iteration, iteration stops at its new end.
type indexed[T any] struct {
	list     RandomAccess[T]
	from, to int
	at       int
}

// Indexed returns a sequence over all elements of list.
func Indexed[T any](list RandomAccess[T]) Sequence[T] {
	return flag[T](&indexed[T]{list: list, to: -1, at: -1})
}

// IndexedRange returns a sequence over the elements of list at positions from
// (inclusive) to to (exclusive). Bounds are checked immediately.
func IndexedRange[T any](list RandomAccess[T], from, to int) (Sequence[T], error) {
	if from < 0 || to < from || to > list.Len() {
		return nil, illegalArgument("index range [%d…%d) for list of length %d", from, to, list.Len())
	}
	return flag[T](&indexed[T]{list: list, from: from, to: to, at: from - 1}), nil
}

func (ix *indexed[T]) end() int {
	if ix.to < 0 || ix.to > ix.list.Len() {
		return ix.list.Len()
	}
	return ix.to
}

func (ix *indexed[T]) canStep() bool {
	return ix.at+1 < ix.end()
}

func (ix *indexed[T]) step() error {
	ix.at++
	return nil
}

func (ix *indexed[T]) current() (T, error) {
	if ix.at >= ix.list.Len() {
		var zero T
		return zero, ErrNoCurrentValue
	}
	return ix.list.Get(ix.at), nil
}

func (ix *indexed[T]) failure() error {
	return nil
}

func (ix *indexed[T]) describe() (string, []any) {
	return fmt.Sprintf("indexed[%d…%d)", ix.from, ix.end()), nil
}

// --- Slices ----------------------------------------------------------------

type slice[T any] []T

func (s slice[T]) Get(i int) T {
	return s[i]
}

func (s slice[T]) Len() int {
	return len(s)
}

// FromSlice returns a sequence over the elements of values. The slice is not copied.
func FromSlice[T any](values []T) Sequence[T] {
	return Indexed[T](slice[T](values))
}

// Of returns a sequence over its arguments.
func Of[T any](values ...T) Sequence[T] {
	return FromSlice(values)
}

// Empty returns an exhausted sequence.
func Empty[T any]() Sequence[T] {
	return FromSlice[T](nil)
}

// --- Integer ranges --------------------------------------------------------

// counter produces the integers of [first…last]. Bounds are inclusive, thus the
// full range of T is representable.
type counter[T primcoll.Integer] struct {
	first, last T
	next        T
	empty       bool
	started     bool
}

// Range returns the integers of [from…to) in ascending order.
func Range[T primcoll.Integer](from, to T) (Sequence[T], error) {
	if to < from {
		return nil, illegalArgument("range [%v…%v) is reversed", from, to)
	}
	if to == from {
		return flag[T](&counter[T]{first: from, empty: true}), nil
	}
	return flag[T](&counter[T]{first: from, last: to - 1, next: from}), nil
}

// Count returns n consecutive integers, starting at start. The last integer
// start+n-1 has to be representable in T.
func Count[T primcoll.Integer](start T, n int) (Sequence[T], error) {
	if n < 0 {
		return nil, illegalArgument("negative count %d", n)
	}
	if n == 0 {
		return flag[T](&counter[T]{first: start, empty: true}), nil
	}
	d := T(n - 1)
	if uint64(d) != uint64(n-1) || start+d < start {
		return nil, illegalArgument("count %d from %v overflows", n, start)
	}
	return flag[T](&counter[T]{first: start, last: start + d, next: start}), nil
}

func (c *counter[T]) canStep() bool {
	return !c.empty && (!c.started || c.next < c.last)
}

func (c *counter[T]) step() error {
	if c.started {
		c.next++
	}
	c.started = true
	return nil
}

func (c *counter[T]) current() (T, error) {
	return c.next, nil
}

func (c *counter[T]) failure() error {
	return nil
}

func (c *counter[T]) describe() (string, []any) {
	if c.empty {
		return fmt.Sprintf("count(%v, empty)", c.first), nil
	}
	return fmt.Sprintf("count(%v…%v)", c.first, c.last), nil
}
