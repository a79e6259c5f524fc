package sortedset

import (
	"fmt"

	"github.com/npillmayer/primcoll"
	"github.com/npillmayer/primcoll/list"
	"github.com/npillmayer/primcoll/maybe"
	"github.com/npillmayer/primcoll/seq"
)

// Set is a set of integers, kept as a sorted array without duplicates.
type Set[T primcoll.Integer] struct {
	elems *list.List[T]
}

// New creates an empty set. Options are those of package list.
func New[T primcoll.Integer](opts ...list.Option) *Set[T] {
	return &Set[T]{elems: list.New[T](opts...)}
}

// Of creates a set from values, which may be unordered and contain duplicates.
func Of[T primcoll.Integer](values ...T) *Set[T] {
	l := list.From(values...)
	l.Sort()
	set := New[T](list.Capacity(l.Len()))
	_ = set.appendSorted(l.Values()) // l is private and cannot change
	return set
}

// Collect materializes a sequence into a set. Sorted input is appended in linear time,
// other input is inserted element by element.
func Collect[T primcoll.Integer](s seq.Sequence[T]) (*Set[T], error) {
	set := New[T]()
	err := set.appendSorted(s)
	return set, err
}

func (set *Set[T]) appendSorted(s seq.Sequence[T]) error {
	return seq.ForEach(s, func(v T) {
		if n := set.elems.Len(); n == 0 || set.elems.Get(n-1) < v {
			set.elems.Add(v)
			return
		}
		set.Add(v)
	})
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements.
func (set *Set[T]) Len() int {
	return set.elems.Len()
}

// Epoch returns the modification epoch of set.
func (set *Set[T]) Epoch() uint64 {
	return set.elems.Epoch()
}

// Contains is true if v is an element of set.
func (set *Set[T]) Contains(v T) bool {
	i := set.elems.Search(v)
	return i < set.elems.Len() && set.elems.Get(i) == v
}

// Add inserts v and reports whether set did not already contain it.
func (set *Set[T]) Add(v T) bool {
	i := set.elems.Search(v)
	if i < set.elems.Len() && set.elems.Get(i) == v {
		return false
	}
	set.elems.Insert(i, v)
	return true
}

// Remove deletes v and reports whether set contained it.
func (set *Set[T]) Remove(v T) bool {
	i := set.elems.Search(v)
	if i == set.elems.Len() || set.elems.Get(i) != v {
		return false
	}
	set.elems.RemoveAt(i)
	return true
}

// Clear removes all elements.
func (set *Set[T]) Clear() {
	set.elems.Clear()
}

// Min returns the smallest element, if any.
func (set *Set[T]) Min() maybe.Maybe[T] {
	if set.elems.Len() == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(set.elems.Get(0))
}

// Max returns the largest element, if any.
func (set *Set[T]) Max() maybe.Maybe[T] {
	if set.elems.Len() == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(set.elems.Get(set.elems.Len() - 1))
}

// Values returns a fail-fast sequence over the elements in ascending order.
func (set *Set[T]) Values() seq.Sequence[T] {
	return set.elems.Values()
}

// Between returns a fail-fast sequence over the elements in [from…to).
func (set *Set[T]) Between(from, to T) (seq.Sequence[T], error) {
	if to < from {
		return nil, fmt.Errorf("%w: reversed range [%v…%v)", seq.ErrIllegalArgument, from, to)
	}
	return set.elems.Range(set.elems.Search(from), set.elems.Search(to))
}

// Slice returns a copy of the elements in ascending order.
func (set *Set[T]) Slice() []T {
	return set.elems.Slice()
}

func (set *Set[T]) String() string {
	return set.elems.String()
}

// --- Set algebra -----------------------------------------------------------

// Union returns the elements present in set or in any of others, in ascending order.
func (set *Set[T]) Union(others ...*Set[T]) seq.Sequence[T] {
	return seq.UnionAll(set.with(others)...)
}

// Intersect returns the elements present in set and in all of others, in ascending order.
func (set *Set[T]) Intersect(others ...*Set[T]) seq.Sequence[T] {
	return seq.Intersect(set.with(others)...)
}

// Minus returns the elements of set not present in other, in ascending order.
func (set *Set[T]) Minus(other *Set[T]) seq.Sequence[T] {
	return seq.Minus(set.Values(), other.Values())
}

// Equals is true if set and other contain the same elements.
func (set *Set[T]) Equals(other *Set[T]) bool {
	if set.Len() != other.Len() {
		return false
	}
	for i := 0; i < set.Len(); i++ {
		if set.elems.Get(i) != other.elems.Get(i) {
			return false
		}
	}
	return true
}

// IsSubsetOf is true if every element of set is contained in other.
func (set *Set[T]) IsSubsetOf(other *Set[T]) bool {
	n, err := seq.Len(set.Minus(other))
	return err == nil && n == 0
}

func (set *Set[T]) with(others []*Set[T]) []seq.Sequence[T] {
	seqs := make([]seq.Sequence[T], 0, len(others)+1)
	seqs = append(seqs, set.Values())
	for _, o := range others {
		seqs = append(seqs, o.Values())
	}
	tracer().Debugf("set operation on %d sets", len(seqs))
	return seqs
}

var _ seq.Iterable[int32] = &Set[int32]{}
