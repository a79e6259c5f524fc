package list

import (
	"fmt"
	"sort"

	"github.com/npillmayer/primcoll"
	"github.com/npillmayer/primcoll/seq"
)

// List is a growable array of integers. The zero value is an empty list ready to use.
// Lists are not safe for concurrent use.
type List[T primcoll.Integer] struct {
	items []T
	epoch uint64
}

// New creates an empty list, configured by options.
func New[T primcoll.Integer](opts ...Option) *List[T] {
	p := props{}
	for _, option := range opts {
		p = option(p)
	}
	return &List[T]{items: make([]T, 0, p.capacity)}
}

// From creates a list holding values.
func From[T primcoll.Integer](values ...T) *List[T] {
	l := New[T](Capacity(len(values)))
	l.items = append(l.items, values...)
	return l
}

type props struct {
	capacity int
}

// Option is a type to help initializing lists at creation time.
type Option func(props) props

// Capacity is an option to pre-allocate space for n elements. Negative values are
// treated as 0.
//
// Use it like this:
//
//     l := list.New[int64](list.Capacity(1024))
//
func Capacity(n int) Option {
	return func(p props) props {
		if n < 0 {
			n = 0
		}
		p.capacity = n
		return p
	}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Epoch returns the modification epoch of l. It increases with every structural
// modification.
func (l *List[T]) Epoch() uint64 {
	return l.epoch
}

// Get returns the element at position i.
func (l *List[T]) Get(i int) T {
	l.checkIndex(i, len(l.items))
	return l.items[i]
}

// Set replaces the element at position i and returns the previous one.
// Set is not a structural modification.
func (l *List[T]) Set(i int, value T) T {
	l.checkIndex(i, len(l.items))
	old := l.items[i]
	l.items[i] = value
	return old
}

// Add appends values.
func (l *List[T]) Add(values ...T) {
	if len(values) == 0 {
		return
	}
	l.items = append(l.items, values...)
	l.modified()
}

// Insert inserts value at position i, shifting subsequent elements to the right.
// i may be equal to Len.
func (l *List[T]) Insert(i int, value T) {
	l.checkIndex(i, len(l.items)+1)
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = value
	l.modified()
}

// RemoveAt removes the element at position i and returns it.
func (l *List[T]) RemoveAt(i int) T {
	l.checkIndex(i, len(l.items))
	v := l.items[i]
	copy(l.items[i:], l.items[i+1:])
	l.items = l.items[:len(l.items)-1]
	l.modified()
	return v
}

// Clear removes all elements, retaining the allocated space.
func (l *List[T]) Clear() {
	tracer().Debugf("clearing list of %d elements", len(l.items))
	l.items = l.items[:0]
	l.modified()
}

// IndexOf returns the position of the first occurrence of value, or -1.
func (l *List[T]) IndexOf(value T) int {
	for i, v := range l.items {
		if v == value {
			return i
		}
	}
	return -1
}

// Search returns the smallest position i with l.Get(i) >= value, or Len if there is
// none. l must be sorted in ascending order.
func (l *List[T]) Search(value T) int {
	return sort.Search(len(l.items), func(i int) bool {
		return l.items[i] >= value
	})
}

// Sort sorts the elements in ascending order. Sorting is not a structural modification,
// but it re-orders elements, thus sequences over l are invalidated anyway.
func (l *List[T]) Sort() {
	sort.Slice(l.items, func(i, j int) bool {
		return l.items[i] < l.items[j]
	})
	l.modified()
}

// Slice returns a copy of the elements.
func (l *List[T]) Slice() []T {
	return append([]T(nil), l.items...)
}

// Values returns a fail-fast sequence over the elements of l.
func (l *List[T]) Values() seq.Sequence[T] {
	return seq.NewFailFast(seq.Indexed[T](l), l)
}

// Range returns a fail-fast sequence over the elements at positions [from…to).
func (l *List[T]) Range(from, to int) (seq.Sequence[T], error) {
	s, err := seq.IndexedRange[T](l, from, to)
	if err != nil {
		return nil, err
	}
	return seq.NewFailFast(s, l), nil
}

// AddAll appends the remaining elements of s. Elements read before a failure of s
// are appended nevertheless.
func (l *List[T]) AddAll(s seq.Sequence[T]) error {
	values, err := seq.ToSlice(s)
	l.Add(values...)
	return err
}

func (l *List[T]) String() string {
	return fmt.Sprintf("%v", l.items)
}

func (l *List[T]) modified() {
	l.epoch++
}

func (l *List[T]) checkIndex(i, limit int) {
	assertThat(i >= 0 && i < limit, "list index out of bounds: %d with length %d", i, len(l.items))
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}

var _ seq.Iterable[int32] = &List[int32]{}
var _ seq.RandomAccess[int64] = &List[int64]{}
