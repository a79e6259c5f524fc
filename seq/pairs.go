package seq

import (
	"github.com/npillmayer/primcoll"
)

// --- Pairing ---------------------------------------------------------------

type zipped[A, B comparable] struct {
	left  Sequence[A]
	right Sequence[B]
}

// Zip pairs the elements of two sequences. The resulting sequence ends with the
// shorter input.
func Zip[A, B comparable](left Sequence[A], right Sequence[B]) Sequence[primcoll.Pair[A, B]] {
	return flag[primcoll.Pair[A, B]](&zipped[A, B]{left: left, right: right})
}

func (z *zipped[A, B]) canStep() bool {
	return z.left.HasNext() && z.right.HasNext()
}

func (z *zipped[A, B]) step() error {
	if err := z.left.Next(); err != nil {
		return err
	}
	return z.right.Next()
}

func (z *zipped[A, B]) current() (primcoll.Pair[A, B], error) {
	var p primcoll.Pair[A, B]
	var err error
	if p.Left, err = z.left.Value(); err != nil {
		return p, err
	}
	p.Right, err = z.right.Value()
	return p, err
}

func (z *zipped[A, B]) failure() error {
	if err := z.left.Err(); err != nil {
		return err
	}
	return z.right.Err()
}

func (z *zipped[A, B]) describe() (string, []any) {
	return "zip", []any{z.left, z.right}
}

// --- Projections -----------------------------------------------------------

type mapped[S, T any] struct {
	src Sequence[S]
	f   func(S) T
}

// Map projects every element of src with f. f is called on every read of the
// current value and should therefore be cheap and free of side effects.
func Map[S, T any](src Sequence[S], f func(S) T) Sequence[T] {
	return flag[T](&mapped[S, T]{src: src, f: f})
}

func (m *mapped[S, T]) canStep() bool {
	return m.src.HasNext()
}

func (m *mapped[S, T]) step() error {
	return m.src.Next()
}

func (m *mapped[S, T]) current() (T, error) {
	v, err := m.src.Value()
	if err != nil {
		var zero T
		return zero, err
	}
	return m.f(v), nil
}

func (m *mapped[S, T]) failure() error {
	return m.src.Err()
}

func (m *mapped[S, T]) describe() (string, []any) {
	return "map", []any{m.src}
}

// Lefts projects a sequence of pairs onto the left components.
func Lefts[A, B comparable](pairs Sequence[primcoll.Pair[A, B]]) Sequence[A] {
	return Map(pairs, primcoll.First[A, B])
}

// Rights projects a sequence of pairs onto the right components.
func Rights[A, B comparable](pairs Sequence[primcoll.Pair[A, B]]) Sequence[B] {
	return Map(pairs, primcoll.Second[A, B])
}

// --- Filtering -------------------------------------------------------------

type filtered[T any] struct {
	src  Sequence[T]
	pred func(T) bool
}

// Filter returns the elements of src for which pred holds.
func Filter[T any](src Sequence[T], pred func(T) bool) Sequence[T] {
	return find[T](&filtered[T]{src: src, pred: pred})
}

func (flt *filtered[T]) find() (T, bool, error) {
	for {
		v, ok, err := advance(flt.src)
		if !ok || err != nil {
			return v, false, err
		}
		if flt.pred(v) {
			return v, true, nil
		}
	}
}

func (flt *filtered[T]) validate() error {
	return validateAll(flt.src)
}

func (flt *filtered[T]) describe() (string, []any) {
	return "filter", []any{flt.src}
}
