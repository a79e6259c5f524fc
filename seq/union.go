package seq

import (
	"github.com/npillmayer/primcoll"
)

// head is the look-ahead of a merge operator into one of its inputs.
type head[T any] struct {
	value T
	valid bool // value holds an element not yet merged
	done  bool // input is exhausted
}

// refill pulls the next element of s into h, if h has been consumed.
func (h *head[T]) refill(s Sequence[T]) error {
	if h.valid || h.done {
		return nil
	}
	v, ok, err := advance(s)
	if err != nil {
		return err
	}
	h.value, h.valid, h.done = v, ok, !ok
	return nil
}

func (h *head[T]) take() T {
	h.valid = false
	return h.value
}

// --- Union of two sequences ------------------------------------------------

type union[T primcoll.Integer] struct {
	a, b   Sequence[T]
	ha, hb head[T]
}

// Union merges two sorted-unique sequences into a sorted-unique sequence.
// Values present in both inputs are produced once.
//
// Inputs must be strictly increasing; this is not checked.
func Union[T primcoll.Integer](a, b Sequence[T]) Sequence[T] {
	return find[T](&union[T]{a: a, b: b})
}

func (u *union[T]) find() (T, bool, error) {
	var zero T
	if err := u.ha.refill(u.a); err != nil {
		return zero, false, err
	}
	if err := u.hb.refill(u.b); err != nil {
		return zero, false, err
	}
	switch {
	case !u.ha.valid && !u.hb.valid:
		return zero, false, nil
	case !u.hb.valid:
		return u.ha.take(), true, nil
	case !u.ha.valid:
		return u.hb.take(), true, nil
	case u.ha.value < u.hb.value:
		return u.ha.take(), true, nil
	case u.hb.value < u.ha.value:
		return u.hb.take(), true, nil
	}
	u.hb.take() // equal heads collapse into one value
	return u.ha.take(), true, nil
}

func (u *union[T]) validate() error {
	return validateAll(u.a, u.b)
}

func (u *union[T]) describe() (string, []any) {
	return "union", []any{u.a, u.b}
}
