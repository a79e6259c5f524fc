package seq

import (
	"fmt"

	"github.com/npillmayer/primcoll"
)

// intersection advances its inputs in lockstep. Every input is skipped forward
// until it reaches the current candidate; an input overtaking the candidate
// proposes a new, larger candidate. Skipping never rewinds, thus the whole
// traversal is linear in the total number of input elements.
type intersection[T primcoll.Integer] struct {
	seqs    []Sequence[T]
	heads   []T
	primed  bool
	emitted bool // last holds a value already produced
	last    T
	done    bool
}

// Intersect returns the values present in every one of seqs, in ascending order.
// Inputs must be sorted; they may contain duplicates, but every common value is
// produced once. The intersection of no sequences is empty.
func Intersect[T primcoll.Integer](seqs ...Sequence[T]) Sequence[T] {
	return find[T](&intersection[T]{seqs: seqs})
}

// skipTo advances input i until its head is at least v. ok is false if the input
// is exhausted before.
func (in *intersection[T]) skipTo(i int, v T) (T, bool, error) {
	for in.heads[i] < v {
		w, ok, err := advance(in.seqs[i])
		if !ok || err != nil {
			return w, false, err
		}
		in.heads[i] = w
	}
	return in.heads[i], true, nil
}

func (in *intersection[T]) prime() (bool, error) {
	in.heads = make([]T, len(in.seqs))
	for i, s := range in.seqs {
		v, ok, err := advance(s)
		if !ok || err != nil {
			return false, err
		}
		in.heads[i] = v
	}
	in.primed = true
	return true, nil
}

func (in *intersection[T]) find() (T, bool, error) {
	var zero T
	if in.done || len(in.seqs) == 0 {
		return zero, false, nil
	}
	if !in.primed {
		if ok, err := in.prime(); !ok {
			in.done = true
			return zero, false, err
		}
	}
	candidate := in.heads[0]
	if in.emitted && candidate <= in.last { // move past the value produced last
		for candidate <= in.last {
			v, ok, err := advance(in.seqs[0])
			if !ok || err != nil {
				in.done = true
				return zero, false, err
			}
			candidate, in.heads[0] = v, v
		}
	}
	k := len(in.seqs)
	accepted := 1 // input 0 holds the candidate
	for i := 1 % k; accepted < k; i = (i + 1) % k {
		h, ok, err := in.skipTo(i, candidate)
		if !ok || err != nil {
			in.done = true
			return zero, false, err
		}
		if h == candidate {
			accepted++
		} else {
			tracer().Debugf("intersection: input %d overtakes candidate %v with %v", i, candidate, h)
			candidate, accepted = h, 1
		}
	}
	in.last, in.emitted = candidate, true
	return candidate, true, nil
}

func (in *intersection[T]) validate() error {
	return validateAll(in.seqs...)
}

func (in *intersection[T]) describe() (string, []any) {
	children := make([]any, len(in.seqs))
	for i, s := range in.seqs {
		children[i] = s
	}
	return fmt.Sprintf("intersect(k=%d)", len(in.seqs)), children
}
