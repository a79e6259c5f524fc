package seq

import (
	"fmt"

	"github.com/npillmayer/primcoll"
)

// unionK merges k sorted-unique sequences. It keeps a binary min-heap of indices
// into the input sequences, keyed by each input's current head value.
//
// The heap is an array of length k+1 with slot 0 unused: the children of slot i
// are at 2i and 2i+1. Only inputs which are not exhausted are in the heap.
type unionK[T primcoll.Integer] struct {
	seqs  []Sequence[T]
	heads []T   // heads[i] is the current value of seqs[i]
	heap  []int // heap[1…n] are indices into seqs
	built bool
}

// UnionAll merges sorted-unique sequences into a sorted-unique sequence.
// Values present in more than one input are produced once.
//
// Inputs must be strictly increasing; this is not checked. Construction is cheap:
// the inputs are not touched before the result is first asked for an element.
func UnionAll[T primcoll.Integer](seqs ...Sequence[T]) Sequence[T] {
	switch len(seqs) {
	case 0:
		return Empty[T]()
	case 1:
		return seqs[0]
	case 2:
		return Union(seqs[0], seqs[1])
	}
	return find[T](&unionK[T]{seqs: seqs})
}

func (u *unionK[T]) len() int {
	return len(u.heap) - 1
}

func (u *unionK[T]) less(i, j int) bool {
	return u.heads[u.heap[i]] < u.heads[u.heap[j]]
}

func (u *unionK[T]) build() error {
	u.heads = make([]T, len(u.seqs))
	u.heap = make([]int, 1, len(u.seqs)+1)
	for i, s := range u.seqs {
		v, ok, err := advance(s)
		if err != nil {
			return err
		}
		if ok {
			u.heads[i] = v
			u.heap = append(u.heap, i)
		}
	}
	for i := u.len() / 2; i >= 1; i-- {
		u.siftDown(i)
	}
	u.built = true
	tracer().Debugf("k-way union: built heap of %d live inputs out of %d", u.len(), len(u.seqs))
	return nil
}

func (u *unionK[T]) siftDown(i int) {
	n := u.len()
	for {
		least := i
		if l := 2 * i; l <= n && u.less(l, least) {
			least = l
		}
		if r := 2*i + 1; r <= n && u.less(r, least) {
			least = r
		}
		if least == i {
			return
		}
		u.heap[i], u.heap[least] = u.heap[least], u.heap[i]
		i = least
	}
}

// pop removes the top of the heap.
func (u *unionK[T]) pop() {
	n := u.len()
	u.heap[1] = u.heap[n]
	u.heap = u.heap[:n]
	if n > 2 {
		u.siftDown(1)
	}
}

func (u *unionK[T]) find() (T, bool, error) {
	var zero T
	if !u.built {
		if err := u.build(); err != nil {
			return zero, false, err
		}
	}
	if u.len() == 0 {
		return zero, false, nil
	}
	v := u.heads[u.heap[1]]
	for u.len() > 0 && u.heads[u.heap[1]] == v { // consume v from every input holding it
		top := u.heap[1]
		w, ok, err := advance(u.seqs[top])
		if err != nil {
			return zero, false, err
		}
		if ok {
			u.heads[top] = w
			u.siftDown(1)
		} else {
			u.pop()
		}
	}
	return v, true, nil
}

func (u *unionK[T]) validate() error {
	return validateAll(u.seqs...)
}

func (u *unionK[T]) describe() (string, []any) {
	children := make([]any, len(u.seqs))
	for i, s := range u.seqs {
		children[i] = s
	}
	return fmt.Sprintf("union(k=%d)", len(u.seqs)), children
}
