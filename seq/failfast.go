package seq

import (
	"fmt"

	"github.com/npillmayer/primcoll/result"
)

// Epoch is implemented by mutable collections. The epoch is a counter which strictly
// increases on every structural modification of the collection.
type Epoch interface {
	Epoch() uint64
}

// FailFast guards a sequence derived from a mutable collection. It takes a snapshot of
// the collection's epoch at creation time and re-validates it on every operation.
// Once a modification has been detected, the sequence is invalid for good and every
// operation reports ErrConcurrentModification.
type FailFast[T any] struct {
	seq      Sequence[T]
	owner    Epoch
	snapshot uint64
	err      error
}

// NewFailFast wraps s, which iterates over owner.
func NewFailFast[T any](s Sequence[T], owner Epoch) *FailFast[T] {
	return &FailFast[T]{seq: s, owner: owner, snapshot: owner.Epoch()}
}

// checkEpoch compares an epoch snapshot to the live epoch of a collection.
func checkEpoch(snapshot, live uint64) error {
	if snapshot != live {
		return fmt.Errorf("%w: epoch %d, expected %d", ErrConcurrentModification, live, snapshot)
	}
	return nil
}

func (ff *FailFast[T]) validate() error {
	if ff.err == nil {
		if ff.err = checkEpoch(ff.snapshot, ff.owner.Epoch()); ff.err != nil {
			tracer().Debugf("fail-fast sequence invalidated: %v", ff.err)
			return ff.err
		}
		return validateAll(ff.seq)
	}
	return ff.err
}

func (ff *FailFast[T]) HasNext() bool {
	if ff.validate() != nil {
		return false
	}
	return ff.seq.HasNext()
}

func (ff *FailFast[T]) Next() error {
	if err := ff.validate(); err != nil {
		return err
	}
	return ff.seq.Next()
}

// Current returns the current element, or the reason why there is none.
func (ff *FailFast[T]) Current() result.Result[T] {
	if err := ff.validate(); err != nil {
		return result.Err[T](err)
	}
	v, err := ff.seq.Value()
	return result.Of(v, err)
}

func (ff *FailFast[T]) Value() (T, error) {
	return ff.Current().Get()
}

func (ff *FailFast[T]) Err() error {
	if err := ff.validate(); err != nil {
		return err
	}
	return ff.seq.Err()
}

func (ff *FailFast[T]) describe() (string, []any) {
	return fmt.Sprintf("fail-fast(epoch=%d)", ff.snapshot), []any{ff.seq}
}

func (ff *FailFast[T]) HasValue() bool {
	return ff.validate() == nil && HasValue(ff.seq)
}
