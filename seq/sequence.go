package seq

import (
	"errors"
	"fmt"

	"github.com/npillmayer/primcoll/maybe"
)

// ErrNoCurrentValue is returned when reading from a sequence which is not positioned
// at an element, i.e. before the first call to Next or after a failed advance.
var ErrNoCurrentValue = errors.New("sequence has no current value")

// ErrNoSuchElement is returned when advancing a sequence past its end.
var ErrNoSuchElement = errors.New("no more elements in sequence")

// ErrConcurrentModification is returned by fail-fast sequences whose backing collection
// has been structurally modified during iteration.
var ErrConcurrentModification = errors.New("collection modified during iteration")

// ErrIllegalArgument is returned by constructors for malformed arguments.
var ErrIllegalArgument = errors.New("illegal argument")

// Sequence is a lazy, single-pass producer of values.
//
// HasNext reports whether another call to Next will succeed. Once HasNext has returned
// false for an exhausted sequence, it will never return true again.
// Next advances the sequence; it returns ErrNoSuchElement if the sequence is exhausted.
// Value returns the element the sequence is positioned at, or ErrNoCurrentValue.
// Err returns a sticky failure which ended the sequence prematurely, if any.
type Sequence[T any] interface {
	HasNext() bool
	Next() error
	Value() (T, error)
	Err() error
}

// Iterable is a producer of sequences, e.g., a collection.
type Iterable[T any] interface {
	Values() Sequence[T]
}

// IterableFunc adapts a function to an Iterable.
type IterableFunc[T any] func() Sequence[T]

// Values calls f.
func (f IterableFunc[T]) Values() Sequence[T] {
	return f()
}

// validator is implemented by sequences which are able to tell whether they, or any
// sequence they read from, have been invalidated.
type validator interface {
	validate() error
}

// validateAll returns the first failure of seqs, if any.
func validateAll[T any](seqs ...Sequence[T]) error {
	for _, s := range seqs {
		if v, ok := s.(validator); ok {
			if err := v.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// --- Helpers ---------------------------------------------------------------

// advance moves s one step ahead and returns the new current value. ok is false if s is
// exhausted. A sequence which stopped because of a failure is never reported as merely
// exhausted: err is set instead.
func advance[T any](s Sequence[T]) (v T, ok bool, err error) {
	if !s.HasNext() {
		return v, false, s.Err()
	}
	if err = s.Next(); err != nil {
		return v, false, err
	}
	if v, err = s.Value(); err != nil {
		return v, false, err
	}
	return v, true, nil
}

// Pull advances s and returns its new current value as Just(v), or Nothing if s is
// exhausted.
func Pull[T any](s Sequence[T]) (maybe.Maybe[T], error) {
	v, ok, err := advance(s)
	if err != nil {
		return maybe.Nothing[T](), err
	}
	return maybe.Of(v, ok), nil
}

// ForEach calls f for every remaining element of s.
func ForEach[T any](s Sequence[T], f func(T)) error {
	for {
		v, ok, err := advance(s)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		f(v)
	}
}

// ToSlice drains s into a slice.
func ToSlice[T any](s Sequence[T]) ([]T, error) {
	var values []T
	err := ForEach(s, func(v T) {
		values = append(values, v)
	})
	return values, err
}

// Len drains s and counts its elements.
func Len[T any](s Sequence[T]) (int, error) {
	n := 0
	err := ForEach(s, func(T) { n++ })
	return n, err
}

func illegalArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrIllegalArgument}, args...)...)
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("seq: "+msg, msgargs...)
		panic(msg)
	}
}

// Positioned is implemented by sequences which are able to tell whether they are
// positioned at an element, i.e. whether Value will succeed.
type Positioned interface {
	HasValue() bool
}

// HasValue reports whether s is positioned at an element. Sequences which do not
// implement Positioned are asked for their value.
func HasValue[T any](s Sequence[T]) bool {
	if p, ok := s.(Positioned); ok {
		return p.HasValue()
	}
	_, err := s.Value()
	return err == nil
}
