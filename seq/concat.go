package seq

import (
	"github.com/npillmayer/primcoll"
)

type concatenation[T any] struct {
	producers Sequence[Iterable[T]]
	current   Sequence[T]
}

// Concat flattens a sequence of producers into one sequence. Producers are asked
// for their values when the previous producer's sequence is exhausted; producers
// yielding no elements are skipped.
func Concat[T any](producers Sequence[Iterable[T]]) Sequence[T] {
	return find[T](&concatenation[T]{producers: producers})
}

// Chain concatenates the values of iterables.
func Chain[T any](iterables ...Iterable[T]) Sequence[T] {
	return Concat[T](FromSlice(iterables))
}

// Once wraps s as an iterable which hands out s itself.
func Once[T any](s Sequence[T]) Iterable[T] {
	return IterableFunc[T](primcoll.Const(s))
}

// Append concatenates sequences.
func Append[T any](seqs ...Sequence[T]) Sequence[T] {
	iterables := make([]Iterable[T], len(seqs))
	for i, s := range seqs {
		iterables[i] = Once(s)
	}
	return Chain(iterables...)
}

func (c *concatenation[T]) find() (T, bool, error) {
	for {
		if c.current != nil {
			v, ok, err := advance(c.current)
			if ok || err != nil {
				return v, ok, err
			}
		}
		p, ok, err := advance(c.producers)
		if !ok || err != nil {
			var zero T
			return zero, false, err
		}
		c.current = p.Values()
		assertThat(c.current != nil, "producer returned a nil sequence")
	}
}

// validate checks the producers and the sequence of the current producer. Sequences
// of later producers are checked when they are reached.
func (c *concatenation[T]) validate() error {
	if err := validateAll(c.producers); err != nil {
		return err
	}
	if c.current == nil {
		return nil
	}
	return validateAll(c.current)
}

func (c *concatenation[T]) describe() (string, []any) {
	if c.current == nil {
		return "concat", []any{c.producers}
	}
	return "concat", []any{c.producers, c.current}
}
