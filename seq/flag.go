package seq

// position is the position of a sequence relative to its elements.
type position uint8

const (
	unstarted  position = iota // Next has not been called
	positioned                 // Value is legal
	exhausted                  // an advance has failed
)

// stepper is implemented by sequences which are able to tell cheaply whether they may be
// advanced. step leaves the stepper able to answer current.
type stepper[T any] interface {
	canStep() bool
	step() error
	current() (T, error)
	failure() error
}

// flagged gives a stepper the life cycle of a sequence: it remembers whether the
// stepper has been advanced and guards reads of the current value.
type flagged[T any] struct {
	impl stepper[T]
	pos  position
}

func flag[T any](impl stepper[T]) *flagged[T] {
	return &flagged[T]{impl: impl}
}

func (f *flagged[T]) HasNext() bool {
	return f.impl.failure() == nil && f.impl.canStep()
}

func (f *flagged[T]) Next() error {
	if err := f.impl.failure(); err != nil {
		f.pos = exhausted
		return err
	}
	if !f.impl.canStep() {
		f.pos = exhausted
		if err := f.impl.failure(); err != nil {
			return err
		}
		return ErrNoSuchElement
	}
	if err := f.impl.step(); err != nil {
		f.pos = exhausted
		return err
	}
	f.pos = positioned
	return nil
}

func (f *flagged[T]) Value() (T, error) {
	if err := f.impl.failure(); err != nil {
		var zero T
		return zero, err
	}
	if f.pos != positioned {
		var zero T
		return zero, ErrNoCurrentValue
	}
	return f.impl.current()
}

// HasValue is true if the sequence is positioned at an element.
func (f *flagged[T]) HasValue() bool {
	return f.pos == positioned
}

func (f *flagged[T]) Err() error {
	return f.impl.failure()
}

func (f *flagged[T]) validate() error {
	return f.impl.failure()
}

func (f *flagged[T]) describe() (string, []any) {
	return describeImpl(f.impl)
}
