package seq

// lookahead is the state of the element cache of a finding sequence.
type lookahead uint8

const (
	noCached lookahead = iota // next element not searched for yet
	cached                    // next element found and cached
	finished                  // search failed, sequence is done for good
)

// searcher is implemented by sequences which have to search for their next element.
// find attempts to find the next qualifying element. It is called at most once per
// element; a failed search is final.
type searcher[T any] interface {
	find() (T, bool, error)
}

// finding caches the result of a search, thus HasNext followed by Next searches
// only once, and Next without a prior HasNext triggers the search itself.
type finding[T any] struct {
	impl  searcher[T]
	state lookahead
	ahead T // valid if state == cached
	cur   T // valid if pos == positioned
	pos   position
	err   error
}

func find[T any](impl searcher[T]) *finding[T] {
	return &finding[T]{impl: impl}
}

func (f *finding[T]) HasNext() bool {
	if f.validate() != nil {
		return false
	}
	switch f.state {
	case cached:
		return true
	case finished:
		return false
	}
	v, ok, err := f.impl.find()
	if err != nil {
		tracer().Debugf("sequence search failed: %v", err)
		f.err = err
		f.state = finished
		return false
	}
	if !ok {
		f.state = finished
		return false
	}
	f.ahead, f.state = v, cached
	return true
}

func (f *finding[T]) Next() error {
	if err := f.validate(); err != nil {
		f.pos = exhausted
		return err
	}
	if !f.HasNext() {
		f.pos = exhausted
		if f.err != nil {
			return f.err
		}
		return ErrNoSuchElement
	}
	f.cur, f.state, f.pos = f.ahead, noCached, positioned
	return nil
}

func (f *finding[T]) Value() (T, error) {
	if err := f.validate(); err != nil {
		var zero T
		return zero, err
	}
	if f.pos != positioned {
		var zero T
		return zero, ErrNoCurrentValue
	}
	return f.cur, nil
}

// HasValue is true if the sequence is positioned at an element.
func (f *finding[T]) HasValue() bool {
	return f.pos == positioned && f.err == nil
}

func (f *finding[T]) Err() error {
	return f.validate()
}

// validate checks the inputs of the search. A cached element is worthless once an
// input has been invalidated.
func (f *finding[T]) validate() error {
	if f.err == nil {
		if v, ok := f.impl.(validator); ok {
			if err := v.validate(); err != nil {
				tracer().Debugf("input of sequence invalidated: %v", err)
				f.err, f.state = err, finished
			}
		}
	}
	return f.err
}

func (f *finding[T]) describe() (string, []any) {
	return describeImpl(f.impl)
}
