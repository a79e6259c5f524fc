package seq

import (
	"github.com/npillmayer/primcoll"
)

// difference filters include through a cursor on exclude which only moves forward.
type difference[T primcoll.Integer] struct {
	include, exclude Sequence[T]
	cursor           head[T]
}

// Minus returns the values of include which are not present in exclude, in the
// order of include. Both inputs must be sorted; include may contain duplicates,
// which are kept if they survive.
func Minus[T primcoll.Integer](include, exclude Sequence[T]) Sequence[T] {
	return find[T](&difference[T]{include: include, exclude: exclude})
}

func (d *difference[T]) find() (T, bool, error) {
	for {
		v, ok, err := advance(d.include)
		if !ok || err != nil {
			return v, false, err
		}
		if excluded, err := d.excludes(v); err != nil {
			return v, false, err
		} else if !excluded {
			return v, true, nil
		}
	}
}

// excludes moves the cursor to the first excluded value not less than v and
// reports whether it is equal to v.
func (d *difference[T]) excludes(v T) (bool, error) {
	for !d.cursor.done && (!d.cursor.valid || d.cursor.value < v) {
		d.cursor.valid = false
		if err := d.cursor.refill(d.exclude); err != nil {
			return false, err
		}
	}
	return d.cursor.valid && d.cursor.value == v, nil
}

func (d *difference[T]) validate() error {
	return validateAll(d.include, d.exclude)
}

func (d *difference[T]) describe() (string, []any) {
	return "minus", []any{d.include, d.exclude}
}
