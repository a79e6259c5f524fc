package result_test

import (
	"errors"
	"testing"

	. "github.com/npillmayer/primcoll/result"
)

func TestResultSimple(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultOf(t *testing.T) {
	errStale := errors.New("stale")
	r := Of(int64(0), errStale)
	if r.IsOk() {
		t.Error("expected Of(0, err) to be an error result, isn't")
	}
	if _, err := r.Get(); !errors.Is(err, errStale) {
		t.Errorf("expected error to be %v, is %v", errStale, err)
	}
	if d := r.WithDefault(-1); d != -1 {
		t.Errorf("expected default -1 for error result, is %d", d)
	}
	if v := Of(int64(5), nil).WithDefault(-1); v != 5 {
		t.Errorf("expected Of(5, nil) to yield 5, is %d", v)
	}
}

func TestResultAndThen(t *testing.T) {
	half := func(n int) Result[int] {
		if n%2 != 0 {
			return Err[int](errors.New("odd"))
		}
		return Ok(n / 2)
	}
	if v, err := AndThen(Ok(8), half).Get(); err != nil || v != 4 {
		t.Errorf("expected Ok(8) |> half to be 4, is (%d,%v)", v, err)
	}
	if AndThen(Ok(7), half).IsOk() {
		t.Error("expected Ok(7) |> half to fail, didn't")
	}
	if AndThen(Err[int](errors.New("x")), half).IsOk() {
		t.Error("expected error to short-circuit, didn't")
	}
}
