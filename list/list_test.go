package list

import (
	"errors"
	"testing"

	"github.com/npillmayer/primcoll/seq"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBasics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "primcoll.list")
	defer teardown()
	//
	l := New[int32](Capacity(4))
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 4, cap(l.items))
	l.Add(1, 2, 4)
	l.Insert(2, 3)
	l.Insert(0, 0)
	l.Insert(l.Len(), 5)
	assert.Equal(t, []int32{0, 1, 2, 3, 4, 5}, l.Slice())
	assert.Equal(t, int32(0), l.RemoveAt(0))
	assert.Equal(t, int32(3), l.Set(2, 33))
	assert.Equal(t, []int32{1, 2, 33, 4, 5}, l.Slice())
	assert.Equal(t, 2, l.IndexOf(33))
	assert.Equal(t, -1, l.IndexOf(3))
	l.Clear()
	assert.Equal(t, 0, l.Len())
}

func TestListZeroValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "primcoll.list")
	defer teardown()
	//
	var l List[int64]
	l.Add(7)
	assert.Equal(t, int64(7), l.Get(0))
}

func TestListOutOfBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "primcoll.list")
	defer teardown()
	//
	l := From[int32](1)
	assert.Panics(t, func() { l.Get(1) })
	assert.Panics(t, func() { l.Insert(3, 1) })
	assert.Panics(t, func() { l.RemoveAt(-1) })
}

func TestEpoch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "primcoll.list")
	defer teardown()
	//
	l := From[int32](3, 1, 2)
	e := l.Epoch()
	l.Set(0, 5)
	assert.Equal(t, e, l.Epoch(), "expected Set not to be a structural modification")
	l.Add()
	assert.Equal(t, e, l.Epoch(), "expected adding nothing not to modify the list")
	steps := []func(){
		func() { l.Add(9) },
		func() { l.Insert(0, 8) },
		func() { l.RemoveAt(0) },
		func() { l.Sort() },
		func() { l.Clear() },
	}
	for i, step := range steps {
		step()
		if l.Epoch() <= e {
			t.Errorf("expected step %d to advance the epoch, didn't", i)
		}
		e = l.Epoch()
	}
}

func TestValuesFailFast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "primcoll.list")
	defer teardown()
	//
	l := From[int32](1, 2, 3)
	values, err := seq.ToSlice(l.Values())
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3}, values)
	//
	s := l.Values()
	require.NoError(t, s.Next())
	l.Add(4)
	if err := s.Next(); !errors.Is(err, seq.ErrConcurrentModification) {
		t.Errorf("expected modification to invalidate sequence, is %v", err)
	}
}

func TestRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "primcoll.list")
	defer teardown()
	//
	l := From[int64](1, 2, 3, 4)
	s, err := l.Range(1, 3)
	require.NoError(t, err)
	values, err := seq.ToSlice(s)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, values)
	_, err = l.Range(2, 9)
	assert.ErrorIs(t, err, seq.ErrIllegalArgument)
}

func TestAddAllAndSearch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "primcoll.list")
	defer teardown()
	//
	l := From[int32](5, 1)
	require.NoError(t, l.AddAll(l.Values()))
	assert.Equal(t, []int32{5, 1, 5, 1}, l.Slice())
	l.Sort()
	assert.Equal(t, []int32{1, 1, 5, 5}, l.Slice())
	assert.Equal(t, 2, l.Search(3))
	assert.Equal(t, 0, l.Search(1))
	assert.Equal(t, 4, l.Search(6))
	assert.Equal(t, "[1 1 5 5]", l.String())
}

func TestListsConcatenate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "primcoll.list")
	defer teardown()
	//
	a, b, c := From[int32](1, 2), New[int32](), From[int32](3)
	values, err := seq.ToSlice(seq.Chain[int32](a, b, c))
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3}, values)
}
