package seq

import (
	"reflect"
	"sort"
	"testing"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// The laws of the merge operators are checked against an ordered set of gods,
// which serves as an independent oracle.

func oracle(values ...[]int32) *treeset.Set {
	set := treeset.NewWith(utils.Int32Comparator)
	for _, vs := range values {
		for _, v := range vs {
			set.Add(v)
		}
	}
	return set
}

func oracleValues(set *treeset.Set) []int32 {
	var values []int32
	for _, v := range set.Values() {
		values = append(values, v.(int32))
	}
	return values
}

func sortedUnique(values []int32) []int32 {
	return oracleValues(oracle(values))
}

func drain(s Sequence[int32]) []int32 {
	values, err := ToSlice(s)
	if err != nil {
		panic(err)
	}
	return values
}

func sameValues(a, b []int32) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}

func lawParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return parameters
}

func smallInts() gopter.Gen {
	return gen.SliceOf(gen.Int32Range(-40, 40))
}

func TestUnionLaws(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "primcoll.seq")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	properties := gopter.NewProperties(lawParameters())
	properties.Property("union is the set union", prop.ForAll(
		func(a, b []int32) bool {
			a, b = sortedUnique(a), sortedUnique(b)
			got := drain(Union(FromSlice(a), FromSlice(b)))
			return sameValues(got, oracleValues(oracle(a, b)))
		},
		smallInts(), smallInts(),
	))
	properties.Property("union is associative and equals k-way union", prop.ForAll(
		func(a, b, c []int32) bool {
			a, b, c = sortedUnique(a), sortedUnique(b), sortedUnique(c)
			left := drain(Union(Union(FromSlice(a), FromSlice(b)), FromSlice(c)))
			right := drain(Union(FromSlice(a), Union(FromSlice(b), FromSlice(c))))
			kway := drain(UnionAll(FromSlice(a), FromSlice(b), FromSlice(c)))
			return sameValues(left, right) && sameValues(left, kway)
		},
		smallInts(), smallInts(), smallInts(),
	))
	properties.Property("k-way union of many inputs is the set union", prop.ForAll(
		func(a, b, c, d, e []int32) bool {
			inputs := [][]int32{sortedUnique(a), sortedUnique(b), sortedUnique(c), sortedUnique(d), sortedUnique(e)}
			seqs := make([]Sequence[int32], len(inputs))
			for i, in := range inputs {
				seqs[i] = FromSlice(in)
			}
			return sameValues(drain(UnionAll(seqs...)), oracleValues(oracle(inputs...)))
		},
		smallInts(), smallInts(), smallInts(), smallInts(), smallInts(),
	))
	properties.TestingRun(t)
}

func TestIntersectionLaws(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "primcoll.seq")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	properties := gopter.NewProperties(lawParameters())
	properties.Property("intersection contains the common values", prop.ForAll(
		func(a, b, c []int32) bool {
			a, b, c = sortedUnique(a), sortedUnique(b), sortedUnique(c)
			sb, sc := oracle(b), oracle(c)
			var expected []int32
			for _, v := range a {
				if sb.Contains(v) && sc.Contains(v) {
					expected = append(expected, v)
				}
			}
			got := drain(Intersect(FromSlice(a), FromSlice(b), FromSlice(c)))
			return sameValues(got, expected)
		},
		smallInts(), smallInts(), smallInts(),
	))
	properties.Property("intersection of sorted input with duplicates is unique", prop.ForAll(
		func(a, b []int32) bool {
			sort.Slice(a, func(i, j int) bool { return a[i] < a[j] })
			sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
			got := drain(Intersect(FromSlice(a), FromSlice(b)))
			expected := drain(Intersect(FromSlice(sortedUnique(a)), FromSlice(sortedUnique(b))))
			return sameValues(got, expected)
		},
		smallInts(), smallInts(),
	))
	properties.TestingRun(t)
}

func TestMinusLaws(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "primcoll.seq")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	properties := gopter.NewProperties(lawParameters())
	properties.Property("minus keeps order and multiplicity of survivors", prop.ForAll(
		func(include, exclude []int32) bool {
			sort.Slice(include, func(i, j int) bool { return include[i] < include[j] })
			exclude = sortedUnique(exclude)
			ex := oracle(exclude)
			var expected []int32
			for _, v := range include {
				if !ex.Contains(v) {
					expected = append(expected, v)
				}
			}
			got := drain(Minus(FromSlice(include), FromSlice(exclude)))
			return sameValues(got, expected)
		},
		smallInts(), smallInts(),
	))
	properties.Property("concatenation preserves input order", prop.ForAll(
		func(a, b, c []int32) bool {
			expected := append(append(append([]int32{}, a...), b...), c...)
			got := drain(Append(FromSlice(a), FromSlice(b), FromSlice(c)))
			return sameValues(got, expected)
		},
		smallInts(), smallInts(), smallInts(),
	))
	properties.TestingRun(t)
}
