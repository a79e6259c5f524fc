/*
Package seq implements lazy, single-pass sequences of primitive values and the
merge-style operators on sorted sequences.

A Sequence is stateful: it starts before its first element, is advanced with Next and
read with Value. Callers check HasNext before advancing:

    for s.HasNext() {
        if err := s.Next(); err != nil {
            return err
        }
        v, _ := s.Value()
        …
    }
    return s.Err()

Sequences which have been derived from a mutable collection are fail-fast: if the
collection is structurally modified while a sequence is in use, every subsequent operation
on the sequence reports ErrConcurrentModification. Err returns this sticky failure.
This is not a concurrency mechanism; nothing in this package is safe for use from
multiple goroutines.

Operators

Operators wrap one or more sequences and are sequences themselves, thus they compose.

    Union(a, b)            sorted-unique merge of two sorted-unique sequences, O(N+M)
    UnionAll(s1, …, sk)    k-way sorted-unique merge using a binary heap, O(N log K)
    Intersect(s1, …, sk)   values common to all sorted inputs, O(N)
    Minus(incl, excl)      values of incl not in excl, both sorted, O(N+M)
    Concat(producers)      flat concatenation of sequences, input order preserved

Merge operators require sorted input. This is a precondition which is not checked;
the result for unsorted input is unspecified.

Internally, sequences are built from two small state machines: one tracks whether a
sequence has been advanced at least once (for sequences which can answer HasNext
cheaply), the other caches a looked-ahead element (for sequences which have to
search for their next element, like all the merge operators).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'primcoll.seq'.
func tracer() tracing.Trace {
	return tracing.Select("primcoll.seq")
}
