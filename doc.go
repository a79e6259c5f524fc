/*
Package primcoll is a library of collections of primitive integer types and of lazy
sequences over them.

Go generics let us write the collections once for every integer type without boxing
values into interfaces. Sub-packages are:

    seq        lazy, single-pass sequences and the sorted-set merge operators
    list       a growable array of integers with a modification epoch
    sortedset  a sorted-unique set of integers, offering set algebra as sequences

Most of the interesting code lives in package seq: unions (two-way and k-way),
intersections and differences of sorted sequences are computed lazily, in a single
pass over the inputs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package primcoll

import "golang.org/x/exp/constraints"

// Integer is the constraint for element types of collections in this module.
type Integer interface {
	constraints.Integer
}
