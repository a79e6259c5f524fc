/*
Package sortedset implements sets of primitive integers, stored as sorted arrays.

Set algebra is lazy: Union, Intersect and Minus return sequences, which merge the
sorted element arrays on demand. Results may be materialized with Collect:

    a := sortedset.Of[int32](1, 3, 5)
    b := sortedset.Of[int32](2, 3, 6)
    u, err := sortedset.Collect(a.Union(b))   // {1, 2, 3, 5, 6}

Sequences over a set fail fast if the set is modified during iteration.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sortedset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'primcoll.sortedset'.
func tracer() tracing.Trace {
	return tracing.Select("primcoll.sortedset")
}
