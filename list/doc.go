/*
Package list implements a growable array of primitive integers.

A List stores its elements unboxed in a Go slice. Every structural modification
(insertion, removal, clearing) advances the list's epoch, which lets sequences
over the list detect modifications during iteration:

    l := list.From[int32](1, 2, 3)
    s := l.Values()
    s.Next()
    l.Add(4)
    err := s.Next()  // seq.ErrConcurrentModification

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'primcoll.list'.
func tracer() tracing.Trace {
	return tracing.Select("primcoll.list")
}
