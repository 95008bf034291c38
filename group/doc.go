/*
Package group groups the elements of a list by a key.

By is the plain variant, returning a Go map; it makes no promise about the
order of keys. Ordered remembers the order in which keys were first seen. Both
keep the members of a group in input order.

    people := group.Sample()
    byAge := group.By(people, func(p group.Person) int { return p.Age })
    // byAge[31] = [Alice Carol], byAge[29] = [Bob]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package group

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'idioms.group'.
func tracer() tracing.Trace {
	return tracing.Select("idioms.group")
}
