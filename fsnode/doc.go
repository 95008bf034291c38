/*
Package fsnode walks the chain of parent directories of filesystem nodes.

The chain of a node starts with the node itself, followed by its parent, the
parent of the parent, and so on, up to a node without a parent. It is
produced lazily: a node's parent is not asked for before the walk reaches it.

    file := fsnode.NewPathNode("/Users/x/.Hidden/a.txt")
    fsnode.IsInsideHiddenDirectory(file)   // true

Package fsnode does not guard against cyclic parent relations.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fsnode

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'idioms.fsnode'.
func tracer() tracing.Trace {
	return tracing.Select("idioms.fsnode")
}
