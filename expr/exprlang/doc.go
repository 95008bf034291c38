/*
Package exprlang reads expression trees from text.

The language is tiny:

    Statement  ::=  ident '=' Expr  |  Expr
    Expr       ::=  Expr '+' Term   |  Term
    Term       ::=  number  |  ident  |  '(' Expr ')'

Sums associate to the left, i.e. "1 + 2 + 3" is read as ((1 + 2) + 3).
Identifiers are resolved while parsing, with the help of a Resolver, and are
replaced by number nodes. Thus parsing never creates node types other than
those of package expr. Comments start with ';' and extend to the end of the line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package exprlang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'idioms.exprlang'.
func tracer() tracing.Trace {
	return tracing.Select("idioms.exprlang")
}
