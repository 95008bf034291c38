/*
Command idioms is a command line front end for the packages of this module.

Usage:

    idioms [-trace level] eval <expression>
    idioms [-trace level] group [-by age|name]
    idioms [-trace level] hidden [-abs] [-stat] [-v] <path> …
    idioms [-trace level] repl [-init file] [-D name=value …]

eval parses an expression like "1 + (2 + 3)", prints its tree and its value.
group groups a fixed list of persons. hidden tells for each path if it is
located inside a hidden directory. repl starts an interactive session, where
users may enter expressions and bind names with "name = expression".
Inside the REPL, ":tree" displays the last expression tree, ":vars" lists
bound names and ":q" quits.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global syntax tracer.
func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
