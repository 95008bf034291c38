/*
Package idioms is a small toolbox of self-contained building blocks.

Package structure is as follows:

■ expr: Package expr implements a closed expression tree of numbers and sums,
together with a recursive evaluator. Sub-package exprlang provides a lexer and
parser to build expression trees from text.

■ group: Package group groups in-memory lists by a key projection.

■ fsnode: Package fsnode walks the chain of parent directories of a filesystem
node as a lazy sequence, e.g., to find out if a file lives inside a hidden
directory.

■ scanner: Package scanner defines a tokenizer interface and a lexmachine adapter.

■ runtime: Package runtime provides a symbol table for name bindings.

The base package contains data types which are used throughout the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package idioms
