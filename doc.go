/*
Package symex is a library for building and transforming symbolic
expression trees.

Symex provides an intermediate representation for arithmetic-like
expressions, intended as a substrate for code generation and program
transformation. The trees are deliberately "dumb": construction never
rewrites or simplifies anything; whatever structure a producer builds is
preserved verbatim until an explicit transformation is applied to it.
Package structure is as follows:

■ expr: Package expr defines the built-in expression node kinds, their
construction-time validation, and helpers for flattening and for marking
common subexpressions.

■ mapper: Package mapper implements the dispatch engine through which
transformations traverse trees, together with a caching layer for
common-subexpression markers.

■ render: Package render turns expression trees back into text, using an
operator-precedence table to decide parenthesization.

■ eval: Package eval numerically evaluates trees over variable bindings.

■ deps: Package deps collects the variables an expression depends on.

The base package contains the vocabulary shared by all the other
packages: dispatch keys, the Expression interface, the foreign-value
registry, and the derived structural equality and hashing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The symex authors

*/
package symex
