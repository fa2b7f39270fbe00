// Package expr compiles and evaluates the small expression language used in
// rule conditions and successor parameters.
//
// The grammar is fixed and closed: numeric literals, identifiers resolved
// against an Env, + - * / with unary minus, comparisons (== != < <= > >=),
// and boolean connectives (and, or, not) plus true/false literals. There is
// deliberately no function call syntax and no access to anything outside the
// Env — a compiled Program is a pure function of its bindings.
//
// Compilation happens once, at rule parse time; evaluation happens per match
// attempt and is allocation-free apart from the error path.
package expr
