// Package token defines the token kinds of the L-system DSL.
//
// One token set serves both layers of the language: the structural layer
// (modules, context markers '<' '>', condition marker ':', successor
// marker '?', stochastic separator ';') and the expression layer inside
// conditions and successor parameters, where '<' and '>' are comparisons.
// The rule parser decides which reading applies from position; the lexer
// stays ambiguity-free.
package token
