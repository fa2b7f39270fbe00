// Package lsystem implements deterministic and stochastic, context-sensitive,
// parametric L-systems: parsing of the rule/axiom DSL, context matching with
// an ignore set, condition evaluation, and the generation step that rewrites
// a sequence of modules.
//
// The DSL follows the notation of "The Algorithmic Beauty of Plants":
//
//	left < predecessor > right : condition ? successor
//
// where left/right context and condition are optional, successors are
// space-separated modules, and a stochastic rule lists weighted alternatives
// separated by ';':
//
//	F ? 0.5 ; A ; 0.5 ; B
//
// Rules and axioms are parsed once and are immutable afterwards; a step never
// mutates its input sequence. Randomness for stochastic rules comes from a
// *rand.Rand owned by the LSystem (or passed through StepOptions), never from
// package-global state, so seeded runs are reproducible.
package lsystem
