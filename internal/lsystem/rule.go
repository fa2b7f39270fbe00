package lsystem

import (
	"lsys/internal/expr"
	"lsys/internal/source"
)

// ParamPattern matches one parameter position of a context or predecessor
// module: either it binds the value to a name, or it requires a literal.
type ParamPattern struct {
	Name    string // binding name when Literal is false
	Value   float64
	Literal bool
}

// ModulePattern matches one module of the predecessor or a context chain.
// Candidacy requires the same symbol and the same parameter count.
type ModulePattern struct {
	Symbol string
	Params []ParamPattern
	Span   source.Span
}

// ModuleTemplate produces one successor module: the symbol plus a compiled
// expression per parameter, evaluated against the match bindings.
type ModuleTemplate struct {
	Symbol string
	Params []*expr.Program
	Span   source.Span
}

// Alternative is one weighted successor of a rule. Deterministic rules hold
// exactly one with Weight 1.
type Alternative struct {
	Weight  float64
	Modules []ModuleTemplate
}

// Rule is a parsed production rule. Immutable after parsing; one Rule may be
// shared by any number of concurrent Step calls.
type Rule struct {
	src       string
	Left      []ModulePattern
	Pred      ModulePattern
	Right     []ModulePattern
	Condition *expr.Program
	Alts      []Alternative
}

// Source returns the rule text as written.
func (r *Rule) Source() string { return r.src }

// Stochastic reports whether the rule has more than one alternative.
func (r *Rule) Stochastic() bool { return len(r.Alts) > 1 }

// ContextSensitive reports whether the rule requires left or right context.
func (r *Rule) ContextSensitive() bool {
	return len(r.Left) > 0 || len(r.Right) > 0
}
