package token

import (
	"lsys/internal/source"
)

// Token represents a single DSL token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsStructural reports whether the token is one of the rule-level markers
// that cannot appear inside a module or expression: '<', '>' at paren depth
// zero, ':', '?', ';'. (Lt/Gt double as comparisons in expressions; the rule
// parser resolves that by position.)
func (t Token) IsStructural() bool {
	switch t.Kind {
	case Lt, Gt, Colon, Question, Semicolon:
		return true
	default:
		return false
	}
}

// IsModuleSymbol reports whether the token may start a module: identifiers,
// numeric symbols ("0", "1"), turtle commands (+ - * /), brackets, and any
// free Sym character. Markers and parentheses are reserved.
func (t Token) IsModuleSymbol() bool {
	switch t.Kind {
	case Ident, Number, Sym, Plus, Minus, Star, Slash, LBracket, RBracket:
		return true
	default:
		return false
	}
}

// IsExprOperator reports whether the token is a binary operator of the
// expression layer.
func (t Token) IsExprOperator() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Lt, Gt, LtEq, GtEq, EqEq, NotEq, KwAnd, KwOr:
		return true
	default:
		return false
	}
}
