package token

// Kind represents the category of a DSL token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the input.
	EOF

	// Ident represents an identifier: a module symbol or a parameter name.
	Ident
	// Number represents a numeric literal (also a valid module symbol:
	// signal-propagation systems use symbols like "0" and "1").
	Number
	// Sym represents any other printable character the lexer has no
	// dedicated kind for ('~', '!', '|', ...). Renderer alphabets use such
	// characters as module symbols, so they are tokens rather than errors.
	Sym

	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBracket represents '[' (an ordinary module symbol for branching).
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Comma represents ',' (parameter separator).
	Comma // ,

	// Plus represents '+'.
	Plus // +
	// Minus represents '-'.
	Minus // -
	// Star represents '*'.
	Star // *
	// Slash represents '/'.
	Slash // /

	// Lt represents '<': context-open at the structural layer, less-than in
	// expressions.
	Lt // <
	// Gt represents '>': context-close, or greater-than.
	Gt // >
	// LtEq represents '<='.
	LtEq // <=
	// GtEq represents '>='.
	GtEq // >=
	// EqEq represents '=='.
	EqEq // ==
	// NotEq represents '!='.
	NotEq // !=

	// Colon represents ':' (condition marker).
	Colon // :
	// Question represents '?' (successor marker).
	Question // ?
	// Semicolon represents ';' (stochastic separator).
	Semicolon // ;

	// KwAnd represents the 'and' keyword.
	KwAnd // and
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwNot represents the 'not' keyword.
	KwNot // not
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case Number:
		return "Number"
	case Sym:
		return "Sym"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	case Comma:
		return "Comma"
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Star:
		return "Star"
	case Slash:
		return "Slash"
	case Lt:
		return "Lt"
	case Gt:
		return "Gt"
	case LtEq:
		return "LtEq"
	case GtEq:
		return "GtEq"
	case EqEq:
		return "EqEq"
	case NotEq:
		return "NotEq"
	case Colon:
		return "Colon"
	case Question:
		return "Question"
	case Semicolon:
		return "Semicolon"
	case KwAnd:
		return "KwAnd"
	case KwOr:
		return "KwOr"
	case KwNot:
		return "KwNot"
	case KwTrue:
		return "KwTrue"
	case KwFalse:
		return "KwFalse"
	}
	return "Unknown"
}
