package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo        Code = 1000
	LexUnknownChar Code = 1001
	LexBadNumber   Code = 1002

	// Правила (и аксиомы)
	RuleInfo             Code = 2000
	RuleMissingSuccessor Code = 2001
	RuleEmptyCondition   Code = 2002
	RuleBadModuleToken   Code = 2003
	RuleUnclosedParams   Code = 2004
	RuleEmptyParam       Code = 2005
	RuleExpectComma      Code = 2006
	RuleBadPredecessor   Code = 2007
	RuleBadContext       Code = 2008
	RuleOddStochastic    Code = 2009
	RuleBadProbability   Code = 2010
	RuleZeroWeight       Code = 2011
	RuleEmptySuccessor   Code = 2012
	RuleParamNotName     Code = 2013
	AxiomBadParam        Code = 2100
	AxiomEmpty           Code = 2101

	// Выражения
	ExprInfo             Code = 3000
	ExprUnexpectedToken  Code = 3001
	ExprExpectExpression Code = 3002
	ExprUnclosedParen    Code = 3003
	ExprTrailingInput    Code = 3004
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexInfo:        "lexer info",
	LexUnknownChar: "unknown character",
	LexBadNumber:   "malformed numeric literal",

	RuleInfo:             "rule info",
	RuleMissingSuccessor: "missing successor marker '?'",
	RuleEmptyCondition:   "condition marker ':' without expression",
	RuleBadModuleToken:   "token cannot start a module",
	RuleUnclosedParams:   "unclosed parameter list",
	RuleEmptyParam:       "empty parameter",
	RuleExpectComma:      "parameters must be separated by commas",
	RuleBadPredecessor:   "predecessor must be a single module",
	RuleBadContext:       "malformed context pattern",
	RuleOddStochastic:    "stochastic successors must alternate probability and template",
	RuleBadProbability:   "probability must be a non-negative number",
	RuleZeroWeight:       "stochastic weights must not all be zero",
	RuleEmptySuccessor:   "empty successor template",
	RuleParamNotName:     "predecessor parameter must be a name",
	AxiomBadParam:        "axiom parameter must be a numeric literal",
	AxiomEmpty:           "empty axiom",

	ExprInfo:             "expression info",
	ExprUnexpectedToken:  "unexpected token in expression",
	ExprExpectExpression: "expected expression",
	ExprUnclosedParen:    "unclosed '(' in expression",
	ExprTrailingInput:    "trailing input after expression",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("RULE%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EXPR%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
