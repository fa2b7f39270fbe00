package expr

import (
	"lsys/internal/source"
)

type nodeID uint32

const noNode = nodeID(0xffffffff)

type nodeKind uint8

const (
	nodeNum nodeKind = iota
	nodeBool
	nodeVar
	nodeNeg
	nodeNot
	nodeBinary
)

// binOp identifies a binary operator of the expression layer.
type binOp uint8

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
	opEq
	opNotEq
	opLess
	opLessEq
	opGreater
	opGreaterEq
	opAnd
	opOr
)

func (op binOp) String() string {
	switch op {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	case opEq:
		return "=="
	case opNotEq:
		return "!="
	case opLess:
		return "<"
	case opLessEq:
		return "<="
	case opGreater:
		return ">"
	case opGreaterEq:
		return ">="
	case opAnd:
		return "and"
	case opOr:
		return "or"
	}
	return "?"
}

// node — один узел арены. X/Y осмысленны только для унарных/бинарных узлов.
type node struct {
	kind nodeKind
	op   binOp
	x, y nodeID
	num  float64
	name string
	span source.Span
}

// Program is a compiled, immutable expression. Safe for concurrent Eval.
type Program struct {
	src   string
	nodes []node
	root  nodeID
	vars  []string
}

// Source returns the text the program was compiled from.
func (p *Program) Source() string { return p.src }

// Vars returns the distinct identifiers the expression references, in first
// appearance order. Useful for validating rules against their bound names.
func (p *Program) Vars() []string { return p.vars }
