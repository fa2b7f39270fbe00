package expr

import (
	"fmt"
	"strconv"

	"lsys/internal/diag"
	"lsys/internal/source"
	"lsys/internal/token"
)

// Таблица приоритетов для бинарных операторов
// Чем больше число, тем выше приоритет
const (
	precLogicalOr      = 1 // or
	precLogicalAnd     = 2 // and
	precEquality       = 3 // == !=
	precComparison     = 4 // < <= > >=
	precAdditive       = 5 // + -
	precMultiplicative = 6 // * /
)

// binaryOperatorPrec возвращает приоритет оператора, или -1 если токен не
// бинарный оператор. Все операторы левоассоциативны.
func binaryOperatorPrec(kind token.Kind) int {
	switch kind {
	case token.KwOr:
		return precLogicalOr
	case token.KwAnd:
		return precLogicalAnd
	case token.EqEq, token.NotEq:
		return precEquality
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison
	case token.Plus, token.Minus:
		return precAdditive
	case token.Star, token.Slash:
		return precMultiplicative
	default:
		return -1
	}
}

func tokenKindToBinOp(kind token.Kind) binOp {
	switch kind {
	case token.Plus:
		return opAdd
	case token.Minus:
		return opSub
	case token.Star:
		return opMul
	case token.Slash:
		return opDiv
	case token.EqEq:
		return opEq
	case token.NotEq:
		return opNotEq
	case token.Lt:
		return opLess
	case token.LtEq:
		return opLessEq
	case token.Gt:
		return opGreater
	case token.GtEq:
		return opGreaterEq
	case token.KwAnd:
		return opAnd
	case token.KwOr:
		return opOr
	}
	panic(fmt.Sprintf("not a binary operator: %v", kind))
}

type parser struct {
	toks []token.Token
	pos  int
	src  string
	rep  diag.Reporter

	nodes []node
	vars  []string
	seen  map[string]struct{}

	err *SyntaxError
}

func (p *parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF, Span: p.endSpan()}
	}
	return p.toks[p.pos]
}

func (p *parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

func (p *parser) endSpan() source.Span {
	if len(p.toks) == 0 {
		return source.Span{}
	}
	last := p.toks[len(p.toks)-1].Span
	return source.Span{Input: last.Input, Start: last.End, End: last.End}
}

func (p *parser) fail(code diag.Code, sp source.Span, msg string) {
	if p.err == nil {
		p.err = &SyntaxError{Span: sp, Src: p.src, Msg: msg}
	}
	diag.ReportError(p.rep, code, sp, msg)
}

func (p *parser) add(n node) nodeID {
	p.nodes = append(p.nodes, n)
	return nodeID(len(p.nodes) - 1)
}

// parseExpr - главная точка входа для парсинга выражений
func (p *parser) parseExpr() (nodeID, bool) {
	return p.parseBinaryExpr(0) // минимальный приоритет = 0
}

// parseBinaryExpr реализует Pratt parsing для бинарных операторов
// minPrec - минимальный приоритет для текущего уровня
func (p *parser) parseBinaryExpr(minPrec int) (nodeID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return noNode, false
	}

	for {
		tok := p.peek()
		prec := binaryOperatorPrec(tok.Kind)
		if prec < 0 || prec < minPrec {
			break
		}

		opTok := p.advance()

		// все операторы левоассоциативны
		right, ok := p.parseBinaryExpr(prec + 1)
		if !ok {
			p.fail(diag.ExprExpectExpression, opTok.Span, "expected expression after binary operator")
			return noNode, false
		}

		span := p.nodes[left].span.Cover(p.nodes[right].span)
		left = p.add(node{
			kind: nodeBinary,
			op:   tokenKindToBinOp(opTok.Kind),
			x:    left,
			y:    right,
			span: span,
		})
	}

	return left, true
}

// parseUnaryExpr обрабатывает префиксы: унарный минус и 'not'
func (p *parser) parseUnaryExpr() (nodeID, bool) {
	switch tok := p.peek(); tok.Kind {
	case token.Minus:
		opTok := p.advance()
		x, ok := p.parseUnaryExpr()
		if !ok {
			p.fail(diag.ExprExpectExpression, opTok.Span, "expected expression after unary '-'")
			return noNode, false
		}
		return p.add(node{kind: nodeNeg, x: x, span: opTok.Span.Cover(p.nodes[x].span)}), true
	case token.KwNot:
		opTok := p.advance()
		x, ok := p.parseUnaryExpr()
		if !ok {
			p.fail(diag.ExprExpectExpression, opTok.Span, "expected expression after 'not'")
			return noNode, false
		}
		return p.add(node{kind: nodeNot, x: x, span: opTok.Span.Cover(p.nodes[x].span)}), true
	default:
		return p.parsePrimary()
	}
}

func (p *parser) parsePrimary() (nodeID, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.Number:
		p.advance()
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			p.fail(diag.ExprUnexpectedToken, tok.Span, fmt.Sprintf("bad numeric literal %q", tok.Text))
			return noNode, false
		}
		return p.add(node{kind: nodeNum, num: v, span: tok.Span}), true

	case token.Ident:
		p.advance()
		p.recordVar(tok.Text)
		return p.add(node{kind: nodeVar, name: tok.Text, span: tok.Span}), true

	case token.KwTrue:
		p.advance()
		return p.add(node{kind: nodeBool, num: 1, span: tok.Span}), true

	case token.KwFalse:
		p.advance()
		return p.add(node{kind: nodeBool, num: 0, span: tok.Span}), true

	case token.LParen:
		open := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return noNode, false
		}
		if p.peek().Kind != token.RParen {
			p.fail(diag.ExprUnclosedParen, open.Span, "unclosed '(' in expression")
			return noNode, false
		}
		close := p.advance()
		// перенос спана на скобки, узел остаётся прежним
		p.nodes[inner].span = open.Span.Cover(close.Span)
		return inner, true

	default:
		p.fail(diag.ExprUnexpectedToken, tok.Span,
			fmt.Sprintf("unexpected %s in expression", describeToken(tok)))
		return noNode, false
	}
}

func (p *parser) recordVar(name string) {
	if p.seen == nil {
		p.seen = make(map[string]struct{}, 4)
	}
	if _, ok := p.seen[name]; ok {
		return
	}
	p.seen[name] = struct{}{}
	p.vars = append(p.vars, name)
}

func describeToken(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", tok.Text)
}
