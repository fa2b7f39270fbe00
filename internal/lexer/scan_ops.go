package lexer

import (
	"lsys/internal/diag"
	"lsys/internal/token"
)

// Жадность: сначала 2-символьные (==, !=, <=, >=), затем 1-символьные.
// Непечатаемые байты репортим как LexUnknownChar; остальное — Sym, потому
// что любая свободная литера может быть символом модуля.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.input.Content[sp.Start:sp.End]),
		}
	}

	switch {
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.NotEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	}

	// односимвольные
	ch := lx.cursor.Bump()
	switch ch {
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case ',':
		return emit(token.Comma)
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case ':':
		return emit(token.Colon)
	case '?':
		return emit(token.Question)
	case ';':
		return emit(token.Semicolon)
	}

	if ch < 0x21 || ch > 0x7e {
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexUnknownChar, sp, "unknown character in input")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.input.Content[sp.Start:sp.End])}
	}

	// свободная литера — валидный символ модуля ('~', '!', '|', '&', ...)
	return emit(token.Sym)
}
