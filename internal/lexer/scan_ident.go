package lexer

import (
	"lsys/internal/token"
)

// scanIdentOrKeyword сканирует [Ident] и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые (только lowercase). Token.Text — ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	if !isIdentStartByte(lx.cursor.Peek()) {
		// fallback на оператор
		return lx.scanOperatorOrPunct()
	}
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.input.Content[sp.Start:sp.End])

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
