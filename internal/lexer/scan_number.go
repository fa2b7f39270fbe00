package lexer

import (
	"lsys/internal/diag"
	"lsys/internal/token"
)

// Поддержка: 0, 123, 1.0, .5, 1e-3, 1.0e+10. Без баз (0x...) и без '_' —
// параметры аксиом и вероятности это обычные десятичные числа.
// Неверные формы — репорт в opts.Reporter, токен по возможности завершаем.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	// ведущая точка — значит формат ".digits" (вызваны после isNumberAfterDot)
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.scanExponent(start)
	}

	// целая часть
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// дробная часть
	if lx.cursor.Peek() == '.' {
		if !lx.isNumberAfterDot() {
			// "1." без цифры после точки
			lx.cursor.Bump()
			return lx.badNumber(start, "expected digit after '.'")
		}
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	return lx.scanExponent(start)
}

// scanExponent доедает опциональную экспоненту и возвращает Number.
func (lx *Lexer) scanExponent(start Mark) token.Token {
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		if _, b1, ok := lx.cursor.Peek2(); ok && (isDec(b1) || b1 == '+' || b1 == '-') {
			lx.cursor.Bump() // 'e'
			if b := lx.cursor.Peek(); b == '+' || b == '-' {
				lx.cursor.Bump()
			}
			if !isDec(lx.cursor.Peek()) {
				return lx.badNumber(start, "expected digit in exponent")
			}
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
		// голая 'e' после числа — это идент, пусть его съест следующий вызов
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Span: sp, Text: string(lx.input.Content[sp.Start:sp.End])}
}

func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexBadNumber, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.input.Content[sp.Start:sp.End])}
}
