package lexer

import (
	"lsys/internal/source"
	"lsys/internal/token"
)

// Lexer scans one registered DSL input into tokens. The same scanner serves
// axioms, rules, ignore lists and bare expressions; the structural/expression
// distinction is the parser's business.
type Lexer struct {
	input  *source.Input
	cursor Cursor
	opts   Options
	look   *token.Token // 1-элементный буфер для Peek
}

func New(in *source.Input, opts Options) *Lexer {
	return &Lexer{
		input:  in,
		cursor: NewCursor(in),
		opts:   opts,
		look:   nil,
	}
}

// Next возвращает следующий значимый токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipWhitespace()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Scan collects every token up to and including EOF.
func Scan(in *source.Input, opts Options) []token.Token {
	lx := New(in, opts)
	toks := make([]token.Token, 0, len(in.Content)/2+1)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// skipWhitespace съедает пробелы и табы. Переводов строк во входах DSL не
// бывает (каждое правило — отдельный вход), но на всякий случай едим и их.
func (lx *Lexer) skipWhitespace() {
	for {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r', '\n':
			lx.cursor.Bump()
		default:
			return
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{Input: lx.input.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
