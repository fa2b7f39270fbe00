package expr

import (
	"lsys/internal/diag"
	"lsys/internal/lexer"
	"lsys/internal/source"
	"lsys/internal/token"
)

// Compile parses a standalone expression string into a Program. The name is
// used only in diagnostics.
func Compile(name, text string) (*Program, error) {
	set := source.NewSet()
	id := set.AddString(name, source.InputExpr, text)
	toks := lexer.Scan(set.Get(id), lexer.Options{})
	// отрезаем EOF — CompileTokens работает со срезом значимых токенов
	return CompileTokens(text, toks[:len(toks)-1], nil)
}

// CompileTokens compiles an already-lexed token slice (without EOF). The rule
// parser hands over sub-slices of a rule's token stream this way, so spans in
// diagnostics keep pointing into the original rule text. rep may be nil.
func CompileTokens(src string, toks []token.Token, rep diag.Reporter) (*Program, error) {
	p := &parser{
		toks:  toks,
		src:   src,
		rep:   rep,
		nodes: make([]node, 0, len(toks)),
	}

	root, ok := p.parseExpr()
	if !ok {
		return nil, p.err
	}
	if p.pos != len(p.toks) {
		tok := p.peek()
		p.fail(diag.ExprTrailingInput, tok.Span, "trailing input after expression")
		return nil, p.err
	}

	return &Program{
		src:   src,
		nodes: p.nodes,
		root:  root,
		vars:  p.vars,
	}, nil
}
