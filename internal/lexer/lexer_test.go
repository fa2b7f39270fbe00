package lexer_test

import (
	"testing"

	"lsys/internal/diag"
	"lsys/internal/lexer"
	"lsys/internal/source"
	"lsys/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) errorCount() int {
	count := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			count++
		}
	}
	return count
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	set := source.NewSet()
	id := set.AddString("test", source.InputRule, input)

	reporter := &testReporter{}
	lx := lexer.New(set.Get(id), lexer.Options{Reporter: reporter})
	return lx, reporter
}

func collectKinds(lx *lexer.Lexer) []token.Kind {
	var kinds []token.Kind
	for {
		tok := lx.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			return kinds
		}
	}
}

func TestLexRuleTokens(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{
			name:  "context free",
			input: "F?F - F + + F - F",
			want: []token.Kind{
				token.Ident, token.Question, token.Ident, token.Minus, token.Ident,
				token.Plus, token.Plus, token.Ident, token.Minus, token.Ident, token.EOF,
			},
		},
		{
			name:  "parametric with condition",
			input: "F(s,t):t==0?F(s*0.3,2)",
			want: []token.Kind{
				token.Ident, token.LParen, token.Ident, token.Comma, token.Ident, token.RParen,
				token.Colon, token.Ident, token.EqEq, token.Number,
				token.Question, token.Ident, token.LParen, token.Ident, token.Star, token.Number,
				token.Comma, token.Number, token.RParen, token.EOF,
			},
		},
		{
			name:  "two sided context",
			input: "A(h)<B(s)>C(o):s<o?D",
			want: []token.Kind{
				token.Ident, token.LParen, token.Ident, token.RParen, token.Lt,
				token.Ident, token.LParen, token.Ident, token.RParen, token.Gt,
				token.Ident, token.LParen, token.Ident, token.RParen,
				token.Colon, token.Ident, token.Lt, token.Ident,
				token.Question, token.Ident, token.EOF,
			},
		},
		{
			name:  "stochastic",
			input: "F?0.5;A;0.5;B",
			want: []token.Kind{
				token.Ident, token.Question,
				token.Number, token.Semicolon, token.Ident, token.Semicolon,
				token.Number, token.Semicolon, token.Ident, token.EOF,
			},
		},
		{
			name:  "brackets and digits as symbols",
			input: "1 [ - F 1 F 1 ]",
			want: []token.Kind{
				token.Number, token.LBracket, token.Minus, token.Ident, token.Number,
				token.Ident, token.Number, token.RBracket, token.EOF,
			},
		},
		{
			name:  "keywords and comparisons",
			input: "s>=6 and t!=0 or not true",
			want: []token.Kind{
				token.Ident, token.GtEq, token.Number, token.KwAnd,
				token.Ident, token.NotEq, token.Number, token.KwOr,
				token.KwNot, token.KwTrue, token.EOF,
			},
		},
		{
			name:  "free symbols",
			input: "~ ! |",
			want:  []token.Kind{token.Sym, token.Sym, token.Sym, token.EOF},
		},
		{
			name:  "exponent and leading dot",
			input: "1e-3 .5 2.25e+1",
			want:  []token.Kind{token.Number, token.Number, token.Number, token.EOF},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lx, rep := makeTestLexer(tc.input)
			got := collectKinds(lx)
			if len(got) != len(tc.want) {
				t.Fatalf("token count = %d, want %d (%v)", len(got), len(tc.want), got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("token[%d] = %v, want %v", i, got[i], tc.want[i])
				}
			}
			if rep.errorCount() != 0 {
				t.Errorf("unexpected diagnostics: %v", rep.diagnostics)
			}
		})
	}
}

func TestLexTokenText(t *testing.T) {
	lx, _ := makeTestLexer("F(s,t)")
	toks := lexerCollect(lx)
	wantText := []string{"F", "(", "s", ",", "t", ")", ""}
	for i, w := range wantText {
		if toks[i].Text != w {
			t.Errorf("token[%d].Text = %q, want %q", i, toks[i].Text, w)
		}
	}
	// span точно указывает на "s"
	if sp := toks[2].Span; sp.Start != 2 || sp.End != 3 {
		t.Errorf("span of 's' = %v", sp)
	}
}

func lexerCollect(lx *lexer.Lexer) []token.Token {
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestLexBadNumber(t *testing.T) {
	lx, rep := makeTestLexer("F(1.)")
	kinds := collectKinds(lx)
	if rep.errorCount() == 0 {
		t.Fatal("expected LexBadNumber diagnostic")
	}
	if rep.diagnostics[0].Code != diag.LexBadNumber {
		t.Fatalf("code = %v, want LexBadNumber", rep.diagnostics[0].Code)
	}
	hasInvalid := false
	for _, k := range kinds {
		if k == token.Invalid {
			hasInvalid = true
		}
	}
	if !hasInvalid {
		t.Fatalf("expected Invalid token, got %v", kinds)
	}
}

func TestLexUnknownChar(t *testing.T) {
	lx, rep := makeTestLexer("F \x01 G")
	collectKinds(lx)
	if rep.errorCount() != 1 {
		t.Fatalf("error count = %d, want 1", rep.errorCount())
	}
	if rep.diagnostics[0].Code != diag.LexUnknownChar {
		t.Fatalf("code = %v, want LexUnknownChar", rep.diagnostics[0].Code)
	}
}

func TestLexPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("F ?")
	if k := lx.Peek().Kind; k != token.Ident {
		t.Fatalf("Peek = %v", k)
	}
	if k := lx.Next().Kind; k != token.Ident {
		t.Fatalf("Next after Peek = %v", k)
	}
	if k := lx.Next().Kind; k != token.Question {
		t.Fatalf("second Next = %v", k)
	}
}
