package token

import "testing"

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{Invalid, "Invalid"},
		{EOF, "EOF"},
		{Ident, "Ident"},
		{Number, "Number"},
		{Sym, "Sym"},
		{Question, "Question"},
		{Semicolon, "Semicolon"},
		{KwAnd, "KwAnd"},
		{KwFalse, "KwFalse"},
		{Kind(200), "Unknown"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	if k, ok := LookupKeyword("and"); !ok || k != KwAnd {
		t.Fatalf(`LookupKeyword("and") = %v, %v`, k, ok)
	}
	// регистрозависимость
	if _, ok := LookupKeyword("And"); ok {
		t.Fatal(`LookupKeyword("And") matched, want miss`)
	}
	if _, ok := LookupKeyword("F"); ok {
		t.Fatal(`LookupKeyword("F") matched, want miss`)
	}
}

func TestIsModuleSymbol(t *testing.T) {
	yes := []Kind{Ident, Number, Sym, Plus, Minus, Star, Slash, LBracket, RBracket}
	no := []Kind{Lt, Gt, Colon, Question, Semicolon, Comma, LParen, RParen, EOF, Invalid}
	for _, k := range yes {
		if !(Token{Kind: k}).IsModuleSymbol() {
			t.Errorf("%v: IsModuleSymbol = false, want true", k)
		}
	}
	for _, k := range no {
		if (Token{Kind: k}).IsModuleSymbol() {
			t.Errorf("%v: IsModuleSymbol = true, want false", k)
		}
	}
}
