package expr_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"lsys/internal/expr"
)

func mustCompile(t *testing.T, text string) *expr.Program {
	t.Helper()
	p, err := expr.Compile("test", text)
	require.NoError(t, err, "compile %q", text)
	return p
}

func TestEvalArithmetic(t *testing.T) {
	env := expr.MapEnv{"s": 5, "t": 2, "c": 0.5}

	cases := []struct {
		text string
		want float64
	}{
		{"1+2", 3},
		{"2*3+4", 10},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"s-1", 4},
		{"s/t", 2.5},
		{"-s", -5},
		{"--s", 5},
		{"s*1.1", 5.5},
		{"s/3*2", 5.0 / 3 * 2},
		{"c+0.25*(s+t-3*c)", 0.5 + 0.25*(5+2-1.5)},
		{"1e-3", 0.001},
		{".5*t", 1},
		{"2.25e+1", 22.5},
	}
	for _, tc := range cases {
		p := mustCompile(t, tc.text)
		got, err := p.EvalNumber(env)
		require.NoError(t, err, tc.text)
		require.InDelta(t, tc.want, got, 1e-12, tc.text)
	}
}

func TestEvalBooleans(t *testing.T) {
	env := expr.MapEnv{"s": 5, "t": 0, "c": 0.5}

	cases := []struct {
		text string
		want bool
	}{
		{"s>1", true},
		{"s<1", false},
		{"s>=5", true},
		{"s<=4.9", false},
		{"t==0", true},
		{"t!=0", false},
		{"true", true},
		{"not false", true},
		{"s>3.9 or c>0.4", true},
		{"s<3.9 and c<0.4", false},
		{"t==1 and s>=6", false},
		{"(s>3.9 or c>0.4) and t!=0", false},
		{"not (t==0)", false},
		{"true and not false", true},
		{"true==true", true},
		{"true!=false", true},
	}
	for _, tc := range cases {
		p := mustCompile(t, tc.text)
		got, err := p.EvalBool(env)
		require.NoError(t, err, tc.text)
		require.Equal(t, tc.want, got, tc.text)
	}
}

func TestEvalPrecedence(t *testing.T) {
	// or слабее and, and слабее сравнений
	env := expr.MapEnv{"a": 1, "b": 0}
	p := mustCompile(t, "a==1 or b==1 and a==0")
	got, err := p.EvalBool(env)
	require.NoError(t, err)
	require.True(t, got, "or must bind weaker than and")
}

func TestEvalUnbound(t *testing.T) {
	p := mustCompile(t, "s+missing")
	_, err := p.EvalNumber(expr.MapEnv{"s": 1})
	var unbound *expr.UnboundError
	require.ErrorAs(t, err, &unbound)
	require.Equal(t, "missing", unbound.Name)
}

func TestEvalTypeErrors(t *testing.T) {
	env := expr.MapEnv{"s": 1}
	cases := []string{
		"s + true",
		"not s",
		"-true",
		"true < false",
		"s and true",
		"s == true",
	}
	for _, text := range cases {
		p := mustCompile(t, text)
		_, err := p.Eval(env)
		var te *expr.TypeError
		require.ErrorAs(t, err, &te, text)
	}
}

func TestEvalResultKindMismatch(t *testing.T) {
	env := expr.MapEnv{"s": 1}

	_, err := mustCompile(t, "s>0").EvalNumber(env)
	var te *expr.TypeError
	require.ErrorAs(t, err, &te)

	_, err = mustCompile(t, "s+1").EvalBool(env)
	require.ErrorAs(t, err, &te)
}

func TestCompileSyntaxErrors(t *testing.T) {
	cases := []string{
		"",
		"1+",
		"(1+2",
		"*3",
		"1 2",
		"s ? t",
		"not",
	}
	for _, text := range cases {
		_, err := expr.Compile("test", text)
		var se *expr.SyntaxError
		require.ErrorAs(t, err, &se, "input %q", text)
	}
}

func TestDivisionByZero(t *testing.T) {
	p := mustCompile(t, "1/t")
	got, err := p.EvalNumber(expr.MapEnv{"t": 0})
	require.NoError(t, err)
	require.True(t, math.IsInf(got, 1))
}

func TestVars(t *testing.T) {
	p := mustCompile(t, "s>3.9 or c>0.4 and s!=0")
	require.Equal(t, []string{"s", "c"}, p.Vars())
}

func TestEvalDeterministic(t *testing.T) {
	p := mustCompile(t, "s*0.458 + 1")
	env := expr.MapEnv{"s": 3}
	a, err := p.EvalNumber(env)
	require.NoError(t, err)
	b, err := p.EvalNumber(env)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestErrorsAreTyped(t *testing.T) {
	_, err := expr.Compile("test", "1+")
	require.Error(t, err)
	var se *expr.SyntaxError
	require.True(t, errors.As(err, &se))
	require.Contains(t, se.Error(), "syntax error")
}
