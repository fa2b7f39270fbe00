package lsystem

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustRule(t *testing.T, text string) *Rule {
	t.Helper()
	rule, err := ParseRuleString(text)
	require.NoError(t, err)
	return rule
}

func mustSeq(t *testing.T, text string) []Module {
	t.Helper()
	seq, err := ParseAxiomString(text)
	require.NoError(t, err)
	return seq
}

func TestStepIdentityWithoutRules(t *testing.T) {
	seq := mustSeq(t, "F(1) + G")
	next, err := Step(seq, nil, StepOptions{})
	require.NoError(t, err)
	require.Equal(t, seq, next)

	// копия, не алиас
	next[0].Params[0] = 99
	require.Equal(t, 1.0, seq[0].Params[0])
}

func TestStepIdentityForUnmatchedSymbols(t *testing.T) {
	rules := []*Rule{mustRule(t, "F ? F F")}
	next, err := Step(mustSeq(t, "F + G"), rules, StepOptions{})
	require.NoError(t, err)
	require.Equal(t, "F F + G", FormatSequence(next))
}

// Квохова кривая: F -> F+F-F-F+F даёт 5^n сегментов F.
func TestStepKochGrowth(t *testing.T) {
	rules := []*Rule{mustRule(t, "F ? F + F - F - F + F")}
	seq := mustSeq(t, "F")
	for g := 0; g < 2; g++ {
		var err error
		seq, err = Step(seq, rules, StepOptions{})
		require.NoError(t, err)
	}
	fs := 0
	for _, m := range seq {
		if m.Symbol == "F" {
			fs++
		}
	}
	require.Equal(t, 25, fs)
	// 5 F и 4 поворота на сегмент предыдущего поколения
	require.Equal(t, 5*9+4, len(seq))
}

func TestStepArityGate(t *testing.T) {
	// F(s) не переписывает голый F
	rules := []*Rule{mustRule(t, "F(s) ? G(s)")}
	next, err := Step(mustSeq(t, "F F(3)"), rules, StepOptions{})
	require.NoError(t, err)
	require.Equal(t, "F G(3)", FormatSequence(next))
}

func TestStepParameterExpressions(t *testing.T) {
	rules := []*Rule{mustRule(t, "F(s,t) ? F(s/2, t+1) F(s/2, t+1)")}
	next, err := Step(mustSeq(t, "F(8,0)"), rules, StepOptions{})
	require.NoError(t, err)
	require.Equal(t, "F(4,1) F(4,1)", FormatSequence(next))
}

func TestStepCondition(t *testing.T) {
	rules := []*Rule{mustRule(t, "F(s) : s > 1 ? F(s-1) F(s-1)")}
	next, err := Step(mustSeq(t, "F(2) F(1)"), rules, StepOptions{})
	require.NoError(t, err)
	require.Equal(t, "F(1) F(1) F(1)", FormatSequence(next))
}

func TestStepDecrementFixedPoint(t *testing.T) {
	rules := []*Rule{mustRule(t, "F(s) : s > 0 ? F(s-1)")}
	seq := mustSeq(t, "F(5)")
	for g := 0; g < 8; g++ {
		var err error
		seq, err = Step(seq, rules, StepOptions{})
		require.NoError(t, err)
	}
	// после пятого поколения условие гаснет и F(0) копируется
	require.Equal(t, "F(0)", FormatSequence(seq))
}

func TestStepConditionTypeError(t *testing.T) {
	rules := []*Rule{mustRule(t, "F(s) : s + 1 ? G")}
	_, err := Step(mustSeq(t, "F(1)"), rules, StepOptions{})
	require.Error(t, err)
	var cerr *ConditionTypeError
	require.ErrorAs(t, err, &cerr)
	var serr *StepError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, 0, serr.Position)
}

func TestStepLeftContext(t *testing.T) {
	rules := []*Rule{mustRule(t, "A < B ? D")}
	next, err := Step(mustSeq(t, "A B C"), rules, StepOptions{})
	require.NoError(t, err)
	require.Equal(t, "A D C", FormatSequence(next))

	// на границе последовательности контекст не совпадает
	next, err = Step(mustSeq(t, "B C"), rules, StepOptions{})
	require.NoError(t, err)
	require.Equal(t, "B C", FormatSequence(next))
}

func TestStepTwoSidedContext(t *testing.T) {
	rules := []*Rule{mustRule(t, "A < B > C ? D")}
	next, err := Step(mustSeq(t, "A B C"), rules, StepOptions{})
	require.NoError(t, err)
	require.Equal(t, "A D C", FormatSequence(next))

	next, err = Step(mustSeq(t, "A B X"), rules, StepOptions{})
	require.NoError(t, err)
	require.Equal(t, "A B X", FormatSequence(next))
}

func TestStepIgnoreTransparency(t *testing.T) {
	rules := []*Rule{mustRule(t, "A < B ? D")}
	opts := StepOptions{Ignore: ParseIgnore("+ -")}
	next, err := Step(mustSeq(t, "A + - B"), rules, opts)
	require.NoError(t, err)
	require.Equal(t, "A + - D", FormatSequence(next))

	// без ignore те же соседи не совпадают
	next, err = Step(mustSeq(t, "A + - B"), rules, StepOptions{})
	require.NoError(t, err)
	require.Equal(t, "A + - B", FormatSequence(next))
}

// Сигнал бежит по дереву: контекстные параметры связываются так же, как у
// предшественника.
func TestStepContextBinding(t *testing.T) {
	rules := []*Rule{mustRule(t, "A(x) < B(y) ? B(x+y)")}
	next, err := Step(mustSeq(t, "A(10) B(1)"), rules, StepOptions{})
	require.NoError(t, err)
	require.Equal(t, "A(10) B(11)", FormatSequence(next))
}

func TestStepContextLiteralParam(t *testing.T) {
	rules := []*Rule{mustRule(t, "A(1) < B ? D")}
	next, err := Step(mustSeq(t, "A(1) B A(2) B"), rules, StepOptions{})
	require.NoError(t, err)
	require.Equal(t, "A(1) D A(2) B", FormatSequence(next))
}

func TestStepMultiModuleContext(t *testing.T) {
	rules := []*Rule{mustRule(t, "A B < C ? D")}
	next, err := Step(mustSeq(t, "A B C B C"), rules, StepOptions{})
	require.NoError(t, err)
	// второй C видит слева C B, а не A B
	require.Equal(t, "A B D B C", FormatSequence(next))
}

func TestStepRulePriority(t *testing.T) {
	rules := []*Rule{
		mustRule(t, "F(s) : s > 0 ? G"),
		mustRule(t, "F(s) ? H"),
	}
	next, err := Step(mustSeq(t, "F(1) F(0)"), rules, StepOptions{})
	require.NoError(t, err)
	require.Equal(t, "G H", FormatSequence(next))
}

// Последняя запись при повторном имени побеждает: pred связывается раньше
// контекста.
func TestStepRebindLastWins(t *testing.T) {
	rules := []*Rule{mustRule(t, "B(x) > C(x) ? D(x)")}
	next, err := Step(mustSeq(t, "B(1) C(7)"), rules, StepOptions{})
	require.NoError(t, err)
	require.Equal(t, "B(1) D(7)", FormatSequence(next))
}

func TestStepStochasticSeeded(t *testing.T) {
	rules := []*Rule{mustRule(t, "F ? 0.5 ; A ; 0.5 ; B")}
	seq := make([]Module, 2000)
	for i := range seq {
		seq[i] = Module{Symbol: "F"}
	}
	next, err := Step(seq, rules, StepOptions{Rand: rand.New(rand.NewSource(42))})
	require.NoError(t, err)

	as := 0
	for _, m := range next {
		if m.Symbol == "A" {
			as++
		}
	}
	// при честной монете доля лежит около половины
	require.InDelta(t, 1000, as, 120)

	// тот же seed воспроизводит тот же выбор
	again, err := Step(seq, rules, StepOptions{Rand: rand.New(rand.NewSource(42))})
	require.NoError(t, err)
	require.Equal(t, next, again)
}

func TestStepStochasticWeights(t *testing.T) {
	rules := []*Rule{mustRule(t, "F ? 3 ; A ; 1 ; B")}
	seq := make([]Module, 4000)
	for i := range seq {
		seq[i] = Module{Symbol: "F"}
	}
	next, err := Step(seq, rules, StepOptions{Rand: rand.New(rand.NewSource(7))})
	require.NoError(t, err)
	as := 0
	for _, m := range next {
		if m.Symbol == "A" {
			as++
		}
	}
	require.InDelta(t, 3000, as, 160)
}

func TestStepStochasticNeedsRand(t *testing.T) {
	rules := []*Rule{mustRule(t, "F ? 0.5 ; A ; 0.5 ; B")}
	_, err := Step(mustSeq(t, "F"), rules, StepOptions{})
	require.ErrorIs(t, err, ErrNoRand)
}

func TestStepDefinitions(t *testing.T) {
	rules := []*Rule{mustRule(t, "F(s) : s < limit ? F(s*R)")}
	opts := StepOptions{Definitions: map[string]float64{"limit": 10, "R": 2}}
	next, err := Step(mustSeq(t, "F(3) F(12)"), rules, opts)
	require.NoError(t, err)
	require.Equal(t, "F(6) F(12)", FormatSequence(next))
}

func TestStepUnboundVariable(t *testing.T) {
	rules := []*Rule{mustRule(t, "F ? G(s)")}
	_, err := Step(mustSeq(t, "F"), rules, StepOptions{})
	require.Error(t, err)
	var serr *StepError
	require.ErrorAs(t, err, &serr)
}
