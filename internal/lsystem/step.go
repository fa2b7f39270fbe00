package lsystem

import (
	"errors"
	"math/rand"

	"lsys/internal/expr"
)

// StepOptions carries everything a single rewrite pass needs beside the
// sequence and the rules.
type StepOptions struct {
	// Ignore lists symbols skipped while scanning context neighbours.
	Ignore map[string]struct{}
	// Definitions are named constants visible to conditions and successor
	// expressions unless shadowed by a pattern binding.
	Definitions map[string]float64
	// Rand drives stochastic rule selection. Required when any rule is
	// stochastic; deterministic systems may leave it nil.
	Rand *rand.Rand
}

// ErrNoRand is returned when a stochastic rule fires without a random source.
var ErrNoRand = errors.New("stochastic rule selected but no random source configured")

// Step rewrites every module of seq in parallel and returns the next
// generation. Rules are tried in order; the first one whose predecessor,
// context and condition all hold wins. Modules with no applicable rule copy
// through unchanged.
func Step(seq []Module, rules []*Rule, opts StepOptions) ([]Module, error) {
	out := make([]Module, 0, len(seq)+len(seq)/2)
	env := newBindings(opts.Definitions)

	for i := range seq {
		rule, ok, err := matchAt(seq, i, rules, opts, env)
		if err != nil {
			return nil, err
		}
		if !ok {
			// тождественная перезапись
			out = append(out, seq[i].Clone())
			continue
		}
		alt, err := chooseAlternative(rule, opts.Rand)
		if err != nil {
			return nil, &StepError{Position: i, Rule: rule.Source(), Err: err}
		}
		for _, tmpl := range alt.Modules {
			mod, err := instantiate(tmpl, env)
			if err != nil {
				return nil, &StepError{Position: i, Rule: rule.Source(), Err: err}
			}
			out = append(out, mod)
		}
	}
	return out, nil
}

// matchAt finds the first rule applicable at position i. On success env holds
// the bindings of the winning match.
func matchAt(seq []Module, i int, rules []*Rule, opts StepOptions, env *bindings) (*Rule, bool, error) {
	for _, rule := range rules {
		env.reset()
		if !matchPattern(rule.Pred, &seq[i], env) {
			continue
		}
		if !matchLeft(seq, i, rule.Left, opts.Ignore, env) {
			continue
		}
		if !matchRight(seq, i, rule.Right, opts.Ignore, env) {
			continue
		}
		if rule.Condition != nil {
			hold, err := evalCondition(rule.Condition, env)
			if err != nil {
				return nil, false, &StepError{Position: i, Rule: rule.Source(), Err: err}
			}
			if !hold {
				continue
			}
		}
		return rule, true, nil
	}
	return nil, false, nil
}

// matchPattern проверяет символ и арность, затем связывает либо сверяет
// каждый параметр. Повторное имя перезаписывает привязку.
func matchPattern(pat ModulePattern, mod *Module, env *bindings) bool {
	if pat.Symbol != mod.Symbol || len(pat.Params) != len(mod.Params) {
		return false
	}
	for k, pp := range pat.Params {
		if pp.Literal {
			if mod.Params[k] != pp.Value {
				return false
			}
			continue
		}
		env.bind(pp.Name, mod.Params[k])
	}
	return true
}

// matchLeft walks leftward from i. The last pattern of the chain matches the
// nearest non-ignored neighbour; running off the start of the sequence is a
// plain non-match.
func matchLeft(seq []Module, i int, pats []ModulePattern, ignore map[string]struct{}, env *bindings) bool {
	j := i - 1
	for k := len(pats) - 1; k >= 0; k-- {
		j = prevVisible(seq, j, ignore)
		if j < 0 || !matchPattern(pats[k], &seq[j], env) {
			return false
		}
		j--
	}
	return true
}

// matchRight walks rightward from i; the first pattern matches the nearest
// non-ignored neighbour.
func matchRight(seq []Module, i int, pats []ModulePattern, ignore map[string]struct{}, env *bindings) bool {
	j := i + 1
	for k := 0; k < len(pats); k++ {
		j = nextVisible(seq, j, ignore)
		if j < 0 || !matchPattern(pats[k], &seq[j], env) {
			return false
		}
		j++
	}
	return true
}

func prevVisible(seq []Module, j int, ignore map[string]struct{}) int {
	for ; j >= 0; j-- {
		if _, skip := ignore[seq[j].Symbol]; !skip {
			return j
		}
	}
	return -1
}

func nextVisible(seq []Module, j int, ignore map[string]struct{}) int {
	for ; j < len(seq); j++ {
		if _, skip := ignore[seq[j].Symbol]; !skip {
			return j
		}
	}
	return -1
}

func evalCondition(cond *expr.Program, env *bindings) (bool, error) {
	v, err := cond.Eval(env)
	if err != nil {
		return false, err
	}
	if !v.IsBool {
		return false, &ConditionTypeError{Cond: cond.Source()}
	}
	return v.Truth, nil
}

// chooseAlternative делает взвешенный выбор по кумулятивной сумме.
func chooseAlternative(rule *Rule, rng *rand.Rand) (*Alternative, error) {
	if len(rule.Alts) == 1 {
		return &rule.Alts[0], nil
	}
	if rng == nil {
		return nil, ErrNoRand
	}
	total := 0.0
	for k := range rule.Alts {
		total += rule.Alts[k].Weight
	}
	r := rng.Float64() * total
	acc := 0.0
	for k := range rule.Alts {
		acc += rule.Alts[k].Weight
		if r < acc {
			return &rule.Alts[k], nil
		}
	}
	return &rule.Alts[len(rule.Alts)-1], nil
}

func instantiate(tmpl ModuleTemplate, env *bindings) (Module, error) {
	mod := Module{Symbol: tmpl.Symbol}
	if len(tmpl.Params) > 0 {
		mod.Params = make([]float64, len(tmpl.Params))
		for k, prog := range tmpl.Params {
			v, err := prog.EvalNumber(env)
			if err != nil {
				return Module{}, err
			}
			mod.Params[k] = v
		}
	}
	return mod, nil
}
