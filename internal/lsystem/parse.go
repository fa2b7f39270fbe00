package lsystem

import (
	"fmt"
	"strconv"
	"strings"

	"lsys/internal/diag"
	"lsys/internal/expr"
	"lsys/internal/lexer"
	"lsys/internal/source"
	"lsys/internal/token"
)

// ParseRule parses one production rule input, reporting problems through rep.
// The returned ok flag is false when the rule is unusable; diagnostics carry
// the details.
func ParseRule(set *source.Set, id source.InputID, rep diag.Reporter) (*Rule, bool) {
	in := set.Get(id)
	p := &ruleParser{set: set, in: in, rep: rep}

	toks := lexer.Scan(in, lexer.Options{Reporter: rep})
	toks = toks[:len(toks)-1] // без EOF
	for i := range toks {
		if toks[i].Kind == token.Invalid {
			// лексер уже зарепортил
			return nil, false
		}
	}
	return p.parse(toks)
}

// ParseRuleString is the convenience form for callers without a source.Set of
// their own. Failures come back as *MalformedRuleError.
func ParseRuleString(text string) (*Rule, error) {
	set := source.NewSet()
	id := set.AddString("rule", source.InputRule, text)
	bag := diag.NewBag(16)
	rule, ok := ParseRule(set, id, &diag.BagReporter{Bag: bag})
	if !ok {
		return nil, &MalformedRuleError{Text: text, Detail: firstMessage(bag)}
	}
	return rule, nil
}

// ParseAxiom parses an axiom input into a sequence of modules. Axiom
// parameters must be numeric literals.
func ParseAxiom(set *source.Set, id source.InputID, rep diag.Reporter) ([]Module, bool) {
	in := set.Get(id)
	toks := lexer.Scan(in, lexer.Options{Reporter: rep})
	toks = toks[:len(toks)-1]
	for i := range toks {
		if toks[i].Kind == token.Invalid {
			return nil, false
		}
	}
	if len(toks) == 0 {
		diag.ReportError(rep, diag.AxiomEmpty, source.Span{Input: in.ID}, "empty axiom")
		return nil, false
	}

	p := &ruleParser{set: set, in: in, rep: rep}
	raws, ok := p.parseRawModules(toks)
	if !ok {
		return nil, false
	}

	seq := make([]Module, 0, len(raws))
	for _, raw := range raws {
		mod := Module{Symbol: raw.sym.Text}
		if len(raw.params) > 0 {
			mod.Params = make([]float64, len(raw.params))
			for i, run := range raw.params {
				v, ok := literalValue(run)
				if !ok {
					p.report(diag.AxiomBadParam, spanOf(run, raw.span),
						"axiom parameter must be a numeric literal")
					return nil, false
				}
				mod.Params[i] = v
			}
		}
		seq = append(seq, mod)
	}
	return seq, true
}

// ParseAxiomString is the convenience form; failures come back as
// *MalformedAxiomError.
func ParseAxiomString(text string) ([]Module, error) {
	set := source.NewSet()
	id := set.AddString("axiom", source.InputAxiom, text)
	bag := diag.NewBag(16)
	seq, ok := ParseAxiom(set, id, &diag.BagReporter{Bag: bag})
	if !ok {
		return nil, &MalformedAxiomError{Text: text, Detail: firstMessage(bag)}
	}
	return seq, nil
}

// ParseIgnore splits an ignore list on whitespace; every token is a symbol
// skipped during context scanning. No semantic filtering happens here.
func ParseIgnore(text string) map[string]struct{} {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		out[f] = struct{}{}
	}
	return out
}

// ===== внутренности =====

type ruleParser struct {
	set *source.Set
	in  *source.Input
	rep diag.Reporter
}

func (p *ruleParser) report(code diag.Code, sp source.Span, msg string) {
	diag.ReportError(p.rep, code, sp, msg)
}

// rawModule — модуль до классификации: символ + сырые прогоны токенов
// параметров (по одному на запятую).
type rawModule struct {
	sym    token.Token
	params [][]token.Token
	span   source.Span
}

func (p *ruleParser) parse(toks []token.Token) (*Rule, bool) {
	endSp := p.endSpan(toks)

	// 1) маркер '?' на глубине 0 отделяет сукцессоры
	qIdx := indexTop(toks, token.Question)
	if qIdx < 0 {
		p.report(diag.RuleMissingSuccessor, endSp, "missing successor marker '?'")
		return nil, false
	}
	head, tail := toks[:qIdx], toks[qIdx+1:]

	// 2) опциональный ':' отделяет условие
	var condToks []token.Token
	if cIdx := indexTop(head, token.Colon); cIdx >= 0 {
		condToks = head[cIdx+1:]
		head = head[:cIdx]
		if len(condToks) == 0 {
			p.report(diag.RuleEmptyCondition, toks[qIdx].Span, "condition marker ':' without expression")
			return nil, false
		}
	}

	rule := &Rule{src: p.in.Text()}

	// 3) паттерн: [left <] pred [> right]
	if !p.parsePatternPart(head, rule) {
		return nil, false
	}

	// 4) условие
	if len(condToks) > 0 {
		prog, err := expr.CompileTokens(p.snippetOf(condToks), condToks, p.rep)
		if err != nil {
			return nil, false
		}
		rule.Condition = prog
	}

	// 5) сукцессоры
	if !p.parseSuccessors(tail, toks[qIdx].Span, rule) {
		return nil, false
	}

	return rule, true
}

func (p *ruleParser) parsePatternPart(head []token.Token, rule *Rule) bool {
	rest := head
	ltIdx := indexTop(rest, token.Lt)
	var leftToks []token.Token
	if ltIdx >= 0 {
		leftToks = rest[:ltIdx]
		rest = rest[ltIdx+1:]
		if len(leftToks) == 0 {
			p.report(diag.RuleBadContext, p.endSpan(head), "'<' without left context modules")
			return false
		}
	}

	var rightToks []token.Token
	gtIdx := indexTop(rest, token.Gt)
	if gtIdx >= 0 {
		rightToks = rest[gtIdx+1:]
		rest = rest[:gtIdx]
		if len(rightToks) == 0 {
			p.report(diag.RuleBadContext, p.endSpan(head), "'>' without right context modules")
			return false
		}
	}

	// повторные маркеры — это ошибка ("A<B<C" или ">" слева от "<")
	if indexTop(rest, token.Lt) >= 0 || indexTop(leftToks, token.Gt) >= 0 ||
		indexTop(rightToks, token.Lt) >= 0 || indexTop(rightToks, token.Gt) >= 0 {
		p.report(diag.RuleBadContext, p.endSpan(head), "duplicate context marker")
		return false
	}

	if len(leftToks) > 0 {
		patterns, ok := p.parseContextPatterns(leftToks)
		if !ok {
			return false
		}
		rule.Left = patterns
	}
	if len(rightToks) > 0 {
		patterns, ok := p.parseContextPatterns(rightToks)
		if !ok {
			return false
		}
		rule.Right = patterns
	}

	raws, ok := p.parseRawModules(rest)
	if !ok {
		return false
	}
	if len(raws) != 1 {
		p.report(diag.RuleBadPredecessor, p.endSpan(head),
			fmt.Sprintf("predecessor must be a single module, got %d", len(raws)))
		return false
	}
	pred, ok := p.predecessorPattern(raws[0])
	if !ok {
		return false
	}
	rule.Pred = pred
	return true
}

// predecessorPattern требует имена во всех позициях: они становятся
// связываемыми переменными правила.
func (p *ruleParser) predecessorPattern(raw rawModule) (ModulePattern, bool) {
	pat := ModulePattern{Symbol: raw.sym.Text, Span: raw.span}
	if len(raw.params) == 0 {
		return pat, true
	}
	pat.Params = make([]ParamPattern, len(raw.params))
	for i, run := range raw.params {
		if len(run) != 1 || run[0].Kind != token.Ident {
			p.report(diag.RuleParamNotName, spanOf(run, raw.span),
				"predecessor parameter must be a name")
			return ModulePattern{}, false
		}
		pat.Params[i] = ParamPattern{Name: run[0].Text}
	}
	return pat, true
}

// parseContextPatterns допускает имена (связывание) и числовые литералы
// (проверка на равенство).
func (p *ruleParser) parseContextPatterns(toks []token.Token) ([]ModulePattern, bool) {
	raws, ok := p.parseRawModules(toks)
	if !ok {
		return nil, false
	}
	patterns := make([]ModulePattern, 0, len(raws))
	for _, raw := range raws {
		pat := ModulePattern{Symbol: raw.sym.Text, Span: raw.span}
		if len(raw.params) > 0 {
			pat.Params = make([]ParamPattern, len(raw.params))
			for i, run := range raw.params {
				switch {
				case len(run) == 1 && run[0].Kind == token.Ident:
					pat.Params[i] = ParamPattern{Name: run[0].Text}
				default:
					if v, ok := literalValue(run); ok {
						pat.Params[i] = ParamPattern{Value: v, Literal: true}
					} else {
						p.report(diag.RuleBadContext, spanOf(run, raw.span),
							"context parameter must be a name or numeric literal")
						return nil, false
					}
				}
			}
		}
		patterns = append(patterns, pat)
	}
	return patterns, true
}

func (p *ruleParser) parseSuccessors(tail []token.Token, qSpan source.Span, rule *Rule) bool {
	if len(tail) == 0 {
		p.report(diag.RuleEmptySuccessor, qSpan, "empty successor template")
		return false
	}

	if indexTop(tail, token.Semicolon) < 0 {
		// детерминированное правило: одна альтернатива с весом 1
		mods, ok := p.parseTemplates(tail)
		if !ok {
			return false
		}
		rule.Alts = []Alternative{{Weight: 1, Modules: mods}}
		return true
	}

	entries := splitTop(tail, token.Semicolon)
	if len(entries)%2 != 0 {
		p.report(diag.RuleOddStochastic, p.endSpan(tail),
			"stochastic successors must alternate probability and template")
		return false
	}

	total := 0.0
	alts := make([]Alternative, 0, len(entries)/2)
	for k := 0; k+1 < len(entries); k += 2 {
		probToks, tmplToks := entries[k], entries[k+1]
		if len(probToks) != 1 || probToks[0].Kind != token.Number {
			p.report(diag.RuleBadProbability, spanOf(probToks, qSpan),
				"probability must be a non-negative number")
			return false
		}
		w, err := strconv.ParseFloat(probToks[0].Text, 64)
		if err != nil {
			p.report(diag.RuleBadProbability, probToks[0].Span,
				fmt.Sprintf("bad probability %q", probToks[0].Text))
			return false
		}
		if len(tmplToks) == 0 {
			p.report(diag.RuleEmptySuccessor, probToks[0].Span, "empty successor template")
			return false
		}
		mods, ok := p.parseTemplates(tmplToks)
		if !ok {
			return false
		}
		total += w
		alts = append(alts, Alternative{Weight: w, Modules: mods})
	}
	if total <= 0 {
		p.report(diag.RuleZeroWeight, p.endSpan(tail), "stochastic weights must not all be zero")
		return false
	}
	rule.Alts = alts
	return true
}

// parseTemplates компилирует параметры модулей как выражения.
func (p *ruleParser) parseTemplates(toks []token.Token) ([]ModuleTemplate, bool) {
	raws, ok := p.parseRawModules(toks)
	if !ok {
		return nil, false
	}
	out := make([]ModuleTemplate, 0, len(raws))
	for _, raw := range raws {
		tmpl := ModuleTemplate{Symbol: raw.sym.Text, Span: raw.span}
		if len(raw.params) > 0 {
			tmpl.Params = make([]*expr.Program, len(raw.params))
			for i, run := range raw.params {
				prog, err := expr.CompileTokens(p.snippetOf(run), run, p.rep)
				if err != nil {
					return nil, false
				}
				tmpl.Params[i] = prog
			}
		}
		out = append(out, tmpl)
	}
	return out, true
}

// parseRawModules разбирает последовательность модулей: символ + опциональный
// список параметров в скобках. Прогоны параметров здесь ещё не
// классифицированы (имя/литерал/выражение решает вызывающий).
func (p *ruleParser) parseRawModules(toks []token.Token) ([]rawModule, bool) {
	var out []rawModule
	i := 0
	for i < len(toks) {
		sym := toks[i]
		if !sym.IsModuleSymbol() {
			p.report(diag.RuleBadModuleToken, sym.Span,
				fmt.Sprintf("token %q cannot start a module", sym.Text))
			return nil, false
		}
		i++

		raw := rawModule{sym: sym, span: sym.Span}
		if i < len(toks) && toks[i].Kind == token.LParen {
			open := toks[i]
			i++
			depth := 1
			var runs [][]token.Token
			runStart := i
			for i < len(toks) && depth > 0 {
				switch toks[i].Kind {
				case token.LParen:
					depth++
				case token.RParen:
					depth--
					if depth == 0 {
						runs = append(runs, toks[runStart:i])
					}
				case token.Comma:
					if depth == 1 {
						runs = append(runs, toks[runStart:i])
						runStart = i + 1
					}
				}
				i++
			}
			if depth != 0 {
				p.report(diag.RuleUnclosedParams, open.Span, "unclosed parameter list")
				return nil, false
			}
			closeSpan := toks[i-1].Span
			raw.span = sym.Span.Cover(closeSpan)

			// "()" и висящие запятые дают пустые прогоны
			for _, run := range runs {
				if len(run) == 0 {
					p.report(diag.RuleEmptyParam, sym.Span.Cover(closeSpan),
						"empty parameter where a name or expression was expected")
					return nil, false
				}
			}
			raw.params = runs
		}
		out = append(out, raw)
	}
	return out, true
}

func (p *ruleParser) snippetOf(toks []token.Token) string {
	if len(toks) == 0 {
		return ""
	}
	sp := toks[0].Span
	for _, t := range toks[1:] {
		sp = sp.Cover(t.Span)
	}
	return p.set.Snippet(sp)
}

func (p *ruleParser) endSpan(toks []token.Token) source.Span {
	if len(toks) == 0 {
		return source.Span{Input: p.in.ID}
	}
	last := toks[len(toks)-1].Span
	return source.Span{Input: last.Input, Start: last.End, End: last.End}
}

// ===== помощники над срезами токенов =====

// indexTop ищет первый токен нужного вида на нулевой глубине скобок.
func indexTop(toks []token.Token, kind token.Kind) int {
	depth := 0
	for i := range toks {
		switch toks[i].Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		case kind:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitTop режет срез по токенам нужного вида на нулевой глубине.
func splitTop(toks []token.Token, kind token.Kind) [][]token.Token {
	var out [][]token.Token
	depth := 0
	start := 0
	for i := range toks {
		switch toks[i].Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		case kind:
			if depth == 0 {
				out = append(out, toks[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, toks[start:])
	return out
}

// literalValue распознаёт числовой литерал с опциональным унарным минусом.
func literalValue(run []token.Token) (float64, bool) {
	switch {
	case len(run) == 1 && run[0].Kind == token.Number:
		v, err := strconv.ParseFloat(run[0].Text, 64)
		return v, err == nil
	case len(run) == 2 && run[0].Kind == token.Minus && run[1].Kind == token.Number:
		v, err := strconv.ParseFloat(run[1].Text, 64)
		return -v, err == nil
	default:
		return 0, false
	}
}

func spanOf(toks []token.Token, fallback source.Span) source.Span {
	if len(toks) == 0 {
		return fallback
	}
	sp := toks[0].Span
	for _, t := range toks[1:] {
		sp = sp.Cover(t.Span)
	}
	return sp
}

func firstMessage(bag *diag.Bag) string {
	if d, ok := bag.FirstError(); ok {
		return d.Message
	}
	return "parse failed"
}
