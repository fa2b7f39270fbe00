package lsystem

import (
	"math/rand"

	"lsys/internal/diag"
	"lsys/internal/source"
)

// Config describes a complete system: the axiom, its production rules and the
// knobs shared by every derivation step.
type Config struct {
	Axiom string
	Rules []string
	// Ignore is a whitespace-separated list of symbols transparent to
	// context scanning.
	Ignore string
	// Definitions are named constants usable in conditions and successor
	// expressions.
	Definitions map[string]float64
	// Seed initialises the random source for stochastic rules. The same
	// seed replays the same derivation.
	Seed int64
}

// LSystem owns the current derivation state: the parsed rules, the live
// sequence and the generation counter. Not safe for concurrent use.
type LSystem struct {
	set   *source.Set
	bag   *diag.Bag
	rules []*Rule
	axiom []Module

	ignore map[string]struct{}
	defs   map[string]float64
	seed   int64
	rng    *rand.Rand

	seq []Module
	gen int
}

// New parses the axiom and every rule. Any parse failure surfaces as a
// *MalformedAxiomError or *MalformedRuleError; the diagnostic bag keeps the
// full detail for pretty-printing.
func New(cfg Config) (*LSystem, error) {
	sys := &LSystem{
		set:    source.NewSet(),
		bag:    diag.NewBag(64),
		ignore: ParseIgnore(cfg.Ignore),
		defs:   cfg.Definitions,
		seed:   cfg.Seed,
	}
	rep := &diag.BagReporter{Bag: sys.bag}

	axID := sys.set.AddString("axiom", source.InputAxiom, cfg.Axiom)
	axiom, ok := ParseAxiom(sys.set, axID, rep)
	if !ok {
		return nil, &MalformedAxiomError{Text: cfg.Axiom, Detail: firstMessage(sys.bag)}
	}
	sys.axiom = axiom

	sys.rules = make([]*Rule, 0, len(cfg.Rules))
	for _, text := range cfg.Rules {
		id := sys.set.AddString("rule", source.InputRule, text)
		rule, ok := ParseRule(sys.set, id, rep)
		if !ok {
			return nil, &MalformedRuleError{Text: text, Detail: firstMessage(sys.bag)}
		}
		sys.rules = append(sys.rules, rule)
	}

	sys.Reset()
	return sys, nil
}

// NextGeneration advances the derivation by one step and returns the new
// sequence. The returned slice is the live state; callers that mutate it must
// CloneSequence first.
func (s *LSystem) NextGeneration() ([]Module, error) {
	next, err := Step(s.seq, s.rules, StepOptions{
		Ignore:      s.ignore,
		Definitions: s.defs,
		Rand:        s.rng,
	})
	if err != nil {
		return nil, err
	}
	s.seq = next
	s.gen++
	return s.seq, nil
}

// Reset rewinds to generation zero and reseeds the random source, so a
// stochastic derivation replays identically.
func (s *LSystem) Reset() {
	s.seq = CloneSequence(s.axiom)
	s.gen = 0
	s.rng = rand.New(rand.NewSource(s.seed))
}

// Restore overwrites the live state with a previously captured generation.
// The random source is not rewound; restored stochastic derivations continue
// from the current stream position.
func (s *LSystem) Restore(gen int, seq []Module) {
	s.seq = CloneSequence(seq)
	s.gen = gen
}

// Current returns the live sequence without copying.
func (s *LSystem) Current() []Module { return s.seq }

// Generation returns the number of completed steps since the axiom.
func (s *LSystem) Generation() int { return s.gen }

// Axiom returns the parsed generation-zero sequence.
func (s *LSystem) Axiom() []Module { return s.axiom }

// Rules returns the parsed rules in priority order.
func (s *LSystem) Rules() []*Rule { return s.rules }

// Diagnostics exposes everything reported while parsing the configuration.
func (s *LSystem) Diagnostics() *diag.Bag { return s.bag }
