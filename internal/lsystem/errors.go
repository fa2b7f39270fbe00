package lsystem

import (
	"fmt"
)

// MalformedRuleError reports a rule string the parser rejected. Detail is the
// first diagnostic message, already pointing at the offending fragment.
type MalformedRuleError struct {
	Text   string
	Detail string
}

func (e *MalformedRuleError) Error() string {
	return fmt.Sprintf("malformed rule %q: %s", e.Text, e.Detail)
}

// MalformedAxiomError reports an axiom string the parser rejected.
type MalformedAxiomError struct {
	Text   string
	Detail string
}

func (e *MalformedAxiomError) Error() string {
	return fmt.Sprintf("malformed axiom %q: %s", e.Text, e.Detail)
}

// ConditionTypeError reports a rule condition that evaluated to a number
// instead of a boolean.
type ConditionTypeError struct {
	Cond string
}

func (e *ConditionTypeError) Error() string {
	return fmt.Sprintf("condition %q evaluated to a number, want boolean", e.Cond)
}

// StepError wraps a failure during one generation step with the rule and
// sequence position being evaluated. The partially built output is discarded.
type StepError struct {
	Position int
	Rule     string
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("rule %q at position %d: %v", e.Rule, e.Position, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
