package expr

import (
	"fmt"

	"lsys/internal/source"
)

// SyntaxError reports a malformed expression at compile time.
type SyntaxError struct {
	Span source.Span
	Src  string
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Src != "" {
		return fmt.Sprintf("syntax error in %q: %s", e.Src, e.Msg)
	}
	return fmt.Sprintf("syntax error: %s", e.Msg)
}

// UnboundError reports an identifier missing from the binding environment.
// It signals a malformed rule (a name not declared by predecessor or
// context), so callers surface it instead of treating it as a non-match.
type UnboundError struct {
	Name string
}

func (e *UnboundError) Error() string {
	return fmt.Sprintf("unbound variable %q", e.Name)
}

// TypeError reports an operand or result of the wrong kind.
type TypeError struct {
	Op   string
	Want string
	Got  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error at %q: want %s, got %s", e.Op, e.Want, e.Got)
}
