package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Set manages a collection of registered DSL inputs and resolves spans back
// to their text.
type Set struct {
	inputs []Input
}

// NewSet creates a new empty Set.
func NewSet() *Set {
	return &Set{inputs: make([]Input, 0, 8)}
}

// Add registers a new input and returns its InputID. The same name may be
// added more than once; every Add produces a fresh ID.
func (s *Set) Add(name string, kind InputKind, content []byte) InputID {
	lenInputs, err := safecast.Conv[uint32](len(s.inputs))
	if err != nil {
		panic(fmt.Errorf("input count overflow: %w", err))
	}
	id := InputID(lenInputs)
	s.inputs = append(s.inputs, Input{
		ID:      id,
		Name:    name,
		Kind:    kind,
		Content: content,
	})
	return id
}

// AddString is Add for string content.
func (s *Set) AddString(name string, kind InputKind, content string) InputID {
	return s.Add(name, kind, []byte(content))
}

// Get возвращает вход по ID, или nil если ID невалиден.
func (s *Set) Get(id InputID) *Input {
	if int(id) >= len(s.inputs) {
		return nil
	}
	return &s.inputs[id]
}

// Len returns the number of registered inputs.
func (s *Set) Len() int { return len(s.inputs) }

// Snippet returns the text a span points at, or "" for an unknown input.
func (s *Set) Snippet(sp Span) string {
	in := s.Get(sp.Input)
	if in == nil {
		return ""
	}
	content := in.Content
	start, end := sp.Start, sp.End
	lenContent, err := safecast.Conv[uint32](len(content))
	if err != nil {
		panic(fmt.Errorf("input length overflow: %w", err))
	}
	if start > lenContent {
		start = lenContent
	}
	if end > lenContent {
		end = lenContent
	}
	if start > end {
		return ""
	}
	return string(content[start:end])
}
