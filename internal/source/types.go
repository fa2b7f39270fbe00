package source

type (
	// InputID uniquely identifies a registered input within a Set.
	InputID uint32 // просто ID источника
	// InputKind encodes what a registered input holds.
	InputKind uint8
)

const (
	// InputAxiom is an axiom string ("F(1,0) + F(1,0)").
	InputAxiom InputKind = iota
	// InputRule is a production rule string ("A(s)<B(t)>C : s<t ? D(s+t)").
	InputRule
	// InputIgnore is a whitespace-separated ignore list ("+ - F").
	InputIgnore
	// InputExpr is a bare expression, registered by callers that compile
	// expressions directly (tests, the expr API).
	InputExpr
)

func (k InputKind) String() string {
	switch k {
	case InputAxiom:
		return "axiom"
	case InputRule:
		return "rule"
	case InputIgnore:
		return "ignore"
	case InputExpr:
		return "expr"
	}
	return "unknown"
}

// Input captures one registered DSL string. Inputs are single-line strings
// supplied through the API or a manifest, never loaded from disk, so there
// is no path or line table here — byte offsets are enough to point at a
// fragment.
type Input struct {
	ID      InputID
	Name    string // display name, e.g. "rule[3]" or "axiom"
	Kind    InputKind
	Content []byte
}

// Text returns the input content as a string.
func (in *Input) Text() string { return string(in.Content) }
