package lsystem

import (
	"strconv"
	"strings"
)

// Module is the atomic unit of a sequence: a symbol plus its numeric
// parameters. Modules are treated as immutable values; Step copies them
// rather than aliasing parameter slices between generations.
type Module struct {
	Symbol string
	Params []float64
}

// Equal reports structural equality: same symbol, same parameter values in
// the same order.
func (m Module) Equal(o Module) bool {
	if m.Symbol != o.Symbol || len(m.Params) != len(o.Params) {
		return false
	}
	for i := range m.Params {
		if m.Params[i] != o.Params[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy with its own parameter slice.
func (m Module) Clone() Module {
	if m.Params == nil {
		return Module{Symbol: m.Symbol}
	}
	params := make([]float64, len(m.Params))
	copy(params, m.Params)
	return Module{Symbol: m.Symbol, Params: params}
}

// String renders the module compactly: "F", "F(1)", "F(1,0.5)".
func (m Module) String() string {
	if len(m.Params) == 0 {
		return m.Symbol
	}
	var b strings.Builder
	b.WriteString(m.Symbol)
	b.WriteByte('(')
	for i, p := range m.Params {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(p, 'g', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}

// FormatSequence renders a sequence as space-separated modules. The output
// round-trips through ParseAxiomString.
func FormatSequence(seq []Module) string {
	if len(seq) == 0 {
		return ""
	}
	var b strings.Builder
	for i := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(seq[i].String())
	}
	return b.String()
}

// CloneSequence deep-copies a sequence.
func CloneSequence(seq []Module) []Module {
	out := make([]Module, len(seq))
	for i := range seq {
		out[i] = seq[i].Clone()
	}
	return out
}
