package lsystem

// bindings resolves variables during condition checks and successor
// evaluation. Local bindings from a matched pattern shadow global
// definitions.
type bindings struct {
	vals map[string]float64
	defs map[string]float64
}

func newBindings(defs map[string]float64) *bindings {
	return &bindings{vals: make(map[string]float64, 4), defs: defs}
}

// bind пишет локальную привязку; повторная запись перекрывает предыдущую.
func (b *bindings) bind(name string, v float64) {
	b.vals[name] = v
}

func (b *bindings) Lookup(name string) (float64, bool) {
	if v, ok := b.vals[name]; ok {
		return v, true
	}
	if v, ok := b.defs[name]; ok {
		return v, true
	}
	return 0, false
}

func (b *bindings) reset() {
	clear(b.vals)
}
