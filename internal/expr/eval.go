package expr

// Env resolves parameter names to numeric values during evaluation.
type Env interface {
	Lookup(name string) (float64, bool)
}

// MapEnv is the simplest Env: a plain map.
type MapEnv map[string]float64

func (m MapEnv) Lookup(name string) (float64, bool) {
	v, ok := m[name]
	return v, ok
}

// Value is the tagged result of an evaluation: either a number or a boolean.
type Value struct {
	Num    float64
	Truth  bool
	IsBool bool
}

func (v Value) kindName() string {
	if v.IsBool {
		return "boolean"
	}
	return "number"
}

func numValue(f float64) Value { return Value{Num: f} }
func boolValue(b bool) Value   { return Value{Truth: b, IsBool: true} }

// Eval computes the expression over env. It is deterministic and
// side-effect-free: the same program with the same bindings always yields
// the same value.
func (p *Program) Eval(env Env) (Value, error) {
	return p.evalNode(p.root, env)
}

// EvalNumber evaluates and requires a numeric result (successor parameters).
func (p *Program) EvalNumber(env Env) (float64, error) {
	v, err := p.Eval(env)
	if err != nil {
		return 0, err
	}
	if v.IsBool {
		return 0, &TypeError{Op: p.src, Want: "number", Got: "boolean"}
	}
	return v.Num, nil
}

// EvalBool evaluates and requires a boolean result (rule conditions).
func (p *Program) EvalBool(env Env) (bool, error) {
	v, err := p.Eval(env)
	if err != nil {
		return false, err
	}
	if !v.IsBool {
		return false, &TypeError{Op: p.src, Want: "boolean", Got: "number"}
	}
	return v.Truth, nil
}

func (p *Program) evalNode(id nodeID, env Env) (Value, error) {
	n := &p.nodes[id]
	switch n.kind {
	case nodeNum:
		return numValue(n.num), nil

	case nodeBool:
		return boolValue(n.num != 0), nil

	case nodeVar:
		v, ok := env.Lookup(n.name)
		if !ok {
			return Value{}, &UnboundError{Name: n.name}
		}
		return numValue(v), nil

	case nodeNeg:
		x, err := p.evalNode(n.x, env)
		if err != nil {
			return Value{}, err
		}
		if x.IsBool {
			return Value{}, &TypeError{Op: "-", Want: "number", Got: "boolean"}
		}
		return numValue(-x.Num), nil

	case nodeNot:
		x, err := p.evalNode(n.x, env)
		if err != nil {
			return Value{}, err
		}
		if !x.IsBool {
			return Value{}, &TypeError{Op: "not", Want: "boolean", Got: "number"}
		}
		return boolValue(!x.Truth), nil

	case nodeBinary:
		return p.evalBinary(n, env)
	}
	return Value{}, &TypeError{Op: p.src, Want: "expression", Got: "corrupt node"}
}

func (p *Program) evalBinary(n *node, env Env) (Value, error) {
	x, err := p.evalNode(n.x, env)
	if err != nil {
		return Value{}, err
	}

	// and/or короткого замыкания не делают: операнды чистые, а семантика
	// совпадает с жадной
	y, err := p.evalNode(n.y, env)
	if err != nil {
		return Value{}, err
	}

	switch n.op {
	case opAdd, opSub, opMul, opDiv, opLess, opLessEq, opGreater, opGreaterEq:
		if x.IsBool || y.IsBool {
			return Value{}, &TypeError{Op: n.op.String(), Want: "number", Got: "boolean"}
		}
	case opAnd, opOr:
		if !x.IsBool || !y.IsBool {
			return Value{}, &TypeError{Op: n.op.String(), Want: "boolean", Got: "number"}
		}
	case opEq, opNotEq:
		if x.IsBool != y.IsBool {
			return Value{}, &TypeError{Op: n.op.String(), Want: x.kindName(), Got: y.kindName()}
		}
	}

	switch n.op {
	case opAdd:
		return numValue(x.Num + y.Num), nil
	case opSub:
		return numValue(x.Num - y.Num), nil
	case opMul:
		return numValue(x.Num * y.Num), nil
	case opDiv:
		// деление на ноль даёт IEEE ±Inf, как и везде в Go
		return numValue(x.Num / y.Num), nil
	case opLess:
		return boolValue(x.Num < y.Num), nil
	case opLessEq:
		return boolValue(x.Num <= y.Num), nil
	case opGreater:
		return boolValue(x.Num > y.Num), nil
	case opGreaterEq:
		return boolValue(x.Num >= y.Num), nil
	case opEq:
		if x.IsBool {
			return boolValue(x.Truth == y.Truth), nil
		}
		return boolValue(x.Num == y.Num), nil
	case opNotEq:
		if x.IsBool {
			return boolValue(x.Truth != y.Truth), nil
		}
		return boolValue(x.Num != y.Num), nil
	case opAnd:
		return boolValue(x.Truth && y.Truth), nil
	case opOr:
		return boolValue(x.Truth || y.Truth), nil
	}
	return Value{}, &TypeError{Op: n.op.String(), Want: "operator", Got: "unknown"}
}
