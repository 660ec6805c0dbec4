package lisp

// comparison builds a two-argument ordering operator. Operands of
// different types, or of types without an order, compare false.
func comparison(name string, ints func(a, b Int) bool, floats func(a, b Float) bool) *Function {
	return NewFunction(name, func(list List, env *Env) Value {
		l, r, errv := compareArgs(name, list, env)
		if errv != nil {
			return errv
		}
		switch x := l.(type) {
		case Int:
			if y, ok := r.(Int); ok {
				return Boolean(ints(x, y))
			}
		case Float:
			if y, ok := r.(Float); ok {
				return Boolean(floats(x, y))
			}
		}
		return Boolean(false)
	})
}

func compareArgs(name string, list List, env *Env) (Value, Value, Value) {
	if len(list) != 3 {
		return nil, nil, Errorf("%s works with exactly two items to compare", name)
	}
	l := Evaluate(env, list[1])
	r := Evaluate(env, list[2])
	if isError(l) {
		return nil, nil, l
	}
	if isError(r) {
		return nil, nil, r
	}
	return l, r, nil
}

var equals = NewFunction("=", func(list List, env *Env) Value {
	l, r, errv := compareArgs("=", list, env)
	if errv != nil {
		return errv
	}
	return Boolean(equal(l, r))
})

var lt = comparison("<",
	func(a, b Int) bool { return a < b },
	func(a, b Float) bool { return a < b })

var gt = comparison(">",
	func(a, b Int) bool { return a > b },
	func(a, b Float) bool { return a > b })

var leq = comparison("<=",
	func(a, b Int) bool { return a <= b },
	func(a, b Float) bool { return a <= b })

var geq = comparison(">=",
	func(a, b Int) bool { return a >= b },
	func(a, b Float) bool { return a >= b })

// equal compares like-typed values structurally. Atoms and functions
// are equal only to themselves; values of different types never are.
func equal(a, b Value) bool {
	switch x := a.(type) {
	case List:
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Unit:
		y, ok := b.(Unit)
		return ok && x.Token == y.Token
	case Int, Float, Boolean, Nil, String, Error, *Atom, *Function:
		return a == b
	}
	return false
}
