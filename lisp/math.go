package lisp

// arithmetic builds a variadic operator that left-folds its evaluated
// arguments pairwise. An Error in the accumulator is carried to the end.
func arithmetic(name string, ints func(a, b Int) Value, floats func(a, b Float) Float) *Function {
	return NewFunction(name, func(list List, env *Env) Value {
		if len(list) < 2 {
			return Errorf("function called with no arguments")
		}
		// every argument is evaluated, even after an error
		args := make(List, len(list)-1)
		for i, e := range list[1:] {
			args[i] = Evaluate(env, e)
		}
		acc := args[0]
		for _, next := range args[1:] {
			acc = operate(acc, next, ints, floats)
		}
		return acc
	})
}

func operate(a, b Value, ints func(a, b Int) Value, floats func(a, b Float) Float) Value {
	switch x := a.(type) {
	case Error:
		return x
	case Int:
		switch y := b.(type) {
		case Error:
			return y
		case Int:
			return ints(x, y)
		case Float:
			return floats(Float(x), y)
		}
	case Float:
		switch y := b.(type) {
		case Error:
			return y
		case Int:
			return floats(x, Float(y))
		case Float:
			return floats(x, y)
		}
	}
	return Errorf("incompatible types")
}

var add = arithmetic("+",
	func(a, b Int) Value { return a + b },
	func(a, b Float) Float { return a + b })

var sub = arithmetic("-",
	func(a, b Int) Value { return a - b },
	func(a, b Float) Float { return a - b })

var mul = arithmetic("*",
	func(a, b Int) Value { return a * b },
	func(a, b Float) Float { return a * b })

var div = arithmetic("/",
	func(a, b Int) Value {
		if b == 0 {
			return Errorf("division by zero")
		}
		return a / b
	},
	func(a, b Float) Float { return a / b })
