package lisp

import "strconv"

var specialForms = []string{
	"def!", "let*", "do", "if", "lambda", "fn*", "quote",
	"atom", "atom?", "deref", "reset!", "swap!", "macro!",
}

// SpecialForms returns the names the evaluator handles itself.
// In operator position they always mean the special form, even where
// the same name is bound to a value.
func SpecialForms() []string {
	out := make([]string, len(specialForms))
	copy(out, specialForms)
	return out
}

// Evaluate turns e into a value using env to resolve symbols.
// Failures are returned as Error values, never panics.
func Evaluate(env *Env, e Value) Value {
	switch x := e.(type) {
	case List:
		return evalList(env, x)
	case Unit:
		return evalUnit(env, x)
	}
	// everything else evaluates to itself
	return e
}

func evalList(env *Env, list List) Value {
	if len(list) == 0 {
		return Nil{}
	}
	if head, ok := list[0].(Unit); ok && head.IsSymbol() {
		// special forms control the evaluation of their own arguments
		switch head.Symbol() {
		case "def!":
			return evalDef(list, env)
		case "let*":
			return evalLet(list, env)
		case "do":
			return evalDo(list, env)
		case "if":
			return evalIf(list, env)
		case "lambda", "fn*":
			return evalLambda(list, env)
		case "quote":
			return evalQuote(list, env)
		case "atom":
			return evalAtom(list, env)
		case "atom?":
			return evalIsAtom(list, env)
		case "deref":
			return evalDeref(list, env)
		case "reset!":
			return evalReset(list, env)
		case "swap!":
			return evalSwap(list, env)
		case "macro!":
			return evalMacro(list, env)
		}
	}
	// procedure call
	head := Evaluate(env, list[0])
	switch f := head.(type) {
	case *Function:
		if f.macro {
			expanded := f.expand(list)
			if isError(expanded) {
				return expanded
			}
			return Evaluate(env, expanded)
		}
		return f.Call(list, env)
	case Error:
		return f
	}
	// a non-function in operator position is returned untouched
	return head
}

func evalUnit(env *Env, u Unit) Value {
	if u.Token.Type == StringToken {
		return String(unescape(u.Token.Text))
	}
	s := u.Token.Text
	if v, ok := env.Get(s); ok {
		return v
	}
	switch s {
	case "nil":
		return Nil{}
	case "true":
		return Boolean(true)
	case "false":
		return Boolean(false)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	return Errorf("could not parse symbol: %s", s)
}

// evalArgs evaluates every form in order and stops at the first Error,
// which is returned as the second value.
func evalArgs(env *Env, forms List) (List, Value) {
	args := make(List, len(forms))
	for i, f := range forms {
		v := Evaluate(env, f)
		if isError(v) {
			return nil, v
		}
		args[i] = v
	}
	return args, nil
}
