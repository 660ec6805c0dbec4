package lisp

// (def! name expr)
func evalDef(list List, env *Env) Value {
	if len(list) != 3 {
		return Errorf("incorrect number of args for definition")
	}
	name, ok := list[1].(Unit)
	if !ok || !name.IsSymbol() {
		return Errorf("first argument to def! must be a symbol")
	}
	v := Evaluate(env, list[2])
	if isError(v) {
		return v
	}
	if f, ok := v.(*Function); ok && f.lambda != nil && f.name == "" {
		f.name = name.Symbol()
	}
	env.Set(name.Symbol(), v)
	return v
}

// (let* (name expr ...) body)
func evalLet(list List, env *Env) Value {
	if len(list) != 3 {
		return Errorf("let* takes two arguments")
	}
	bindings, ok := list[1].(List)
	if !ok {
		return Errorf("first argument to let* must be a binding list")
	}
	if len(bindings)%2 != 0 {
		return Errorf("let* bindings must come in pairs; found %d forms", len(bindings))
	}
	letEnv := NewEnv(env)
	for i := 0; i < len(bindings); i += 2 {
		name, ok := bindings[i].(Unit)
		if !ok || !name.IsSymbol() {
			return Errorf("let* binding name must be a symbol, got %s", bindings[i])
		}
		v := Evaluate(letEnv, bindings[i+1])
		if isError(v) {
			return v
		}
		letEnv.Set(name.Symbol(), v)
	}
	return Evaluate(letEnv, list[2])
}

// (do expr ...)
func evalDo(list List, env *Env) Value {
	var last Value = Nil{}
	for _, e := range list[1:] {
		last = Evaluate(env, e)
		if isError(last) {
			return last
		}
	}
	return last
}

// (if test conseq [alt])
func evalIf(list List, env *Env) Value {
	if len(list) < 3 {
		return Errorf("if needs a condition and at least one branch")
	}
	if len(list) > 4 {
		return Errorf("if can have at most two branches")
	}
	tested := Evaluate(env, list[1])
	if isError(tested) {
		return tested
	}
	if isTruthy(tested) {
		return Evaluate(env, list[2])
	}
	if len(list) == 4 {
		return Evaluate(env, list[3])
	}
	return Nil{}
}

// (quote expr)
func evalQuote(list List, env *Env) Value {
	if len(list) != 2 {
		return Errorf("quote takes a single argument")
	}
	return list[1]
}

type lambda struct {
	params []string
	// rest collects surplus arguments when the parameter list ends in "& name"
	rest string
	body Value
	env  *Env
}

// (lambda (param ...) body)
func evalLambda(list List, env *Env) Value {
	if len(list) != 3 {
		return Errorf("usage: (lambda (params) body)")
	}
	params, ok := list[1].(List)
	if !ok {
		return Errorf("function params must be a list")
	}
	lam := &lambda{body: list[2], env: env}
	for i, p := range params {
		u, ok := p.(Unit)
		if !ok || !u.IsSymbol() {
			return Errorf("function params must be symbols, got %s", p)
		}
		if u.Symbol() != "&" {
			lam.params = append(lam.params, u.Symbol())
			continue
		}
		if i != len(params)-2 {
			return Errorf("exactly one param must follow &")
		}
		tail, ok := params[i+1].(Unit)
		if !ok || !tail.IsSymbol() {
			return Errorf("rest param must be a symbol, got %s", params[i+1])
		}
		lam.rest = tail.Symbol()
		break
	}
	f := &Function{lambda: lam}
	f.proc = func(call List, callEnv *Env) Value {
		args, errv := evalArgs(callEnv, call[1:])
		if errv != nil {
			return errv
		}
		scope, errv := lam.bind(f.callName(), args)
		if errv != nil {
			return errv
		}
		return Evaluate(scope, lam.body)
	}
	return f
}

// bind creates the invocation scope: a child of the defining environment
// with params bound positionally to args. name is used in arity errors.
func (l *lambda) bind(name string, args List) (*Env, Value) {
	if len(args) < len(l.params) || (l.rest == "" && len(args) > len(l.params)) {
		if l.rest != "" {
			return nil, Errorf("%s expected at least %d arguments, got %d", name, len(l.params), len(args))
		}
		return nil, Errorf("%s expected %d arguments, got %d", name, len(l.params), len(args))
	}
	scope := NewEnv(l.env)
	for i, p := range l.params {
		scope.Set(p, args[i])
	}
	if l.rest != "" {
		rest := make(List, len(args)-len(l.params))
		copy(rest, args[len(l.params):])
		scope.Set(l.rest, rest)
	}
	return scope, nil
}

// expand runs a macro body with its parameters bound to the
// unevaluated argument forms and returns the resulting form.
func (f *Function) expand(list List) Value {
	if f.lambda == nil {
		return Errorf("%s is not expandable", f)
	}
	scope, errv := f.lambda.bind(f.callName(), list[1:])
	if errv != nil {
		return errv
	}
	return Evaluate(scope, f.lambda.body)
}

// callName is how arity errors refer to f.
func (f *Function) callName() string {
	if f.name == "" {
		return "function"
	}
	return f.name
}

// (macro! name lambda-expr)
func evalMacro(list List, env *Env) Value {
	if len(list) != 3 {
		return Errorf("incorrect number of args for macro!")
	}
	name, ok := list[1].(Unit)
	if !ok || !name.IsSymbol() {
		return Errorf("first argument to macro! must be a symbol")
	}
	v := Evaluate(env, list[2])
	if isError(v) {
		return v
	}
	f, ok := v.(*Function)
	if !ok || f.lambda == nil {
		return Errorf("macro! needs a lambda, got %s", v)
	}
	m := &Function{name: name.Symbol(), proc: f.proc, lambda: f.lambda, macro: true}
	env.Set(name.Symbol(), m)
	return m
}

// (atom expr)
func evalAtom(list List, env *Env) Value {
	if len(list) != 2 {
		return Errorf("atom takes a single argument")
	}
	v := Evaluate(env, list[1])
	if isError(v) {
		return Errorf("cannot box error value")
	}
	return NewAtom(v)
}

// (atom? expr)
func evalIsAtom(list List, env *Env) Value {
	if len(list) != 2 {
		return Errorf("atom? takes a single argument")
	}
	v := Evaluate(env, list[1])
	if isError(v) {
		return v
	}
	_, ok := v.(*Atom)
	return Boolean(ok)
}

// (deref atom)
func evalDeref(list List, env *Env) Value {
	if len(list) != 2 {
		return Errorf("deref takes a single argument")
	}
	v := Evaluate(env, list[1])
	if isError(v) {
		return v
	}
	a, ok := v.(*Atom)
	if !ok {
		return Errorf("deref expects an atom, got %s", v)
	}
	return a.Deref()
}

// (reset! atom expr)
func evalReset(list List, env *Env) Value {
	if len(list) != 3 {
		return Errorf("reset! takes two arguments")
	}
	a, errv := atomArg(list[1], env, "reset!")
	if errv != nil {
		return errv
	}
	v := Evaluate(env, list[2])
	if isError(v) {
		return v
	}
	a.Reset(v)
	return v
}

// (swap! atom f) stores (f current) in the atom
func evalSwap(list List, env *Env) Value {
	if len(list) != 3 {
		return Errorf("swap! takes two arguments")
	}
	a, errv := atomArg(list[1], env, "swap!")
	if errv != nil {
		return errv
	}
	fv := Evaluate(env, list[2])
	if isError(fv) {
		return fv
	}
	f, ok := fv.(*Function)
	if !ok {
		return Errorf("swap! must have a function as its second argument, got %s", fv)
	}
	// the current value is quoted so that lists are passed as data
	call := List{f, List{NewSymbol("quote"), a.Deref()}}
	v := f.Call(call, env)
	if isError(v) {
		return v
	}
	a.Reset(v)
	return v
}

func atomArg(form Value, env *Env, name string) (*Atom, Value) {
	v := Evaluate(env, form)
	if isError(v) {
		return nil, v
	}
	a, ok := v.(*Atom)
	if !ok {
		return nil, Errorf("%s must have an atom as its first argument, got %s", name, v)
	}
	return a, nil
}
