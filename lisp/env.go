package lisp

import "sort"

// Env is one scope of the symbol table. Child scopes share their outer
// scope by pointer; lookups walk outward, writes stay local.
type Env struct {
	dict  map[string]Value
	outer *Env
}

func NewEnv(outer *Env) *Env {
	return &Env{dict: map[string]Value{}, outer: outer}
}

func (e *Env) find(s string) (*Env, bool) {
	if _, ok := e.dict[s]; ok {
		return e, true
	}
	if e.outer == nil {
		return nil, false
	}
	return e.outer.find(s)
}

func (e *Env) Get(s string) (Value, bool) {
	env, ok := e.find(s)
	if !ok {
		return nil, false
	}
	return env.dict[s], true
}

// Set binds s in this scope only, shadowing any outer binding.
func (e *Env) Set(s string, v Value) {
	e.dict[s] = v
}

func (e *Env) AddBuiltin(s string, f BuiltinProc) {
	e.dict[s] = builtinFunc(s, f)
}

func (e *Env) Outer() *Env {
	return e.outer
}

func (e *Env) Root() *Env {
	for e.outer != nil {
		e = e.outer
	}
	return e
}

// Symbols lists every name visible from this scope, sorted.
func (e *Env) Symbols() []string {
	seen := map[string]struct{}{}
	for env := e; env != nil; env = env.outer {
		for k := range env.dict {
			seen[k] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
