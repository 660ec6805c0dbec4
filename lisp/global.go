package lisp

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// BuiltinProc receives its arguments already evaluated, left to right.
type BuiltinProc func(args List) Value

func GlobalEnv() *Env {
	return newGlobalEnv(os.Stdout)
}

func newGlobalEnv(out io.Writer) *Env {
	return &Env{dict: map[string]Value{
		"+":  add,
		"-":  sub,
		"*":  mul,
		"/":  div,
		"=":  equals,
		"<":  lt,
		">":  gt,
		"<=": leq,
		">=": geq,
		// lists
		"list":   builtinFunc("list", list),
		"list?":  builtinFunc("list?", isList),
		"empty?": builtinFunc("empty?", isEmpty),
		"count":  builtinFunc("count", count),
		"cons":   builtinFunc("cons", cons),
		"concat": builtinFunc("concat", concat),
		"first":  builtinFunc("first", first),
		"rest":   builtinFunc("rest", rest),
		"nth":    builtinFunc("nth", nth),
		// predicates
		"nil?":      builtinFunc("nil?", isNil),
		"number?":   builtinFunc("number?", isNumber),
		"string?":   builtinFunc("string?", isString),
		"symbol?":   builtinFunc("symbol?", isSymbol),
		"function?": builtinFunc("function?", isFunction),
		// reading and evaluating
		"eval":        NewFunction("eval", eval),
		"read-string": builtinFunc("read-string", readString),
		"slurp":       builtinFunc("slurp", slurp),
		// output
		"str":     builtinFunc("str", str),
		"pr-str":  builtinFunc("pr-str", prStr),
		"prn":     builtinFunc("prn", printer(out, PrStr)),
		"println": builtinFunc("println", printer(out, Value.String)),
	}, outer: nil}
}

func builtinFunc(name string, f BuiltinProc) *Function {
	return NewFunction(name, func(list List, env *Env) Value {
		args, errv := evalArgs(env, list[1:])
		if errv != nil {
			return errv
		}
		return f(args)
	})
}

func arity(name string, args List, n int) Value {
	if len(args) != n {
		return Errorf("%s expects %d arguments, got %d", name, n, len(args))
	}
	return nil
}

func list(args List) Value {
	return args
}

func isList(args List) Value {
	if errv := arity("list?", args, 1); errv != nil {
		return errv
	}
	_, ok := args[0].(List)
	return Boolean(ok)
}

func isEmpty(args List) Value {
	if errv := arity("empty?", args, 1); errv != nil {
		return errv
	}
	l, ok := args[0].(List)
	if !ok {
		return Errorf("empty? expects a list, got %s", args[0])
	}
	return Boolean(len(l) == 0)
}

func count(args List) Value {
	if errv := arity("count", args, 1); errv != nil {
		return errv
	}
	switch x := args[0].(type) {
	case Nil:
		return Int(0)
	case List:
		return Int(len(x))
	case String:
		return Int(utf8.RuneCountInString(string(x)))
	}
	return Errorf("count expects a list, got %s", args[0])
}

func cons(args List) Value {
	if errv := arity("cons", args, 2); errv != nil {
		return errv
	}
	l, ok := args[1].(List)
	if !ok {
		return Errorf("second argument to cons needs to be a list")
	}
	out := make(List, 0, len(l)+1)
	out = append(out, args[0])
	return append(out, l...)
}

func concat(args List) Value {
	out := List{}
	for _, a := range args {
		l, ok := a.(List)
		if !ok {
			return Errorf("every argument to concat must be a list")
		}
		out = append(out, l...)
	}
	return out
}

func first(args List) Value {
	if errv := arity("first", args, 1); errv != nil {
		return errv
	}
	switch x := args[0].(type) {
	case Nil:
		return Nil{}
	case List:
		if len(x) == 0 {
			return Nil{}
		}
		return x[0]
	}
	return Errorf("first expects a list, got %s", args[0])
}

func rest(args List) Value {
	if errv := arity("rest", args, 1); errv != nil {
		return errv
	}
	switch x := args[0].(type) {
	case Nil:
		return List{}
	case List:
		if len(x) == 0 {
			return List{}
		}
		out := make(List, len(x)-1)
		copy(out, x[1:])
		return out
	}
	return Errorf("rest expects a list, got %s", args[0])
}

func nth(args List) Value {
	if errv := arity("nth", args, 2); errv != nil {
		return errv
	}
	l, ok := args[0].(List)
	idx, isInt := args[1].(Int)
	if !ok || !isInt {
		return Errorf("nth expects a list and an integer")
	}
	if idx < 0 || int(idx) >= len(l) {
		return Errorf("nth: index %d out of bounds", idx)
	}
	return l[idx]
}

func isNil(args List) Value {
	if errv := arity("nil?", args, 1); errv != nil {
		return errv
	}
	_, ok := args[0].(Nil)
	return Boolean(ok)
}

func isNumber(args List) Value {
	if errv := arity("number?", args, 1); errv != nil {
		return errv
	}
	switch args[0].(type) {
	case Int, Float:
		return Boolean(true)
	}
	return Boolean(false)
}

func isString(args List) Value {
	if errv := arity("string?", args, 1); errv != nil {
		return errv
	}
	_, ok := args[0].(String)
	return Boolean(ok)
}

func isSymbol(args List) Value {
	if errv := arity("symbol?", args, 1); errv != nil {
		return errv
	}
	u, ok := args[0].(Unit)
	return Boolean(ok && u.IsSymbol())
}

func isFunction(args List) Value {
	if errv := arity("function?", args, 1); errv != nil {
		return errv
	}
	_, ok := args[0].(*Function)
	return Boolean(ok)
}

// (eval expr) evaluates expr, then evaluates the result in the root scope
func eval(list List, env *Env) Value {
	if len(list) != 2 {
		return Errorf("eval can only be called on a single item")
	}
	form := Evaluate(env, list[1])
	if isError(form) {
		return form
	}
	return Evaluate(env.Root(), form)
}

func readString(args List) Value {
	if errv := arity("read-string", args, 1); errv != nil {
		return errv
	}
	s, ok := args[0].(String)
	if !ok {
		return Errorf("read-string needs a string argument")
	}
	v, err := Read(string(s))
	if err != nil {
		return Errorf("%v", err)
	}
	return v
}

func slurp(args List) Value {
	if errv := arity("slurp", args, 1); errv != nil {
		return errv
	}
	filename, ok := args[0].(String)
	if !ok {
		return Errorf("slurp needs a filename")
	}
	b, err := os.ReadFile(string(filename))
	if err != nil {
		return Errorf("slurp: %v", err)
	}
	return String(b)
}

func str(args List) Value {
	var b strings.Builder
	for _, a := range args {
		b.WriteString(a.String())
	}
	return String(b.String())
}

func prStr(args List) Value {
	return String(join(args, PrStr))
}

func printer(out io.Writer, show func(Value) string) BuiltinProc {
	return func(args List) Value {
		fmt.Fprintln(out, join(args, show))
		return Nil{}
	}
}

func join(args List, show func(Value) string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = show(a)
	}
	return strings.Join(parts, " ")
}
