package lisp

import "fmt"

// Value is any runtime datum. The set of implementations is closed:
// List, Unit, Int, Float, Boolean, Nil, String, Error, *Function and *Atom.
type Value interface {
	String() string
	value()
}

type TokenType uint8

const (
	SymbolToken TokenType = iota
	StringToken
	LeftBracket
	RightBracket
	SpecialToken
	CommentToken
)

type Token struct {
	Text string
	Type TokenType
}

// Unit wraps a token from the reader that has not been resolved yet.
// Evaluating a unit turns it into a string, a bound value or a literal.
type Unit struct {
	Token Token
}

func NewSymbol(s string) Unit {
	return Unit{Token: Token{Text: s, Type: SymbolToken}}
}

func (u Unit) IsSymbol() bool {
	return u.Token.Type == SymbolToken
}

func (u Unit) Symbol() string {
	return u.Token.Text
}

type List []Value

type Int int64

type Float float64

type Boolean bool

type Nil struct{}

type String string

// Error is a failed computation. It is returned like any other value
// and can be stored in bindings; it also satisfies the error interface.
type Error struct {
	Message string
}

func Errorf(format string, args ...any) Error {
	return Error{Message: fmt.Sprintf(format, args...)}
}

func (e Error) Error() string {
	return e.Message
}

// Proc is the calling convention shared by builtins and lambdas:
// the full, unevaluated call list and the caller's environment.
type Proc func(list List, env *Env) Value

type Function struct {
	name   string
	proc   Proc
	lambda *lambda
	macro  bool
}

func NewFunction(name string, p Proc) *Function {
	return &Function{name: name, proc: p}
}

func (f *Function) Call(list List, env *Env) Value {
	return f.proc(list, env)
}

func (f *Function) Name() string {
	return f.name
}

func (f *Function) IsMacro() bool {
	return f.macro
}

// Atom is a mutable cell. Every value holding the same *Atom
// observes writes made through any of them.
type Atom struct {
	val Value
}

func NewAtom(v Value) *Atom {
	return &Atom{val: v}
}

func (a *Atom) Deref() Value {
	return a.val
}

func (a *Atom) Reset(v Value) {
	a.val = v
}

func (List) value()      {}
func (Unit) value()      {}
func (Int) value()       {}
func (Float) value()     {}
func (Boolean) value()   {}
func (Nil) value()       {}
func (String) value()    {}
func (Error) value()     {}
func (*Function) value() {}
func (*Atom) value()     {}

func isTruthy(v Value) bool {
	switch x := v.(type) {
	case Nil:
		return false
	case Boolean:
		return bool(x)
	}
	return true
}

func isError(v Value) bool {
	_, ok := v.(Error)
	return ok
}
