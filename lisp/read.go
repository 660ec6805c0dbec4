package lisp

import (
	"errors"
	"fmt"
	"os"
)

// ErrIncomplete is returned when input ends inside an open form or string.
// More input may complete it.
var ErrIncomplete = errors.New("incomplete input")

var closers = map[string]string{"(": ")", "[": "]", "{": "}"}

// Read returns the first form in src.
func Read(src string) (Value, error) {
	forms, err := ReadAll(src)
	if err != nil {
		return nil, err
	}
	if len(forms) == 0 {
		return nil, fmt.Errorf("syntax error: no form to read")
	}
	return forms[0], nil
}

// ReadAll returns every top-level form in src, in order.
func ReadAll(src string) ([]Value, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	code := tokens[:0]
	for _, t := range tokens {
		if t.Type != CommentToken {
			code = append(code, t)
		}
	}
	if err := checkBalance(code); err != nil {
		return nil, err
	}
	r := &reader{tokens: code}
	forms := []Value{}
	for r.pos < len(r.tokens) {
		form, err := r.readForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	return forms, nil
}

func ParseFile(filename string) ([]Value, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ReadAll(string(b))
}

// checkBalance rejects mismatched brackets before any form is built.
func checkBalance(tokens []Token) error {
	stack := []string{}
	for _, t := range tokens {
		switch t.Type {
		case LeftBracket:
			stack = append(stack, closers[t.Text])
		case RightBracket:
			if len(stack) == 0 {
				return fmt.Errorf("syntax error: unexpected '%s'", t.Text)
			}
			want := stack[len(stack)-1]
			if t.Text != want {
				return fmt.Errorf("syntax error: expected '%s', got '%s'", want, t.Text)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return fmt.Errorf("%w: expected '%s'", ErrIncomplete, stack[len(stack)-1])
	}
	return nil
}

type reader struct {
	tokens []Token
	pos    int
}

func (r *reader) next() (Token, bool) {
	if r.pos >= len(r.tokens) {
		return Token{}, false
	}
	t := r.tokens[r.pos]
	r.pos++
	return t, true
}

func (r *reader) readForm() (Value, error) {
	t, ok := r.next()
	if !ok {
		return nil, fmt.Errorf("%w: expected form, got EOF", ErrIncomplete)
	}
	switch t.Type {
	case LeftBracket:
		if t.Text == "{" {
			return nil, fmt.Errorf("syntax error: maps are not supported")
		}
		return r.readList(closers[t.Text])
	case RightBracket:
		return nil, fmt.Errorf("syntax error: unexpected '%s'", t.Text)
	case SpecialToken:
		switch t.Text {
		case "'":
			return r.wrap("quote")
		case "@":
			return r.wrap("deref")
		}
		return nil, fmt.Errorf("syntax error: unsupported reader macro '%s'", t.Text)
	}
	return Unit{Token: t}, nil
}

func (r *reader) readList(closer string) (Value, error) {
	list := List{}
	for {
		if r.pos >= len(r.tokens) {
			return nil, fmt.Errorf("%w: expected '%s'", ErrIncomplete, closer)
		}
		if t := r.tokens[r.pos]; t.Type == RightBracket {
			r.pos++
			return list, nil
		}
		form, err := r.readForm()
		if err != nil {
			return nil, err
		}
		list = append(list, form)
	}
}

// wrap reads the next form and returns (symbol form).
func (r *reader) wrap(symbol string) (Value, error) {
	form, err := r.readForm()
	if err != nil {
		return nil, err
	}
	return List{NewSymbol(symbol), form}, nil
}
