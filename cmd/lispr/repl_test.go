package main

import (
	"bytes"
	"io"
	"reflect"
	"testing"

	"github.com/peterh/liner"

	"github.com/deosjr/lispr/lisp"
)

type scriptedPrompter struct {
	lines   []string
	errs    []error
	prompts []string
}

func (p *scriptedPrompter) Prompt(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.lines) == 0 {
		return "", io.EOF
	}
	line, err := p.lines[0], p.errs[0]
	p.lines, p.errs = p.lines[1:], p.errs[1:]
	return line, err
}

func TestReadInput(t *testing.T) {
	for i, tt := range []struct {
		lines   []string
		errs    []error
		want    string
		ok      bool
		prompts []string
	}{
		{
			lines:   []string{"(+ 1 2)"},
			errs:    []error{nil},
			want:    "(+ 1 2)",
			ok:      true,
			prompts: []string{"> "},
		},
		{
			lines:   []string{"(def! f", "  (lambda (x)", "    x))"},
			errs:    []error{nil, nil, nil},
			want:    "(def! f\n  (lambda (x)\n    x))",
			ok:      true,
			prompts: []string{"> ", ". ", ". "},
		},
		{
			lines:   []string{`(str "a`, `b")`},
			errs:    []error{nil, nil},
			want:    "(str \"a\nb\")",
			ok:      true,
			prompts: []string{"> ", ". "},
		},
		{
			// syntax errors are handed on so they can be reported
			lines:   []string{"())"},
			errs:    []error{nil},
			want:    "())",
			ok:      true,
			prompts: []string{"> "},
		},
		{
			lines:   []string{"(+ 1", "", "7"},
			errs:    []error{nil, liner.ErrPromptAborted, nil},
			want:    "7",
			ok:      true,
			prompts: []string{"> ", ". ", "> "},
		},
		{
			lines:   []string{"(+ 1"},
			errs:    []error{nil},
			want:    "",
			ok:      false,
			prompts: []string{"> ", ". "},
		},
	} {
		p := &scriptedPrompter{lines: tt.lines, errs: tt.errs}
		got, ok := readInput(p, "> ", ". ")
		if got != tt.want || ok != tt.ok {
			t.Errorf("%d) got %q, %v want %q, %v", i, got, ok, tt.want, tt.ok)
		}
		if !reflect.DeepEqual(p.prompts, tt.prompts) {
			t.Errorf("%d) prompts got %q want %q", i, p.prompts, tt.prompts)
		}
	}
}

func TestRep(t *testing.T) {
	l := lisp.New()
	for i, tt := range []struct {
		input string
		want  string
	}{
		{input: "(def! x 2) (* x 3)", want: "2\n6\n"},
		{input: `"hi"`, want: "hi\n"},
		{input: "; just a comment", want: ""},
		{input: "y", want: "error - could not parse symbol: y\n"},
		{input: "(+ 1 2))", want: "error - syntax error: unexpected ')'\n"},
	} {
		var buf bytes.Buffer
		rep(l, tt.input, &buf)
		if got := buf.String(); got != tt.want {
			t.Errorf("%d) got %q want %q", i, got, tt.want)
		}
	}
}

func TestCompleter(t *testing.T) {
	l := lisp.New()
	l.Env.Set("deep-thought", lisp.Int(42))
	l.Env.Set("λ-sum", lisp.Int(0))
	complete := completer(l)
	for i, tt := range []struct {
		line string
		pos  int
		head string
		want []string
		tail string
	}{
		{line: "(de", pos: 3, head: "(", want: []string{"def!", "deref", "deep-thought"}, tail: ""},
		{line: "(+ 1 (cou x)", pos: 9, head: "(+ 1 (", want: []string{"count"}, tail: " x)"},
		{line: "'fir", pos: 4, head: "'", want: []string{"first"}, tail: ""},
		{line: "(zzz", pos: 4, head: "(", want: nil, tail: ""},
		{line: "(", pos: 1, head: "(", want: nil, tail: ""},
		// positions count runes, not bytes
		{line: `(str "héllo" cou)`, pos: 16, head: `(str "héllo" `, want: []string{"count"}, tail: ")"},
		{line: "(λ-s 1)", pos: 4, head: "(", want: []string{"λ-sum"}, tail: " 1)"},
		{line: "(é", pos: 9, head: "(", want: nil, tail: ""},
	} {
		head, got, tail := complete(tt.line, tt.pos)
		if head != tt.head || tail != tt.tail || !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%d) got %q %q %q want %q %q %q", i, head, got, tail, tt.head, tt.want, tt.tail)
		}
	}
}
