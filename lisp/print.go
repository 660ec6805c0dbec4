package lisp

import (
	"strconv"
	"strings"
)

func (l List) String() string {
	return (&renderer{}).render(l)
}

func (u Unit) String() string {
	return u.Token.Text
}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'f', -1, 64)
}

func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (Nil) String() string {
	return "nil"
}

func (s String) String() string {
	return string(s)
}

func (e Error) String() string {
	return "error - " + e.Message
}

func (f *Function) String() string {
	kind := "function"
	if f.macro {
		kind = "macro"
	}
	if f.name == "" {
		return "#<" + kind + ">"
	}
	return "#<" + kind + " " + f.name + ">"
}

func (a *Atom) String() string {
	return (&renderer{}).render(a)
}

// PrStr renders v so that reading the output back gives an equal value:
// strings are quoted and escaped, everything else prints as String does.
func PrStr(v Value) string {
	return (&renderer{readably: true}).render(v)
}

// renderer prints nested values. An atom that is reached again while
// its own content is being printed shows as (atom ...).
type renderer struct {
	readably bool
	seen     map[*Atom]bool
}

func (r *renderer) render(v Value) string {
	switch x := v.(type) {
	case String:
		if r.readably {
			s := strings.ReplaceAll(string(x), `\`, `\\`)
			s = strings.ReplaceAll(s, "\n", `\n`)
			s = strings.ReplaceAll(s, `"`, `\"`)
			return `"` + s + `"`
		}
	case List:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = r.render(e)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *Atom:
		if r.seen[x] {
			return "(atom ...)"
		}
		if r.seen == nil {
			r.seen = map[*Atom]bool{}
		}
		r.seen[x] = true
		defer delete(r.seen, x)
		return "(atom " + r.render(x.val) + ")"
	}
	return v.String()
}

// unescape turns the text of a string token into its contents.
func unescape(text string) string {
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	if !strings.ContainsRune(text, '\\') {
		return text
	}
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '\\' || i == len(text)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch text[i] {
		case 'n':
			b.WriteByte('\n')
		case '"', '\\':
			b.WriteByte(text[i])
		default:
			b.WriteByte('\\')
			b.WriteByte(text[i])
		}
	}
	return b.String()
}
