package lisp

import (
	"fmt"
	"regexp"
)

var tokenRegexp = regexp.MustCompile(`[\s,]*(~@|[\[\]{}()'` + "`" + `~^@]|"(?:\\.|[^\\"])*"?|;.*|[^\s\[\]{}('"` + "`" + `,;)]*)`)

// Tokenize splits src into classified tokens, comments included.
// An unterminated string literal yields ErrIncomplete.
func Tokenize(src string) ([]Token, error) {
	tokens := []Token{}
	for _, m := range tokenRegexp.FindAllStringSubmatch(src, -1) {
		text := m[1]
		if text == "" {
			continue
		}
		t := classify(text)
		if t.Type == StringToken && !terminated(text) {
			return nil, fmt.Errorf("%w: unterminated string %s", ErrIncomplete, text)
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

func classify(text string) Token {
	switch text {
	case "(", "[", "{":
		return Token{Text: text, Type: LeftBracket}
	case ")", "]", "}":
		return Token{Text: text, Type: RightBracket}
	case "~@", "'", "`", "~", "^", "@":
		return Token{Text: text, Type: SpecialToken}
	}
	switch text[0] {
	case '"':
		return Token{Text: text, Type: StringToken}
	case ';':
		return Token{Text: text, Type: CommentToken}
	}
	return Token{Text: text, Type: SymbolToken}
}

// terminated reports whether a string token ends in an unescaped quote.
func terminated(text string) bool {
	for i := 1; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case '"':
			return i == len(text)-1
		}
	}
	return false
}
