package lisp_test

import (
	. "github.com/deosjr/lispr/lisp"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reader", func() {
	Describe("tokenizing", func() {
		It("classifies every token", func() {
			tokens, err := Tokenize(`(def! s "a b") ; done`)
			Ω(err).ShouldNot(HaveOccurred())
			Ω(tokens).Should(Equal([]Token{
				{Text: "(", Type: LeftBracket},
				{Text: "def!", Type: SymbolToken},
				{Text: "s", Type: SymbolToken},
				{Text: `"a b"`, Type: StringToken},
				{Text: ")", Type: RightBracket},
				{Text: "; done", Type: CommentToken},
			}))
		})

		It("treats commas as whitespace", func() {
			tokens, err := Tokenize("(1,2 ,3)")
			Ω(err).ShouldNot(HaveOccurred())
			Ω(tokens).Should(HaveLen(5))
			Ω(tokens[2]).Should(Equal(Token{Text: "2", Type: SymbolToken}))
		})

		It("splits reader macros from the following form", func() {
			tokens, err := Tokenize("'a @b")
			Ω(err).ShouldNot(HaveOccurred())
			Ω(tokens).Should(Equal([]Token{
				{Text: "'", Type: SpecialToken},
				{Text: "a", Type: SymbolToken},
				{Text: "@", Type: SpecialToken},
				{Text: "b", Type: SymbolToken},
			}))
		})

		It("keeps escaped quotes inside strings", func() {
			tokens, err := Tokenize(`"say \"hi\""`)
			Ω(err).ShouldNot(HaveOccurred())
			Ω(tokens).Should(Equal([]Token{{Text: `"say \"hi\""`, Type: StringToken}}))
		})

		It("reports unterminated strings as incomplete", func() {
			_, err := Tokenize(`(str "abc`)
			Ω(err).Should(MatchError(ErrIncomplete))
		})
	})

	Describe("reading", func() {
		It("builds nested lists", func() {
			v, err := Read("(a (b c) () d)")
			Ω(err).ShouldNot(HaveOccurred())
			Ω(v.String()).Should(Equal("(a (b c) () d)"))
			Ω(v.(List)[2]).Should(Equal(List{}))
		})

		It("reads square brackets as lists", func() {
			v, err := Read("[1 [2]]")
			Ω(err).ShouldNot(HaveOccurred())
			Ω(v).Should(Equal(List{NewSymbol("1"), List{NewSymbol("2")}}))
		})

		It("returns only the first form", func() {
			v, err := Read("1 2 3")
			Ω(err).ShouldNot(HaveOccurred())
			Ω(v).Should(Equal(NewSymbol("1")))
		})

		It("returns every form from ReadAll", func() {
			forms, err := ReadAll("1 (2) ; three\n\"four\"")
			Ω(err).ShouldNot(HaveOccurred())
			Ω(forms).Should(HaveLen(3))
			Ω(forms[2]).Should(Equal(Unit{Token: Token{Text: `"four"`, Type: StringToken}}))
		})

		It("expands quote and deref shorthand", func() {
			v, err := Read("'(a @b)")
			Ω(err).ShouldNot(HaveOccurred())
			Ω(v.String()).Should(Equal("(quote (a (deref b)))"))
		})

		It("skips comments", func() {
			forms, err := ReadAll("; nothing here\n; or here")
			Ω(err).ShouldNot(HaveOccurred())
			Ω(forms).Should(BeEmpty())
		})
	})

	Describe("errors", func() {
		It("fails on empty input", func() {
			_, err := Read("   ")
			Ω(err).Should(MatchError("syntax error: no form to read"))
		})

		It("fails on a stray closing bracket", func() {
			_, err := Read("(+ 1 2))")
			Ω(err).Should(MatchError("syntax error: unexpected ')'"))
		})

		It("fails on mismatched brackets", func() {
			_, err := Read("(+ 1 2]")
			Ω(err).Should(MatchError("syntax error: expected ')', got ']'"))
		})

		It("reports open lists as incomplete", func() {
			_, err := ReadAll("(def! f (lambda (x)")
			Ω(err).Should(MatchError(ErrIncomplete))
		})

		It("reports a dangling quote as incomplete", func() {
			_, err := Read("'")
			Ω(err).Should(MatchError(ErrIncomplete))
		})

		It("rejects maps", func() {
			_, err := Read("{a 1}")
			Ω(err).Should(MatchError("syntax error: maps are not supported"))
		})

		It("rejects unsupported reader macros", func() {
			_, err := Read("`a")
			Ω(err).Should(MatchError("syntax error: unsupported reader macro '`'"))
		})
	})
})
