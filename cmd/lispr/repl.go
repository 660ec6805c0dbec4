package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/peterh/liner"

	"github.com/deosjr/lispr/lisp"
)

// prompter is the part of *liner.State the REPL needs.
type prompter interface {
	Prompt(prompt string) (string, error)
}

func repl(l *lisp.Lisp, cfg Config) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetWordCompleter(completer(l))

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		if _, err := ln.ReadHistory(f); err != nil {
			glog.Warningf("reading history: %v", err)
		}
		f.Close()
	}
	defer func() {
		f, err := os.Create(cfg.HistoryFile)
		if err != nil {
			glog.Warningf("saving history: %v", err)
			return
		}
		defer f.Close()
		if _, err := ln.WriteHistory(f); err != nil {
			glog.Warningf("saving history: %v", err)
		}
	}()

	for {
		src, ok := readInput(ln, cfg.Prompt, continuationPrompt)
		if !ok {
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		rep(l, src, os.Stdout)
	}
}

// rep evaluates every form in src and prints each result.
func rep(l *lisp.Lisp, src string, w io.Writer) {
	forms, err := lisp.ReadAll(src)
	if err != nil {
		fmt.Fprintln(w, lisp.Error{Message: err.Error()}.String())
		return
	}
	for _, form := range forms {
		fmt.Fprintln(w, l.EvalExpr(form).String())
	}
}

// readInput keeps prompting until the collected lines read as complete
// forms. It returns false when input is exhausted.
func readInput(p prompter, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		pr := prompt
		if b.Len() > 0 {
			pr = cont
		}
		line, err := p.Prompt(pr)
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if err != nil {
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, err := lisp.ReadAll(src); errors.Is(err, lisp.ErrIncomplete) {
			continue
		}
		return src, true
	}
}

// completer offers special forms and bound symbols for the word before
// the cursor. liner reports pos in runes.
func completer(l *lisp.Lisp) liner.WordCompleter {
	return func(line string, pos int) (string, []string, string) {
		runes := []rune(line)
		if pos > len(runes) {
			pos = len(runes)
		}
		before, tail := string(runes[:pos]), string(runes[pos:])
		start := strings.LastIndexAny(before, " ()[]'@\n\t") + 1
		head, prefix := before[:start], before[start:]
		var out []string
		if prefix == "" {
			return head, out, tail
		}
		for _, s := range append(lisp.SpecialForms(), l.Env.Symbols()...) {
			if strings.HasPrefix(s, prefix) {
				out = append(out, s)
			}
		}
		return head, out, tail
	}
}
