// Package prelude holds the part of the standard library that is written
// in lisp itself.
package prelude

import (
	_ "embed"
	"fmt"

	"github.com/deosjr/lispr/lisp"
)

//go:embed prelude.lisp
var prelude string

func Load(l *lisp.Lisp) error {
	if err := l.Load(prelude); err != nil {
		return fmt.Errorf("prelude: %w", err)
	}
	return nil
}
