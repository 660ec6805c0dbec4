package lisp

import (
	"fmt"

	"github.com/golang/glog"
)

// Load a string of lisp code/data into the environment.
// Stops at the first form that fails to read or evaluates to an Error.
func (l *Lisp) Load(data string) error {
	sexprs, err := ReadAll(data)
	if err != nil {
		return err
	}
	glog.V(2).Infof("loading %d forms", len(sexprs))
	for i, def := range sexprs {
		if e, ok := l.EvalExpr(def).(Error); ok {
			return fmt.Errorf("form %d: %w", i+1, e)
		}
	}
	return nil
}

func (l *Lisp) LoadFile(filename string) error {
	sexprs, err := ParseFile(filename)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	glog.V(2).Infof("loading %d forms from %s", len(sexprs), filename)
	for i, def := range sexprs {
		if e, ok := l.EvalExpr(def).(Error); ok {
			return fmt.Errorf("%s: form %d: %w", filename, i+1, e)
		}
	}
	return nil
}
