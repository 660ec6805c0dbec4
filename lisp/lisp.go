package lisp

import (
	"io"
	"os"

	metrics "github.com/rcrowley/go-metrics"
)

// Lisp is an interpreter instance: a root environment plus the counters
// recorded while evaluating top-level forms. It is not safe for
// concurrent use.
type Lisp struct {
	Env *Env

	out      io.Writer
	registry metrics.Registry
	forms    metrics.Counter
	errors   metrics.Counter
	timer    metrics.Timer
}

type Option func(*Lisp)

// WithOutput sets where prn and println write. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(l *Lisp) {
		l.out = w
	}
}

// WithRegistry records evaluation metrics in r instead of a private registry.
func WithRegistry(r metrics.Registry) Option {
	return func(l *Lisp) {
		l.registry = r
	}
}

func New(opts ...Option) *Lisp {
	l := &Lisp{out: os.Stdout}
	for _, opt := range opts {
		opt(l)
	}
	if l.registry == nil {
		l.registry = metrics.NewRegistry()
	}
	l.Env = newGlobalEnv(l.out)
	l.forms = metrics.GetOrRegisterCounter("lisp.forms", l.registry)
	l.errors = metrics.GetOrRegisterCounter("lisp.errors", l.registry)
	l.timer = metrics.GetOrRegisterTimer("lisp.eval", l.registry)
	return l
}

// Eval reads the first form of input and evaluates it in the root scope.
// Only reader failures are returned as errors; evaluation failures come
// back as Error values.
func (l *Lisp) Eval(input string) (Value, error) {
	sexp, err := Read(input)
	if err != nil {
		return nil, err
	}
	return l.EvalExpr(sexp), nil
}

func (l *Lisp) EvalExpr(e Value) Value {
	var result Value
	l.timer.Time(func() {
		result = Evaluate(l.Env, e)
	})
	l.forms.Inc(1)
	if isError(result) {
		l.errors.Inc(1)
	}
	return result
}

func (l *Lisp) Metrics() metrics.Registry {
	return l.registry
}
