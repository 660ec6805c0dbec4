package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/codegangsta/cli"
	"github.com/golang/glog"
	metrics "github.com/rcrowley/go-metrics"

	"github.com/deosjr/lispr/lisp"
	"github.com/deosjr/lispr/prelude"
)

func main() {
	app := cli.NewApp()
	app.Name = "lispr"
	app.Usage = "run lisp files, or start a REPL when none are given"
	app.Version = "0.1.0"
	app.ArgsUsage = "[file...]"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Value: defaultConfigFile, Usage: "YAML config file"},
		cli.BoolFlag{Name: "no-prelude", Usage: "skip loading the lisp prelude"},
		cli.BoolFlag{Name: "stats", Usage: "print evaluation metrics to stderr on exit"},
		cli.IntFlag{Name: "verbosity", Value: 0, Usage: "glog verbosity level"},
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	configureLogging(c.Int("verbosity"))
	defer glog.Flush()

	cfg, err := LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	l := lisp.New()
	if c.Bool("stats") {
		defer metrics.WriteOnce(l.Metrics(), os.Stderr)
	}
	if !c.Bool("no-prelude") {
		if err := prelude.Load(l); err != nil {
			return err
		}
	}

	if c.NArg() > 0 {
		for _, filename := range c.Args() {
			if err := loadFile(l, filename); err != nil {
				return err
			}
		}
		return nil
	}

	for _, filename := range cfg.Preload {
		if err := loadFile(l, filename); err != nil {
			glog.Errorf("preload: %v", err)
		}
	}
	return repl(l, cfg)
}

// loadFile goes through the prelude's load-file when it is bound, so
// files run exactly as (load-file "name") would from the REPL.
func loadFile(l *lisp.Lisp, filename string) error {
	glog.Infof("loading %s", filename)
	if _, ok := l.Env.Get("load-file"); !ok {
		return l.LoadFile(filename)
	}
	call := lisp.List{lisp.NewSymbol("load-file"), lisp.String(filename)}
	if e, ok := l.EvalExpr(call).(lisp.Error); ok {
		return fmt.Errorf("%s: %w", filename, e)
	}
	return nil
}

// glog registers its flags on the standard flag set; the cli package
// parses its own, so they are forwarded here.
func configureLogging(v int) {
	flag.CommandLine.Parse([]string{})
	flag.Set("logtostderr", "true")
	flag.Set("v", strconv.Itoa(v))
}
