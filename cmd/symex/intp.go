package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/symex"
	"github.com/npillmayer/symex/ad"
	"github.com/npillmayer/symex/codec"
	"github.com/npillmayer/symex/runtime"
	"github.com/npillmayer/symex/walk"
	"github.com/pterm/pterm"
)

// checkTolerance is the tolerance for comparing symbolic and dual-number
// derivatives.
const checkTolerance = 1e-9

// Intp is our interpreter object.
type Intp struct {
	ws   *runtime.Workspace
	opts []symex.DiffOption
}

// NewIntp creates an interpreter on a fresh workspace.
func NewIntp(opts ...symex.DiffOption) *Intp {
	return &Intp{ws: runtime.NewWorkspace(), opts: opts}
}

// result is the output of a command.
type result struct {
	lines []string
	label string // label of tree, if any
	tree  pterm.LeveledList
	quit  bool
}

func (r *result) printf(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

var usage = []string{
	"list                          list all expressions",
	"show N                        print expression N",
	"eval N [VAR NUM ...]          evaluate N, binding variables",
	"diff N VAR [as M]             differentiate N, optionally store as M",
	"tree N                        display N as a tree",
	"def N lit NUM                 define N as a literal",
	"def N var ID                  define N as a variable",
	"def N OP A [B]                define N as operation OP on A (and B)",
	"drop N                        remove user definition N",
	"check N VAR AT [VAR NUM ...]  compare d/dVAR N with dual numbers",
	"load FILE                     load expressions from a JSON or YAML file",
	"save N FILE                   save expression N to a JSON or YAML file",
	"stats N                       print size, depth and variables of N",
	"quit                          leave",
}

// Exec executes a command, given on a line by itself.
func (intp *Intp) Exec(line string) (result, error) {
	var r result
	tokens, err := tokenize(line)
	if err != nil {
		return r, err
	}
	ts := &tokenStream{tokens: tokens}
	if ts.atEnd() {
		return r, nil
	}
	cmd := ts.next()
	if cmd.kind != tokKeyword {
		return r, fmt.Errorf("unknown command %v; try 'help'", cmd)
	}
	switch cmd.lexeme {
	case "help":
		r.lines = usage
		err = ts.end()
	case "quit":
		r.quit = true
		err = ts.end()
	case "list":
		err = intp.list(ts, &r)
	case "show":
		err = intp.show(ts, &r)
	case "eval":
		err = intp.eval(ts, &r)
	case "diff":
		err = intp.diff(ts, &r)
	case "tree":
		err = intp.tree(ts, &r)
	case "def":
		err = intp.def(ts, &r)
	case "drop":
		err = intp.drop(ts, &r)
	case "check":
		err = intp.check(ts, &r)
	case "load":
		err = intp.load(ts, &r)
	case "save":
		err = intp.save(ts, &r)
	case "stats":
		err = intp.stats(ts, &r)
	default:
		err = fmt.Errorf("%v cannot start a command", cmd)
	}
	if err != nil {
		tracer().Debugf("command '%s' failed: %v", line, err)
	}
	return r, err
}

// lookup reads an expression name and resolves it.
func (intp *Intp) lookup(ts *tokenStream) (string, *symex.Expr, error) {
	name, err := ts.name("expression name")
	if err != nil {
		return "", nil, err
	}
	e, err := intp.ws.Lookup(name)
	return name, e, err
}

// bindings reads pairs of variable names and numbers up to the end of the
// command.
func bindings(ts *tokenStream, env ad.Bindings) error {
	for !ts.atEnd() {
		v, err := ts.name("variable name")
		if err != nil {
			return err
		}
		if env[v], err = ts.number(); err != nil {
			return err
		}
	}
	return nil
}

func (intp *Intp) list(ts *tokenStream, r *result) error {
	if err := ts.end(); err != nil {
		return err
	}
	for _, name := range intp.ws.Names() {
		tag, scope := intp.ws.Resolve(name)
		r.printf("%-8s %-5s %s", name, scope.Name, tag.Expr)
	}
	return nil
}

func (intp *Intp) show(ts *tokenStream, r *result) error {
	name, e, err := intp.lookup(ts)
	if err != nil {
		return err
	}
	r.printf("%s = %s", name, e)
	return ts.end()
}

func (intp *Intp) eval(ts *tokenStream, r *result) error {
	name, e, err := intp.lookup(ts)
	if err != nil {
		return err
	}
	env := ad.Bindings{}
	if err = bindings(ts, env); err != nil {
		return err
	}
	var v float64
	if len(env) == 0 {
		v, err = symex.Evaluate(e)
	} else {
		v, err = ad.Eval(e, env)
	}
	if err != nil {
		return err
	}
	r.printf("%s = %s", name, symex.FormatFloat(v))
	return nil
}

func (intp *Intp) diff(ts *tokenStream, r *result) error {
	name, e, err := intp.lookup(ts)
	if err != nil {
		return err
	}
	wrt, err := ts.name("variable name")
	if err != nil {
		return err
	}
	target := ""
	if ts.keyword("as") {
		if target, err = ts.name("expression name"); err != nil {
			return err
		}
	}
	if err = ts.end(); err != nil {
		return err
	}
	d, err := symex.Differentiate(e, wrt, intp.opts...)
	if err != nil {
		return err
	}
	if target != "" {
		if _, err = intp.ws.Define(target, d, "diff"); err != nil {
			return err
		}
		r.printf("%s = d/d%s %s = %s", target, wrt, name, d)
		return nil
	}
	r.printf("d/d%s %s = %s", wrt, name, d)
	return nil
}

func (intp *Intp) tree(ts *tokenStream, r *result) error {
	name, e, err := intp.lookup(ts)
	if err != nil {
		return err
	}
	r.label, r.tree = name, leveledList(e)
	return ts.end()
}

func (intp *Intp) def(ts *tokenStream, r *result) error {
	name, err := ts.name("expression name")
	if err != nil {
		return err
	}
	var e *symex.Expr
	switch {
	case ts.keyword("lit"):
		var v float64
		if v, err = ts.number(); err != nil {
			return err
		}
		e = symex.Lit(v)
	case ts.keyword("var"):
		var v string
		if v, err = ts.name("variable name"); err != nil {
			return err
		}
		e = symex.Var(v)
	default:
		if e, err = intp.operation(ts); err != nil {
			return err
		}
	}
	if err = ts.end(); err != nil {
		return err
	}
	if _, err = intp.ws.Define(name, e, "def"); err != nil {
		return err
	}
	r.printf("%s = %s", name, e)
	return nil
}

// operation reads OP A [B], with A and B names of expressions.
func (intp *Intp) operation(ts *tokenStream) (*symex.Expr, error) {
	op, err := ts.name("lit, var or operator")
	if err != nil {
		return nil, err
	}
	if uop, ok := codec.UnaryOpNamed(op); ok {
		_, a, err := intp.lookup(ts)
		if err != nil {
			return nil, err
		}
		return symex.Apply1(uop, a), nil
	}
	if bop, ok := codec.BinaryOpNamed(op); ok {
		_, a, err := intp.lookup(ts)
		if err != nil {
			return nil, err
		}
		_, b, err := intp.lookup(ts)
		if err != nil {
			return nil, err
		}
		return symex.Apply2(bop, a, b), nil
	}
	return nil, fmt.Errorf("unknown operator '%s'", op)
}

func (intp *Intp) drop(ts *tokenStream, r *result) error {
	name, err := ts.name("expression name")
	if err != nil {
		return err
	}
	if err = ts.end(); err != nil {
		return err
	}
	if !intp.ws.Undefine(name) {
		return fmt.Errorf("no user definition for '%s'", name)
	}
	r.printf("dropped %s", name)
	return nil
}

func (intp *Intp) check(ts *tokenStream, r *result) error {
	name, e, err := intp.lookup(ts)
	if err != nil {
		return err
	}
	wrt, err := ts.name("variable name")
	if err != nil {
		return err
	}
	at, err := ts.number()
	if err != nil {
		return err
	}
	env := ad.Bindings{wrt: at}
	if err = bindings(ts, env); err != nil {
		return err
	}
	report, err := ad.Check(e, wrt, env, checkTolerance, intp.opts...)
	if err != nil {
		return err
	}
	r.printf("d/d%s %s at %s: %v", wrt, name, symex.FormatFloat(at), report)
	return nil
}

func (intp *Intp) load(ts *tokenStream, r *result) error {
	path, err := ts.name("file name")
	if err != nil {
		return err
	}
	if err = ts.end(); err != nil {
		return err
	}
	doc, err := codec.ReadFile(path)
	if err != nil {
		return err
	}
	exprs, err := doc.Decode()
	if err != nil {
		return err
	}
	names, err := intp.ws.Import(exprs, path)
	if err != nil {
		return err
	}
	r.printf("loaded %s from %s", strings.Join(names, ", "), path)
	return nil
}

func (intp *Intp) save(ts *tokenStream, r *result) error {
	name, e, err := intp.lookup(ts)
	if err != nil {
		return err
	}
	path, err := ts.name("file name")
	if err != nil {
		return err
	}
	if err = ts.end(); err != nil {
		return err
	}
	if err = codec.WriteExpr(path, e); err != nil {
		return err
	}
	r.printf("saved %s to %s", name, path)
	return nil
}

func (intp *Intp) stats(ts *tokenStream, r *result) error {
	name, e, err := intp.lookup(ts)
	if err != nil {
		return err
	}
	if err = ts.end(); err != nil {
		return err
	}
	fp, err := symex.Fingerprint(e)
	if err != nil {
		return err
	}
	r.printf("%s: %d nodes (%d distinct), depth %d", name, walk.Size(e), walk.Distinct(e), walk.Depth(e))
	r.printf("variables: [%s]", strings.Join(walk.Variables(e), " "))
	r.printf("fingerprint: %s", fp)
	return nil
}

// print displays the result of a command.
func (r result) print() {
	for _, line := range r.lines {
		pterm.Info.Println(line)
	}
	if r.tree != nil {
		renderTree(r.label, r.tree)
	}
}
