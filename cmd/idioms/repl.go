package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/idioms/expr"
	"github.com/npillmayer/idioms/expr/exprlang"
	"github.com/npillmayer/idioms/runtime"
	"github.com/pterm/pterm"
)

// defines collects -D name=value flags.
type defines map[string]int

func (d defines) String() string {
	return fmt.Sprintf("%v", map[string]int(d))
}

func (d defines) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return fmt.Errorf("expected name=value, got %q", s)
	}
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("value of %s is not an integer: %w", name, err)
	}
	d[strings.TrimSpace(name)] = v
	return nil
}

// replCmd starts an interactive session ("REPL"), where users may enter
// expressions. The REPL evaluates each expression and prints the result.
// Names bound with "name = expr" may be used in later expressions.
// Names given with -D are pre-defined in an enclosing global scope.
func replCmd(args []string) int {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	initf := fs.String("init", "", "Initial load")
	defs := defines{}
	fs.Var(defs, "D", "Pre-define a name, as name=value (repeatable)")
	fs.Parse(args)
	//
	repl, err := readline.New("idioms> ")
	if err != nil {
		tracer().Errorf(err.Error())
		return exitSetup
	}
	defer repl.Close()
	intp := NewIntp(defs)
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	if err := intp.loadInitFile(*initf); err != nil {
		pterm.Error.Println(err.Error())
		return exitSetup
	}
	intp.REPL(repl)
	return exitOK
}

// Intp is our interpreter object.
type Intp struct {
	globals *runtime.Scope
	session *runtime.Scope
	last    expr.Expr
}

// NewIntp creates an interpreter with pre-defined names in a global scope.
func NewIntp(defs map[string]int) *Intp {
	globals := runtime.NewScope("globals", nil)
	for name, v := range defs {
		globals.Bind(name, v)
	}
	return &Intp{
		globals: globals,
		session: runtime.NewScope("session", globals),
	}
}

func (intp *Intp) loadInitFile(filename string) error {
	if filename == "" {
		return nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("unable to open init file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	return scanner.Err()
}

// REPL starts interactive mode.
func (intp *Intp) REPL(repl *readline.Instance) {
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.Execute(line); quit {
			break
		}
	}
	pterm.Println("Good bye!")
}

// Execute runs a REPL command (starting with ':') or evaluates a statement,
// and prints the outcome. It returns true if the user asked to quit.
func (intp *Intp) Execute(line string) bool {
	switch line {
	case ":quit", ":q":
		return true
	case ":tree":
		if intp.last == nil {
			pterm.Error.Println("no expression yet")
		} else {
			renderTree(intp.last)
		}
		return false
	case ":vars":
		for _, sc := range []*runtime.Scope{intp.globals, intp.session} {
			sc.Tags().Each(func(name string, tag *runtime.Tag) {
				pterm.Println(fmt.Sprintf("%s %s = %d", sc.Name, name, tag.Value))
			})
		}
		return false
	}
	name, v, err := intp.Eval(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	if name != "" {
		pterm.Info.Println(fmt.Sprintf("%s = %d", name, v))
	} else {
		pterm.Info.Println(strconv.Itoa(v))
	}
	return false
}

// Eval evaluates a statement, given on a line by itself. For assignments,
// it returns the name which has been bound.
func (intp *Intp) Eval(line string) (string, int, error) {
	st, err := exprlang.ParseStatement(line, intp.session)
	if err != nil {
		return "", 0, err
	}
	v, err := expr.Eval(st.Expr)
	if err != nil {
		return "", 0, err
	}
	intp.last = st.Expr
	if st.IsAssignment() {
		intp.session.Bind(st.Name, v)
	}
	tracer().Debugf("%s => %d", st.Expr, v)
	return st.Name, v, nil
}
