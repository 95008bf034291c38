package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/idioms/expr"
	"github.com/npillmayer/idioms/expr/exprlang"
	"github.com/npillmayer/idioms/fsnode"
	"github.com/npillmayer/idioms/group"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// Exit codes
const (
	exitOK       = 0
	exitUsage    = 1
	exitBadInput = 2
	exitSetup    = 3
)

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Usage = usage
	flag.Parse()
	setTraceLevel(tracing.TraceLevelFromString(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)
	//
	if flag.NArg() == 0 {
		usage()
		os.Exit(exitUsage)
	}
	cmd, args := flag.Arg(0), flag.Args()[1:]
	var code int
	switch cmd {
	case "eval":
		code = evalCmd(args)
	case "group":
		code = groupCmd(args)
	case "hidden":
		code = hiddenCmd(args)
	case "repl":
		code = replCmd(args)
	default:
		pterm.Error.Println(fmt.Sprintf("unknown command %q", cmd))
		usage()
		code = exitUsage
	}
	os.Exit(code)
}

// traceKeys are the tracing keys of the library packages of this module.
// The command itself traces to gtrace.SyntaxTracer.
var traceKeys = []string{"idioms.expr", "idioms.exprlang",
	"idioms.fsnode", "idioms.group", "idioms.runtime", "idioms.scanner"}

func setTraceLevel(level tracing.TraceLevel) {
	gtrace.SyntaxTracer.SetTraceLevel(level)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-trace level] eval|group|hidden|repl [args]\n", os.Args[0])
	flag.PrintDefaults()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// --- eval ------------------------------------------------------------------

func evalCmd(args []string) int {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	showTree := fs.Bool("tree", true, "Print the expression tree")
	fs.Parse(args)
	input := strings.TrimSpace(strings.Join(fs.Args(), " "))
	tracer().Infof("Input argument is \"%s\"", input)
	e, err := exprlang.Parse(input, nil)
	if err != nil {
		pterm.Error.Println(err.Error())
		return exitBadInput
	}
	v, err := expr.Eval(e)
	if err != nil {
		pterm.Error.Println(err.Error())
		return exitBadInput
	}
	if *showTree {
		renderTree(e)
	}
	pterm.Info.Println(strconv.Itoa(v))
	return exitOK
}

// --- group -----------------------------------------------------------------

func groupCmd(args []string) int {
	fs := flag.NewFlagSet("group", flag.ExitOnError)
	by := fs.String("by", "age", "Group persons by [age|name]")
	fs.Parse(args)
	people := group.Sample()
	switch *by {
	case "age":
		groups := group.ByOrdered(people, group.ByAge)
		pterm.Info.Println(groups.String())
		renderGroups(groups.Map(), group.SortedKeys(groups.Map(), utils.IntComparator))
	case "name":
		groups := group.ByOrdered(people, group.ByName)
		pterm.Info.Println(groups.String())
		renderGroups(groups.Map(), group.SortedKeys(groups.Map(), utils.StringComparator))
	default:
		pterm.Error.Println(fmt.Sprintf("cannot group by %q", *by))
		return exitBadInput
	}
	return exitOK
}

func renderGroups[K comparable](groups map[K][]group.Person, keys []K) {
	data := pterm.TableData{{"Key", "Members"}}
	for _, k := range keys {
		var names []string
		for _, p := range groups[k] {
			names = append(names, p.Name)
		}
		data = append(data, []string{fmt.Sprintf("%v", k), strings.Join(names, ", ")})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// --- hidden ----------------------------------------------------------------

func hiddenCmd(args []string) int {
	fs := flag.NewFlagSet("hidden", flag.ExitOnError)
	abs := fs.Bool("abs", false, "Make paths absolute before walking up")
	stat := fs.Bool("stat", false, "Only count existing hidden directories")
	verbose := fs.Bool("v", false, "List the hidden ancestors")
	fs.Parse(args)
	if fs.NArg() == 0 {
		pterm.Error.Println("no path given")
		return exitUsage
	}
	var opts []fsnode.Option
	if *stat {
		opts = append(opts, fsnode.WithHiddenFunc(fsnode.StatHidden))
	}
	for _, path := range fs.Args() {
		node, err := pathNode(path, *abs, opts)
		if err != nil {
			pterm.Error.Println(err.Error())
			return exitBadInput
		}
		hidden := fsnode.IsInsideHiddenDirectory(node)
		pterm.Info.Println(fmt.Sprintf("%s: %v", node.Path(), hidden))
		if hidden && *verbose {
			for n := range fsnode.Ancestors(node).Where(fsnode.Node.IsHidden).All() {
				pterm.Println("    hidden: " + n.Path())
			}
		}
	}
	return exitOK
}

func pathNode(path string, abs bool, opts []fsnode.Option) (*fsnode.PathNode, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}
	if abs {
		return fsnode.AbsPathNode(path, opts...)
	}
	return fsnode.NewPathNode(path, opts...), nil
}
