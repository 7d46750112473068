/*
File    : golox/cmd/lox/main.go
Package : main

Package main is the entry point for the golox interpreter. It provides
two modes of operation, grounded on the teacher's main/main.go:

 1. File mode: execute a single Lox source file, exiting with the
    conventional tree-walking-interpreter exit codes (0 success, 65
    static error, 70 runtime error, 74 I/O error).
 2. REPL mode (default, no arguments): interactive read-eval-print
    loop.

The teacher's third "server" mode (a bare net.Listener handing REPL
sessions to TCP clients) has no counterpart here — it is not part of
this interpreter's external interface and is dropped rather than
adapted; see DESIGN.md.
*/
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/loxlang/golox/internal/eval"
	"github.com/loxlang/golox/internal/lexer"
	"github.com/loxlang/golox/internal/loxerror"
	"github.com/loxlang/golox/internal/parser"
	"github.com/loxlang/golox/internal/repl"
	"github.com/loxlang/golox/internal/resolver"
)

// VERSION is the current version of the golox interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains attribution for the interpreter.
var AUTHOR = "loxlang"

// LICENSE specifies the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "lox >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
   _
  | |  ___ __  __
  | | / _ \\ \/ /
  | || (_) >  <
  |_| \___/_/\_\
`

// LINE is a separator used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// Exit codes follow the convention spec §6 sets out: 0 success, 65
// static (lex/parse/resolve) error, 70 runtime error, 74 I/O error.
const (
	exitOK      = 0
	exitStatic  = 65
	exitRuntime = 70
	exitIOError = 74
)

func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]
		switch arg {
		case "--help", "-h":
			showHelp()
			os.Exit(exitOK)
		case "--version", "-v":
			showVersion()
			os.Exit(exitOK)
		default:
			runFile(arg)
		}
		return
	}

	session := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	session.Start(os.Stdout)
}

func showHelp() {
	cyanColor.Println("golox - a tree-walking interpreter for Lox")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	cyanColor.Println("  lox                    Start interactive REPL mode")
	cyanColor.Println("  lox <path-to-file>     Execute a Lox file (.lox)")
	cyanColor.Println("  lox --help             Display this help message")
	cyanColor.Println("  lox --version          Display version information")
}

func showVersion() {
	cyanColor.Println("golox - a tree-walking interpreter for Lox")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
}

// runFile reads and executes a single Lox source file, exiting with
// the code matching whichever error class (if any) halted execution.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", fileName, err)
		os.Exit(exitIOError)
	}
	os.Exit(run(string(source)))
}

// run lexes, parses, resolves, and evaluates source text, returning
// the process exit code that matches the first error class
// encountered, or exitOK if none.
func run(source string) int {
	lx := lexer.New(source)
	tokens := lx.Scan()
	if len(lx.Errors) > 0 {
		for _, e := range lx.Errors {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		return exitStatic
	}

	ps := parser.New(tokens)
	statements := ps.Parse()
	if len(ps.Errors) > 0 {
		for _, e := range ps.Errors {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		return exitStatic
	}

	res := resolver.New()
	res.Resolve(statements)
	if len(res.Errors) > 0 {
		for _, e := range res.Errors {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		return exitStatic
	}

	interp := eval.New(res.Locals)
	interp.SetWriter(os.Stdout)
	if err := interp.Interpret(statements); err != nil {
		if _, ok := err.(*loxerror.RuntimeError); ok {
			redColor.Fprintf(os.Stderr, "%s\n", err)
			return exitRuntime
		}
		redColor.Fprintf(os.Stderr, "%s\n", err)
		return exitRuntime
	}
	return exitOK
}
