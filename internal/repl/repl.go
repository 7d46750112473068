/*
File   : golox/internal/repl/repl.go
Package: repl

Package repl implements the interactive Read-Eval-Print Loop, grounded
on the teacher's repl.Repl (repl/repl.go): the same banner/line/prompt
fields, the same readline + fatih/color wiring, and the same
panic-recovering per-line execution loop, retargeted at Lox's
lex -> parse -> resolve -> evaluate pipeline and spec §6's dual-mode
input handling (try as statements first, fall back to a bare expression
so the REPL can echo its value).
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/eval"
	"github.com/loxlang/golox/internal/lexer"
	"github.com/loxlang/golox/internal/parser"
	"github.com/loxlang/golox/internal/resolver"
)

// Color definitions for REPL output, matching the teacher's scheme:
// blue for decoration, green for the banner, yellow for results, red
// for errors, cyan for informational text.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl ready to Start.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo prints the startup banner and usage hints.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to golox!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit, or press Ctrl+D")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop. A single Interpreter persists across
// lines, so variables, functions and classes declared on one line
// remain visible on the next.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.Prompt})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	session := eval.New(make(map[ast.Expr]int))
	session.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" || line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeLine(writer, line, session)
	}
}

// executeLine implements spec §6's dual-mode handling: try the line as
// a full statement list first; if that fails to parse cleanly, retry
// it as a single bare expression and print its value. Either way the
// line is resolved (against the session's own side table) before it
// reaches the evaluator.
func (r *Repl) executeLine(writer io.Writer, line string, session *eval.Interpreter) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[runtime error] %v\n", recovered)
		}
	}()

	lx := lexer.New(line)
	tokens := lx.Scan()
	if len(lx.Errors) > 0 {
		for _, e := range lx.Errors {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	ps := parser.New(tokens)
	statements := ps.Parse()

	if len(ps.Errors) == 0 {
		res := resolver.New()
		res.Resolve(statements)
		if len(res.Errors) > 0 {
			for _, e := range res.Errors {
				redColor.Fprintf(writer, "%s\n", e)
			}
			return
		}
		for expr, depth := range res.Locals {
			session.Locals()[expr] = depth
		}
		if err := session.Interpret(statements); err != nil {
			redColor.Fprintf(writer, "%s\n", err)
		}
		return
	}

	// Fall back to bare-expression mode so the REPL can evaluate and
	// echo simple expressions without a trailing `;` or `print`.
	exprTokens := lexer.New(line).Scan()
	ep := parser.New(exprTokens)
	expr, ok := ep.ParseExpression()
	if !ok {
		for _, e := range ps.Errors {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	res := resolver.New()
	res.ResolveExpr(expr)
	if len(res.Errors) > 0 {
		for _, e := range res.Errors {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}
	for e, depth := range res.Locals {
		session.Locals()[e] = depth
	}

	value, err := session.EvaluateExpr(expr)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	yellowColor.Fprintf(writer, "%s\n", value.String())
}
