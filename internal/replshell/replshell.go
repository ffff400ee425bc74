// Package replshell implements a small interactive debug console for
// Palel. Because Palel has no incremental expression evaluation — no
// user functions, no arithmetic, no scoping — the shell's job is
// narrower than a true REPL: it accumulates statements typed at the
// prompt into one synthetic program body and, on demand, shows the C
// translation unit that body transpiles to. It never executes
// anything.
package replshell

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/palel-lang/palelc/internal/ast"
	"github.com/palel-lang/palelc/internal/ccodegen"
	"github.com/palel-lang/palelc/internal/parser"
	"github.com/palel-lang/palelc/internal/toolkit"
	"github.com/palel-lang/palelc/internal/transpile"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

// Shell is an accumulate-and-print Palel debug console.
type Shell struct {
	out        io.Writer
	statements []ast.Statement
	quit       bool
}

// New constructs a Shell writing its output to out.
func New(out io.Writer) *Shell {
	return &Shell{out: out}
}

// Run drives the interactive readline loop until :quit or EOF.
func (s *Shell) Run() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Fprintln(s.out, cyan("palel debug console — :run, :reset, :quit"))

	for {
		input, err := line.Prompt("palel> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				return nil
			}
			return err
		}
		line.AppendHistory(input)
		s.handleLine(strings.TrimSpace(input))
		if s.quit {
			return nil
		}
	}
}

func (s *Shell) handleLine(input string) {
	switch input {
	case "":
		return
	case ":quit", ":q":
		s.quit = true
		return
	case ":reset":
		s.statements = nil
		fmt.Fprintln(s.out, yellow("cleared accumulated statements"))
		return
	case ":run":
		s.runAccumulated()
		return
	}

	stmt, err := parseStatement(input)
	if err != nil {
		fmt.Fprintln(s.out, red("parse error: "+err.Error()))
		return
	}
	s.statements = append(s.statements, stmt)
	fmt.Fprintln(s.out, green(fmt.Sprintf("accumulated %d statement(s)", len(s.statements))))
}

func (s *Shell) runAccumulated() {
	src := &ast.Src{Programs: []*ast.Program{{
		DoBlock: &ast.DoBlock{Statements: s.statements},
	}}}

	unit, terr := transpile.Transpile(toolkit.New(), src)
	if terr != nil {
		fmt.Fprintln(s.out, red(terr.Error()))
		return
	}
	fmt.Fprint(s.out, ccodegen.Render(unit))
}

// parseStatement parses a single statement typed at the prompt by
// wrapping it in a synthetic program and lifting the lone statement
// back out.
func parseStatement(line string) (ast.Statement, error) {
	wrapped := "program do\n" + line + "\nend"
	src, perr := parser.ParseFile("<repl>", []byte(wrapped))
	if perr != nil {
		return nil, fmt.Errorf("%s", perr.Error())
	}
	if len(src.Programs) != 1 || len(src.Programs[0].DoBlock.Statements) != 1 {
		return nil, fmt.Errorf("expected exactly one statement")
	}
	return src.Programs[0].DoBlock.Statements[0], nil
}
