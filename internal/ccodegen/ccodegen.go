// Package ccodegen renders a cir.TranslationUnit to deterministic C99
// source text. It is purely textual: it never re-derives types or
// includes, only prints what the transpiler already decided.
package ccodegen

import (
	"fmt"
	"strings"

	"github.com/palel-lang/palelc/internal/cir"
)

// Render produces the C source text for a translation unit.
func Render(unit cir.TranslationUnit) string {
	var sb strings.Builder

	for _, inc := range unit.Includes {
		sb.WriteString(fmt.Sprintf("#include <%s>\n", inc.File))
	}
	if len(unit.Includes) > 0 {
		sb.WriteString("\n")
	}

	for i, fn := range unit.Functions {
		if i > 0 {
			sb.WriteString("\n")
		}
		renderFunction(&sb, fn)
	}

	return sb.String()
}

func renderFunction(sb *strings.Builder, fn cir.Function) {
	sb.WriteString(renderType(fn.ReturnType))
	sb.WriteString(" ")
	sb.WriteString(fn.Name)
	sb.WriteString("() {\n")
	for _, stmt := range fn.Block.Statements {
		sb.WriteString("    ")
		renderStatement(sb, stmt)
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")
}

func renderType(t cir.Type) string {
	if t.IsPointer {
		return t.Name + " *"
	}
	return t.Name
}

func renderStatement(sb *strings.Builder, stmt cir.Statement) {
	switch s := stmt.(type) {
	case cir.FunctionCall:
		sb.WriteString(s.FunctionName)
		sb.WriteString("(")
		renderArgs(sb, s.Arguments)
		sb.WriteString(");")
	case cir.Return:
		sb.WriteString("return")
		if s.Value != nil {
			sb.WriteString(" ")
			sb.WriteString(renderExpression(s.Value))
		}
		sb.WriteString(";")
	case cir.VariableDeclaration:
		sb.WriteString(renderType(s.VarType))
		sb.WriteString(" ")
		sb.WriteString(s.Name)
		sb.WriteString(" = ")
		sb.WriteString(renderExpression(s.Value))
		sb.WriteString(";")
	default:
		sb.WriteString("/* unknown statement */")
	}
}

func renderArgs(sb *strings.Builder, args []cir.Expression) {
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(renderExpression(arg))
	}
}

func renderExpression(expr cir.Expression) string {
	switch e := expr.(type) {
	case cir.NumberLiteral:
		return e.Text
	case cir.StringLiteral:
		return `"` + escapeString(e.Text) + `"`
	case cir.Variable:
		return e.Identifier
	default:
		return "/* unknown expression */"
	}
}

func escapeString(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
