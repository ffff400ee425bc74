// Package ast defines the Palel program representation produced by the
// parser and consumed read-only by the type engine and transpiler.
package ast

import "fmt"

// Pos represents a position in a Palel source file.
type Pos struct {
	File   string
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Node is the base interface every AST node implements.
type Node interface {
	Position() Pos
}

// Src is the ordered sequence of programs produced by parsing every
// discovered source file, in discovery order.
type Src struct {
	Programs []*Program
}

// Program is a single top-level Palel program: exactly one DoBlock.
type Program struct {
	DoBlock *DoBlock
	Pos     Pos
}

func (p *Program) Position() Pos { return p.Pos }

// DoBlock is an ordered sequence of statements.
type DoBlock struct {
	Statements []Statement
	Pos        Pos
}

func (b *DoBlock) Position() Pos { return b.Pos }

// Statement is implemented by every statement variant:
// ProcedureCall, Return, VariableDeclaration.
type Statement interface {
	Node
	stmtNode()
}

// ProcedureCall is `<interface>:<identifier>(<args>)` or, when Interface
// is empty, a bare `<identifier>(<args>)` call.
type ProcedureCall struct {
	Interface  string
	Identifier string
	Arguments  []Expression
	Pos        Pos
}

func (c *ProcedureCall) Position() Pos { return c.Pos }
func (c *ProcedureCall) stmtNode()     {}

// Return is a statement with an optional value expression.
type Return struct {
	Value Expression // nil when the return carries no value
	Pos   Pos
}

func (r *Return) Position() Pos { return r.Pos }
func (r *Return) stmtNode()     {}

// VariableDeclaration binds an identifier to an initializer under a
// memory modifier, with an optional declared schema type.
type VariableDeclaration struct {
	Memory     MemoryModifier
	Identifier string
	Declared   *SchemaType // nil when no schema was written in source
	Init       Expression
	Pos        Pos
}

func (v *VariableDeclaration) Position() Pos { return v.Pos }
func (v *VariableDeclaration) stmtNode()     {}

// MemoryModifier is the dim/var/ref/addr qualifier on a variable
// declaration.
type MemoryModifier int

const (
	Dim MemoryModifier = iota
	Var
	Ref
	Addr
)

func (m MemoryModifier) String() string {
	switch m {
	case Dim:
		return "dim"
	case Var:
		return "var"
	case Ref:
		return "ref"
	case Addr:
		return "addr"
	default:
		return "?"
	}
}

// Expression is implemented by every expression variant. Palel only has
// literal expressions; no operators, no variable references.
type Expression interface {
	Node
	exprNode()
}

// Literal is implemented by the four literal kinds: String, Number,
// Boolean, Null.
type Literal interface {
	Expression
	litNode()
}

// StringLiteral is a double-quoted string literal, quotes already
// stripped and escapes already resolved by the lexer.
type StringLiteral struct {
	Text string
	Pos  Pos
}

func (s *StringLiteral) Position() Pos { return s.Pos }
func (s *StringLiteral) exprNode()     {}
func (s *StringLiteral) litNode()      {}

// NumberLiteral carries the literal's surface text verbatim, e.g. "-5",
// "6.2", "3.14". A number is floating-point iff its text contains '.'.
type NumberLiteral struct {
	Text string
	Pos  Pos
}

func (n *NumberLiteral) Position() Pos { return n.Pos }
func (n *NumberLiteral) exprNode()     {}
func (n *NumberLiteral) litNode()      {}

// IsFloat reports whether the literal's surface text denotes a
// floating-point number.
func (n *NumberLiteral) IsFloat() bool {
	for _, r := range n.Text {
		if r == '.' {
			return true
		}
	}
	return false
}

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Value bool
	Pos   Pos
}

func (b *BooleanLiteral) Position() Pos { return b.Pos }
func (b *BooleanLiteral) exprNode()     {}
func (b *BooleanLiteral) litNode()      {}

// NullLiteral is the `null` literal.
type NullLiteral struct {
	Pos Pos
}

func (n *NullLiteral) Position() Pos { return n.Pos }
func (n *NullLiteral) exprNode()     {}
func (n *NullLiteral) litNode()      {}
