// Package parser implements a hand-written recursive-descent parser
// for Palel's surface grammar, producing the AST the type engine and
// transpiler consume. The core only needs the AST this package
// produces, but a parser is required for a runnable tool.
package parser

import (
	"fmt"

	"github.com/palel-lang/palelc/internal/ast"
	"github.com/palel-lang/palelc/internal/lexer"
	"github.com/palel-lang/palelc/internal/palelerr"
)

// Parser holds a single file's token stream and the current/peek
// tokens, one parseX method per grammar production.
type Parser struct {
	file string
	lex  *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token

	errs []string
}

// New constructs a Parser over the given file's contents.
func New(file string, content []byte) *Parser {
	p := &Parser{file: file, lex: lexer.New(file, content)}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.lex.Next()
}

func (p *Parser) curPos() ast.Pos {
	return ast.Pos{File: p.cur.Pos.File, Line: p.cur.Pos.Line, Column: p.cur.Pos.Column}
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errs = append(p.errs, fmt.Sprintf("%s: %s", p.curPos(), fmt.Sprintf(format, args...)))
}

func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, bool) {
	if p.cur.Type != tt {
		p.errorf("expected %s, got %s (%q)", tt, p.cur.Type, p.cur.Literal)
		return lexer.Token{}, false
	}
	tok := p.cur
	p.nextToken()
	return tok, true
}

// ParseFile parses one file's contents into a Src fragment (every
// top-level program it contains). Parse errors are reported via a
// FailedToParseSrcFile palelerr.Error; the parser never panics on
// malformed input.
func ParseFile(file string, content []byte) (*ast.Src, *palelerr.Error) {
	p := New(file, content)
	src := &ast.Src{}

	for p.cur.Type == lexer.PROGRAM {
		prog := p.parseProgram()
		if prog != nil {
			src.Programs = append(src.Programs, prog)
		}
	}

	if len(p.errs) > 0 {
		return nil, palelerr.NewFailedToParseSrcFile(file)
	}
	return src, nil
}

func (p *Parser) parseProgram() *ast.Program {
	pos := p.curPos()
	if _, ok := p.expect(lexer.PROGRAM); !ok {
		return nil
	}
	if _, ok := p.expect(lexer.DO); !ok {
		return nil
	}
	block := p.parseDoBlock()
	if _, ok := p.expect(lexer.END); !ok {
		return nil
	}
	return &ast.Program{DoBlock: block, Pos: pos}
}

func (p *Parser) parseDoBlock() *ast.DoBlock {
	pos := p.curPos()
	block := &ast.DoBlock{Pos: pos}
	for p.cur.Type != lexer.END && p.cur.Type != lexer.EOF {
		stmt := p.parseStatement()
		if stmt == nil {
			// Avoid an infinite loop on unrecoverable input.
			if len(p.errs) > 0 {
				p.nextToken()
			}
			continue
		}
		block.Statements = append(block.Statements, stmt)
	}
	return block
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case lexer.DIM, lexer.VAR, lexer.REF, lexer.ADDR:
		return p.parseVariableDeclaration()
	case lexer.IDENT:
		return p.parseProcedureCall()
	default:
		p.errorf("unexpected token %s (%q) at start of statement", p.cur.Type, p.cur.Literal)
		return nil
	}
}

func memoryModifierOf(tt lexer.TokenType) ast.MemoryModifier {
	switch tt {
	case lexer.DIM:
		return ast.Dim
	case lexer.VAR:
		return ast.Var
	case lexer.REF:
		return ast.Ref
	case lexer.ADDR:
		return ast.Addr
	default:
		return ast.Dim
	}
}

func (p *Parser) parseVariableDeclaration() ast.Statement {
	pos := p.curPos()
	memory := memoryModifierOf(p.cur.Type)
	p.nextToken()

	ident, ok := p.expect(lexer.IDENT)
	if !ok {
		return nil
	}

	var declared *ast.SchemaType
	if p.cur.Type == lexer.IDENT {
		schema := p.parseSchemaType()
		declared = &schema
	}

	if _, ok := p.expect(lexer.ASSIGN); !ok {
		return nil
	}

	init := p.parseExpression()
	if init == nil {
		return nil
	}

	return &ast.VariableDeclaration{
		Memory:     memory,
		Identifier: ident.Literal,
		Declared:   declared,
		Init:       init,
		Pos:        pos,
	}
}

func (p *Parser) parseSchemaType() ast.SchemaType {
	name, _ := p.expect(lexer.IDENT)
	postfix := ast.NoPostfix
	switch p.cur.Type {
	case lexer.QUESTION:
		postfix = ast.Opt
		p.nextToken()
	case lexer.BANG:
		postfix = ast.Err
		p.nextToken()
	}
	return ast.NewSchemaType(schemaIdentifierOf(name.Literal), postfix)
}

func schemaIdentifierOf(name string) ast.SchemaIdentifier {
	switch name {
	case "Int32":
		return ast.NewBuiltinSchema(ast.Int32)
	case "Int64":
		return ast.NewBuiltinSchema(ast.Int64)
	case "Float32":
		return ast.NewBuiltinSchema(ast.Float32)
	case "Float64":
		return ast.NewBuiltinSchema(ast.Float64)
	case "Bool":
		return ast.NewBuiltinSchema(ast.Bool)
	case "Char":
		return ast.NewBuiltinSchema(ast.Char)
	default:
		return ast.NewUserDefinedSchema(name)
	}
}

// parseProcedureCall parses both `<interface>:<identifier>(<args>)` and
// a bare `<identifier>(<args>)` (empty interface) call. Return is never
// written in source; it is a synthetic statement the transpiler
// appends, so the parser has no return production.
func (p *Parser) parseProcedureCall() ast.Statement {
	pos := p.curPos()
	first, ok := p.expect(lexer.IDENT)
	if !ok {
		return nil
	}

	iface := ""
	identTok := first
	if p.cur.Type == lexer.COLON {
		p.nextToken()
		ident, ok := p.expect(lexer.IDENT)
		if !ok {
			return nil
		}
		iface = first.Literal
		identTok = ident
	}

	if _, ok := p.expect(lexer.LPAREN); !ok {
		return nil
	}

	var args []ast.Expression
	for p.cur.Type != lexer.RPAREN && p.cur.Type != lexer.EOF {
		arg := p.parseExpression()
		if arg == nil {
			return nil
		}
		args = append(args, arg)
		if p.cur.Type == lexer.COMMA {
			p.nextToken()
			continue
		}
		break
	}
	if _, ok := p.expect(lexer.RPAREN); !ok {
		return nil
	}

	return &ast.ProcedureCall{
		Interface:  iface,
		Identifier: identTok.Literal,
		Arguments:  args,
		Pos:        pos,
	}
}

func (p *Parser) parseExpression() ast.Expression {
	pos := p.curPos()
	switch p.cur.Type {
	case lexer.STRING:
		text := p.cur.Literal
		p.nextToken()
		return &ast.StringLiteral{Text: text, Pos: pos}
	case lexer.NUMBER:
		text := p.cur.Literal
		p.nextToken()
		return &ast.NumberLiteral{Text: text, Pos: pos}
	case lexer.TRUE:
		p.nextToken()
		return &ast.BooleanLiteral{Value: true, Pos: pos}
	case lexer.FALSE:
		p.nextToken()
		return &ast.BooleanLiteral{Value: false, Pos: pos}
	case lexer.NULL:
		p.nextToken()
		return &ast.NullLiteral{Pos: pos}
	default:
		p.errorf("expected an expression, got %s (%q)", p.cur.Type, p.cur.Literal)
		return nil
	}
}
