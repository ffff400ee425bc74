// Package transpile walks the Palel AST, invoking the type engine and
// the toolkit, and assembles a C translation unit.
package transpile

import (
	"github.com/palel-lang/palelc/internal/ast"
	"github.com/palel-lang/palelc/internal/cir"
	"github.com/palel-lang/palelc/internal/palelerr"
	"github.com/palel-lang/palelc/internal/toolkit"
	"github.com/palel-lang/palelc/internal/types"
)

// Toolkit is the target-backend capability the transpiler consults.
// internal/toolkit.CToolkit implements it.
type Toolkit interface {
	TranspileInterfaceCall(call *ast.ProcedureCall, lower toolkit.ExpressionLowerer) (cir.FunctionCall, cir.Patch, *palelerr.Error)
	TranspileType(t types.Type) (cir.Type, bool, cir.Patch)
	TranspileNull(t types.Type) (cir.Expression, cir.Patch, *palelerr.Error)
}

// Transpiler walks a Palel ast.Src and lowers it to a cir.TranslationUnit.
type Transpiler struct {
	toolkit Toolkit
}

// New constructs a Transpiler bound to the given toolkit.
func New(toolkit Toolkit) *Transpiler {
	return &Transpiler{toolkit: toolkit}
}

// Transpile lowers the first program of src to a C translation unit.
// Only programs[0] is processed; additional programs are silently
// ignored.
func Transpile(toolkit Toolkit, src *ast.Src) (cir.TranslationUnit, *palelerr.Error) {
	t := New(toolkit)
	unit := cir.TranslationUnit{}

	if len(src.Programs) == 0 {
		unit.Functions = append(unit.Functions, cir.Function{
			Name:       "main",
			ReturnType: cir.Type{Name: "int"},
			Block:      cir.Block{Statements: []cir.Statement{cir.Return{Value: cir.NumberLiteral{Text: "0"}}}},
		})
		return unit, nil
	}

	fn, patch, err := t.transpileProgram(src.Programs[0])
	if err != nil {
		return cir.TranslationUnit{}, err
	}
	unit.Functions = append(unit.Functions, fn)
	cir.PatchSrc(&unit, patch)
	return unit, nil
}

func (t *Transpiler) transpileProgram(p *ast.Program) (cir.Function, cir.Patch, *palelerr.Error) {
	block, patch, err := t.transpileBlock(p.DoBlock)
	if err != nil {
		return cir.Function{}, cir.Patch{}, err
	}
	block.Statements = append(block.Statements, cir.Return{Value: cir.NumberLiteral{Text: "0"}})
	return cir.Function{
		Name:       "main",
		ReturnType: cir.Type{Name: "int"},
		Block:      block,
	}, patch, nil
}

func (t *Transpiler) transpileBlock(b *ast.DoBlock) (cir.Block, cir.Patch, *palelerr.Error) {
	block := cir.Block{}
	patch := cir.Patch{}
	for _, stmt := range b.Statements {
		cStmt, stmtPatch, err := t.transpileStatement(stmt)
		if err != nil {
			return cir.Block{}, cir.Patch{}, err
		}
		cir.MergePatch(&patch, stmtPatch)
		block.Statements = append(block.Statements, cStmt)
	}
	return block, patch, nil
}

func (t *Transpiler) transpileStatement(stmt ast.Statement) (cir.Statement, cir.Patch, *palelerr.Error) {
	switch s := stmt.(type) {
	case *ast.ProcedureCall:
		return t.transpileProcedureCall(s)
	case *ast.Return:
		return t.transpileReturn(s)
	case *ast.VariableDeclaration:
		return t.transpileVariableDeclaration(s)
	default:
		return nil, cir.Patch{}, palelerr.NewVariableTypeAmbiguous()
	}
}

func (t *Transpiler) transpileProcedureCall(call *ast.ProcedureCall) (cir.Statement, cir.Patch, *palelerr.Error) {
	if call.Interface != "" {
		fnCall, patch, err := t.toolkit.TranspileInterfaceCall(call, t)
		if err != nil {
			return nil, cir.Patch{}, err
		}
		return fnCall, patch, nil
	}

	patch := cir.Patch{}
	args := make([]cir.Expression, 0, len(call.Arguments))
	for _, arg := range call.Arguments {
		lowered, argPatch, err := t.LowerExpressionUnknown(arg)
		if err != nil {
			return nil, cir.Patch{}, err
		}
		cir.MergePatch(&patch, argPatch)
		args = append(args, lowered)
	}
	return cir.FunctionCall{FunctionName: call.Identifier, Arguments: args}, patch, nil
}

func (t *Transpiler) transpileReturn(ret *ast.Return) (cir.Statement, cir.Patch, *palelerr.Error) {
	if ret.Value == nil {
		return cir.Return{}, cir.Patch{}, nil
	}
	value, patch, err := t.LowerExpressionUnknown(ret.Value)
	if err != nil {
		return nil, cir.Patch{}, err
	}
	return cir.Return{Value: value}, patch, nil
}

func (t *Transpiler) transpileVariableDeclaration(decl *ast.VariableDeclaration) (cir.Statement, cir.Patch, *palelerr.Error) {
	variableType, ok := types.DetermineVariableType(decl.Memory, decl.Declared, decl.Init)
	if !ok {
		return nil, cir.Patch{}, palelerr.NewVariableTypeAmbiguous()
	}

	exprType, ok := types.TypeOfExpression(decl.Init)
	if !ok {
		return nil, cir.Patch{}, palelerr.NewVariableTypeAmbiguous()
	}

	if !types.CanAssign(variableType, exprType) {
		// A Null right-hand side has no Type representation (Type has
		// no Null variant), so a rejected Null assignment is reported as
		// TypeNotNullable rather than IncompatibleTypes even though
		// CanAssign itself rejected it for the same Opt-postfix reason.
		if exprType.IsNull() {
			return nil, cir.Patch{}, palelerr.NewTypeNotNullable(variableType.String())
		}
		return nil, cir.Patch{}, palelerr.NewIncompatibleTypes(variableType.String(), exprType.String())
	}

	patch := cir.Patch{}

	initValue, initPatch, err := t.LowerExpression(decl.Init, variableType)
	if err != nil {
		return nil, cir.Patch{}, err
	}
	cir.MergePatch(&patch, initPatch)

	cType, ok, typePatch := t.toolkit.TranspileType(variableType)
	if !ok {
		return nil, cir.Patch{}, palelerr.NewCouldNotTranspileType()
	}
	cir.MergePatch(&patch, typePatch)

	return cir.VariableDeclaration{
		Name:    decl.Identifier,
		VarType: cType,
		Value:   initValue,
	}, patch, nil
}

// LowerExpression lowers an expression when the expected Type is known
// (e.g. a variable initializer), so that a Null literal can be
// materialized via the toolkit.
func (t *Transpiler) LowerExpression(expr ast.Expression, expected types.Type) (cir.Expression, cir.Patch, *palelerr.Error) {
	if _, isNull := expr.(*ast.NullLiteral); isNull {
		return t.toolkit.TranspileNull(expected)
	}
	return t.lowerLiteral(expr)
}

// LowerExpressionUnknown lowers an expression with no known expected
// type (procedure-call arguments, return values). A Null literal here
// is ambiguous and fails.
func (t *Transpiler) LowerExpressionUnknown(expr ast.Expression) (cir.Expression, cir.Patch, *palelerr.Error) {
	exprType, ok := types.TypeOfExpression(expr)
	if !ok {
		return nil, cir.Patch{}, palelerr.NewVariableTypeAmbiguous()
	}
	if _, ok := types.PromoteToType(exprType); !ok {
		return nil, cir.Patch{}, palelerr.NewVariableTypeAmbiguous()
	}
	return t.lowerLiteral(expr)
}

func (t *Transpiler) lowerLiteral(expr ast.Expression) (cir.Expression, cir.Patch, *palelerr.Error) {
	switch l := expr.(type) {
	case *ast.StringLiteral:
		return cir.StringLiteral{Text: l.Text}, cir.Patch{}, nil
	case *ast.NumberLiteral:
		return cir.NumberLiteral{Text: l.Text}, cir.Patch{}, nil
	case *ast.BooleanLiteral:
		if l.Value {
			return cir.NumberLiteral{Text: "1"}, cir.Patch{}, nil
		}
		return cir.NumberLiteral{Text: "0"}, cir.Patch{}, nil
	case *ast.NullLiteral:
		return nil, cir.Patch{}, palelerr.NewVariableTypeAmbiguous()
	default:
		return nil, cir.Patch{}, palelerr.NewVariableTypeAmbiguous()
	}
}
