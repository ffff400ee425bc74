// Package toolkit implements the C target backend the transpiler
// consults for its three target-specific lowering hooks: interface-call
// lowering, type mapping, and null materialization. A different backend
// would reimplement the same three hooks against a different target.
package toolkit

import (
	"github.com/palel-lang/palelc/internal/ast"
	"github.com/palel-lang/palelc/internal/cir"
	"github.com/palel-lang/palelc/internal/palelerr"
	"github.com/palel-lang/palelc/internal/types"
)

// ExpressionLowerer lowers a single Palel expression to a C expression
// plus its required includes. The transpiler implements this and
// passes itself in, since interface-call argument lowering needs to
// recurse back into the transpiler's own expression lowering.
type ExpressionLowerer interface {
	LowerExpressionUnknown(expr ast.Expression) (cir.Expression, cir.Patch, *palelerr.Error)
}

// CToolkit is the C backend capability bundle.
type CToolkit struct{}

// New constructs a CToolkit.
func New() *CToolkit { return &CToolkit{} }

// TranspileInterfaceCall lowers a ProcedureCall whose Interface is
// non-empty. Only "debug" is recognized.
func (CToolkit) TranspileInterfaceCall(call *ast.ProcedureCall, lower ExpressionLowerer) (cir.FunctionCall, cir.Patch, *palelerr.Error) {
	if call.Interface != "debug" {
		return cir.FunctionCall{}, cir.Patch{}, palelerr.NewUnknownInterface(call.Interface)
	}

	patch := cir.Patch{Includes: []cir.Include{{File: "stdio.h"}}}
	args := make([]cir.Expression, 0, len(call.Arguments))
	for _, arg := range call.Arguments {
		lowered, argPatch, err := lower.LowerExpressionUnknown(arg)
		if err != nil {
			return cir.FunctionCall{}, cir.Patch{}, err
		}
		cir.MergePatch(&patch, argPatch)
		args = append(args, lowered)
	}

	return cir.FunctionCall{
		FunctionName: call.Identifier,
		Arguments:    args,
	}, patch, nil
}

// TranspileType maps a resolved Palel Type to its C representation.
// The second return value reports whether a mapping exists; it is false
// (with a zero cir.Type) when the type has no direct C representation,
// e.g. a user-defined schema.
func (CToolkit) TranspileType(t types.Type) (cir.Type, bool, cir.Patch) {
	if t.IsAddr() {
		return cir.Type{Name: "void", IsPointer: true}, true, cir.Patch{}
	}
	if t.IsRef() {
		schema, _ := t.Schema()
		cType, ok, patch := builtinCType(schema.Identifier)
		if !ok {
			return cir.Type{}, false, cir.Patch{}
		}
		return cir.Type{Name: cType, IsPointer: true}, true, patch
	}
	// Dim.
	schema, _ := t.Schema()
	cType, ok, patch := builtinCType(schema.Identifier)
	if !ok {
		return cir.Type{}, false, cir.Patch{}
	}
	return cir.Type{Name: cType, IsPointer: false}, true, patch
}

// builtinCType maps a built-in schema identifier to its plain (non
// pointer) C type name. UserDefined has no mapping.
func builtinCType(id ast.SchemaIdentifier) (string, bool, cir.Patch) {
	switch id.Builtin {
	case ast.Int32:
		return "int32_t", true, cir.Patch{Includes: []cir.Include{{File: "stdint.h"}}}
	case ast.Int64:
		return "int64_t", true, cir.Patch{Includes: []cir.Include{{File: "stdint.h"}}}
	case ast.Float32:
		return "float", true, cir.Patch{}
	case ast.Float64:
		return "double", true, cir.Patch{}
	case ast.Bool:
		return "int", true, cir.Patch{}
	default: // Char and UserDefined: no direct C mapping
		return "", false, cir.Patch{}
	}
}

// TranspileNull materializes the sentinel used to represent `null` for
// a declared storage location of type t.
func (CToolkit) TranspileNull(t types.Type) (cir.Expression, cir.Patch, *palelerr.Error) {
	if t.IsAddr() || t.IsRef() {
		return cir.NumberLiteral{Text: "0"}, cir.Patch{}, nil
	}
	schema, _ := t.Schema()
	switch schema.Identifier.Builtin {
	case ast.Int32:
		return cir.Variable{Identifier: "INT32_MIN"}, cir.Patch{Includes: []cir.Include{{File: "stdint.h"}}}, nil
	case ast.Int64:
		return cir.Variable{Identifier: "INT64_MIN"}, cir.Patch{Includes: []cir.Include{{File: "stdint.h"}}}, nil
	case ast.Float64:
		return cir.Variable{Identifier: "-DBL_MAX"}, cir.Patch{Includes: []cir.Include{{File: "float.h"}}}, nil
	default:
		return nil, cir.Patch{}, palelerr.NewTypeNotNullable(t.String())
	}
}
