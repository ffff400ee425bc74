// Package types implements the Palel type engine: expression-type
// inference, variable-type resolution, and the assignability relation.
// The engine is pure data plus pure functions — no environment, no name
// resolution, matching Palel's flat, scope-free statement model.
package types

import "github.com/palel-lang/palelc/internal/ast"

// ExpressionType is the type an expression yields: Dim, Ref, Addr, or
// Null. Unlike Type, it has a Null variant.
type ExpressionType struct {
	kind expressionKind
	// schema is populated for Dim/Ref, and for Addr when the address is
	// typed (schema.Present == true).
	schema SchemaHolder
}

type expressionKind int

const (
	exprDim expressionKind = iota
	exprRef
	exprAddr
	exprNull
)

// SchemaHolder carries an optional ast.SchemaType, distinguishing a
// present schema from an untyped address.
type SchemaHolder struct {
	Schema  ast.SchemaType
	Present bool
}

func holderOf(s ast.SchemaType) SchemaHolder { return SchemaHolder{Schema: s, Present: true} }

// ExprDim builds an ExpressionType for `dim T` / `var T` storage.
func ExprDim(s ast.SchemaType) ExpressionType {
	return ExpressionType{kind: exprDim, schema: holderOf(s)}
}

// ExprRef builds an ExpressionType for `ref T` storage.
func ExprRef(s ast.SchemaType) ExpressionType {
	return ExpressionType{kind: exprRef, schema: holderOf(s)}
}

// ExprAddr builds an ExpressionType for `addr` storage; typed is nil
// for an untyped address.
func ExprAddr(typed *ast.SchemaType) ExpressionType {
	if typed == nil {
		return ExpressionType{kind: exprAddr}
	}
	return ExpressionType{kind: exprAddr, schema: holderOf(*typed)}
}

// ExprNull is the type of the `null` literal.
func ExprNull() ExpressionType {
	return ExpressionType{kind: exprNull}
}

// IsDim, IsRef, IsAddr, IsNull report the ExpressionType's variant.
func (e ExpressionType) IsDim() bool  { return e.kind == exprDim }
func (e ExpressionType) IsRef() bool  { return e.kind == exprRef }
func (e ExpressionType) IsAddr() bool { return e.kind == exprAddr }
func (e ExpressionType) IsNull() bool { return e.kind == exprNull }

// Schema returns the carried schema and whether one is present (always
// false for Null and for an untyped Addr).
func (e ExpressionType) Schema() (ast.SchemaType, bool) {
	return e.schema.Schema, e.schema.Present
}

func (e ExpressionType) String() string {
	switch e.kind {
	case exprDim:
		return "dim " + e.schema.Schema.String()
	case exprRef:
		return "ref " + e.schema.Schema.String()
	case exprAddr:
		if e.schema.Present {
			return "addr " + e.schema.Schema.String()
		}
		return "addr"
	case exprNull:
		return "null"
	default:
		return "?"
	}
}

// Type is the type a storage location has: Dim, Ref, or Addr. Unlike
// ExpressionType, there is no Null variant — a null-typed expression
// must be assigned into a variable whose Type admits null via Opt.
type Type struct {
	kind   typeKind
	schema SchemaHolder
}

type typeKind int

const (
	typeDim typeKind = iota
	typeRef
	typeAddr
)

// TypeDim, TypeRef, TypeAddr construct the three Type variants; typed
// is only meaningful (and optional) for TypeAddr.
func TypeDim(s ast.SchemaType) Type { return Type{kind: typeDim, schema: holderOf(s)} }
func TypeRef(s ast.SchemaType) Type { return Type{kind: typeRef, schema: holderOf(s)} }
func TypeAddr(typed *ast.SchemaType) Type {
	if typed == nil {
		return Type{kind: typeAddr}
	}
	return Type{kind: typeAddr, schema: holderOf(*typed)}
}

func (t Type) IsDim() bool  { return t.kind == typeDim }
func (t Type) IsRef() bool  { return t.kind == typeRef }
func (t Type) IsAddr() bool { return t.kind == typeAddr }

// Schema returns the carried schema and whether one is present.
func (t Type) Schema() (ast.SchemaType, bool) {
	return t.schema.Schema, t.schema.Present
}

func (t Type) String() string {
	switch t.kind {
	case typeDim:
		return "dim " + t.schema.Schema.String()
	case typeRef:
		return "ref " + t.schema.Schema.String()
	case typeAddr:
		if t.schema.Present {
			return "addr " + t.schema.Schema.String()
		}
		return "addr"
	default:
		return "?"
	}
}

// AsExpressionType promotes a Type to the corresponding ExpressionType
// (the inverse of PromoteToType, used where an expected type feeds
// back into expression-shaped code).
func (t Type) AsExpressionType() ExpressionType {
	switch t.kind {
	case typeDim:
		return ExprDim(t.schema.Schema)
	case typeRef:
		return ExprRef(t.schema.Schema)
	case typeAddr:
		if t.schema.Present {
			s := t.schema.Schema
			return ExprAddr(&s)
		}
		return ExprAddr(nil)
	default:
		return ExpressionType{}
	}
}

// PromoteToType drops the Null case from an ExpressionType, yielding a
// Type and true, or the zero Type and false when e is Null.
func PromoteToType(e ExpressionType) (Type, bool) {
	switch e.kind {
	case exprDim:
		return TypeDim(e.schema.Schema), true
	case exprRef:
		return TypeRef(e.schema.Schema), true
	case exprAddr:
		if e.schema.Present {
			s := e.schema.Schema
			return TypeAddr(&s), true
		}
		return TypeAddr(nil), true
	case exprNull:
		return Type{}, false
	default:
		return Type{}, false
	}
}
