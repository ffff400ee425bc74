package types

import "github.com/palel-lang/palelc/internal/ast"

// TypeOfExpression infers the ExpressionType of an expression. It is
// pure: for the literal-only expression grammar Palel has, this is a
// total function over the four literal kinds.
func TypeOfExpression(expr ast.Expression) (ExpressionType, bool) {
	lit, ok := expr.(ast.Literal)
	if !ok {
		return ExpressionType{}, false
	}
	switch l := lit.(type) {
	case *ast.BooleanLiteral:
		return ExprDim(ast.BoolType()), true
	case *ast.NumberLiteral:
		if l.IsFloat() {
			return ExprDim(ast.Float64Type()), true
		}
		return ExprDim(ast.Int32Type()), true
	case *ast.StringLiteral:
		return ExprDim(ast.CharType()), true
	case *ast.NullLiteral:
		return ExprNull(), true
	default:
		return ExpressionType{}, false
	}
}

// DetermineVariableType resolves the final typed storage class of a
// variable declaration from its memory modifier, an optional declared
// schema, and the initializer expression.
func DetermineVariableType(memory ast.MemoryModifier, declared *ast.SchemaType, init ast.Expression) (Type, bool) {
	switch memory {
	case ast.Addr:
		return TypeAddr(declared), true

	case ast.Dim, ast.Var:
		if declared != nil {
			return TypeDim(*declared), true
		}
		exprType, ok := TypeOfExpression(init)
		if !ok {
			return Type{}, false
		}
		return PromoteToType(exprType)

	case ast.Ref:
		if declared != nil {
			return TypeRef(*declared), true
		}
		exprType, ok := TypeOfExpression(init)
		if !ok {
			return Type{}, false
		}
		switch {
		case exprType.IsDim():
			s, _ := exprType.Schema()
			return TypeRef(s), true
		case exprType.IsRef():
			s, _ := exprType.Schema()
			return TypeRef(s), true
		case exprType.IsAddr():
			if s, present := exprType.Schema(); present {
				return TypeRef(s), true
			}
			return Type{}, false
		default: // Null
			return Type{}, false
		}

	default:
		return Type{}, false
	}
}

// schemaCompatible implements the implicit-conversion rule: same-family
// widening, strict identity otherwise.
func schemaCompatible(to, from ast.SchemaType) bool {
	if to.Family == ast.NoFamily || from.Family == ast.NoFamily {
		return to.Equal(from)
	}
	if to.Family != from.Family {
		return false
	}
	return to.Width >= from.Width
}

// CanAssign decides whether an expression of type `from` may be
// assigned into a storage location of type `to`, by exhaustive case
// analysis over the memory-class and nullability combinations.
func CanAssign(to Type, from ExpressionType) bool {
	switch {
	case to.IsAddr():
		toSchema, toPresent := to.Schema()
		if !toPresent {
			// Addr(None) <- anything, including Null.
			return true
		}
		switch {
		case from.IsAddr():
			fromSchema, fromPresent := from.Schema()
			if !fromPresent {
				return false
			}
			return schemaCompatible(toSchema, fromSchema)
		case from.IsDim(), from.IsRef():
			fromSchema, _ := from.Schema()
			return schemaCompatible(toSchema, fromSchema)
		default: // Null
			return false
		}

	case to.IsRef():
		toSchema, _ := to.Schema()
		switch {
		case from.IsRef(), from.IsDim():
			fromSchema, _ := from.Schema()
			return schemaCompatible(toSchema, fromSchema)
		case from.IsNull():
			return toSchema.Postfix == ast.Opt
		default: // Addr
			return false
		}

	case to.IsDim():
		toSchema, _ := to.Schema()
		switch {
		case from.IsDim():
			fromSchema, _ := from.Schema()
			return schemaCompatible(toSchema, fromSchema)
		case from.IsNull():
			return toSchema.Postfix == ast.Opt
		default: // Addr or Ref
			return false
		}

	default:
		return false
	}
}
