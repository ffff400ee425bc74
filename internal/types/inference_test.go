package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palel-lang/palelc/internal/ast"
	"github.com/palel-lang/palelc/internal/types"
)

func schemaTypes() []ast.SchemaType {
	return []ast.SchemaType{
		ast.Int32Type(), ast.Int64Type(), ast.Float32Type(), ast.Float64Type(), ast.BoolType(),
	}
}

func optOf(s ast.SchemaType) ast.SchemaType {
	return ast.NewSchemaType(s.Identifier, ast.Opt)
}

func TestCanAssign_SameSchemaAlwaysAllowed(t *testing.T) {
	for _, s := range schemaTypes() {
		assert.Truef(t, types.CanAssign(types.TypeDim(s), types.ExprDim(s)), "dim %s <- dim %s", s, s)
	}
}

func TestCanAssign_WideningIsOneDirectional(t *testing.T) {
	assert.True(t, types.CanAssign(types.TypeDim(ast.Int64Type()), types.ExprDim(ast.Int32Type())))
	assert.True(t, types.CanAssign(types.TypeDim(ast.Float64Type()), types.ExprDim(ast.Float32Type())))

	assert.False(t, types.CanAssign(types.TypeDim(ast.Int32Type()), types.ExprDim(ast.Int64Type())))
	assert.False(t, types.CanAssign(types.TypeDim(ast.Float32Type()), types.ExprDim(ast.Float64Type())))
}

func TestCanAssign_NullRequiresOptPostfix(t *testing.T) {
	for _, s := range schemaTypes() {
		assert.Falsef(t, types.CanAssign(types.TypeDim(s), types.ExprNull()), "dim %s <- null should be false", s)
		assert.Truef(t, types.CanAssign(types.TypeDim(optOf(s)), types.ExprNull()), "dim %s? <- null should be true", s)
	}
}

func TestCanAssign_DifferentFamiliesRejected(t *testing.T) {
	assert.False(t, types.CanAssign(types.TypeDim(ast.Int64Type()), types.ExprDim(ast.Float64Type())))
	assert.False(t, types.CanAssign(types.TypeDim(ast.Float64Type()), types.ExprDim(ast.Int64Type())))
	assert.False(t, types.CanAssign(types.TypeDim(ast.BoolType()), types.ExprDim(ast.Int64Type())))
}

func TestCanAssign_UntypedAddrAcceptsAnything(t *testing.T) {
	addrNone := types.TypeAddr(nil)
	assert.True(t, types.CanAssign(addrNone, types.ExprNull()))
	assert.True(t, types.CanAssign(addrNone, types.ExprDim(ast.Int32Type())))
	assert.True(t, types.CanAssign(addrNone, types.ExprRef(ast.Int32Type())))
	assert.True(t, types.CanAssign(addrNone, types.ExprAddr(nil)))
}

func TestCanAssign_TypedAddrRejectsUntypedAddr(t *testing.T) {
	i32 := ast.Int32Type()
	assert.False(t, types.CanAssign(types.TypeAddr(&i32), types.ExprAddr(nil)))
}

func TestCanAssign_TypedAddrFromCompatibleSchema(t *testing.T) {
	i32 := ast.Int32Type()
	i64 := ast.Int64Type()
	assert.True(t, types.CanAssign(types.TypeAddr(&i64), types.ExprDim(i32)))
	assert.True(t, types.CanAssign(types.TypeAddr(&i64), types.ExprRef(i32)))
	addrI32 := ast.Int32Type()
	assert.True(t, types.CanAssign(types.TypeAddr(&i64), types.ExprAddr(&addrI32)))
}

func TestCanAssign_RefRejectsAddr(t *testing.T) {
	i32 := ast.Int32Type()
	assert.False(t, types.CanAssign(types.TypeRef(i32), types.ExprAddr(&i32)))
	assert.False(t, types.CanAssign(types.TypeRef(i32), types.ExprAddr(nil)))
}

func TestCanAssign_RefNullRequiresOpt(t *testing.T) {
	i32 := ast.Int32Type()
	assert.False(t, types.CanAssign(types.TypeRef(i32), types.ExprNull()))
	assert.True(t, types.CanAssign(types.TypeRef(optOf(i32)), types.ExprNull()))
}

func TestCanAssign_DimRejectsAddrAndRef(t *testing.T) {
	i32 := ast.Int32Type()
	assert.False(t, types.CanAssign(types.TypeDim(i32), types.ExprAddr(&i32)))
	assert.False(t, types.CanAssign(types.TypeDim(i32), types.ExprRef(i32)))
}

func TestTypeOfExpression(t *testing.T) {
	cases := []struct {
		name string
		expr ast.Expression
		want types.ExpressionType
	}{
		{"bool", &ast.BooleanLiteral{Value: true}, types.ExprDim(ast.BoolType())},
		{"int", &ast.NumberLiteral{Text: "-5"}, types.ExprDim(ast.Int32Type())},
		{"float", &ast.NumberLiteral{Text: "6.2"}, types.ExprDim(ast.Float64Type())},
		{"string", &ast.StringLiteral{Text: "hi"}, types.ExprDim(ast.CharType())},
		{"null", &ast.NullLiteral{}, types.ExprNull()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := types.TypeOfExpression(tc.expr)
			require.True(t, ok)
			assert.Equal(t, tc.want.String(), got.String())
		})
	}
}

func TestDetermineVariableType_AddrDefaultsToUntyped(t *testing.T) {
	got, ok := types.DetermineVariableType(ast.Addr, nil, &ast.NumberLiteral{Text: "4"})
	require.True(t, ok)
	assert.True(t, got.IsAddr())
	_, present := got.Schema()
	assert.False(t, present)
}

func TestDetermineVariableType_DimWithoutSchemaPromotesInferred(t *testing.T) {
	got, ok := types.DetermineVariableType(ast.Dim, nil, &ast.NumberLiteral{Text: "1"})
	require.True(t, ok)
	assert.True(t, got.IsDim())
	s, _ := got.Schema()
	assert.True(t, s.Equal(ast.Int32Type()))
}

func TestDetermineVariableType_DimNullWithoutSchemaIsAmbiguous(t *testing.T) {
	_, ok := types.DetermineVariableType(ast.Dim, nil, &ast.NullLiteral{})
	assert.False(t, ok)
}

func TestDetermineVariableType_RefWithoutSchemaCoercesFromInferredDim(t *testing.T) {
	got, ok := types.DetermineVariableType(ast.Ref, nil, &ast.NumberLiteral{Text: "2"})
	require.True(t, ok)
	assert.True(t, got.IsRef())
	s, _ := got.Schema()
	assert.True(t, s.Equal(ast.Int32Type()))
}

func TestDetermineVariableType_RefFromNullIsAmbiguous(t *testing.T) {
	_, ok := types.DetermineVariableType(ast.Ref, nil, &ast.NullLiteral{})
	assert.False(t, ok)
}
