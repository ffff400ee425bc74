package ast

// SchemaIdentifier is a closed enumeration of the built-in schema names
// plus one UserDefined escape hatch, so the mapping tables in the
// toolkit and transpiler remain exhaustive switches.
type SchemaIdentifier struct {
	Builtin BuiltinSchema
	// Name holds the user-defined type name when Builtin == UserDefined.
	Name string
}

// BuiltinSchema is the closed set of built-in schema identifiers.
type BuiltinSchema int

const (
	Int32 BuiltinSchema = iota
	Int64
	Float32
	Float64
	Bool
	Char
	UserDefined
)

func (b BuiltinSchema) String() string {
	switch b {
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	case Bool:
		return "Bool"
	case Char:
		return "Char"
	case UserDefined:
		return "UserDefined"
	default:
		return "?"
	}
}

func (s SchemaIdentifier) String() string {
	if s.Builtin == UserDefined {
		return s.Name
	}
	return s.Builtin.String()
}

// Equal reports structural equality between two schema identifiers.
func (s SchemaIdentifier) Equal(other SchemaIdentifier) bool {
	if s.Builtin != other.Builtin {
		return false
	}
	if s.Builtin == UserDefined {
		return s.Name == other.Name
	}
	return true
}

// NewBuiltinSchema constructs a SchemaIdentifier for one of the
// built-in names.
func NewBuiltinSchema(b BuiltinSchema) SchemaIdentifier {
	return SchemaIdentifier{Builtin: b}
}

// NewUserDefinedSchema constructs a SchemaIdentifier naming a
// user-defined type.
func NewUserDefinedSchema(name string) SchemaIdentifier {
	return SchemaIdentifier{Builtin: UserDefined, Name: name}
}

// TypeFamily classifies a schema identifier for implicit-conversion
// purposes.
type TypeFamily int

const (
	NoFamily TypeFamily = iota
	IntFamily
	FloatFamily
)

// FamilyOf derives the TypeFamily of a schema identifier: Int32|Int64
// -> Int, Float32|Float64 -> Float, otherwise None.
func FamilyOf(id SchemaIdentifier) TypeFamily {
	switch id.Builtin {
	case Int32, Int64:
		return IntFamily
	case Float32, Float64:
		return FloatFamily
	default:
		return NoFamily
	}
}

// WidthOf derives the bit width of a schema identifier: 32 for
// Int32|Float32, 64 for Int64|Float64, absent (0, false) otherwise.
func WidthOf(id SchemaIdentifier) (width int, ok bool) {
	switch id.Builtin {
	case Int32, Float32:
		return 32, true
	case Int64, Float64:
		return 64, true
	default:
		return 0, false
	}
}

// TypePostfix is the nullability/error marker written as `T?`/`T!` in
// source. Only Opt currently has semantic effect.
type TypePostfix int

const (
	NoPostfix TypePostfix = iota
	Opt
	Err
)

func (p TypePostfix) String() string {
	switch p {
	case Opt:
		return "?"
	case Err:
		return "!"
	default:
		return ""
	}
}

// SchemaType is the declared or inferred value type of an expression or
// variable: identifier, nullability postfix, and the family/width
// derived from the identifier (kept consistent by NewSchemaType).
type SchemaType struct {
	Identifier SchemaIdentifier
	Postfix    TypePostfix
	Family     TypeFamily
	Width      int // 0 when absent
	HasWidth   bool
}

// NewSchemaType builds a SchemaType, deriving Family and Width from the
// identifier so they can never drift from it.
func NewSchemaType(id SchemaIdentifier, postfix TypePostfix) SchemaType {
	width, ok := WidthOf(id)
	return SchemaType{
		Identifier: id,
		Postfix:    postfix,
		Family:     FamilyOf(id),
		Width:      width,
		HasWidth:   ok,
	}
}

// Equal reports structural equality, including the nullability postfix.
func (t SchemaType) Equal(other SchemaType) bool {
	return t.Identifier.Equal(other.Identifier) && t.Postfix == other.Postfix
}

func (t SchemaType) String() string {
	return t.Identifier.String() + t.Postfix.String()
}

func builtinSchemaType(b BuiltinSchema, postfix TypePostfix) SchemaType {
	return NewSchemaType(NewBuiltinSchema(b), postfix)
}

// Int32Type, Int64Type, Float32Type, Float64Type, BoolType, CharType are
// convenience constructors for the non-nullable built-in schema types.
func Int32Type() SchemaType   { return builtinSchemaType(Int32, NoPostfix) }
func Int64Type() SchemaType   { return builtinSchemaType(Int64, NoPostfix) }
func Float32Type() SchemaType { return builtinSchemaType(Float32, NoPostfix) }
func Float64Type() SchemaType { return builtinSchemaType(Float64, NoPostfix) }
func BoolType() SchemaType    { return builtinSchemaType(Bool, NoPostfix) }
func CharType() SchemaType    { return builtinSchemaType(Char, NoPostfix) }
