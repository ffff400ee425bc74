// Package palelerr provides the closed error taxonomy used across every
// compilation phase, from source discovery through the downstream C
// compiler invocation.
package palelerr

import "fmt"

// Kind is a closed set of compilation error classes. Unlike an open
// trait-object hierarchy, adding a new error means adding a case here.
type Kind int

const (
	// NoSourceFiles indicates the source root contained no .palel files.
	NoSourceFiles Kind = iota
	// FailedToReadSrcFile indicates a source file could not be read.
	FailedToReadSrcFile
	// FailedToWriteToFile indicates the rendered C could not be written.
	FailedToWriteToFile
	// FailedToParseSrcFile indicates the parser rejected a source file.
	FailedToParseSrcFile
	// UnknownInterface indicates an interface call named an interface
	// the toolkit does not recognize.
	UnknownInterface
	// VariableTypeAmbiguous indicates the type engine could not resolve
	// a variable's type or an unknown-context expression's type.
	VariableTypeAmbiguous
	// CouldNotTranspileType indicates the toolkit has no C mapping for
	// a resolved Palel type.
	CouldNotTranspileType
	// IncompatibleTypes indicates an assignment failed can_assign.
	IncompatibleTypes
	// TypeNotNullable indicates null was used against a target type
	// with no sentinel representation.
	TypeNotNullable
	// DownstreamCompileFailed indicates gcc returned nonzero or could
	// not be spawned.
	DownstreamCompileFailed
)

// ExitCode maps a Kind to the process exit code the CLI returns.
func (k Kind) ExitCode() int {
	switch k {
	case NoSourceFiles:
		return 1
	case FailedToReadSrcFile, FailedToWriteToFile:
		return 2
	case FailedToParseSrcFile:
		return 3
	case VariableTypeAmbiguous:
		return 4
	case IncompatibleTypes:
		return 5
	case CouldNotTranspileType, UnknownInterface, TypeNotNullable:
		return 20
	case DownstreamCompileFailed:
		return 21
	default:
		return 20
	}
}

// Error is the single concrete error type for the whole taxonomy. It
// carries enough structured data to render a precise message per kind
// without needing per-kind struct types.
type Error struct {
	Kind Kind
	Data map[string]string
}

func (e *Error) Error() string {
	switch e.Kind {
	case NoSourceFiles:
		return fmt.Sprintf("no palel source files were found in %s", e.Data["dir"])
	case FailedToReadSrcFile:
		return fmt.Sprintf("failed to read source file '%s'", e.Data["file"])
	case FailedToWriteToFile:
		return fmt.Sprintf("failed to write to file '%s'", e.Data["file"])
	case FailedToParseSrcFile:
		return fmt.Sprintf("failed to parse source file '%s'", e.Data["file"])
	case UnknownInterface:
		return fmt.Sprintf("could not find interface '%s'", e.Data["interface"])
	case VariableTypeAmbiguous:
		return "could not determine type of variable"
	case CouldNotTranspileType:
		return "could not transpile type"
	case IncompatibleTypes:
		return fmt.Sprintf("incompatible types, expected %s, received %s", e.Data["expected"], e.Data["actual"])
	case TypeNotNullable:
		return fmt.Sprintf("type %s is not nullable", e.Data["received_type"])
	case DownstreamCompileFailed:
		return "downstream compiler failed"
	default:
		return "unknown compilation error"
	}
}

func newErr(k Kind, data map[string]string) *Error {
	return &Error{Kind: k, Data: data}
}

// NewNoSourceFiles builds a NoSourceFiles error for the given directory.
func NewNoSourceFiles(dir string) *Error {
	return newErr(NoSourceFiles, map[string]string{"dir": dir})
}

// NewFailedToReadSrcFile builds a FailedToReadSrcFile error.
func NewFailedToReadSrcFile(file string) *Error {
	return newErr(FailedToReadSrcFile, map[string]string{"file": file})
}

// NewFailedToWriteToFile builds a FailedToWriteToFile error.
func NewFailedToWriteToFile(file string) *Error {
	return newErr(FailedToWriteToFile, map[string]string{"file": file})
}

// NewFailedToParseSrcFile builds a FailedToParseSrcFile error.
func NewFailedToParseSrcFile(file string) *Error {
	return newErr(FailedToParseSrcFile, map[string]string{"file": file})
}

// NewUnknownInterface builds an UnknownInterface error.
func NewUnknownInterface(iface string) *Error {
	return newErr(UnknownInterface, map[string]string{"interface": iface})
}

// NewVariableTypeAmbiguous builds a VariableTypeAmbiguous error.
func NewVariableTypeAmbiguous() *Error {
	return newErr(VariableTypeAmbiguous, nil)
}

// NewCouldNotTranspileType builds a CouldNotTranspileType error.
func NewCouldNotTranspileType() *Error {
	return newErr(CouldNotTranspileType, nil)
}

// NewIncompatibleTypes builds an IncompatibleTypes error. expected and
// actual are already-rendered type strings (see types.Type.String /
// types.ExpressionType.String).
func NewIncompatibleTypes(expected, actual string) *Error {
	return newErr(IncompatibleTypes, map[string]string{"expected": expected, "actual": actual})
}

// NewTypeNotNullable builds a TypeNotNullable error.
func NewTypeNotNullable(receivedType string) *Error {
	return newErr(TypeNotNullable, map[string]string{"received_type": receivedType})
}

// NewDownstreamCompileFailed builds a DownstreamCompileFailed error.
func NewDownstreamCompileFailed() *Error {
	return newErr(DownstreamCompileFailed, nil)
}
