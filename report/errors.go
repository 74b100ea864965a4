package report

import "fmt"

// ErrorCode identifies the kind of a compile error.  The numeric value of the
// code is displayed in the header of the diagnostic (eg. `E0006`) so the
// order of this enumeration must not change.
type ErrorCode int

// Enumeration of error codes.
const (
	Unknown ErrorCode = iota
	UnexpectedToken
	IncorrectParsingType
	InvalidStatement
	InvalidExpression
	ReservedNameUsed
	TypeMismatch
	VariableNotFound
)

var errorCodeNames = [...]string{
	Unknown:              "Unknown",
	UnexpectedToken:      "UnexpectedToken",
	IncorrectParsingType: "IncorrectParsingType",
	InvalidStatement:     "InvalidStatement",
	InvalidExpression:    "InvalidExpression",
	ReservedNameUsed:     "ReservedNameUsed",
	TypeMismatch:         "TypeMismatch",
	VariableNotFound:     "VariableNotFound",
}

func (ec ErrorCode) String() string {
	if 0 <= ec && int(ec) < len(errorCodeNames) {
		return errorCodeNames[ec]
	}

	return errorCodeNames[Unknown]
}

// -----------------------------------------------------------------------------

// CompileError is an error in the user's source text.  It is always fatal: the
// first compile error produced by any stage aborts the whole pipeline.
type CompileError struct {
	// The kind of the error.
	Code ErrorCode

	// The error message.
	Message string

	// The span over which the error occurs.
	Start, End Position
}

func (ce *CompileError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ce.Code, ce.Message, ce.Start)
}

// Raise creates a new compile error.
func Raise(code ErrorCode, start, end Position, msg string, args ...interface{}) *CompileError {
	return &CompileError{
		Code:    code,
		Message: fmt.Sprintf(msg, args...),
		Start:   start,
		End:     end,
	}
}
