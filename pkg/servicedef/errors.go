package servicedef

import (
	"fmt"

	"github.com/leapstack-labs/servicedef/pkg/token"
)

// ErrorCode classifies a validation error.
type ErrorCode string

// ErrorCode constants for the validation error taxonomy.
const (
	// ErrInvalidName reports an identifier that fails the name grammar.
	ErrInvalidName ErrorCode = "invalid-name"

	// ErrDuplicateName reports a name collision within one scope.
	ErrDuplicateName ErrorCode = "duplicate-name"

	// ErrUnsupportedMember reports a service member that is none of the four
	// recognized kinds.
	ErrUnsupportedMember ErrorCode = "unsupported-member"

	// ErrUnknownType reports a type reference that names no member.
	ErrUnknownType ErrorCode = "unknown-type"

	// ErrInvalidTypeReference reports a type reference that names something
	// ineligible in that position, such as a method used as a field type.
	ErrInvalidTypeReference ErrorCode = "invalid-type-reference"

	// ErrMalformedTypeSyntax reports ill-formed type decorator syntax,
	// such as "map<>".
	ErrMalformedTypeSyntax ErrorCode = "malformed-type-syntax"
)

// ValidationError describes one problem found in a service definition.
type ValidationError struct {
	Code    ErrorCode
	Message string
	Pos     token.Position
}

func (e *ValidationError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

func newError(code ErrorCode, pos token.Position, format string, args ...any) *ValidationError {
	return &ValidationError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}
