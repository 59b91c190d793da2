package envcase

import (
	"fmt"
	"strings"
)

// ErrorCode defines string error
type ErrorCode string

// ErrorCode returns error message
func (e ErrorCode) Error() string {
	return string(e)
}

const (
	// ErrNotFound indicates that no variable name matches the key under the given policy
	ErrNotFound = ErrorCode("variable not found")
	// ErrEmpty indicates that value is empty
	ErrEmpty = ErrorCode("value is empty")
	// ErrInvalidValue indicates that given value is not valid
	ErrInvalidValue = ErrorCode("invalid value")
	// ErrUnknownPolicy indicates that a policy name cannot be parsed
	ErrUnknownPolicy = ErrorCode("unknown policy")
)

// Error provides error details
type Error struct {
	VarName string
	Reason  string
	Cause   error
}

func (e Error) Error() string {
	sb := new(strings.Builder)
	sb.WriteString(fmt.Sprintf("variable %q", e.VarName))
	if e.Reason != "" {
		sb.WriteString(" " + e.Reason)
	}
	if e.Cause != nil {
		sb.WriteString(": " + e.Cause.Error())
	}
	return sb.String()
}

func (e Error) Unwrap() error {
	return e.Cause
}

func notFound(key string, p Policy) error {
	return Error{
		VarName: key,
		Reason:  fmt.Sprintf("has no match (policy %s)", p),
		Cause:   ErrNotFound,
	}
}
