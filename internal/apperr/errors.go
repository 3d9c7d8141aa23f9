package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedToken         = errors.New("unexpected token")
	ErrUnexpectedEOF           = errors.New("unexpected end of input")
	ErrInvalidAssignmentTarget = errors.New("invalid left-hand side in assignment")
	ErrInvalidNumber           = errors.New("invalid numeric literal")
	ErrNestingTooDeep          = errors.New("nesting too deep")
)

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// LexicalError is raised when no token rule matches at the scan position.
type LexicalError struct {
	Char   rune
	Offset int
	Line   int
	Column int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at line %d, column %d: unexpected character %q", e.Line, e.Column, e.Char)
}

// SyntaxError is raised at the first grammar rule violation.
// Err holds one of the Err* sentinels so callers can use errors.Is.
type SyntaxError struct {
	Message  string
	Expected string
	Found    string
	Offset   int
	Line     int
	Column   int
	Err      error
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("syntax error at line %d, column %d: %s", e.Line, e.Column, e.Message)
	if e.Expected != "" {
		msg += ", expected " + e.Expected
	}
	return msg
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// IsSourceError reports whether err is a lexical or syntax error, i.e. the
// input was rejected rather than the caller misusing the API.
func IsSourceError(err error) bool {
	var le *LexicalError
	var se *SyntaxError
	return errors.As(err, &le) || errors.As(err, &se)
}
