package expr

import (
	"strconv"
	"strings"
)

// ErrorCode identifies the cause of a failed evaluation.
type ErrorCode int

const (
	ErrNone ErrorCode = iota
	ErrSyntax
	ErrDivisionByZero
	ErrUnclosedParen
)

// Message returns the fixed diagnostic message for the code.
func (c ErrorCode) Message() string {
	switch c {
	case ErrSyntax:
		return "Syntax error"
	case ErrDivisionByZero:
		return "Division by 0"
	case ErrUnclosedParen:
		return "Expecting )"
	}
	return ""
}

// Error describes why and where evaluating an expression failed.
type Error struct {
	// Code is the cause of the failure.
	Code ErrorCode
	// Offset is the byte offset into Input at which the failure was
	// detected. It can equal len(Input) when the input ended too early.
	Offset int
	// Input is the expression that failed.
	Input string
}

func (e *Error) Error() string {
	return strconv.Itoa(e.Offset) + ": " + e.Code.Message()
}

// Pos returns the byte offset at which the failure was detected.
func (e *Error) Pos() int {
	return e.Offset
}

// Diagnostic renders the three-line error report: the input verbatim, a
// caret under the offending byte, and the message.
//
//	(1+2
//	    ^
//	Expecting )
func (e *Error) Diagnostic() string {
	var b strings.Builder
	b.WriteString(e.Input)
	b.WriteByte('\n')
	for i := 0; i < e.Offset; i++ {
		b.WriteByte(' ')
	}
	b.WriteString("^\n")
	b.WriteString(e.Code.Message())
	return b.String()
}

var _ error = (*Error)(nil)
