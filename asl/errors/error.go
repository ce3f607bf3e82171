package errors

import "fmt"

// All ranges inclusive
type Span struct {
	Start    Location
	End      Location
	Filename string
}

type Location struct {
	Line   uint
	Column uint
}

func (self Span) String() string {
	if self.Filename == "" {
		return fmt.Sprintf("line %d", self.Start.Line)
	}
	return fmt.Sprintf("%s:%d", self.Filename, self.Start.Line)
}

// NewLineSpan creates a span which covers a single source line.
func NewLineSpan(filename string, line uint, column uint) Span {
	loc := Location{Line: line, Column: column}
	return Span{Start: loc, End: loc, Filename: filename}
}

type Error struct {
	Kind    ErrorKind
	Message string
	Span    Span
}

func (self *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", self.Kind, self.Span, self.Message)
}

type ErrorKind uint8

const (
	SyntaxError ErrorKind = iota
	ReferenceError
)

func (self ErrorKind) String() string {
	switch self {
	case SyntaxError:
		return "SyntaxError"
	case ReferenceError:
		return "ReferenceError"
	default:
		panic("A new ErrorKind was added without updating this code")
	}
}

func NewError(span Span, message string, kind ErrorKind) *Error {
	return &Error{
		Span:    span,
		Message: message,
		Kind:    kind,
	}
}
