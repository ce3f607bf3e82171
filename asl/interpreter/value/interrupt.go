package value

import (
	"fmt"

	"github.com/asl-lang/asl/asl/errors"
)

type RuntimeErrorKind uint8

const (
	TypeMismatchErrorKind RuntimeErrorKind = iota
	ArityMismatchErrorKind
	UndefinedFunctionErrorKind
	UndefinedVariableErrorKind
	IndexOutOfBoundsErrorKind
	UnknownKeyErrorKind
	DivisionByZeroErrorKind
	IncompatibleTypesErrorKind
	FormatErrorKind
	SchemaViolationErrorKind
	UnsupportedOperationErrorKind
	ValueExpectedErrorKind
	ReferenceExpectedErrorKind
	StackOverFlowErrorKind
	HostErrorKind
)

func (self RuntimeErrorKind) String() string {
	switch self {
	case TypeMismatchErrorKind:
		return "TypeMismatch"
	case ArityMismatchErrorKind:
		return "ArityMismatch"
	case UndefinedFunctionErrorKind:
		return "UndefinedFunction"
	case UndefinedVariableErrorKind:
		return "UndefinedVariable"
	case IndexOutOfBoundsErrorKind:
		return "IndexOutOfBounds"
	case UnknownKeyErrorKind:
		return "UnknownKey"
	case DivisionByZeroErrorKind:
		return "DivisionByZero"
	case IncompatibleTypesErrorKind:
		return "IncompatibleTypes"
	case FormatErrorKind:
		return "FormatError"
	case SchemaViolationErrorKind:
		return "SchemaViolation"
	case UnsupportedOperationErrorKind:
		return "UnsupportedOperation"
	case ValueExpectedErrorKind:
		return "ValueExpected"
	case ReferenceExpectedErrorKind:
		return "ReferenceExpected"
	case StackOverFlowErrorKind:
		return "StackOverFlow"
	case HostErrorKind:
		return "HostError"
	default:
		panic("A new ErrorKind was added without updating this code")
	}
}

type InterruptKind uint8

const (
	ReturnInterruptKind InterruptKind = iota
	FatalExceptionInterruptKind
)

func (self InterruptKind) String() string {
	switch self {
	case ReturnInterruptKind:
		return "return"
	case FatalExceptionInterruptKind:
		return "fatal exception"
	default:
		panic("A new interrupt kind was added without updating this code")
	}
}

type Interrupt interface {
	Kind() InterruptKind
	Message() string
	// This function may panic if the target value has no span
	GetSpan() errors.Span
}

//
// Return interrupt
//

type ReturnInterrupt struct {
	ReturnValue Value
}

func (self ReturnInterrupt) Kind() InterruptKind { return ReturnInterruptKind }

func (self ReturnInterrupt) Message() string {
	return "<return-interrupt>"
}

func (self ReturnInterrupt) GetSpan() errors.Span {
	panic("This interrupt kind does not contain a span")
}

func NewReturnInterrupt(value Value) *Interrupt {
	i := Interrupt(ReturnInterrupt{ReturnValue: value})
	return &i
}

//
// Runtime error
//

type RuntimeErr struct {
	ErrKind         RuntimeErrorKind
	MessageInternal string
	Span            errors.Span
	// Additional hints, such as spelling suggestions
	Notes []string
	// Rendered call stack at the point of failure, innermost frame first
	StackTrace []string
}

func (self RuntimeErr) Kind() InterruptKind { return FatalExceptionInterruptKind }

func (self RuntimeErr) Message() string {
	return self.MessageInternal
}

func (self RuntimeErr) GetSpan() errors.Span {
	return self.Span
}

func (self RuntimeErr) Error() string {
	return fmt.Sprintf("%s at %s: %s", self.ErrKind, self.Span, self.MessageInternal)
}

func NewRuntimeErr(message string, kind RuntimeErrorKind, span errors.Span) *Interrupt {
	i := Interrupt(RuntimeErr{
		MessageInternal: message,
		ErrKind:         kind,
		Span:            span,
	})
	return &i
}

// WithNotes attaches hints to a runtime error, other interrupts are returned unchanged.
func WithNotes(i *Interrupt, notes ...string) *Interrupt {
	if i == nil || len(notes) == 0 {
		return i
	}
	err, isErr := (*i).(RuntimeErr)
	if !isErr {
		return i
	}
	err.Notes = append(append([]string{}, err.Notes...), notes...)
	out := Interrupt(err)
	return &out
}

// WithStackTrace attaches the call stack to a runtime error unless it already carries one.
func WithStackTrace(i *Interrupt, trace []string) *Interrupt {
	if i == nil {
		return nil
	}
	err, isErr := (*i).(RuntimeErr)
	if !isErr || err.StackTrace != nil {
		return i
	}
	err.StackTrace = trace
	out := Interrupt(err)
	return &out
}

// ErrKindOf returns the error kind of a runtime error interrupt.
func ErrKindOf(i *Interrupt) (RuntimeErrorKind, bool) {
	if i == nil {
		return 0, false
	}
	err, isErr := (*i).(RuntimeErr)
	if !isErr {
		return 0, false
	}
	return err.ErrKind, true
}
