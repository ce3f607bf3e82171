package diagnostic

import (
	"fmt"
	"strings"

	"github.com/asl-lang/asl/asl/errors"
	"github.com/asl-lang/asl/asl/interpreter/value"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type DiagnosticLevel uint8

const (
	DiagnosticLevelHint DiagnosticLevel = iota
	DiagnosticLevelInfo
	DiagnosticLevelWarning
	DiagnosticLevelError
)

func (self DiagnosticLevel) String() string {
	switch self {
	case DiagnosticLevelHint:
		return "Hint"
	case DiagnosticLevelInfo:
		return "Info"
	case DiagnosticLevelWarning:
		return "Warning"
	case DiagnosticLevelError:
		return "Error"
	default:
		panic("A new diagnostic level was added without updating this code")
	}
}

func (self DiagnosticLevel) color() uint8 {
	switch self {
	case DiagnosticLevelHint:
		return 5 // magenta
	case DiagnosticLevelInfo:
		return 4 // blue
	case DiagnosticLevelWarning:
		return 3 // yellow
	case DiagnosticLevelError:
		return 1 // red
	default:
		panic("A new diagnostic level was added without updating this code")
	}
}

//
// Diagnostic
//

type Diagnostic struct {
	Level DiagnosticLevel `json:"level"`
	// Category of the problem, such as `runtime error` or `syntax error`
	Category   string      `json:"category"`
	Kind       string      `json:"kind"`
	Message    string      `json:"message"`
	Notes      []string    `json:"notes"`
	StackTrace []string    `json:"stackTrace"`
	Span       errors.Span `json:"span"`
}

// FromInterrupt converts a runtime error into a diagnostic.
// Interrupts which are not errors are an internal bug.
func FromInterrupt(i value.Interrupt) Diagnostic {
	err, isErr := i.(value.RuntimeErr)
	if !isErr {
		panic(fmt.Sprintf("Interrupt of kind %s escaped to the top level", i.Kind()))
	}
	return Diagnostic{
		Level:      DiagnosticLevelError,
		Category:   "runtime error",
		Kind:       err.ErrKind.String(),
		Message:    err.MessageInternal,
		Notes:      err.Notes,
		StackTrace: err.StackTrace,
		Span:       err.Span,
	}
}

// FromError converts an error in a syntax tree into a diagnostic.
func FromError(err errors.Error) Diagnostic {
	return Diagnostic{
		Level:    DiagnosticLevelError,
		Category: "syntax error",
		Kind:     err.Kind.String(),
		Message:  err.Message,
		Span:     err.Span,
	}
}

func (self Diagnostic) location() string {
	if self.Span.Start.Column == 0 {
		return self.Span.String()
	}
	return fmt.Sprintf("%s:%d", self.Span, self.Span.Start.Column)
}

// Display renders the diagnostic, ANSI colors are only used if `color` is set.
func (self Diagnostic) Display(color bool) string {
	col := func(code uint8, bold bool) string {
		if !color {
			return ""
		}
		return ansiCol(code, bold)
	}
	reset := ""
	if color {
		reset = "\x1b[0m"
	}

	caser := cases.Title(language.AmericanEnglish)

	var out strings.Builder
	fmt.Fprintf(
		&out,
		"%s%s: %s (%s)%s at %s\n",
		col(self.Level.color()+30, true),
		self.Level,
		caser.String(self.Category),
		self.Kind,
		reset,
		self.location(),
	)
	fmt.Fprintf(&out, "%s\n", self.Message)

	for _, note := range self.Notes {
		fmt.Fprintf(&out, "%s - note:%s %s\n", col(36, true), reset, note)
	}

	if len(self.StackTrace) > 0 {
		fmt.Fprintf(&out, "%sstack trace:%s\n", col(90, false), reset)
		for _, frame := range self.StackTrace {
			fmt.Fprintf(&out, "    at %s\n", frame)
		}
	}

	return out.String()
}

func ansiCol(color uint8, bold bool) string {
	if bold {
		return fmt.Sprintf("\x1b[1;%dm", color)
	}
	return fmt.Sprintf("\x1b[%dm", color)
}
