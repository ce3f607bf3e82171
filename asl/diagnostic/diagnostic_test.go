package diagnostic

import (
	"testing"

	"github.com/asl-lang/asl/asl/errors"
	"github.com/asl-lang/asl/asl/interpreter/value"
	"github.com/stretchr/testify/assert"
)

func TestDisplayRuntimeError(t *testing.T) {
	i := value.NewRuntimeErr("Variable 'cout' is not defined", value.UndefinedVariableErrorKind, errors.NewLineSpan("prog.yaml", 4, 2))
	i = value.WithNotes(i, "Did you mean 'count'?")
	i = value.WithStackTrace(i, []string{"f called at prog.yaml:9", "main <entry point>"})

	d := FromInterrupt(*i)
	assert.Equal(t, DiagnosticLevelError, d.Level)
	assert.Equal(t, "UndefinedVariable", d.Kind)

	assert.Equal(t,
		"Error: Runtime Error (UndefinedVariable) at prog.yaml:4:2\n"+
			"Variable 'cout' is not defined\n"+
			" - note: Did you mean 'count'?\n"+
			"stack trace:\n"+
			"    at f called at prog.yaml:9\n"+
			"    at main <entry point>\n",
		d.Display(false),
	)
}

func TestDisplaySyntaxError(t *testing.T) {
	err := errors.NewError(errors.NewLineSpan("", 3, 0), "Unknown statement kind 'GOTO'", errors.SyntaxError)
	out := FromError(*err).Display(false)
	assert.Equal(t, "Error: Syntax Error (SyntaxError) at line 3\nUnknown statement kind 'GOTO'\n", out)
}

func TestDisplayWithColor(t *testing.T) {
	err := errors.NewError(errors.NewLineSpan("", 1, 0), "message", errors.ReferenceError)
	out := FromError(*err).Display(true)
	assert.Contains(t, out, "\x1b[1;31m")
	assert.Contains(t, out, "\x1b[0m")
}

func TestNonErrorInterruptPanics(t *testing.T) {
	assert.Panics(t, func() {
		FromInterrupt(*value.NewReturnInterrupt(*value.NewValueVoid()))
	})
}
