package interpreter

import (
	"bytes"
	"testing"

	"github.com/asl-lang/asl/asl/ast"
	"github.com/asl-lang/asl/asl/interpreter/value"
	"github.com/stretchr/testify/assert"
)

func TestTraceNesting(t *testing.T) {
	var out bytes.Buffer
	trace := newTracer(&out)

	main := ast.FunctionDefinition{Ident: "main"}
	failing := ast.FunctionDefinition{Ident: "fail"}
	after := ast.FunctionDefinition{Ident: "after"}
	noArgs := make([]*value.Value, 0)

	trace.call(main, noArgs, 0, true)
	trace.call(failing, noArgs, 2, false)
	trace.unwind()
	trace.call(after, noArgs, 3, false)
	trace.ret(after, *value.NewValueInt(1), noArgs, 4)
	trace.ret(main, *value.NewValueVoid(), noArgs, 5)

	assert.Equal(t, ""+
		"main() <entry point>\n"+
		"|   fail() <line 2>\n"+
		"|   after() <line 3>\n"+
		"|   return 1 <line 4>\n"+
		"return <line 5>\n",
		out.String(),
	)
	assert.Equal(t, -1, trace.nesting)
}

func TestTraceDisabled(t *testing.T) {
	trace := newTracer(nil)
	trace.call(ast.FunctionDefinition{Ident: "main"}, nil, 0, true)
	trace.unwind()
	assert.Equal(t, -1, trace.nesting)
}
