package interpreter

import (
	"fmt"
	"io"
	"strings"

	"github.com/asl-lang/asl/asl/ast"
	"github.com/asl-lang/asl/asl/interpreter/value"
)

// tracer writes one line per function call and return, indented by the nesting level.
type tracer struct {
	out     io.Writer
	nesting int
}

func newTracer(out io.Writer) *tracer {
	return &tracer{out: out, nesting: -1}
}

func (self *tracer) enabled() bool { return self.out != nil }

func (self *tracer) indent() string {
	return strings.Repeat("|   ", self.nesting)
}

func (self *tracer) call(fn ast.FunctionDefinition, args []*value.Value, line uint, entry bool) {
	if !self.enabled() {
		return
	}
	self.nesting++

	params := make([]string, 0, len(fn.Params))
	for idx, param := range fn.Params {
		prefix := ""
		if param.Mode == ast.ByReference {
			prefix = "&"
		}
		params = append(params, fmt.Sprintf("%s%s=%s", prefix, param.Ident, (*args[idx]).Display()))
	}

	location := fmt.Sprintf("<line %d>", line)
	if entry {
		location = "<entry point>"
	}

	fmt.Fprintf(self.out, "%s%s(%s) %s\n", self.indent(), fn.Ident, strings.Join(params, ", "), location)
}

func (self *tracer) ret(fn ast.FunctionDefinition, result value.Value, args []*value.Value, line uint) {
	if !self.enabled() {
		return
	}

	var builder strings.Builder
	builder.WriteString(self.indent())
	builder.WriteString("return")
	if result.Kind() != value.VoidValueKind {
		builder.WriteString(" " + result.Display())
	}
	for idx, param := range fn.Params {
		if param.Mode != ast.ByReference {
			continue
		}
		builder.WriteString(fmt.Sprintf(", &%s=%s", param.Ident, (*args[idx]).Display()))
	}
	fmt.Fprintf(self.out, "%s <line %d>\n", builder.String(), line)

	self.nesting--
}

// unwind leaves the nesting level of a call which ended with an error instead of returning.
func (self *tracer) unwind() {
	if !self.enabled() {
		return
	}
	self.nesting--
}
