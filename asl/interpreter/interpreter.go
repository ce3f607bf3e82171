package interpreter

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/asl-lang/asl/asl/ast"
	"github.com/asl-lang/asl/asl/errors"
	"github.com/asl-lang/asl/asl/interpreter/stack"
	"github.com/asl-lang/asl/asl/interpreter/value"
	"github.com/rs/zerolog"
)

const entryPoint = "main"

type Options struct {
	// Maximum number of activation records, 0 means unlimited
	CallStackLimit uint
	// Number of innermost frames rendered into stack traces, 0 means all
	StackTraceFrames int
	// Source of randomness for `sample` and `sort`
	Rand *rand.Rand
	// Receives the call / return trace, nil disables tracing
	Trace  io.Writer
	Logger zerolog.Logger
}

type Interpreter struct {
	program   ast.Program
	functions map[string]ast.FunctionDefinition
	builtins  value.Registry
	executor  value.Executor
	options   Options
	stack     *stack.Stack
	tracer    *tracer
	// Row of the innermost FROM action being evaluated, nil outside of pipelines
	row *rowContext
	// Span of the statement which is currently executed
	currentSpan errors.Span
}

func NewInterpreter(
	program ast.Program,
	builtins value.Registry,
	executor value.Executor,
	options Options,
) *Interpreter {
	if options.Rand == nil {
		options.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	functions := make(map[string]ast.FunctionDefinition, len(program.Functions))
	for _, fn := range program.Functions {
		functions[fn.Ident] = fn
	}

	return &Interpreter{
		program:   program,
		functions: functions,
		builtins:  builtins,
		executor:  executor,
		options:   options,
		stack:     stack.NewStack(options.CallStackLimit),
		tracer:    newTracer(options.Trace),
	}
}

// Execute runs the `main` function of the program and returns its result.
func (self *Interpreter) Execute() (*value.Value, *value.Interrupt) {
	span := errors.NewLineSpan(self.program.Filename, 0, 0)
	main, found := self.functions[entryPoint]
	if !found {
		return nil, value.NewRuntimeErr(
			fmt.Sprintf("The program '%s' does not define a '%s' function", self.program.Filename, entryPoint),
			value.UndefinedFunctionErrorKind,
			span,
		)
	}

	self.options.Logger.Debug().Str("program", self.program.Filename).Msg("Executing program")

	return self.callUserFunc(span, main, make([]*value.Value, 0), true)
}

//
// Builtin call context
//

func (self *Interpreter) Executor() value.Executor { return self.executor }

func (self *Interpreter) Rand() *rand.Rand { return self.options.Rand }

func (self *Interpreter) Logger() zerolog.Logger { return self.options.Logger }

// Source runs another program as a nested interpretation.
// The nested program shares the remaining call stack budget and the trace of this interpreter.
func (self *Interpreter) Source(path string, span errors.Span) (*value.Value, *value.Interrupt) {
	program, err := self.executor.LoadProgram(path)
	if err != nil {
		return nil, value.NewRuntimeErr(
			fmt.Sprintf("Could not load program '%s': %s", path, err.Error()),
			value.HostErrorKind,
			span,
		)
	}

	options := self.options
	if options.CallStackLimit > 0 {
		remaining := int(options.CallStackLimit) - self.stack.Depth()
		if remaining <= 0 {
			return nil, value.NewRuntimeErr(
				fmt.Sprintf("Maximum callstack size of %d was exceeded", options.CallStackLimit),
				value.StackOverFlowErrorKind,
				span,
			)
		}
		options.CallStackLimit = uint(remaining)
	}

	nested := NewInterpreter(program, self.builtins, self.executor, options)
	nested.tracer = self.tracer

	self.options.Logger.Debug().Str("path", path).Int("depth", self.stack.Depth()).Msg("Sourcing nested program")

	return nested.Execute()
}
