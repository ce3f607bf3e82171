package asl

import (
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/asl-lang/asl/asl/ast"
	"github.com/asl-lang/asl/asl/builtin"
	"github.com/asl-lang/asl/asl/diagnostic"
	"github.com/asl-lang/asl/asl/interpreter"
	"github.com/asl-lang/asl/asl/interpreter/value"
	"github.com/rs/zerolog"
)

type Config struct {
	// Maximum number of nested function calls before a `StackOverFlow` error is raised
	CallStackLimit uint
	// Number of innermost frames included in stack traces
	StackTraceFrames int
	// Seeds the randomness of `sample` and `sort`
	Seed int64
	// Receives the call / return trace, nil disables tracing
	Trace  io.Writer
	Logger zerolog.Logger
}

func DefaultConfig() Config {
	return Config{
		CallStackLimit:   10_000,
		StackTraceFrames: 10,
		Seed:             time.Now().UnixNano(),
		Trace:            nil,
		Logger:           zerolog.Nop(),
	}
}

// LoadProgram reads and decodes the syntax tree stored at `path`.
// Malformed trees are reported as `*errors.Error`.
func LoadProgram(path string) (ast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ast.Program{}, err
	}
	program, syntaxErr := ast.Decode(data, path)
	if syntaxErr != nil {
		return ast.Program{}, syntaxErr
	}
	return program, nil
}

// Run executes the `main` function of the program.
func Run(program ast.Program, executor value.Executor, config Config) (value.Value, *diagnostic.Diagnostic) {
	config.Logger.Debug().Str("program", program.Filename).Int64("seed", config.Seed).Uint("stackLimit", config.CallStackLimit).Msg("Starting interpreter")

	interp := interpreter.NewInterpreter(
		program,
		builtin.NewRegistry(),
		executor,
		interpreter.Options{
			CallStackLimit:   config.CallStackLimit,
			StackTraceFrames: config.StackTraceFrames,
			Rand:             rand.New(rand.NewSource(config.Seed)),
			Trace:            config.Trace,
			Logger:           config.Logger,
		},
	)

	res, i := interp.Execute()
	if i != nil {
		d := diagnostic.FromInterrupt(*i)
		return nil, &d
	}
	return *res, nil
}

// RunTree decodes a serialized syntax tree and executes it.
func RunTree(data []byte, filename string, executor value.Executor, config Config) (value.Value, *diagnostic.Diagnostic) {
	program, err := ast.Decode(data, filename)
	if err != nil {
		d := diagnostic.FromError(*err)
		return nil, &d
	}
	return Run(program, executor, config)
}
