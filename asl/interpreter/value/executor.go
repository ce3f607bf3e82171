package value

import (
	"io"

	"github.com/asl-lang/asl/asl/ast"
)

// Executor abstracts every interaction of a running program with its host.
type Executor interface {
	// Returns the next whitespace-delimited token of the standard input
	ReadToken() (string, error)
	// Writes program output (`write` / `writeln`)
	Write(output string) error
	OpenFile(path string) (io.ReadCloser, error)
	CreateFile(path string) (io.WriteCloser, error)
	// Loads and decodes the program stored at `path`, used by `source`
	LoadProgram(path string) (ast.Program, error)
}
