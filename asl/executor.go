package asl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/asl-lang/asl/asl/ast"
)

// OSExecutor connects a program to the standard streams and the file system.
type OSExecutor struct {
	input  *bufio.Scanner
	output io.Writer
}

func NewOSExecutor() *OSExecutor {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Split(bufio.ScanWords)
	return &OSExecutor{
		input:  scanner,
		output: os.Stdout,
	}
}

func (self *OSExecutor) ReadToken() (string, error) {
	if self.input.Scan() {
		return self.input.Text(), nil
	}
	if err := self.input.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (self *OSExecutor) Write(output string) error {
	_, err := fmt.Fprint(self.output, output)
	return err
}

func (self *OSExecutor) OpenFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

func (self *OSExecutor) CreateFile(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func (self *OSExecutor) LoadProgram(path string) (ast.Program, error) {
	return LoadProgram(path)
}
