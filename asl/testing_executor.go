package asl

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/asl-lang/asl/asl/ast"
)

// TestingExecutor keeps standard input, standard output and all files in memory.
type TestingExecutor struct {
	input  *bufio.Scanner
	Output *strings.Builder
	// File contents by path, programs loaded by `source` are stored here too
	Files map[string]string
}

func NewTestingExecutor(input string, files map[string]string) *TestingExecutor {
	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Split(bufio.ScanWords)
	if files == nil {
		files = make(map[string]string)
	}
	return &TestingExecutor{
		input:  scanner,
		Output: &strings.Builder{},
		Files:  files,
	}
}

func (self *TestingExecutor) ReadToken() (string, error) {
	if self.input.Scan() {
		return self.input.Text(), nil
	}
	if err := self.input.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (self *TestingExecutor) Write(output string) error {
	self.Output.WriteString(output)
	return nil
}

func (self *TestingExecutor) OpenFile(path string) (io.ReadCloser, error) {
	content, found := self.Files[path]
	if !found {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

func (self *TestingExecutor) CreateFile(path string) (io.WriteCloser, error) {
	return &memoryFile{path: path, files: self.Files}, nil
}

func (self *TestingExecutor) LoadProgram(path string) (ast.Program, error) {
	content, found := self.Files[path]
	if !found {
		return ast.Program{}, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	program, err := ast.Decode([]byte(content), path)
	if err != nil {
		return ast.Program{}, err
	}
	return program, nil
}

// memoryFile stores its content in the file map once it is closed.
type memoryFile struct {
	bytes.Buffer
	path  string
	files map[string]string
}

func (self *memoryFile) Close() error {
	self.files[self.path] = self.String()
	return nil
}
