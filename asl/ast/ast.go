package ast

import "github.com/asl-lang/asl/asl/errors"

type Program struct {
	Filename  string
	Functions []FunctionDefinition
}

// Function returns the function definition with the given name.
func (self Program) Function(ident string) (FunctionDefinition, bool) {
	for _, fn := range self.Functions {
		if fn.Ident == ident {
			return fn, true
		}
	}
	return FunctionDefinition{}, false
}

type FunctionDefinition struct {
	Ident  string
	Params []Parameter
	Body   Block
	Range  errors.Span
}

func (self FunctionDefinition) Span() errors.Span { return self.Range }

type ParameterMode uint8

const (
	ByValue ParameterMode = iota
	ByReference
)

func (self ParameterMode) String() string {
	switch self {
	case ByValue:
		return "by-value"
	case ByReference:
		return "by-reference"
	default:
		panic("A new parameter mode was added without updating this code")
	}
}

type Parameter struct {
	Ident string
	Mode  ParameterMode
	Range errors.Span
}

type Block struct {
	Statements []Statement
	Range      errors.Span
}

func (self Block) Span() errors.Span { return self.Range }
