package ast

import "github.com/asl-lang/asl/asl/errors"

type StatementKind uint8

const (
	AssignStatementKind StatementKind = iota
	IfStatementKind
	WhileStatementKind
	ReturnStatementKind
	ReadStatementKind
	WriteStatementKind
	CallStatementKind
)

type Statement interface {
	Kind() StatementKind
	Span() errors.Span
}

//
// Assign statement
//

// The left hand side is either an `IdentExpression` or an `AccessExpression`.
type AssignStatement struct {
	Lhs   Expression
	Rhs   Expression
	Range errors.Span
}

func (self AssignStatement) Kind() StatementKind { return AssignStatementKind }
func (self AssignStatement) Span() errors.Span   { return self.Range }

//
// If statement
//

type IfStatement struct {
	Condition Expression
	ThenBlock Block
	ElseBlock *Block
	Range     errors.Span
}

func (self IfStatement) Kind() StatementKind { return IfStatementKind }
func (self IfStatement) Span() errors.Span   { return self.Range }

//
// While statement
//

type WhileStatement struct {
	Condition Expression
	Body      Block
	Range     errors.Span
}

func (self WhileStatement) Kind() StatementKind { return WhileStatementKind }
func (self WhileStatement) Span() errors.Span   { return self.Range }

//
// Return statement
//

type ReturnStatement struct {
	// nil if the function returns nothing
	Value Expression
	Range errors.Span
}

func (self ReturnStatement) Kind() StatementKind { return ReturnStatementKind }
func (self ReturnStatement) Span() errors.Span   { return self.Range }

//
// Read statement
//

type ReadStatement struct {
	Ident string
	Range errors.Span
}

func (self ReadStatement) Kind() StatementKind { return ReadStatementKind }
func (self ReadStatement) Span() errors.Span   { return self.Range }

//
// Write statement (`write` and `writeln`)
//

type WriteStatement struct {
	Value   Expression
	Newline bool
	Range   errors.Span
}

func (self WriteStatement) Kind() StatementKind { return WriteStatementKind }
func (self WriteStatement) Span() errors.Span   { return self.Range }

//
// Call statement
//

type CallStatement struct {
	Call  CallExpression
	Range errors.Span
}

func (self CallStatement) Kind() StatementKind { return CallStatementKind }
func (self CallStatement) Span() errors.Span   { return self.Range }
