package ast

import "github.com/asl-lang/asl/asl/errors"

type ExpressionKind uint8

const (
	IntLiteralExpressionKind ExpressionKind = iota
	BoolLiteralExpressionKind
	StringLiteralExpressionKind
	IdentExpressionKind
	ListLiteralExpressionKind
	DictLiteralExpressionKind
	AccessExpressionKind
	FromExpressionKind
	ColumnExpressionKind
	PrefixExpressionKind
	InfixExpressionKind
	CallExpressionKind
)

type Expression interface {
	Kind() ExpressionKind
	Span() errors.Span
}

//
// Literals
//

type IntLiteralExpression struct {
	Value int64
	Range errors.Span
}

func (self IntLiteralExpression) Kind() ExpressionKind { return IntLiteralExpressionKind }
func (self IntLiteralExpression) Span() errors.Span    { return self.Range }

type BoolLiteralExpression struct {
	Value bool
	Range errors.Span
}

func (self BoolLiteralExpression) Kind() ExpressionKind { return BoolLiteralExpressionKind }
func (self BoolLiteralExpression) Span() errors.Span    { return self.Range }

type StringLiteralExpression struct {
	Value string
	Range errors.Span
}

func (self StringLiteralExpression) Kind() ExpressionKind { return StringLiteralExpressionKind }
func (self StringLiteralExpression) Span() errors.Span    { return self.Range }

//
// Ident expression
//

type IdentExpression struct {
	Ident string
	Range errors.Span
}

func (self IdentExpression) Kind() ExpressionKind { return IdentExpressionKind }
func (self IdentExpression) Span() errors.Span    { return self.Range }

//
// List literal
//

type ListLiteralExpression struct {
	Values []Expression
	Range  errors.Span
}

func (self ListLiteralExpression) Kind() ExpressionKind { return ListLiteralExpressionKind }
func (self ListLiteralExpression) Span() errors.Span    { return self.Range }

//
// Dict literal
//

type DictEntry struct {
	Key   Expression
	Value Expression
}

type DictLiteralExpression struct {
	Entries []DictEntry
	Range   errors.Span
}

func (self DictLiteralExpression) Kind() ExpressionKind { return DictLiteralExpressionKind }
func (self DictLiteralExpression) Span() errors.Span    { return self.Range }

//
// Access expression: `base[i][j]...`
//

type AccessExpression struct {
	Base    IdentExpression
	Indices []Expression
	Range   errors.Span
}

func (self AccessExpression) Kind() ExpressionKind { return AccessExpressionKind }
func (self AccessExpression) Span() errors.Span    { return self.Range }

//
// From expression: table query pipeline
//

type FromActionKind uint8

const (
	SelectFromActionKind FromActionKind = iota
	FilterFromActionKind
	UpdateFromActionKind
)

func (self FromActionKind) String() string {
	switch self {
	case SelectFromActionKind:
		return "SELECT"
	case FilterFromActionKind:
		return "FILTER"
	case UpdateFromActionKind:
		return "UPDATE"
	default:
		panic("A new FROM action kind was added without updating this code")
	}
}

type FromAction struct {
	Kind FromActionKind
	// Optional for UPDATE: a nil predicate updates every row
	Predicate Expression
	// Only used by UPDATE
	Column Expression
	Value  Expression
	Range  errors.Span
}

type FromExpression struct {
	Table   Expression
	Actions []FromAction
	Range   errors.Span
}

func (self FromExpression) Kind() ExpressionKind { return FromExpressionKind }
func (self FromExpression) Span() errors.Span    { return self.Range }

//
// Column expression: only valid inside a FROM action
//

type ColumnExpression struct {
	Column Expression
	Range  errors.Span
}

func (self ColumnExpression) Kind() ExpressionKind { return ColumnExpressionKind }
func (self ColumnExpression) Span() errors.Span    { return self.Range }

//
// Prefix expression
//

type PrefixOperator uint8

const (
	PlusPrefixOperator PrefixOperator = iota
	MinusPrefixOperator
	NotPrefixOperator
)

func (self PrefixOperator) String() string {
	switch self {
	case PlusPrefixOperator:
		return "+"
	case MinusPrefixOperator:
		return "-"
	case NotPrefixOperator:
		return "not"
	default:
		panic("A new prefix operator was added without updating this code")
	}
}

type PrefixExpression struct {
	Operator PrefixOperator
	Base     Expression
	Range    errors.Span
}

func (self PrefixExpression) Kind() ExpressionKind { return PrefixExpressionKind }
func (self PrefixExpression) Span() errors.Span    { return self.Range }

//
// Infix expression
//

type InfixOperator uint8

const (
	PlusInfixOperator InfixOperator = iota
	MinusInfixOperator
	MultiplyInfixOperator
	DivideInfixOperator
	ModuloInfixOperator
	EqualInfixOperator
	NotEqualInfixOperator
	LessThanInfixOperator
	LessThanEqualInfixOperator
	GreaterThanInfixOperator
	GreaterThanEqualInfixOperator
	LogicalAndInfixOperator
	LogicalOrInfixOperator
)

func (self InfixOperator) String() string {
	switch self {
	case PlusInfixOperator:
		return "+"
	case MinusInfixOperator:
		return "-"
	case MultiplyInfixOperator:
		return "*"
	case DivideInfixOperator:
		return "/"
	case ModuloInfixOperator:
		return "%"
	case EqualInfixOperator:
		return "=="
	case NotEqualInfixOperator:
		return "!="
	case LessThanInfixOperator:
		return "<"
	case LessThanEqualInfixOperator:
		return "<="
	case GreaterThanInfixOperator:
		return ">"
	case GreaterThanEqualInfixOperator:
		return ">="
	case LogicalAndInfixOperator:
		return "and"
	case LogicalOrInfixOperator:
		return "or"
	default:
		panic("A new infix operator was added without updating this code")
	}
}

func (self InfixOperator) IsArithmetic() bool {
	switch self {
	case PlusInfixOperator, MinusInfixOperator, MultiplyInfixOperator, DivideInfixOperator, ModuloInfixOperator:
		return true
	}
	return false
}

func (self InfixOperator) IsRelational() bool {
	switch self {
	case EqualInfixOperator, NotEqualInfixOperator, LessThanInfixOperator, LessThanEqualInfixOperator,
		GreaterThanInfixOperator, GreaterThanEqualInfixOperator:
		return true
	}
	return false
}

type InfixExpression struct {
	Operator InfixOperator
	Lhs      Expression
	Rhs      Expression
	Range    errors.Span
}

func (self InfixExpression) Kind() ExpressionKind { return InfixExpressionKind }
func (self InfixExpression) Span() errors.Span    { return self.Range }

//
// Call expression
//

type CallExpression struct {
	Ident     string
	Arguments []Expression
	Range     errors.Span
}

func (self CallExpression) Kind() ExpressionKind { return CallExpressionKind }
func (self CallExpression) Span() errors.Span    { return self.Range }
