package interpreter

import (
	"fmt"

	"github.com/asl-lang/asl/asl/ast"
	"github.com/asl-lang/asl/asl/interpreter/value"
	"github.com/davecgh/go-spew/spew"
)

// expression evaluates a node into a fresh value which is owned by the caller.
func (self *Interpreter) expression(node ast.Expression) (*value.Value, *value.Interrupt) {
	switch node.Kind() {
	case ast.IntLiteralExpressionKind:
		return value.NewValueInt(node.(ast.IntLiteralExpression).Value), nil
	case ast.BoolLiteralExpressionKind:
		return value.NewValueBool(node.(ast.BoolLiteralExpression).Value), nil
	case ast.StringLiteralExpressionKind:
		return value.NewValueString(node.(ast.StringLiteralExpression).Value), nil
	case ast.IdentExpressionKind:
		slot, i := self.lookupSlot(node.(ast.IdentExpression))
		if i != nil {
			return nil, i
		}
		return (*slot).Clone(), nil
	case ast.ListLiteralExpressionKind:
		values, i := self.expressions(node.(ast.ListLiteralExpression).Values)
		if i != nil {
			return nil, i
		}
		return value.NewValueList(values), nil
	case ast.DictLiteralExpressionKind:
		return self.dictLiteral(node.(ast.DictLiteralExpression))
	case ast.AccessExpressionKind:
		return self.accessExpression(node.(ast.AccessExpression))
	case ast.FromExpressionKind:
		return self.fromExpression(node.(ast.FromExpression))
	case ast.ColumnExpressionKind:
		return self.columnExpression(node.(ast.ColumnExpression))
	case ast.PrefixExpressionKind:
		return self.prefixExpression(node.(ast.PrefixExpression))
	case ast.InfixExpressionKind:
		return self.infixExpression(node.(ast.InfixExpression))
	case ast.CallExpressionKind:
		call := node.(ast.CallExpression)
		res, i := self.callFunc(call)
		if i != nil {
			return nil, i
		}
		if (*res).Kind() == value.VoidValueKind {
			return nil, value.NewRuntimeErr(
				fmt.Sprintf("Function '%s' did not return a value", call.Ident),
				value.ValueExpectedErrorKind,
				call.Range,
			)
		}
		return res, nil
	default:
		panic(fmt.Sprintf("A new expression kind was added without updating this code: %s", spew.Sdump(node)))
	}
}

// expressions evaluates the nodes from left to right.
func (self *Interpreter) expressions(nodes []ast.Expression) ([]*value.Value, *value.Interrupt) {
	values := make([]*value.Value, 0, len(nodes))
	for _, node := range nodes {
		val, i := self.expression(node)
		if i != nil {
			return nil, i
		}
		values = append(values, val)
	}
	return values, nil
}

func (self *Interpreter) dictLiteral(node ast.DictLiteralExpression) (*value.Value, *value.Interrupt) {
	fields := make(map[string]*value.Value, len(node.Entries))
	for _, entry := range node.Entries {
		keyVal, i := self.expression(entry.Key)
		if i != nil {
			return nil, i
		}
		key, i := value.AsString(*keyVal, entry.Key.Span())
		if i != nil {
			return nil, i
		}

		val, i := self.expression(entry.Value)
		if i != nil {
			return nil, i
		}
		fields[key] = val
	}
	return value.NewValueDict(fields), nil
}

func (self *Interpreter) prefixExpression(node ast.PrefixExpression) (*value.Value, *value.Interrupt) {
	base, i := self.expression(node.Base)
	if i != nil {
		return nil, i
	}

	switch node.Operator {
	case ast.PlusPrefixOperator, ast.MinusPrefixOperator:
		number, i := value.AsInt(*base, node.Base.Span())
		if i != nil {
			return nil, i
		}
		if node.Operator == ast.MinusPrefixOperator {
			number = -number
		}
		return value.NewValueInt(number), nil
	case ast.NotPrefixOperator:
		boolean, i := value.AsBool(*base, node.Base.Span())
		if i != nil {
			return nil, i
		}
		return value.NewValueBool(!boolean), nil
	default:
		panic("A new prefix operator was added without updating this code")
	}
}

func (self *Interpreter) infixExpression(node ast.InfixExpression) (*value.Value, *value.Interrupt) {
	switch node.Operator {
	case ast.LogicalAndInfixOperator, ast.LogicalOrInfixOperator:
		return self.logicalExpression(node)
	}

	lhs, i := self.expression(node.Lhs)
	if i != nil {
		return nil, i
	}
	rhs, i := self.expression(node.Rhs)
	if i != nil {
		return nil, i
	}

	if node.Operator.IsArithmetic() {
		return value.EvaluateArithmetic(node.Operator, *lhs, *rhs, node.Range)
	}

	if (*lhs).Kind() != (*rhs).Kind() {
		return nil, value.NewRuntimeErr(
			fmt.Sprintf("Cannot compare a value of type %s with a value of type %s", (*lhs).Kind(), (*rhs).Kind()),
			value.IncompatibleTypesErrorKind,
			node.Range,
		)
	}

	res, i := value.EvaluateRelational(node.Operator, *lhs, *rhs, node.Range)
	if i != nil {
		return nil, i
	}
	return value.NewValueBool(res), nil
}

// logicalExpression only evaluates the right hand side if the left hand side does not determine the result.
func (self *Interpreter) logicalExpression(node ast.InfixExpression) (*value.Value, *value.Interrupt) {
	lhs, i := self.condition(node.Lhs)
	if i != nil {
		return nil, i
	}

	if node.Operator == ast.LogicalAndInfixOperator && !lhs {
		return value.NewValueBool(false), nil
	}
	if node.Operator == ast.LogicalOrInfixOperator && lhs {
		return value.NewValueBool(true), nil
	}

	rhs, i := self.condition(node.Rhs)
	if i != nil {
		return nil, i
	}
	return value.NewValueBool(rhs), nil
}
