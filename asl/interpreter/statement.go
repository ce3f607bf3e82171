package interpreter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/asl-lang/asl/asl/ast"
	"github.com/asl-lang/asl/asl/interpreter/value"
)

func (self *Interpreter) statement(node ast.Statement) *value.Interrupt {
	self.currentSpan = node.Span()

	switch node.Kind() {
	case ast.AssignStatementKind:
		return self.assignStatement(node.(ast.AssignStatement))
	case ast.IfStatementKind:
		return self.ifStatement(node.(ast.IfStatement))
	case ast.WhileStatementKind:
		return self.whileStatement(node.(ast.WhileStatement))
	case ast.ReturnStatementKind:
		return self.returnStatement(node.(ast.ReturnStatement))
	case ast.ReadStatementKind:
		return self.readStatement(node.(ast.ReadStatement))
	case ast.WriteStatementKind:
		return self.writeStatement(node.(ast.WriteStatement))
	case ast.CallStatementKind:
		_, i := self.callFunc(node.(ast.CallStatement).Call)
		return i
	default:
		panic("A new statement kind was added without updating this code")
	}
}

func (self *Interpreter) condition(node ast.Expression) (bool, *value.Interrupt) {
	val, i := self.expression(node)
	if i != nil {
		return false, i
	}
	return value.AsBool(*val, node.Span())
}

func (self *Interpreter) ifStatement(node ast.IfStatement) *value.Interrupt {
	condition, i := self.condition(node.Condition)
	if i != nil {
		return i
	}

	if condition {
		return self.block(node.ThenBlock)
	} else if node.ElseBlock != nil {
		return self.block(*node.ElseBlock)
	}

	return nil
}

func (self *Interpreter) whileStatement(node ast.WhileStatement) *value.Interrupt {
	for {
		condition, i := self.condition(node.Condition)
		if i != nil {
			return i
		}
		if !condition {
			return nil
		}

		if i := self.block(node.Body); i != nil {
			return i
		}
	}
}

func (self *Interpreter) returnStatement(node ast.ReturnStatement) *value.Interrupt {
	if node.Value == nil {
		return value.NewReturnInterrupt(*value.NewValueVoid())
	}

	val, i := self.expression(node.Value)
	if i != nil {
		return i
	}
	return value.NewReturnInterrupt(*val)
}

func (self *Interpreter) readStatement(node ast.ReadStatement) *value.Interrupt {
	token, err := self.executor.ReadToken()
	if err == io.EOF {
		return value.NewRuntimeErr("Expected an integer, but the input has ended", value.FormatErrorKind, node.Range)
	} else if err != nil {
		return value.NewRuntimeErr(fmt.Sprintf("Could not read from the input: %s", err.Error()), value.HostErrorKind, node.Range)
	}

	number, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return value.NewRuntimeErr(fmt.Sprintf("Cannot read '%s' as an integer", token), value.FormatErrorKind, node.Range)
	}

	self.stack.Set(node.Ident, *value.NewValueInt(number))
	return nil
}

func (self *Interpreter) writeStatement(node ast.WriteStatement) *value.Interrupt {
	var output string

	// string literals are written verbatim, everything else in its display form
	if literal, isLiteral := node.Value.(ast.StringLiteralExpression); isLiteral {
		output = literal.Value
	} else {
		val, i := self.expression(node.Value)
		if i != nil {
			return i
		}
		output = (*val).Display()
	}

	if node.Newline {
		output += "\n"
	}

	if err := self.executor.Write(output); err != nil {
		return value.NewRuntimeErr(fmt.Sprintf("Could not write output: %s", err.Error()), value.HostErrorKind, node.Range)
	}
	return nil
}
