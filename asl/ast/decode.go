package ast

import (
	"fmt"
	"strconv"

	"github.com/asl-lang/asl/asl/errors"
	"gopkg.in/yaml.v3"
)

// Node kinds as they appear in serialized syntax trees.
const (
	nodeAssign   = "ASSIGN"
	nodeIf       = "IF"
	nodeWhile    = "WHILE"
	nodeReturn   = "RETURN"
	nodeRead     = "READ"
	nodeWrite    = "WRITE"
	nodeWriteln  = "WRITELN"
	nodeFuncall  = "FUNCALL"
	nodeBlock    = "BLOCK"
	nodeId       = "ID"
	nodeInt      = "INT"
	nodeString   = "STRING"
	nodeBoolean  = "BOOLEAN"
	nodeList     = "LIST"
	nodeDict     = "DICT"
	nodeAccess   = "ACCESS"
	nodeFrom     = "FROM"
	nodeSelect   = "SELECT"
	nodeFilter   = "FILTER"
	nodeUpdate   = "UPDATE"
	nodeColumn   = "COLUMN"
	nodeNot      = "NOT"
	nodePlus     = "PLUS"
	nodeMinus    = "MINUS"
	nodeMul      = "MUL"
	nodeDiv      = "DIV"
	nodeMod      = "MOD"
	nodeEqual    = "EQUAL"
	nodeNotEqual = "NOT_EQUAL"
	nodeLt       = "LT"
	nodeLe       = "LE"
	nodeGt       = "GT"
	nodeGe       = "GE"
	nodeAnd      = "AND"
	nodeOr       = "OR"
)

var infixOperators = map[string]InfixOperator{
	nodePlus:     PlusInfixOperator,
	nodeMinus:    MinusInfixOperator,
	nodeMul:      MultiplyInfixOperator,
	nodeDiv:      DivideInfixOperator,
	nodeMod:      ModuloInfixOperator,
	nodeEqual:    EqualInfixOperator,
	nodeNotEqual: NotEqualInfixOperator,
	nodeLt:       LessThanInfixOperator,
	nodeLe:       LessThanEqualInfixOperator,
	nodeGt:       GreaterThanInfixOperator,
	nodeGe:       GreaterThanEqualInfixOperator,
	nodeAnd:      LogicalAndInfixOperator,
	nodeOr:       LogicalOrInfixOperator,
}

type rawProgram struct {
	Functions []rawFunction `yaml:"functions"`
}

type rawFunction struct {
	Name   string     `yaml:"name"`
	Line   uint       `yaml:"line"`
	Column uint       `yaml:"column"`
	Params []rawParam `yaml:"params"`
	Body   []rawNode  `yaml:"body"`
}

type rawParam struct {
	Name string `yaml:"name"`
	Ref  bool   `yaml:"ref"`
	Line uint   `yaml:"line"`
}

type rawNode struct {
	Kind     string    `yaml:"kind"`
	Line     uint      `yaml:"line"`
	Column   uint      `yaml:"column"`
	Text     string    `yaml:"text"`
	Value    string    `yaml:"value"`
	Children []rawNode `yaml:"children"`
}

type decoder struct {
	filename string
}

// Decode turns a serialized syntax tree into a program.
func Decode(data []byte, filename string) (Program, *errors.Error) {
	var raw rawProgram
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Program{}, errors.NewError(
			errors.NewLineSpan(filename, 0, 0),
			fmt.Sprintf("Malformed syntax tree: %s", err.Error()),
			errors.SyntaxError,
		)
	}

	d := decoder{filename: filename}
	program := Program{
		Filename:  filename,
		Functions: make([]FunctionDefinition, 0, len(raw.Functions)),
	}

	seen := make(map[string]bool)
	for _, fn := range raw.Functions {
		span := d.span(fn.Line, fn.Column)
		if fn.Name == "" {
			return Program{}, errors.NewError(span, "Function definition without a name", errors.SyntaxError)
		}
		if seen[fn.Name] {
			return Program{}, errors.NewError(
				span,
				fmt.Sprintf("Multiple definitions of function '%s'", fn.Name),
				errors.ReferenceError,
			)
		}
		seen[fn.Name] = true

		params := make([]Parameter, 0, len(fn.Params))
		for _, param := range fn.Params {
			mode := ByValue
			if param.Ref {
				mode = ByReference
			}
			params = append(params, Parameter{
				Ident: param.Name,
				Mode:  mode,
				Range: d.span(param.Line, 0),
			})
		}

		body, err := d.statements(fn.Body, span)
		if err != nil {
			return Program{}, err
		}

		program.Functions = append(program.Functions, FunctionDefinition{
			Ident:  fn.Name,
			Params: params,
			Body:   body,
			Range:  span,
		})
	}

	return program, nil
}

func (self decoder) span(line uint, column uint) errors.Span {
	return errors.NewLineSpan(self.filename, line, column)
}

func (self decoder) errorf(node rawNode, format string, args ...any) *errors.Error {
	return errors.NewError(self.span(node.Line, node.Column), fmt.Sprintf(format, args...), errors.SyntaxError)
}

func (self decoder) expectChildren(node rawNode, min int, max int) *errors.Error {
	if len(node.Children) < min || (max >= 0 && len(node.Children) > max) {
		return self.errorf(node, "Node %s has %d children", node.Kind, len(node.Children))
	}
	return nil
}

func (self decoder) statements(nodes []rawNode, span errors.Span) (Block, *errors.Error) {
	block := Block{
		Statements: make([]Statement, 0, len(nodes)),
		Range:      span,
	}
	for _, node := range nodes {
		stmt, err := self.statement(node)
		if err != nil {
			return Block{}, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	return block, nil
}

func (self decoder) block(node rawNode) (Block, *errors.Error) {
	if node.Kind != nodeBlock {
		return Block{}, self.errorf(node, "Expected %s, found %s", nodeBlock, node.Kind)
	}
	return self.statements(node.Children, self.span(node.Line, node.Column))
}

func (self decoder) statement(node rawNode) (Statement, *errors.Error) {
	span := self.span(node.Line, node.Column)

	switch node.Kind {
	case nodeAssign:
		if err := self.expectChildren(node, 2, 2); err != nil {
			return nil, err
		}
		lhsNode := node.Children[0]
		if lhsNode.Kind != nodeId && lhsNode.Kind != nodeAccess {
			return nil, self.errorf(lhsNode, "Cannot assign to %s", lhsNode.Kind)
		}
		lhs, err := self.expression(lhsNode)
		if err != nil {
			return nil, err
		}
		rhs, err := self.expression(node.Children[1])
		if err != nil {
			return nil, err
		}
		return AssignStatement{Lhs: lhs, Rhs: rhs, Range: span}, nil
	case nodeIf:
		if err := self.expectChildren(node, 2, 3); err != nil {
			return nil, err
		}
		condition, err := self.expression(node.Children[0])
		if err != nil {
			return nil, err
		}
		thenBlock, err := self.block(node.Children[1])
		if err != nil {
			return nil, err
		}
		stmt := IfStatement{Condition: condition, ThenBlock: thenBlock, Range: span}
		if len(node.Children) == 3 {
			elseBlock, err := self.block(node.Children[2])
			if err != nil {
				return nil, err
			}
			stmt.ElseBlock = &elseBlock
		}
		return stmt, nil
	case nodeWhile:
		if err := self.expectChildren(node, 2, 2); err != nil {
			return nil, err
		}
		condition, err := self.expression(node.Children[0])
		if err != nil {
			return nil, err
		}
		body, err := self.block(node.Children[1])
		if err != nil {
			return nil, err
		}
		return WhileStatement{Condition: condition, Body: body, Range: span}, nil
	case nodeReturn:
		if err := self.expectChildren(node, 0, 1); err != nil {
			return nil, err
		}
		stmt := ReturnStatement{Range: span}
		if len(node.Children) == 1 {
			val, err := self.expression(node.Children[0])
			if err != nil {
				return nil, err
			}
			stmt.Value = val
		}
		return stmt, nil
	case nodeRead:
		if err := self.expectChildren(node, 1, 1); err != nil {
			return nil, err
		}
		target := node.Children[0]
		if target.Kind != nodeId || target.Text == "" {
			return nil, self.errorf(target, "The target of a read must be a variable")
		}
		return ReadStatement{Ident: target.Text, Range: span}, nil
	case nodeWrite, nodeWriteln:
		if err := self.expectChildren(node, 1, 1); err != nil {
			return nil, err
		}
		val, err := self.expression(node.Children[0])
		if err != nil {
			return nil, err
		}
		return WriteStatement{Value: val, Newline: node.Kind == nodeWriteln, Range: span}, nil
	case nodeFuncall:
		call, err := self.call(node)
		if err != nil {
			return nil, err
		}
		return CallStatement{Call: call, Range: span}, nil
	default:
		return nil, self.errorf(node, "Unknown statement kind '%s'", node.Kind)
	}
}

func (self decoder) call(node rawNode) (CallExpression, *errors.Error) {
	if node.Text == "" {
		return CallExpression{}, self.errorf(node, "Function call without a function name")
	}
	args, err := self.expressions(node.Children)
	if err != nil {
		return CallExpression{}, err
	}
	return CallExpression{
		Ident:     node.Text,
		Arguments: args,
		Range:     self.span(node.Line, node.Column),
	}, nil
}

func (self decoder) expressions(nodes []rawNode) ([]Expression, *errors.Error) {
	out := make([]Expression, 0, len(nodes))
	for _, node := range nodes {
		expr, err := self.expression(node)
		if err != nil {
			return nil, err
		}
		out = append(out, expr)
	}
	return out, nil
}

func (self decoder) expression(node rawNode) (Expression, *errors.Error) {
	span := self.span(node.Line, node.Column)

	switch node.Kind {
	case nodeInt:
		val, err := strconv.ParseInt(node.Value, 10, 64)
		if err != nil {
			return nil, self.errorf(node, "Invalid integer literal '%s'", node.Value)
		}
		return IntLiteralExpression{Value: val, Range: span}, nil
	case nodeBoolean:
		switch node.Value {
		case "true":
			return BoolLiteralExpression{Value: true, Range: span}, nil
		case "false":
			return BoolLiteralExpression{Value: false, Range: span}, nil
		}
		return nil, self.errorf(node, "Invalid boolean literal '%s'", node.Value)
	case nodeString:
		return StringLiteralExpression{Value: node.Value, Range: span}, nil
	case nodeId:
		if node.Text == "" {
			return nil, self.errorf(node, "Identifier without a name")
		}
		return IdentExpression{Ident: node.Text, Range: span}, nil
	case nodeList:
		values, err := self.expressions(node.Children)
		if err != nil {
			return nil, err
		}
		return ListLiteralExpression{Values: values, Range: span}, nil
	case nodeDict:
		if len(node.Children)%2 != 0 {
			return nil, self.errorf(node, "Dictionary literal with an odd number of children")
		}
		entries := make([]DictEntry, 0, len(node.Children)/2)
		for idx := 0; idx < len(node.Children); idx += 2 {
			key, err := self.expression(node.Children[idx])
			if err != nil {
				return nil, err
			}
			val, err := self.expression(node.Children[idx+1])
			if err != nil {
				return nil, err
			}
			entries = append(entries, DictEntry{Key: key, Value: val})
		}
		return DictLiteralExpression{Entries: entries, Range: span}, nil
	case nodeAccess:
		if err := self.expectChildren(node, 2, -1); err != nil {
			return nil, err
		}
		baseNode := node.Children[0]
		if baseNode.Kind != nodeId || baseNode.Text == "" {
			return nil, self.errorf(baseNode, "Only variables can be indexed")
		}
		indices, err := self.expressions(node.Children[1:])
		if err != nil {
			return nil, err
		}
		return AccessExpression{
			Base:    IdentExpression{Ident: baseNode.Text, Range: self.span(baseNode.Line, baseNode.Column)},
			Indices: indices,
			Range:   span,
		}, nil
	case nodeFrom:
		return self.from(node)
	case nodeColumn:
		if err := self.expectChildren(node, 1, 1); err != nil {
			return nil, err
		}
		column, err := self.expression(node.Children[0])
		if err != nil {
			return nil, err
		}
		return ColumnExpression{Column: column, Range: span}, nil
	case nodeFuncall:
		return self.call(node)
	case nodeNot:
		if err := self.expectChildren(node, 1, 1); err != nil {
			return nil, err
		}
		base, err := self.expression(node.Children[0])
		if err != nil {
			return nil, err
		}
		return PrefixExpression{Operator: NotPrefixOperator, Base: base, Range: span}, nil
	}

	operator, isInfix := infixOperators[node.Kind]
	if !isInfix {
		return nil, self.errorf(node, "Unknown expression kind '%s'", node.Kind)
	}

	// `+x` and `-x` share their node kind with the binary operators
	if len(node.Children) == 1 && (node.Kind == nodePlus || node.Kind == nodeMinus) {
		base, err := self.expression(node.Children[0])
		if err != nil {
			return nil, err
		}
		prefix := PlusPrefixOperator
		if node.Kind == nodeMinus {
			prefix = MinusPrefixOperator
		}
		return PrefixExpression{Operator: prefix, Base: base, Range: span}, nil
	}

	if err := self.expectChildren(node, 2, 2); err != nil {
		return nil, err
	}
	lhs, err := self.expression(node.Children[0])
	if err != nil {
		return nil, err
	}
	rhs, err := self.expression(node.Children[1])
	if err != nil {
		return nil, err
	}
	return InfixExpression{Operator: operator, Lhs: lhs, Rhs: rhs, Range: span}, nil
}

func (self decoder) from(node rawNode) (Expression, *errors.Error) {
	if err := self.expectChildren(node, 1, -1); err != nil {
		return nil, err
	}
	table, err := self.expression(node.Children[0])
	if err != nil {
		return nil, err
	}

	actions := make([]FromAction, 0, len(node.Children)-1)
	for _, actionNode := range node.Children[1:] {
		action := FromAction{Range: self.span(actionNode.Line, actionNode.Column)}

		switch actionNode.Kind {
		case nodeSelect, nodeFilter:
			if err := self.expectChildren(actionNode, 1, 1); err != nil {
				return nil, err
			}
			action.Kind = SelectFromActionKind
			if actionNode.Kind == nodeFilter {
				action.Kind = FilterFromActionKind
			}
			predicate, err := self.expression(actionNode.Children[0])
			if err != nil {
				return nil, err
			}
			action.Predicate = predicate
		case nodeUpdate:
			if err := self.expectChildren(actionNode, 2, 3); err != nil {
				return nil, err
			}
			action.Kind = UpdateFromActionKind
			column, err := self.expression(actionNode.Children[0])
			if err != nil {
				return nil, err
			}
			action.Column = column

			valueNode := actionNode.Children[1]
			if len(actionNode.Children) == 3 {
				predicate, err := self.expression(actionNode.Children[1])
				if err != nil {
					return nil, err
				}
				action.Predicate = predicate
				valueNode = actionNode.Children[2]
			}

			val, err := self.expression(valueNode)
			if err != nil {
				return nil, err
			}
			action.Value = val
		default:
			return nil, self.errorf(actionNode, "Unknown FROM action '%s'", actionNode.Kind)
		}

		actions = append(actions, action)
	}

	return FromExpression{Table: table, Actions: actions, Range: self.span(node.Line, node.Column)}, nil
}
