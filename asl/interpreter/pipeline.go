package interpreter

import (
	"github.com/asl-lang/asl/asl/ast"
	"github.com/asl-lang/asl/asl/interpreter/value"
)

// rowContext is the row which COLUMN expressions read from.
type rowContext struct {
	table *value.Table
	row   int64
}

// fromExpression runs the actions left to right, each one consuming the table of the previous one.
// The input table is never modified.
func (self *Interpreter) fromExpression(node ast.FromExpression) (*value.Value, *value.Interrupt) {
	tableVal, i := self.expression(node.Table)
	if i != nil {
		return nil, i
	}
	table, i := value.AsTable(*tableVal, node.Table.Span())
	if i != nil {
		return nil, i
	}

	rowPrev := self.row
	defer func() { self.row = rowPrev }()

	for _, action := range node.Actions {
		table, i = self.fromAction(table, action)
		if i != nil {
			return nil, i
		}
	}

	return value.NewValueTable(table), nil
}

func (self *Interpreter) fromAction(input *value.Table, action ast.FromAction) (*value.Table, *value.Interrupt) {
	output := input.CloneSchema()

	for rowIdx := range input.Rows {
		self.row = &rowContext{table: input, row: int64(rowIdx)}

		switch action.Kind {
		case ast.SelectFromActionKind, ast.FilterFromActionKind:
			keep, i := self.condition(action.Predicate)
			if i != nil {
				return nil, i
			}
			if action.Kind == ast.FilterFromActionKind {
				keep = !keep
			}
			if keep {
				output.AppendRowClone(input.Rows[rowIdx])
			}
		case ast.UpdateFromActionKind:
			output.AppendRowClone(input.Rows[rowIdx])

			if action.Predicate != nil {
				matches, i := self.condition(action.Predicate)
				if i != nil {
					return nil, i
				}
				if !matches {
					continue
				}
			}

			columnRef, i := self.expression(action.Column)
			if i != nil {
				return nil, i
			}
			column, i := output.ResolveColumn(*columnRef, action.Column.Span())
			if i != nil {
				return nil, i
			}

			val, i := self.expression(action.Value)
			if i != nil {
				return nil, i
			}

			if i := output.Put(int64(output.Height()-1), column, *val, action.Range); i != nil {
				return nil, i
			}
		default:
			panic("A new FROM action kind was added without updating this code")
		}
	}

	return output, nil
}

// columnExpression yields the cell of the current row in the referenced column.
func (self *Interpreter) columnExpression(node ast.ColumnExpression) (*value.Value, *value.Interrupt) {
	if self.row == nil {
		return nil, value.NewRuntimeErr(
			"COLUMN can only be used inside of a FROM action",
			value.UnsupportedOperationErrorKind,
			node.Range,
		)
	}
	row := *self.row

	ref, i := self.expression(node.Column)
	if i != nil {
		return nil, i
	}
	column, i := row.table.ResolveColumn(*ref, node.Column.Span())
	if i != nil {
		return nil, i
	}

	cell, i := row.table.Get(row.row, column, node.Range)
	if i != nil {
		return nil, i
	}
	return (*cell).Clone(), nil
}
