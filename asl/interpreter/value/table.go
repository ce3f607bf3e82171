package value

import (
	"fmt"

	"github.com/asl-lang/asl/asl/errors"
)

// Column is a named table column. A column stays untyped until the first
// non-void value is stored in it, afterwards its kind is fixed.
type Column struct {
	Name  string
	Typed bool
	Type  ValueKind
}

func (self Column) TypeName() string {
	if !self.Typed {
		return "Untyped"
	}
	return self.Type.String()
}

// Table is an ordered column schema plus an ordered sequence of rows.
// Every row holds exactly one cell per column, missing cells are void.
type Table struct {
	Columns []Column
	Rows    []map[string]*Value
}

func NewTable(names []string, span errors.Span) (*Table, *Interrupt) {
	table := &Table{
		Columns: make([]Column, 0, len(names)),
		Rows:    make([]map[string]*Value, 0),
	}
	for _, name := range names {
		if i := table.AddColumn(name, nil, span); i != nil {
			return nil, i
		}
	}
	return table, nil
}

func (self *Table) Width() int  { return len(self.Columns) }
func (self *Table) Height() int { return len(self.Rows) }

func (self *Table) ColumnNames() []string {
	names := make([]string, 0, len(self.Columns))
	for _, column := range self.Columns {
		names = append(names, column.Name)
	}
	return names
}

// ColumnIndex returns the position of the column or -1 if it does not exist.
func (self *Table) ColumnIndex(name string) int {
	for idx, column := range self.Columns {
		if column.Name == name {
			return idx
		}
	}
	return -1
}

// ColumnAt resolves a column position to its name.
func (self *Table) ColumnAt(position int64, span errors.Span) (string, *Interrupt) {
	if position < 0 || position >= int64(len(self.Columns)) {
		return "", NewRuntimeErr(
			fmt.Sprintf("Index out of bounds: column %d does not exist in a table of width %d", position, len(self.Columns)),
			IndexOutOfBoundsErrorKind,
			span,
		)
	}
	return self.Columns[position].Name, nil
}

// ResolveColumn accepts a column reference by name (String) or by position (Integer).
func (self *Table) ResolveColumn(ref Value, span errors.Span) (string, *Interrupt) {
	switch ref.Kind() {
	case StringValueKind:
		name := ref.(ValueString).Inner
		if self.ColumnIndex(name) < 0 {
			return "", self.unknownColumn(name, span)
		}
		return name, nil
	case IntValueKind:
		return self.ColumnAt(ref.(ValueInt).Inner, span)
	case VoidValueKind, BoolValueKind, ListValueKind, DictValueKind, TableValueKind:
		return "", NewRuntimeErr(
			fmt.Sprintf("A column is referenced by String or Integer, found %s", ref.Kind()),
			TypeMismatchErrorKind,
			span,
		)
	default:
		panic("A new ValueKind was introduced without updating this code")
	}
}

func (self *Table) unknownColumn(name string, span errors.Span) *Interrupt {
	return NewRuntimeErr(
		fmt.Sprintf("Column '%s' does not exist", name),
		UnknownKeyErrorKind,
		span,
	)
}

func (self *Table) checkRow(row int64, span errors.Span) *Interrupt {
	if row < 0 || row >= int64(len(self.Rows)) {
		return NewRuntimeErr(
			fmt.Sprintf("Index out of bounds: cannot access row %d of a table of height %d", row, len(self.Rows)),
			IndexOutOfBoundsErrorKind,
			span,
		)
	}
	return nil
}

// Row returns a live view of the row, its cells alias the table storage.
func (self *Table) Row(row int64, span errors.Span) (*Value, *Interrupt) {
	if i := self.checkRow(row, span); i != nil {
		return nil, i
	}
	return NewValueDict(self.Rows[row]), nil
}

// Get returns the live cell at the given row and column.
func (self *Table) Get(row int64, column string, span errors.Span) (*Value, *Interrupt) {
	if i := self.checkRow(row, span); i != nil {
		return nil, i
	}
	if self.ColumnIndex(column) < 0 {
		return nil, self.unknownColumn(column, span)
	}
	return self.Rows[row][column], nil
}

// Put is the typed cell write. Writing past the current height appends void rows up to the given row.
func (self *Table) Put(row int64, column string, val Value, span errors.Span) *Interrupt {
	if row < 0 {
		return NewRuntimeErr(
			fmt.Sprintf("Index out of bounds: cannot write to row %d", row),
			IndexOutOfBoundsErrorKind,
			span,
		)
	}

	colIdx := self.ColumnIndex(column)
	if colIdx < 0 {
		return self.unknownColumn(column, span)
	}

	if i := self.checkColumnType(colIdx, val, span); i != nil {
		return i
	}

	for int64(len(self.Rows)) <= row {
		self.appendVoidRow()
	}

	self.fixColumnType(colIdx, val)
	self.Rows[row][column] = val.Clone()
	return nil
}

func (self *Table) checkColumnType(colIdx int, val Value, span errors.Span) *Interrupt {
	column := self.Columns[colIdx]
	if val.Kind() == VoidValueKind || !column.Typed || column.Type == val.Kind() {
		return nil
	}
	return NewRuntimeErr(
		fmt.Sprintf("Column '%s' holds values of type %s, cannot store a value of type %s", column.Name, column.Type, val.Kind()),
		SchemaViolationErrorKind,
		span,
	)
}

func (self *Table) fixColumnType(colIdx int, val Value) {
	if val.Kind() == VoidValueKind || self.Columns[colIdx].Typed {
		return
	}
	self.Columns[colIdx].Typed = true
	self.Columns[colIdx].Type = val.Kind()
}

func (self *Table) appendVoidRow() {
	row := make(map[string]*Value, len(self.Columns))
	for _, column := range self.Columns {
		row[column.Name] = NewValueVoid()
	}
	self.Rows = append(self.Rows, row)
}

// AddRow appends a row, every key of the given dict must already be a column.
func (self *Table) AddRow(row ValueDict, span errors.Span) *Interrupt {
	for _, key := range row.Keys() {
		colIdx := self.ColumnIndex(key)
		if colIdx < 0 {
			return NewRuntimeErr(
				fmt.Sprintf("Cannot add a row with key '%s': the table has no such column", key),
				SchemaViolationErrorKind,
				span,
			)
		}
		if i := self.checkColumnType(colIdx, *row.Fields[key], span); i != nil {
			return i
		}
	}

	rowIdx := int64(len(self.Rows))
	self.appendVoidRow()
	for _, key := range row.Keys() {
		if i := self.Put(rowIdx, key, *row.Fields[key], span); i != nil {
			return i
		}
	}
	return nil
}

// AddColumn appends a column. A nil default leaves the column untyped and fills it with void.
func (self *Table) AddColumn(name string, defaultValue *Value, span errors.Span) *Interrupt {
	if self.ColumnIndex(name) >= 0 {
		return NewRuntimeErr(
			fmt.Sprintf("Column '%s' already exists", name),
			SchemaViolationErrorKind,
			span,
		)
	}

	fill := NewValueVoid()
	if defaultValue != nil {
		fill = defaultValue
	}

	self.Columns = append(self.Columns, Column{Name: name})
	self.fixColumnType(len(self.Columns)-1, *fill)

	for _, row := range self.Rows {
		row[name] = (*fill).Clone()
	}
	return nil
}

func (self *Table) DropRow(row int64, span errors.Span) *Interrupt {
	if i := self.checkRow(row, span); i != nil {
		return i
	}
	self.Rows = append(self.Rows[:row], self.Rows[row+1:]...)
	return nil
}

func (self *Table) DropColumn(name string, span errors.Span) *Interrupt {
	colIdx := self.ColumnIndex(name)
	if colIdx < 0 {
		return self.unknownColumn(name, span)
	}
	self.Columns = append(self.Columns[:colIdx], self.Columns[colIdx+1:]...)
	for _, row := range self.Rows {
		delete(row, name)
	}
	return nil
}

// Clear removes all rows while preserving the schema.
func (self *Table) Clear() {
	self.Rows = make([]map[string]*Value, 0)
}

// SameColumns reports whether both tables have identical column lists in identical order.
func (self *Table) SameColumns(other *Table) bool {
	if len(self.Columns) != len(other.Columns) {
		return false
	}
	for idx, column := range self.Columns {
		if other.Columns[idx].Name != column.Name {
			return false
		}
	}
	return true
}

func (self *Table) IsEqual(other *Table) bool {
	if len(self.Columns) != len(other.Columns) || len(self.Rows) != len(other.Rows) {
		return false
	}
	for idx, column := range self.Columns {
		if other.Columns[idx] != column {
			return false
		}
	}
	for rowIdx, row := range self.Rows {
		otherRow := other.Rows[rowIdx]
		for _, column := range self.Columns {
			if !(*row[column.Name]).IsEqual(*otherRow[column.Name]) {
				return false
			}
		}
	}
	return true
}

// CloneSchema returns an empty table with the same columns and column types.
func (self *Table) CloneSchema() *Table {
	columns := make([]Column, len(self.Columns))
	copy(columns, self.Columns)
	return &Table{
		Columns: columns,
		Rows:    make([]map[string]*Value, 0),
	}
}

// AppendRowClone copies a row of another table with the same schema.
func (self *Table) AppendRowClone(row map[string]*Value) {
	clone := make(map[string]*Value, len(self.Columns))
	for _, column := range self.Columns {
		cell, found := row[column.Name]
		if !found {
			clone[column.Name] = NewValueVoid()
			continue
		}
		clone[column.Name] = (*cell).Clone()
	}
	self.Rows = append(self.Rows, clone)
}

func (self *Table) Clone() *Table {
	clone := self.CloneSchema()
	for _, row := range self.Rows {
		clone.AppendRowClone(row)
	}
	return clone
}
