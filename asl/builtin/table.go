package builtin

import (
	"fmt"

	"github.com/asl-lang/asl/asl/errors"
	v "github.com/asl-lang/asl/asl/interpreter/value"
)

func CreateTable(_ v.CallContext, span errors.Span, args ...*v.Value) (*v.Value, *v.Interrupt) {
	names, i := v.AsStringList(*args[0], span)
	if i != nil {
		return nil, i
	}
	table, i := v.NewTable(names, span)
	if i != nil {
		return nil, i
	}
	return v.NewValueTable(table), nil
}

func ColumnNames(_ v.CallContext, _ errors.Span, args ...*v.Value) (*v.Value, *v.Interrupt) {
	table := (*args[0]).(v.ValueTable).Inner
	names := make([]*v.Value, 0, table.Width())
	for _, name := range table.ColumnNames() {
		names = append(names, v.NewValueString(name))
	}
	return v.NewValueList(names), nil
}

func NumRows(_ v.CallContext, _ errors.Span, args ...*v.Value) (*v.Value, *v.Interrupt) {
	return v.NewValueInt(int64((*args[0]).(v.ValueTable).Inner.Height())), nil
}

func NumColumns(_ v.CallContext, _ errors.Span, args ...*v.Value) (*v.Value, *v.Interrupt) {
	return v.NewValueInt(int64((*args[0]).(v.ValueTable).Inner.Width())), nil
}

func Length(_ v.CallContext, _ errors.Span, args ...*v.Value) (*v.Value, *v.Interrupt) {
	switch arg := (*args[0]).(type) {
	case v.ValueList:
		return v.NewValueInt(int64(arg.Len())), nil
	case v.ValueString:
		return v.NewValueInt(int64(len([]rune(arg.Inner)))), nil
	case v.ValueDict:
		return v.NewValueInt(int64(len(arg.Fields))), nil
	default:
		panic(fmt.Sprintf("Argument of type %s passed the type check of 'length'", arg.Kind()))
	}
}

// commit replaces the contents of the table behind `target` with `updated` and returns a clone of it.
// Mutating builtins operate on a copy first so that a failing call leaves its argument untouched.
func commit(target *v.Value, updated *v.Table) *v.Value {
	*(*target).(v.ValueTable).Inner = *updated
	return v.NewValueTable(updated.Clone())
}

func addRows(table *v.Table, span errors.Span, rows []*v.Value) *v.Interrupt {
	for _, row := range rows {
		dict, i := v.AsDict(*row, span)
		if i != nil {
			return i
		}
		if i := table.AddRow(dict, span); i != nil {
			return i
		}
	}
	return nil
}

func AddRowInPlace(_ v.CallContext, span errors.Span, args ...*v.Value) (*v.Value, *v.Interrupt) {
	updated := (*args[0]).(v.ValueTable).Inner.Clone()
	if i := addRows(updated, span, args[1:]); i != nil {
		return nil, i
	}
	return commit(args[0], updated), nil
}

func AddRow(_ v.CallContext, span errors.Span, args ...*v.Value) (*v.Value, *v.Interrupt) {
	updated := (*args[0]).(v.ValueTable).Inner.Clone()
	if i := addRows(updated, span, args[1:]); i != nil {
		return nil, i
	}
	return v.NewValueTable(updated), nil
}

// addColumns accepts either a list of names (untyped columns) or a dict of names to default values.
func addColumns(table *v.Table, span errors.Span, columns v.Value) *v.Interrupt {
	switch columns := columns.(type) {
	case v.ValueList:
		names, i := v.AsStringList(columns, span)
		if i != nil {
			return i
		}
		for _, name := range names {
			if i := table.AddColumn(name, nil, span); i != nil {
				return i
			}
		}
	case v.ValueDict:
		for _, name := range columns.Keys() {
			if i := table.AddColumn(name, columns.Fields[name], span); i != nil {
				return i
			}
		}
	default:
		panic(fmt.Sprintf("Argument of type %s passed the type check of 'add_column'", columns.Kind()))
	}
	return nil
}

func AddColumnInPlace(_ v.CallContext, span errors.Span, args ...*v.Value) (*v.Value, *v.Interrupt) {
	updated := (*args[0]).(v.ValueTable).Inner.Clone()
	if i := addColumns(updated, span, *args[1]); i != nil {
		return nil, i
	}
	return commit(args[0], updated), nil
}

func AddColumn(_ v.CallContext, span errors.Span, args ...*v.Value) (*v.Value, *v.Interrupt) {
	updated := (*args[0]).(v.ValueTable).Inner.Clone()
	if i := addColumns(updated, span, *args[1]); i != nil {
		return nil, i
	}
	return v.NewValueTable(updated), nil
}

// Merge appends the rows of every further table to the first one.
// All tables must have identical column lists in identical order.
func Merge(_ v.CallContext, span errors.Span, args ...*v.Value) (*v.Value, *v.Interrupt) {
	updated := (*args[0]).(v.ValueTable).Inner.Clone()

	for idx, arg := range args[1:] {
		other := (*arg).(v.ValueTable).Inner
		if !updated.SameColumns(other) {
			return nil, v.NewRuntimeErr(
				fmt.Sprintf("Cannot merge table %d: its columns %v differ from %v", idx+2, other.ColumnNames(), updated.ColumnNames()),
				v.SchemaViolationErrorKind,
				span,
			)
		}
		for _, row := range other.Rows {
			if i := updated.AddRow(v.ValueDict{Fields: row}, span); i != nil {
				return nil, i
			}
		}
	}

	return commit(args[0], updated), nil
}

// Drop removes a row (by index), a column (by name) or, without a second argument, every row.
func Drop(_ v.CallContext, span errors.Span, args ...*v.Value) (*v.Value, *v.Interrupt) {
	updated := (*args[0]).(v.ValueTable).Inner.Clone()

	if len(args) == 1 {
		updated.Clear()
		return commit(args[0], updated), nil
	}

	switch target := (*args[1]).(type) {
	case v.ValueInt:
		if i := updated.DropRow(target.Inner, span); i != nil {
			return nil, i
		}
	case v.ValueString:
		if i := updated.DropColumn(target.Inner, span); i != nil {
			return nil, i
		}
	default:
		panic(fmt.Sprintf("Argument of type %s passed the type check of 'drop'", target.Kind()))
	}

	return commit(args[0], updated), nil
}
