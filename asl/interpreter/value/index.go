package value

import (
	"fmt"

	"github.com/asl-lang/asl/asl/errors"
)

// Place is a live location reachable from a variable.
// A place which is a table row remembers its table so that column positions
// resolve and cell writes go through the typed table write.
type Place struct {
	// Nil for a row which does not exist yet (one past the height of the table)
	Value *Value
	Table *Table
	Row   int64
}

func NewPlace(val *Value) Place {
	return Place{Value: val}
}

func (self Place) isRow() bool { return self.Table != nil }

func notIndexable(val Value, span errors.Span) *Interrupt {
	return NewRuntimeErr(
		fmt.Sprintf("A value of type %s cannot be indexed", val.Kind()),
		TypeMismatchErrorKind,
		span,
	)
}

func listIndexOutOfBounds(idx int64, length int, span errors.Span) *Interrupt {
	return NewRuntimeErr(
		fmt.Sprintf("Index out of bounds: index is %d, but the length is %d", idx, length),
		IndexOutOfBoundsErrorKind,
		span,
	)
}

// Index performs one level of indexed read. The result aliases the container.
func Index(place Place, idxVal Value, span errors.Span) (Place, *Interrupt) {
	return index(place, idxVal, false, span)
}

// IndexForWrite is like Index, except that a table may be addressed one row past its height.
// Such a row is materialized by the final cell write.
func IndexForWrite(place Place, idxVal Value, span errors.Span) (Place, *Interrupt) {
	return index(place, idxVal, true, span)
}

func index(place Place, idxVal Value, write bool, span errors.Span) (Place, *Interrupt) {
	if place.isRow() {
		column, i := place.Table.ResolveColumn(idxVal, span)
		if i != nil {
			return Place{}, i
		}
		cell, i := place.Table.Get(place.Row, column, span)
		if i != nil {
			return Place{}, i
		}
		return NewPlace(cell), nil
	}

	container := *place.Value

	switch container.Kind() {
	case ListValueKind:
		list := container.(ValueList)
		idx, i := AsInt(idxVal, span)
		if i != nil {
			return Place{}, i
		}
		if idx < 0 || idx >= int64(list.Len()) {
			return Place{}, listIndexOutOfBounds(idx, list.Len(), span)
		}
		return NewPlace((*list.Values)[idx]), nil
	case DictValueKind:
		dict := container.(ValueDict)
		key, i := AsString(idxVal, span)
		if i != nil {
			return Place{}, i
		}
		val, found := dict.Fields[key]
		if !found {
			return Place{}, NewRuntimeErr(
				fmt.Sprintf("Key '%s' does not exist", key),
				UnknownKeyErrorKind,
				span,
			)
		}
		return NewPlace(val), nil
	case TableValueKind:
		table := container.(ValueTable).Inner
		row, i := AsInt(idxVal, span)
		if i != nil {
			return Place{}, i
		}
		if write && row == int64(table.Height()) {
			return Place{Table: table, Row: row}, nil
		}
		rowVal, i := table.Row(row, span)
		if i != nil {
			return Place{}, i
		}
		return Place{Value: rowVal, Table: table, Row: row}, nil
	case VoidValueKind, BoolValueKind, IntValueKind, StringValueKind:
		return Place{}, notIndexable(container, span)
	default:
		panic("A new ValueKind was introduced without updating this code")
	}
}

// Assign performs the final step of an address-and-assign chain: `place[index] = val`.
func Assign(place Place, idxVal Value, val Value, span errors.Span) *Interrupt {
	if place.isRow() {
		column, i := place.Table.ResolveColumn(idxVal, span)
		if i != nil {
			return i
		}
		return place.Table.Put(place.Row, column, val, span)
	}

	container := *place.Value

	switch container.Kind() {
	case ListValueKind:
		list := container.(ValueList)
		idx, i := AsInt(idxVal, span)
		if i != nil {
			return i
		}
		if idx == int64(list.Len()) {
			*list.Values = append(*list.Values, val.Clone())
			return nil
		}
		if idx < 0 || idx > int64(list.Len()) {
			return listIndexOutOfBounds(idx, list.Len(), span)
		}
		return SetValue((*list.Values)[idx], val, span)
	case DictValueKind:
		dict := container.(ValueDict)
		key, i := AsString(idxVal, span)
		if i != nil {
			return i
		}
		existing, found := dict.Fields[key]
		if !found {
			dict.Fields[key] = val.Clone()
			return nil
		}
		return SetValue(existing, val, span)
	case TableValueKind:
		return NewRuntimeErr(
			"Cannot replace an entire row of a table, rows are updated cell by cell",
			UnsupportedOperationErrorKind,
			span,
		)
	case VoidValueKind, BoolValueKind, IntValueKind, StringValueKind:
		return notIndexable(container, span)
	default:
		panic("A new ValueKind was introduced without updating this code")
	}
}
