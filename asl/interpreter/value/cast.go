package value

import (
	"fmt"

	"github.com/asl-lang/asl/asl/errors"
)

func typeMismatch(expected ValueKind, val Value, span errors.Span) *Interrupt {
	return NewRuntimeErr(
		fmt.Sprintf("Expected a value of type %s, found %s", expected, val.Kind()),
		TypeMismatchErrorKind,
		span,
	)
}

func AsBool(val Value, span errors.Span) (bool, *Interrupt) {
	if val.Kind() != BoolValueKind {
		return false, typeMismatch(BoolValueKind, val, span)
	}
	return val.(ValueBool).Inner, nil
}

func AsInt(val Value, span errors.Span) (int64, *Interrupt) {
	if val.Kind() != IntValueKind {
		return 0, typeMismatch(IntValueKind, val, span)
	}
	return val.(ValueInt).Inner, nil
}

func AsString(val Value, span errors.Span) (string, *Interrupt) {
	if val.Kind() != StringValueKind {
		return "", typeMismatch(StringValueKind, val, span)
	}
	return val.(ValueString).Inner, nil
}

func AsList(val Value, span errors.Span) (ValueList, *Interrupt) {
	if val.Kind() != ListValueKind {
		return ValueList{}, typeMismatch(ListValueKind, val, span)
	}
	return val.(ValueList), nil
}

func AsDict(val Value, span errors.Span) (ValueDict, *Interrupt) {
	if val.Kind() != DictValueKind {
		return ValueDict{}, typeMismatch(DictValueKind, val, span)
	}
	return val.(ValueDict), nil
}

func AsTable(val Value, span errors.Span) (*Table, *Interrupt) {
	if val.Kind() != TableValueKind {
		return nil, typeMismatch(TableValueKind, val, span)
	}
	return val.(ValueTable).Inner, nil
}

// AsStringList converts a list of strings, such as a list of column names.
func AsStringList(val Value, span errors.Span) ([]string, *Interrupt) {
	list, i := AsList(val, span)
	if i != nil {
		return nil, i
	}
	out := make([]string, 0, list.Len())
	for _, item := range *list.Values {
		str, i := AsString(*item, span)
		if i != nil {
			return nil, i
		}
		out = append(out, str)
	}
	return out, nil
}
