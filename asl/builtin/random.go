package builtin

import (
	"fmt"

	"github.com/asl-lang/asl/asl/errors"
	v "github.com/asl-lang/asl/asl/interpreter/value"
)

// Sample returns `n` distinct rows of the table, chosen and ordered at random.
func Sample(ctx v.CallContext, span errors.Span, args ...*v.Value) (*v.Value, *v.Interrupt) {
	n := (*args[0]).(v.ValueInt).Inner
	table := (*args[1]).(v.ValueTable).Inner

	if n < 0 || n > int64(table.Height()) {
		return nil, v.NewRuntimeErr(
			fmt.Sprintf("Cannot sample %d rows from a table of height %d", n, table.Height()),
			v.IndexOutOfBoundsErrorKind,
			span,
		)
	}

	out := table.CloneSchema()
	for _, rowIdx := range ctx.Rand().Perm(table.Height())[:n] {
		out.AppendRowClone(table.Rows[rowIdx])
	}
	return v.NewValueTable(out), nil
}

// Sort returns a randomly permuted copy of a table or a list.
// Despite its name, it does not order anything.
func Sort(ctx v.CallContext, _ errors.Span, args ...*v.Value) (*v.Value, *v.Interrupt) {
	switch arg := (*args[0]).(type) {
	case v.ValueTable:
		out := arg.Inner.Clone()
		ctx.Rand().Shuffle(len(out.Rows), func(i, j int) {
			out.Rows[i], out.Rows[j] = out.Rows[j], out.Rows[i]
		})
		return v.NewValueTable(out), nil
	case v.ValueList:
		out := arg.Clone()
		values := *(*out).(v.ValueList).Values
		ctx.Rand().Shuffle(len(values), func(i, j int) {
			values[i], values[j] = values[j], values[i]
		})
		return out, nil
	default:
		panic(fmt.Sprintf("Argument of type %s passed the type check of 'sort'", arg.Kind()))
	}
}
