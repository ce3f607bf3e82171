package builtin

import (
	v "github.com/asl-lang/asl/asl/interpreter/value"
)

const maxVariadicArgs = 10

var (
	anyTable   = v.ArgSpec{v.TableValueKind}
	anyList    = v.ArgSpec{v.ListValueKind}
	anyDict    = v.ArgSpec{v.DictValueKind}
	anyString  = v.ArgSpec{v.StringValueKind}
	anyInt     = v.ArgSpec{v.IntValueKind}
	sized      = v.ArgSpec{v.ListValueKind, v.StringValueKind, v.DictValueKind}
	sortable   = v.ArgSpec{v.TableValueKind, v.ListValueKind}
	newColumns = v.ArgSpec{v.ListValueKind, v.DictValueKind}
	rowOrCol   = v.ArgSpec{v.IntValueKind, v.StringValueKind}
)

// NewRegistry returns a registry which contains every builtin function.
func NewRegistry() v.Registry {
	return v.NewRegistry(
		v.Builtin{Name: "read_file", MinArgs: 1, MaxArgs: 1, Args: []v.ArgSpec{anyString}, Callback: ReadFile},
		v.Builtin{Name: "write_file", MinArgs: 2, MaxArgs: 2, Args: []v.ArgSpec{anyTable, anyString}, Callback: WriteFile},
		v.Builtin{Name: "create_table", MinArgs: 1, MaxArgs: 1, Args: []v.ArgSpec{anyList}, Callback: CreateTable},
		v.Builtin{Name: "column_names", MinArgs: 1, MaxArgs: 1, Args: []v.ArgSpec{anyTable}, Callback: ColumnNames},
		v.Builtin{Name: "num_rows", MinArgs: 1, MaxArgs: 1, Args: []v.ArgSpec{anyTable}, Callback: NumRows},
		v.Builtin{Name: "num_columns", MinArgs: 1, MaxArgs: 1, Args: []v.ArgSpec{anyTable}, Callback: NumColumns},
		v.Builtin{Name: "length", MinArgs: 1, MaxArgs: 1, Args: []v.ArgSpec{sized}, Callback: Length},
		v.Builtin{Name: "add_row!", MinArgs: 1, MaxArgs: maxVariadicArgs, Args: []v.ArgSpec{anyTable, anyDict}, MutatesFirst: true, Callback: AddRowInPlace},
		v.Builtin{Name: "add_row", MinArgs: 1, MaxArgs: maxVariadicArgs, Args: []v.ArgSpec{anyTable, anyDict}, Callback: AddRow},
		v.Builtin{Name: "add_column!", MinArgs: 2, MaxArgs: 2, Args: []v.ArgSpec{anyTable, newColumns}, MutatesFirst: true, Callback: AddColumnInPlace},
		v.Builtin{Name: "add_column", MinArgs: 2, MaxArgs: 2, Args: []v.ArgSpec{anyTable, newColumns}, Callback: AddColumn},
		v.Builtin{Name: "sample", MinArgs: 2, MaxArgs: 2, Args: []v.ArgSpec{anyInt, anyTable}, Callback: Sample},
		v.Builtin{Name: "sort", MinArgs: 1, MaxArgs: 1, Args: []v.ArgSpec{sortable}, Callback: Sort},
		v.Builtin{Name: "merge", MinArgs: 1, MaxArgs: maxVariadicArgs, Args: []v.ArgSpec{anyTable}, MutatesFirst: true, Callback: Merge},
		v.Builtin{Name: "drop", MinArgs: 1, MaxArgs: 2, Args: []v.ArgSpec{anyTable, rowOrCol}, MutatesFirst: true, Callback: Drop},
		v.Builtin{Name: "source", MinArgs: 1, MaxArgs: 1, Args: []v.ArgSpec{anyString}, Callback: Source},
	)
}
