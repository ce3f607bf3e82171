package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableRejectsDuplicateColumns(t *testing.T) {
	_, i := NewTable([]string{"a", "a"}, testSpan)
	requireErrKind(t, i, SchemaViolationErrorKind)
}

func TestColumnTypeInference(t *testing.T) {
	table, i := NewTable([]string{"a"}, testSpan)
	require.Nil(t, i)
	assert.Equal(t, "Untyped", table.Columns[0].TypeName())

	// void does not fix the type
	require.Nil(t, table.Put(0, "a", *NewValueVoid(), testSpan))
	assert.False(t, table.Columns[0].Typed)

	require.Nil(t, table.Put(1, "a", *NewValueInt(1), testSpan))
	assert.Equal(t, "Integer", table.Columns[0].TypeName())
	assert.Equal(t, 2, table.Height())

	requireErrKind(t, table.Put(0, "a", *NewValueString("x"), testSpan), SchemaViolationErrorKind)
	// void is always accepted
	require.Nil(t, table.Put(1, "a", *NewValueVoid(), testSpan))
}

func TestPutExtendsWithVoidRows(t *testing.T) {
	table, i := NewTable([]string{"a", "b"}, testSpan)
	require.Nil(t, i)

	require.Nil(t, table.Put(3, "b", *NewValueBool(true), testSpan))
	require.Equal(t, 4, table.Height())
	for row := 0; row < 3; row++ {
		for _, column := range table.ColumnNames() {
			assert.Equal(t, VoidValueKind, (*table.Rows[row][column]).Kind())
		}
	}
	requireErrKind(t, table.Put(-1, "a", *NewValueInt(1), testSpan), IndexOutOfBoundsErrorKind)
}

func TestAddRowAndColumn(t *testing.T) {
	table, i := NewTable([]string{"a"}, testSpan)
	require.Nil(t, i)

	require.Nil(t, table.AddRow((*dict("a", NewValueInt(1))).(ValueDict), testSpan))
	require.Nil(t, table.AddRow((*dict()).(ValueDict), testSpan))
	requireErrKind(t, table.AddRow((*dict("z", NewValueInt(1))).(ValueDict), testSpan), SchemaViolationErrorKind)
	requireErrKind(t, table.AddRow((*dict("a", NewValueString("x"))).(ValueDict), testSpan), SchemaViolationErrorKind)
	assert.Equal(t, 2, table.Height())

	require.Nil(t, table.AddColumn("b", NewValueString("d"), testSpan))
	assert.Equal(t, "String", table.Columns[1].TypeName())
	assert.Equal(t, "[{'a': 1, 'b': 'd'}, {'a': Void, 'b': 'd'}]", (*NewValueTable(table)).Display())

	require.Nil(t, table.AddColumn("c", nil, testSpan))
	assert.Equal(t, "Untyped", table.Columns[2].TypeName())
	requireErrKind(t, table.AddColumn("c", nil, testSpan), SchemaViolationErrorKind)
}

func TestDropAndClear(t *testing.T) {
	table, i := NewTable([]string{"a", "b"}, testSpan)
	require.Nil(t, i)
	for row := int64(0); row < 3; row++ {
		require.Nil(t, table.Put(row, "a", *NewValueInt(row), testSpan))
	}

	require.Nil(t, table.DropRow(1, testSpan))
	assert.Equal(t, "[{'a': 0, 'b': Void}, {'a': 2, 'b': Void}]", (*NewValueTable(table)).Display())
	requireErrKind(t, table.DropRow(5, testSpan), IndexOutOfBoundsErrorKind)

	require.Nil(t, table.DropColumn("b", testSpan))
	assert.Equal(t, []string{"a"}, table.ColumnNames())
	requireErrKind(t, table.DropColumn("b", testSpan), UnknownKeyErrorKind)

	table.Clear()
	assert.Equal(t, 0, table.Height())
	assert.Equal(t, 1, table.Width())
	assert.True(t, table.Columns[0].Typed)
}

func TestTableCloneIsDeep(t *testing.T) {
	table, i := NewTable([]string{"a"}, testSpan)
	require.Nil(t, i)
	require.Nil(t, table.Put(0, "a", *list(NewValueInt(1)), testSpan))

	clone := table.Clone()
	require.True(t, table.IsEqual(clone))
	require.True(t, table.SameColumns(clone))

	require.Nil(t, Assign(NewPlace(clone.Rows[0]["a"]), *NewValueInt(1), *NewValueInt(2), testSpan))
	assert.False(t, table.IsEqual(clone))
	assert.Equal(t, "[{'a': [1]}]", (*NewValueTable(table)).Display())
}
