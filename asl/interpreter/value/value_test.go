package value

import (
	"fmt"
	"math"
	"testing"

	"github.com/asl-lang/asl/asl/ast"
	"github.com/asl-lang/asl/asl/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSpan = errors.NewLineSpan("test.yaml", 1, 1)

func list(values ...*Value) *Value { return NewValueList(values) }

func dict(kv ...any) *Value {
	fields := make(map[string]*Value)
	for idx := 0; idx < len(kv); idx += 2 {
		fields[kv[idx].(string)] = kv[idx+1].(*Value)
	}
	return NewValueDict(fields)
}

func requireErrKind(t *testing.T, i *Interrupt, kind RuntimeErrorKind) {
	t.Helper()
	require.NotNil(t, i, "expected a %s error", kind)
	actual, isErr := ErrKindOf(i)
	require.True(t, isErr)
	assert.Equal(t, kind.String(), actual.String(), (*i).Message())
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		Value    *Value
		Expected string
	}{
		{Value: NewValueVoid(), Expected: "Void"},
		{Value: NewValueBool(true), Expected: "true"},
		{Value: NewValueInt(-42), Expected: "-42"},
		{Value: NewValueString("a b"), Expected: "'a b'"},
		{Value: list(NewValueInt(1), NewValueString("x")), Expected: "[1, 'x']"},
		{Value: dict("b", NewValueInt(2), "a", NewValueInt(1)), Expected: "{'a': 1, 'b': 2}"},
	}

	for idx, test := range tests {
		t.Run(fmt.Sprintf("%d-%s", idx, (*test.Value).Kind()), func(t *testing.T) {
			assert.Equal(t, test.Expected, (*test.Value).Display())
		})
	}
}

func TestCloneNeverAliases(t *testing.T) {
	original := list(list(NewValueInt(1)), dict("k", list(NewValueInt(2))))
	clone := (*original).Clone()

	require.True(t, (*original).IsEqual(*clone), spew.Sdump(original, clone))

	// mutate the inner list of the clone
	inner := (*(*clone).(ValueList).Values)[0]
	require.Nil(t, Assign(NewPlace(inner), *NewValueInt(1), *NewValueInt(7), testSpan))

	assert.False(t, (*original).IsEqual(*clone))
	assert.Equal(t, "[[1], {'k': [2]}]", (*original).Display())
	assert.Equal(t, "[[1, 7], {'k': [2]}]", (*clone).Display())
}

func TestEqualityAcrossKinds(t *testing.T) {
	values := []*Value{
		NewValueVoid(),
		NewValueBool(false),
		NewValueInt(0),
		NewValueString(""),
		list(),
		dict(),
	}

	for lhsIdx, lhs := range values {
		for rhsIdx, rhs := range values {
			equal, i := EvaluateRelational(ast.EqualInfixOperator, *lhs, *rhs, testSpan)
			require.Nil(t, i)
			assert.Equal(t, lhsIdx == rhsIdx, equal, "%s == %s", (*lhs).Kind(), (*rhs).Kind())

			notEqual, i := EvaluateRelational(ast.NotEqualInfixOperator, *lhs, *rhs, testSpan)
			require.Nil(t, i)
			assert.Equal(t, lhsIdx != rhsIdx, notEqual)
		}
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		Operator ast.InfixOperator
		Lhs      *Value
		Rhs      *Value
		Expected string
		Error    *RuntimeErrorKind
	}{
		{Operator: ast.PlusInfixOperator, Lhs: NewValueInt(2), Rhs: NewValueInt(3), Expected: "5"},
		{Operator: ast.MinusInfixOperator, Lhs: NewValueInt(2), Rhs: NewValueInt(3), Expected: "-1"},
		{Operator: ast.MultiplyInfixOperator, Lhs: NewValueInt(-4), Rhs: NewValueInt(3), Expected: "-12"},
		{Operator: ast.DivideInfixOperator, Lhs: NewValueInt(-7), Rhs: NewValueInt(2), Expected: "-3"},
		{Operator: ast.ModuloInfixOperator, Lhs: NewValueInt(-7), Rhs: NewValueInt(2), Expected: "-1"},
		{Operator: ast.DivideInfixOperator, Lhs: NewValueInt(math.MinInt64), Rhs: NewValueInt(-1), Expected: "-9223372036854775808"},
		{Operator: ast.ModuloInfixOperator, Lhs: NewValueInt(math.MinInt64), Rhs: NewValueInt(-1), Expected: "0"},
		{Operator: ast.MultiplyInfixOperator, Lhs: NewValueInt(math.MaxInt64), Rhs: NewValueInt(2), Expected: "-2"},
		{Operator: ast.DivideInfixOperator, Lhs: NewValueInt(1), Rhs: NewValueInt(0), Error: kindPtr(DivisionByZeroErrorKind)},
		{Operator: ast.ModuloInfixOperator, Lhs: NewValueInt(1), Rhs: NewValueInt(0), Error: kindPtr(DivisionByZeroErrorKind)},
		{Operator: ast.PlusInfixOperator, Lhs: NewValueString("ab"), Rhs: NewValueString("cd"), Expected: "'abcd'"},
		{Operator: ast.MinusInfixOperator, Lhs: NewValueString("ab"), Rhs: NewValueString("cd"), Error: kindPtr(UnsupportedOperationErrorKind)},
		{Operator: ast.PlusInfixOperator, Lhs: list(NewValueInt(1)), Rhs: list(NewValueInt(2), NewValueInt(3)), Expected: "[1, 2, 3]"},
		{
			Operator: ast.PlusInfixOperator,
			Lhs:      dict("a", NewValueInt(1), "b", NewValueInt(2)),
			Rhs:      dict("b", NewValueInt(3), "c", NewValueInt(4)),
			Expected: "{'a': 1, 'b': 3, 'c': 4}",
		},
		{Operator: ast.PlusInfixOperator, Lhs: NewValueBool(true), Rhs: NewValueBool(true), Error: kindPtr(UnsupportedOperationErrorKind)},
		{Operator: ast.PlusInfixOperator, Lhs: NewValueInt(1), Rhs: NewValueString("1"), Error: kindPtr(UnsupportedOperationErrorKind)},
		{Operator: ast.PlusInfixOperator, Lhs: NewValueVoid(), Rhs: NewValueVoid(), Error: kindPtr(UnsupportedOperationErrorKind)},
	}

	for idx, test := range tests {
		t.Run(fmt.Sprintf("%d-%s-%s", idx, (*test.Lhs).Kind(), test.Operator), func(t *testing.T) {
			res, i := EvaluateArithmetic(test.Operator, *test.Lhs, *test.Rhs, testSpan)
			if test.Error != nil {
				requireErrKind(t, i, *test.Error)
				return
			}
			require.Nil(t, i)
			assert.Equal(t, test.Expected, (*res).Display())
		})
	}
}

func kindPtr(kind RuntimeErrorKind) *RuntimeErrorKind { return &kind }

func TestSubtractingTheNegationDoubles(t *testing.T) {
	for _, a := range []int64{0, 1, -7, 123_456_789, math.MaxInt64, math.MinInt64} {
		t.Run(fmt.Sprint(a), func(t *testing.T) {
			difference, i := EvaluateArithmetic(ast.MinusInfixOperator, *NewValueInt(a), *NewValueInt(-a), testSpan)
			require.Nil(t, i)
			doubled, i := EvaluateArithmetic(ast.MultiplyInfixOperator, *NewValueInt(2), *NewValueInt(a), testSpan)
			require.Nil(t, i)
			assert.True(t, (*difference).IsEqual(*doubled), "%s != %s", (*difference).Display(), (*doubled).Display())
		})
	}
}

func TestArithmeticDoesNotMutateOperands(t *testing.T) {
	lhs := list(NewValueInt(1))
	rhs := list(NewValueInt(2))
	res, i := EvaluateArithmetic(ast.PlusInfixOperator, *lhs, *rhs, testSpan)
	require.Nil(t, i)

	require.Nil(t, Assign(NewPlace(res), *NewValueInt(0), *NewValueInt(9), testSpan))

	assert.Equal(t, "[1]", (*lhs).Display())
	assert.Equal(t, "[2]", (*rhs).Display())
	assert.Equal(t, "[9, 2]", (*res).Display())
}

func TestListConcatenationIsAssociative(t *testing.T) {
	a := list(NewValueInt(1))
	b := list(NewValueInt(2), NewValueInt(3))
	c := list(NewValueString("x"))

	ab, i := EvaluateArithmetic(ast.PlusInfixOperator, *a, *b, testSpan)
	require.Nil(t, i)
	abc1, i := EvaluateArithmetic(ast.PlusInfixOperator, *ab, *c, testSpan)
	require.Nil(t, i)

	bc, i := EvaluateArithmetic(ast.PlusInfixOperator, *b, *c, testSpan)
	require.Nil(t, i)
	abc2, i := EvaluateArithmetic(ast.PlusInfixOperator, *a, *bc, testSpan)
	require.Nil(t, i)

	assert.True(t, (*abc1).IsEqual(*abc2), spew.Sdump(abc1, abc2))
}

func TestOrderingIsIntegerOnly(t *testing.T) {
	res, i := EvaluateRelational(ast.LessThanEqualInfixOperator, *NewValueInt(3), *NewValueInt(3), testSpan)
	require.Nil(t, i)
	assert.True(t, res)

	res, i = EvaluateRelational(ast.GreaterThanInfixOperator, *NewValueInt(3), *NewValueInt(3), testSpan)
	require.Nil(t, i)
	assert.False(t, res)

	_, i = EvaluateRelational(ast.LessThanInfixOperator, *NewValueString("a"), *NewValueString("b"), testSpan)
	requireErrKind(t, i, UnsupportedOperationErrorKind)
}

func TestSetValue(t *testing.T) {
	target := NewValueInt(1)
	require.Nil(t, SetValue(target, *NewValueInt(2), testSpan))
	assert.Equal(t, "2", (*target).Display())

	requireErrKind(t, SetValue(target, *NewValueString("x"), testSpan), TypeMismatchErrorKind)

	void := NewValueVoid()
	require.Nil(t, SetValue(void, *NewValueString("x"), testSpan))
	assert.Equal(t, "'x'", (*void).Display())
}

func TestCasts(t *testing.T) {
	_, i := AsInt(*NewValueString("1"), testSpan)
	requireErrKind(t, i, TypeMismatchErrorKind)
	assert.Contains(t, (*i).Message(), "Integer")
	assert.Contains(t, (*i).Message(), "String")

	b, i := AsBool(*NewValueBool(true), testSpan)
	require.Nil(t, i)
	assert.True(t, b)

	_, i = AsTable(*list(), testSpan)
	requireErrKind(t, i, TypeMismatchErrorKind)

	d, i := AsDict(*dict("k", NewValueInt(1)), testSpan)
	require.Nil(t, i)
	assert.Equal(t, []string{"k"}, d.Keys())

	_, i = AsDict(*list(), testSpan)
	requireErrKind(t, i, TypeMismatchErrorKind)
	assert.Contains(t, (*i).Message(), "Dict")

	names, i := AsStringList(*list(NewValueString("a"), NewValueString("b")), testSpan)
	require.Nil(t, i)
	assert.Equal(t, []string{"a", "b"}, names)
}
