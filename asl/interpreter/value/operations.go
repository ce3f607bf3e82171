package value

import (
	"fmt"

	"github.com/asl-lang/asl/asl/ast"
	"github.com/asl-lang/asl/asl/errors"
)

func unsupportedOperation(operator ast.InfixOperator, lhs Value, rhs Value, span errors.Span) *Interrupt {
	return NewRuntimeErr(
		fmt.Sprintf("Operator '%s' is not supported for values of type %s and %s", operator, lhs.Kind(), rhs.Kind()),
		UnsupportedOperationErrorKind,
		span,
	)
}

// EvaluateArithmetic dispatches `+ - * / %` on the variant of the left operand.
// It never mutates its operands, the result is always a fresh value.
func EvaluateArithmetic(operator ast.InfixOperator, lhs Value, rhs Value, span errors.Span) (*Value, *Interrupt) {
	if !operator.IsArithmetic() {
		panic(fmt.Sprintf("Operator '%s' is not an arithmetic operator", operator))
	}
	if lhs.Kind() != rhs.Kind() {
		return nil, unsupportedOperation(operator, lhs, rhs, span)
	}

	switch lhs.Kind() {
	case IntValueKind:
		lhsInt := lhs.(ValueInt).Inner
		rhsInt := rhs.(ValueInt).Inner

		switch operator {
		case ast.PlusInfixOperator:
			return NewValueInt(lhsInt + rhsInt), nil
		case ast.MinusInfixOperator:
			return NewValueInt(lhsInt - rhsInt), nil
		case ast.MultiplyInfixOperator:
			return NewValueInt(lhsInt * rhsInt), nil
		case ast.DivideInfixOperator, ast.ModuloInfixOperator:
			if rhsInt == 0 {
				return nil, NewRuntimeErr("Division by zero", DivisionByZeroErrorKind, span)
			}
			if operator == ast.DivideInfixOperator {
				return NewValueInt(lhsInt / rhsInt), nil
			}
			return NewValueInt(lhsInt % rhsInt), nil
		}
	case StringValueKind:
		if operator == ast.PlusInfixOperator {
			return NewValueString(lhs.(ValueString).Inner + rhs.(ValueString).Inner), nil
		}
	case ListValueKind:
		if operator == ast.PlusInfixOperator {
			lhsList := lhs.(ValueList)
			rhsList := rhs.(ValueList)
			values := make([]*Value, 0, lhsList.Len()+rhsList.Len())
			for _, val := range *lhsList.Values {
				values = append(values, (*val).Clone())
			}
			for _, val := range *rhsList.Values {
				values = append(values, (*val).Clone())
			}
			return NewValueList(values), nil
		}
	case DictValueKind:
		if operator == ast.PlusInfixOperator {
			// right-biased union
			union := lhs.(ValueDict).Clone()
			for key, val := range rhs.(ValueDict).Fields {
				(*union).(ValueDict).Fields[key] = (*val).Clone()
			}
			return union, nil
		}
	case VoidValueKind, BoolValueKind, TableValueKind:
	default:
		panic("A new ValueKind was introduced without updating this code")
	}

	return nil, unsupportedOperation(operator, lhs, rhs, span)
}

// EvaluateRelational compares two values. Equality is total and returns false across
// mismatched variants, the ordering operators are only defined for integers.
func EvaluateRelational(operator ast.InfixOperator, lhs Value, rhs Value, span errors.Span) (bool, *Interrupt) {
	switch operator {
	case ast.EqualInfixOperator:
		return lhs.IsEqual(rhs), nil
	case ast.NotEqualInfixOperator:
		return !lhs.IsEqual(rhs), nil
	case ast.LessThanInfixOperator, ast.LessThanEqualInfixOperator,
		ast.GreaterThanInfixOperator, ast.GreaterThanEqualInfixOperator:
	default:
		panic(fmt.Sprintf("Operator '%s' is not a relational operator", operator))
	}

	if lhs.Kind() != IntValueKind || rhs.Kind() != IntValueKind {
		return false, unsupportedOperation(operator, lhs, rhs, span)
	}

	lhsInt := lhs.(ValueInt).Inner
	rhsInt := rhs.(ValueInt).Inner

	switch operator {
	case ast.LessThanInfixOperator:
		return lhsInt < rhsInt, nil
	case ast.LessThanEqualInfixOperator:
		return lhsInt <= rhsInt, nil
	case ast.GreaterThanInfixOperator:
		return lhsInt > rhsInt, nil
	default:
		return lhsInt >= rhsInt, nil
	}
}

// SetValue overwrites the value behind `target` in place. Both values must share
// their runtime type, unless the target is still void.
func SetValue(target *Value, val Value, span errors.Span) *Interrupt {
	if (*target).Kind() != VoidValueKind && (*target).Kind() != val.Kind() {
		return NewRuntimeErr(
			fmt.Sprintf("Cannot overwrite a value of type %s with a value of type %s", (*target).Kind(), val.Kind()),
			TypeMismatchErrorKind,
			span,
		)
	}
	*target = *val.Clone()
	return nil
}
