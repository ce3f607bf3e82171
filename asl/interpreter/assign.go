package interpreter

import (
	"github.com/asl-lang/asl/asl/ast"
	"github.com/asl-lang/asl/asl/interpreter/value"
)

func (self *Interpreter) assignStatement(node ast.AssignStatement) *value.Interrupt {
	rhs, i := self.expression(node.Rhs)
	if i != nil {
		return i
	}

	switch lhs := node.Lhs.(type) {
	case ast.IdentExpression:
		self.stack.Set(lhs.Ident, *rhs)
		return nil
	case ast.AccessExpression:
		return self.assignIndexed(lhs, *rhs)
	default:
		panic("Only variables and indexed accesses can be assigned to")
	}
}

// assignIndexed walks the live container of the base variable and writes the value
// into the last addressed location.
func (self *Interpreter) assignIndexed(node ast.AccessExpression, val value.Value) *value.Interrupt {
	slot, i := self.lookupSlot(node.Base)
	if i != nil {
		return i
	}

	indices, i := self.expressions(node.Indices)
	if i != nil {
		return i
	}

	place := value.NewPlace(slot)
	last := len(indices) - 1
	for idx := 0; idx < last; idx++ {
		place, i = value.IndexForWrite(place, *indices[idx], node.Indices[idx].Span())
		if i != nil {
			return i
		}
	}

	return value.Assign(place, *indices[last], val, node.Indices[last].Span())
}

// accessExpression reads from a clone of the base variable, the result never aliases it.
func (self *Interpreter) accessExpression(node ast.AccessExpression) (*value.Value, *value.Interrupt) {
	slot, i := self.lookupSlot(node.Base)
	if i != nil {
		return nil, i
	}
	base := (*slot).Clone()

	indices, i := self.expressions(node.Indices)
	if i != nil {
		return nil, i
	}

	place := value.NewPlace(base)
	for idx, index := range indices {
		place, i = value.Index(place, *index, node.Indices[idx].Span())
		if i != nil {
			return nil, i
		}
	}

	return place.Value, nil
}
