package value

import (
	"fmt"
	"strings"
)

type ValueList struct {
	// both the slice and its contents are pointers so that interior mutability can be leveraged
	Values *[]*Value
}

func (_ ValueList) Kind() ValueKind { return ListValueKind }

func (self ValueList) Display() string {
	values := make([]string, 0, len(*self.Values))
	for _, val := range *self.Values {
		values = append(values, (*val).Display())
	}
	return fmt.Sprintf("[%s]", strings.Join(values, ", "))
}

func (self ValueList) IsEqual(other Value) bool {
	if other.Kind() != self.Kind() {
		return false
	}
	otherList := other.(ValueList)
	if len(*otherList.Values) != len(*self.Values) {
		return false
	}

	for idx := 0; idx < len(*self.Values); idx++ {
		if !(*(*self.Values)[idx]).IsEqual(*(*otherList.Values)[idx]) {
			return false
		}
	}

	return true
}

func (self ValueList) Clone() *Value {
	values := make([]*Value, 0, len(*self.Values))
	for _, val := range *self.Values {
		values = append(values, (*val).Clone())
	}
	return NewValueList(values)
}

func (self ValueList) Len() int { return len(*self.Values) }

func NewValueList(values []*Value) *Value {
	val := Value(ValueList{Values: &values})
	return &val
}
