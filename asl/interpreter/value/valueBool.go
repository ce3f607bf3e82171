package value

import "strconv"

type ValueBool struct {
	Inner bool
}

func (_ ValueBool) Kind() ValueKind { return BoolValueKind }

func (self ValueBool) Display() string { return strconv.FormatBool(self.Inner) }

func (self ValueBool) IsEqual(other Value) bool {
	if other.Kind() != self.Kind() {
		return false
	}
	return self.Inner == other.(ValueBool).Inner
}

func (self ValueBool) Clone() *Value { return NewValueBool(self.Inner) }

func NewValueBool(inner bool) *Value {
	val := Value(ValueBool{Inner: inner})
	return &val
}
