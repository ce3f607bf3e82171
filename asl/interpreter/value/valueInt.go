package value

import "strconv"

type ValueInt struct {
	Inner int64
}

func (_ ValueInt) Kind() ValueKind { return IntValueKind }

func (self ValueInt) Display() string { return strconv.FormatInt(self.Inner, 10) }

func (self ValueInt) IsEqual(other Value) bool {
	if other.Kind() != self.Kind() {
		return false
	}
	return self.Inner == other.(ValueInt).Inner
}

func (self ValueInt) Clone() *Value { return NewValueInt(self.Inner) }

func NewValueInt(inner int64) *Value {
	val := Value(ValueInt{Inner: inner})
	return &val
}
