package value

type ValueVoid struct{}

func (_ ValueVoid) Kind() ValueKind { return VoidValueKind }

func (self ValueVoid) Display() string { return "Void" }

func (self ValueVoid) IsEqual(other Value) bool {
	return other.Kind() == VoidValueKind
}

func (self ValueVoid) Clone() *Value { return NewValueVoid() }

func NewValueVoid() *Value {
	val := Value(ValueVoid{})
	return &val
}
