package value

type ValueString struct {
	Inner string
}

func (_ ValueString) Kind() ValueKind { return StringValueKind }

// Strings are displayed quoted, this is also the form used when tables are written to files.
func (self ValueString) Display() string { return "'" + self.Inner + "'" }

func (self ValueString) IsEqual(other Value) bool {
	if other.Kind() != self.Kind() {
		return false
	}
	return self.Inner == other.(ValueString).Inner
}

func (self ValueString) Clone() *Value { return NewValueString(self.Inner) }

func NewValueString(inner string) *Value {
	val := Value(ValueString{Inner: inner})
	return &val
}
