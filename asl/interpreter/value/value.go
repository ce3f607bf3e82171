package value

type ValueKind uint8

const (
	VoidValueKind ValueKind = iota
	BoolValueKind
	IntValueKind
	StringValueKind
	ListValueKind
	DictValueKind
	TableValueKind
)

// String returns the stable type tag used for dynamic type checks and error messages.
func (self ValueKind) String() string {
	switch self {
	case VoidValueKind:
		return "Void"
	case BoolValueKind:
		return "Boolean"
	case IntValueKind:
		return "Integer"
	case StringValueKind:
		return "String"
	case ListValueKind:
		return "List"
	case DictValueKind:
		return "Dict"
	case TableValueKind:
		return "Table"
	default:
		panic("A new ValueKind was introduced without updating this code")
	}
}

type Value interface {
	Kind() ValueKind
	Display() string
	// Structural equality, false across mismatched kinds
	IsEqual(other Value) bool
	// Recursively copies all owned data, the result never aliases the original
	Clone() *Value
}
