package value

import (
	"fmt"
	"sort"
	"strings"
)

type ValueDict struct {
	Fields map[string]*Value
}

func (_ ValueDict) Kind() ValueKind { return DictValueKind }

func (self ValueDict) Display() string {
	entries := make([]string, 0, len(self.Fields))
	for _, key := range self.Keys() {
		entries = append(entries, fmt.Sprintf("'%s': %s", key, (*self.Fields[key]).Display()))
	}
	return fmt.Sprintf("{%s}", strings.Join(entries, ", "))
}

func (self ValueDict) IsEqual(other Value) bool {
	if other.Kind() != self.Kind() {
		return false
	}
	otherDict := other.(ValueDict)
	if len(otherDict.Fields) != len(self.Fields) {
		return false
	}

	for key, val := range self.Fields {
		otherVal, found := otherDict.Fields[key]
		if !found || !(*val).IsEqual(*otherVal) {
			return false
		}
	}

	return true
}

func (self ValueDict) Clone() *Value {
	fields := make(map[string]*Value, len(self.Fields))
	for key, val := range self.Fields {
		fields[key] = (*val).Clone()
	}
	return NewValueDict(fields)
}

// Keys returns the keys of the dictionary in sorted order.
func (self ValueDict) Keys() []string {
	keys := make([]string, 0, len(self.Fields))
	for key := range self.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func NewValueDict(fields map[string]*Value) *Value {
	val := Value(ValueDict{Fields: fields})
	return &val
}
