package value

import (
	"fmt"
	"strings"
)

type ValueTable struct {
	Inner *Table
}

func (_ ValueTable) Kind() ValueKind { return TableValueKind }

// Tables are displayed as their list of rows, each row in column order.
func (self ValueTable) Display() string {
	rows := make([]string, 0, self.Inner.Height())
	for _, row := range self.Inner.Rows {
		cells := make([]string, 0, self.Inner.Width())
		for _, column := range self.Inner.Columns {
			cells = append(cells, fmt.Sprintf("'%s': %s", column.Name, (*row[column.Name]).Display()))
		}
		rows = append(rows, fmt.Sprintf("{%s}", strings.Join(cells, ", ")))
	}
	return fmt.Sprintf("[%s]", strings.Join(rows, ", "))
}

func (self ValueTable) IsEqual(other Value) bool {
	if other.Kind() != self.Kind() {
		return false
	}
	return self.Inner.IsEqual(other.(ValueTable).Inner)
}

func (self ValueTable) Clone() *Value {
	return NewValueTable(self.Inner.Clone())
}

func NewValueTable(inner *Table) *Value {
	val := Value(ValueTable{Inner: inner})
	return &val
}
