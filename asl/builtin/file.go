package builtin

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/asl-lang/asl/asl/errors"
	v "github.com/asl-lang/asl/asl/interpreter/value"
)

var integerPattern = regexp.MustCompile(`^[-+]?[0-9]+$`)

func hostError(span errors.Span, format string, args ...any) *v.Interrupt {
	return v.NewRuntimeErr(fmt.Sprintf(format, args...), v.HostErrorKind, span)
}

// ParseCell turns the text of a file cell into a value.
// Empty cells are void, strings must be quoted with single quotes.
func ParseCell(text string, span errors.Span) (*v.Value, *v.Interrupt) {
	text = strings.TrimSpace(text)

	switch {
	case text == "":
		return v.NewValueVoid(), nil
	case text == "true":
		return v.NewValueBool(true), nil
	case text == "false":
		return v.NewValueBool(false), nil
	case integerPattern.MatchString(text):
		number, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, v.NewRuntimeErr(fmt.Sprintf("Integer '%s' is out of range", text), v.FormatErrorKind, span)
		}
		return v.NewValueInt(number), nil
	case len(text) >= 2 && strings.HasPrefix(text, "'") && strings.HasSuffix(text, "'"):
		return v.NewValueString(text[1 : len(text)-1]), nil
	default:
		return nil, v.NewRuntimeErr(fmt.Sprintf("Cannot parse '%s' as a value", text), v.FormatErrorKind, span)
	}
}

// FormatCell is the inverse of ParseCell.
func FormatCell(val v.Value) string {
	if val.Kind() == v.VoidValueKind {
		return ""
	}
	return val.Display()
}

func ReadFile(ctx v.CallContext, span errors.Span, args ...*v.Value) (*v.Value, *v.Interrupt) {
	path := (*args[0]).(v.ValueString).Inner

	file, err := ctx.Executor().OpenFile(path)
	if err != nil {
		return nil, hostError(span, "Could not open file '%s': %s", path, err.Error())
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, v.NewRuntimeErr(fmt.Sprintf("File '%s' has no header", path), v.FormatErrorKind, span)
	} else if err != nil {
		return nil, v.NewRuntimeErr(fmt.Sprintf("Malformed file '%s': %s", path, err.Error()), v.FormatErrorKind, span)
	}

	columns := make([]string, 0, len(header))
	for _, column := range header {
		columns = append(columns, strings.TrimSpace(column))
	}

	table, i := v.NewTable(columns, span)
	if i != nil {
		return nil, i
	}

	for row := int64(0); ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, v.NewRuntimeErr(fmt.Sprintf("Malformed file '%s': %s", path, err.Error()), v.FormatErrorKind, span)
		}

		for idx, cell := range record {
			val, i := ParseCell(cell, span)
			if i != nil {
				return nil, i
			}
			if i := table.Put(row, columns[idx], *val, span); i != nil {
				return nil, i
			}
		}
	}

	logger := ctx.Logger()
	logger.Debug().Str("path", path).Int("rows", table.Height()).Int("columns", table.Width()).Msg("Read table")

	return v.NewValueTable(table), nil
}

func WriteFile(ctx v.CallContext, span errors.Span, args ...*v.Value) (*v.Value, *v.Interrupt) {
	table := (*args[0]).(v.ValueTable).Inner
	path := (*args[1]).(v.ValueString).Inner

	file, err := ctx.Executor().CreateFile(path)
	if err != nil {
		return nil, hostError(span, "Could not create file '%s': %s", path, err.Error())
	}

	writer := csv.NewWriter(file)
	records := make([][]string, 0, table.Height()+1)
	records = append(records, table.ColumnNames())
	for _, row := range table.Rows {
		record := make([]string, 0, table.Width())
		for _, column := range table.Columns {
			record = append(record, FormatCell(*row[column.Name]))
		}
		records = append(records, record)
	}

	if err := writer.WriteAll(records); err != nil {
		file.Close()
		return nil, hostError(span, "Could not write file '%s': %s", path, err.Error())
	}
	if err := file.Close(); err != nil {
		return nil, hostError(span, "Could not write file '%s': %s", path, err.Error())
	}

	return v.NewValueVoid(), nil
}

func Source(ctx v.CallContext, span errors.Span, args ...*v.Value) (*v.Value, *v.Interrupt) {
	return ctx.Source((*args[0]).(v.ValueString).Inner, span)
}
