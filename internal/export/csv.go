// Package export serializes record collections into the delimited text
// format offered as an admin download.
//
// The column set is the record type's exported fields, so every row of one
// export always has the same columns; mixed-shape input is a compile-time
// impossibility rather than a silently truncated file.
package export

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
)

var (
	ErrNoRecords = errors.New("export: no records")
	ErrNotStruct = errors.New("export: records must be structs")
)

// MarshalCSV renders records as comma-separated text: a header row of field
// names followed by one row per record in their natural order. Every value
// is stringified, embedded double quotes are backslash-escaped, and the
// whole value is wrapped in quotes.
//
// Field names come from the json tag (falling back to the Go field name);
// fields tagged "-" are skipped.
func MarshalCSV[T any](records []T) (string, error) {
	if len(records) == 0 {
		return "", ErrNoRecords
	}

	elem := reflect.TypeOf(records).Elem()
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return "", ErrNotStruct
	}

	var fields []int
	var headers []string
	for i := 0; i < elem.NumField(); i++ {
		f := elem.Field(i)
		if !f.IsExported() {
			continue
		}
		name := columnName(f)
		if name == "" {
			continue
		}
		fields = append(fields, i)
		headers = append(headers, name)
	}

	rows := make([]string, 0, len(records)+1)
	rows = append(rows, joinRow(headers))

	for _, rec := range records {
		v := reflect.ValueOf(rec)
		if v.Kind() == reflect.Pointer {
			if v.IsNil() {
				continue
			}
			v = v.Elem()
		}
		values := make([]string, 0, len(fields))
		for _, i := range fields {
			values = append(values, stringify(v.Field(i).Interface()))
		}
		rows = append(rows, joinRow(values))
	}

	return strings.Join(rows, "\n"), nil
}

func columnName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if tag != "" {
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		if tag != "" {
			return tag
		}
	}
	return f.Name
}

func stringify(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("%v", v)
}

func joinRow(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
	}
	return strings.Join(quoted, ",")
}
