package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

type modelField struct {
	column string
	index  int
}

var modelFields sync.Map // reflect.Type -> []modelField

// InsertModel builds a single row insert from the db tags of model.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	return InsertModels(table, []any{model}, suffix)
}

// InsertModels builds one multi-row insert. Every model must share the same
// struct type; fields tagged db:"-" or untagged are skipped.
func InsertModels[T any](table string, models []T, suffix string) (string, []any, error) {
	if len(models) == 0 {
		return "", nil, fmt.Errorf("at least one model is required")
	}

	builder := InsertInto(table).Suffix(suffix)
	var rowType reflect.Type
	for i, model := range models {
		value, err := structValue(model)
		if err != nil {
			return "", nil, err
		}
		if rowType == nil {
			rowType = value.Type()
		} else if value.Type() != rowType {
			return "", nil, fmt.Errorf("model %d is %s, expected %s", i, value.Type(), rowType)
		}

		fields, err := fieldsOf(rowType)
		if err != nil {
			return "", nil, err
		}
		if i == 0 {
			cols := make([]string, 0, len(fields))
			for _, f := range fields {
				cols = append(cols, f.column)
			}
			builder.Columns(cols...)
		}

		vals := make([]any, 0, len(fields))
		for _, f := range fields {
			vals = append(vals, value.Field(f.index).Interface())
		}
		builder.Values(vals...)
	}
	return builder.ToSQL()
}

func structValue(model any) (reflect.Value, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return reflect.Value{}, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("model must be struct, got %s", value.Kind())
	}
	return value, nil
}

func fieldsOf(typ reflect.Type) ([]modelField, error) {
	if cached, ok := modelFields.Load(typ); ok {
		return cached.([]modelField), nil
	}

	fields := make([]modelField, 0, typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		col, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		col = strings.TrimSpace(col)
		if col == "" || col == "-" {
			continue
		}
		fields = append(fields, modelField{column: col, index: i})
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("model %s has no db columns", typ)
	}

	modelFields.Store(typ, fields)
	return fields, nil
}
